package bootstrap

import (
	"time"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Secret == "" {
		return nil, errs.New("JWT_SECRET is required")
	}
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_DURATION")
	}
	return jwt.NewService(cfg.JWT.Secret, duration), nil
}
