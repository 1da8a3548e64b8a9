package bootstrap

import (
	"log/slog"

	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as slog's default, which the
// infrastructure packages log through.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
