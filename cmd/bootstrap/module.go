package bootstrap

import (
	"estate-booking/cmd/bootstrap/components"
	"estate-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// NewModule assembles the API server graph. The persistence graph depends on
// the configured store driver so it is chosen before fx starts.
func NewModule(cfg config.Config) fx.Option {
	opts := []fx.Option{
		ConfigModule(cfg),
		LoggerModule,
		JWTModule,
		NotifierModule,
		components.PersistenceModule(cfg.Store.Driver),
		components.UseCaseModule,
		components.HandlerModule,
	}
	if cfg.Store.Driver != config.StoreDriverMemory {
		opts = append(opts, DBModule)
	}
	return fx.Options(opts...)
}
