package bootstrap

import (
	"context"

	"estate-booking/internal/infra/notifier"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config) (shared.Notifier, error) {
	n, cleanup, err := notifier.New(context.Background(), cfg.Notify)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return n, nil
}
