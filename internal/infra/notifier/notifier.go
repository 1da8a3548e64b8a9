package notifier

import (
	"context"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"
)

var ErrUnknownDriver = errs.New("unknown notify driver")

// New builds the notifier selected by cfg.Driver. The returned cleanup releases
// its clients and is never nil.
func New(ctx context.Context, cfg config.NotifyConfig) (shared.Notifier, func(), error) {
	switch cfg.Driver {
	case config.NotifyDriverNoop, "":
		return Noop{}, func() {}, nil
	case config.NotifyDriverHTTP:
		n, err := NewHTTPNotifier(cfg)
		if err != nil {
			return nil, nil, err
		}
		return n, func() {}, nil
	case config.NotifyDriverPubSub:
		n, err := NewPubSubNotifier(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return n, n.Close, nil
	case config.NotifyDriverQueue:
		n := NewQueueNotifier(RedisOpt(cfg))
		return n, n.Close, nil
	default:
		return nil, nil, errs.Wrapf(ErrUnknownDriver, "NOTIFY_DRIVER=%q", cfg.Driver)
	}
}

type Noop struct{}

func (Noop) Send(context.Context, shared.Notification) error { return nil }
