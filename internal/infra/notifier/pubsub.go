package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/errs"
	"estate-booking/internal/usecase/shared"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"
)

var ErrMissingProject = errs.New("PUBSUB_PROJECT_ID is required for the pubsub notify driver")

// PubSubNotifier publishes notifications to a topic consumed by the push service.
type PubSubNotifier struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

func NewPubSubNotifier(ctx context.Context, cfg config.NotifyConfig) (*PubSubNotifier, error) {
	if cfg.PubSubProjectID == "" {
		return nil, ErrMissingProject
	}
	var opts []option.ClientOption
	if cfg.PubSubCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.PubSubCredentialsJSON)))
	}
	client, err := pubsub.NewClient(ctx, cfg.PubSubProjectID, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "create pubsub client")
	}
	return &PubSubNotifier{client: client, topic: client.Topic(cfg.PubSubTopic)}, nil
}

func (n *PubSubNotifier) Send(ctx context.Context, msg shared.Notification) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}
	attrs := map[string]string{}
	if t, ok := msg.Data["type"]; ok {
		attrs["type"] = t
	}
	res := n.topic.Publish(ctx, &pubsub.Message{Data: data, Attributes: attrs})
	if _, err := res.Get(ctx); err != nil {
		return errs.Wrapf(err, "publish to topic %s", n.topic.ID())
	}
	return nil
}

func (n *PubSubNotifier) Close() {
	n.topic.Stop()
	if err := n.client.Close(); err != nil {
		slog.Warn("closing pubsub client failed", "error", err.Error())
	}
}
