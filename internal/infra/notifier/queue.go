package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"estate-booking/internal/pkg/config"
	"estate-booking/internal/usecase/shared"

	"github.com/hibiken/asynq"
)

const TypePushNotification = "notification:push"

const queueMaxRetry = 5

func RedisOpt(cfg config.NotifyConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}
}

// QueueNotifier hands notifications to the worker through an asynq queue, so
// delivery retries happen outside the request.
type QueueNotifier struct {
	client *asynq.Client
}

func NewQueueNotifier(redisOpt asynq.RedisClientOpt) *QueueNotifier {
	return &QueueNotifier{client: asynq.NewClient(redisOpt)}
}

func (q *QueueNotifier) Send(ctx context.Context, msg shared.Notification) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePushNotification, payload, asynq.MaxRetry(queueMaxRetry))
	if _, err := q.client.EnqueueContext(ctx, task); err != nil {
		slog.Warn("enqueue push notification failed", "type", msg.Data["type"], "error", err.Error())
		return err
	}
	return nil
}

func (q *QueueNotifier) Close() {
	if err := q.client.Close(); err != nil {
		slog.Warn("closing asynq client failed", "error", err.Error())
	}
}

// Worker drains the push queue into a delivering notifier.
type Worker struct {
	srv      *asynq.Server
	mux      *asynq.ServeMux
	delivery shared.Notifier
}

func NewWorker(redisOpt asynq.RedisClientOpt, concurrency int, delivery shared.Notifier) *Worker {
	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		LogLevel:    asynq.InfoLevel,
	})
	mux := asynq.NewServeMux()
	w := &Worker{srv: srv, mux: mux, delivery: delivery}
	mux.HandleFunc(TypePushNotification, w.HandlePush)
	return w
}

// HandlePush delivers one queued notification. A returned error makes asynq retry it.
func (w *Worker) HandlePush(ctx context.Context, t *asynq.Task) error {
	var msg shared.Notification
	if err := json.Unmarshal(t.Payload(), &msg); err != nil {
		slog.Error("push task payload invalid", "error", err.Error())
		return asynq.SkipRetry
	}
	if err := w.delivery.Send(ctx, msg); err != nil {
		slog.Warn("push delivery failed", "type", msg.Data["type"], "error", err.Error())
		return err
	}
	return nil
}

// Run blocks until the process receives a termination signal.
func (w *Worker) Run() error {
	return w.srv.Run(w.mux)
}
