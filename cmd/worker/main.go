package main

import (
	"log/slog"
	"os"

	"estate-booking/internal/handler/middleware"
	"estate-booking/internal/infra/notifier"
	"estate-booking/internal/pkg/config"
)

// Drains the push notification queue filled by NOTIFY_DRIVER=queue and
// delivers each message to the HTTP push endpoint.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	delivery, err := notifier.NewHTTPNotifier(cfg.Notify)
	if err != nil {
		logger.Error("worker needs an HTTP push endpoint", "error", err)
		os.Exit(1)
	}

	w := notifier.NewWorker(notifier.RedisOpt(cfg.Notify), cfg.Notify.WorkerConcurrency, delivery)
	logger.Info("starting notification worker", "redis", cfg.Notify.RedisAddr, "concurrency", cfg.Notify.WorkerConcurrency)
	// Run returns after SIGTERM/SIGINT once in-flight tasks finish
	if err := w.Run(); err != nil {
		logger.Error("worker stopped with error", "error", err)
		os.Exit(1)
	}
}
