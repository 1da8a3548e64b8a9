package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"estate-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies the versioned SQL files under migrations/ with the atlas CLI.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "atlas executable")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *bin)
	if err != nil {
		slog.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DirURL: "file://" + *dir,
	})
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
}
