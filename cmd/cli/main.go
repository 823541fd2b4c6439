package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/webstash/internal/cli"
	"github.com/dmitrijs2005/webstash/internal/config"
	"github.com/dmitrijs2005/webstash/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.LoadConfig()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
