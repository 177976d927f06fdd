package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/tileworld/internal/assets"
)

func main() {
	var (
		src = flag.String("src", "", "texture pack source (path, archive url or git:: reference)")
		out = flag.String("o", "./assets", "output dir path")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("source required")
		os.Exit(2)
	}
	if *out == "" {
		log.Error("output dir path required")
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("start downloading assets", "source", *src, "dir", *out)
	if err := assets.Fetch(ctx, *src, *out); err != nil {
		log.Error("download assets", "error", err)
		os.Exit(1)
	}
	log.Info("done downloading assets", "dir", *out)
}
