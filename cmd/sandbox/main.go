package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/OCharnyshevich/tileworld/internal/config"
	"github.com/OCharnyshevich/tileworld/internal/game"
	"github.com/OCharnyshevich/tileworld/internal/report"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "YAML or JSON config file")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 = from clock)")
	flag.StringVar(&cfg.Noise, "noise", cfg.Noise, "erosion noise: sine, simplex or perlin")
	flag.StringVar(&cfg.Mountains.Symmetry, "symmetry", cfg.Mountains.Symmetry, "mirrored mountain passes: all or middle")
	flag.StringVar(&cfg.Assets.Dir, "assets", cfg.Assets.Dir, "texture directory")
	flag.StringVar(&cfg.Assets.Source, "assets-source", cfg.Assets.Source, "fetch textures from here when the directory is empty")
	flag.DurationVar(&cfg.Sim.Tick, "tick", cfg.Sim.Tick, "simulation step")
	flag.DurationVar(&cfg.Sim.Duration, "duration", cfg.Sim.Duration, "simulated time to run (0 = until interrupted)")
	flag.StringVar(&cfg.Sim.Script, "script", cfg.Sim.Script, `scripted input, e.g. "right*60 right+jump*5 idle*30"`)
	flag.StringVar(&cfg.DumpPath, "dump", cfg.DumpPath, "write generated tiles to this .jsonl.zst file")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.Parse()

	bootLog := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			bootLog.Error("load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
		config.Merge(cfg, fromFile, explicit)
	}

	if err := cfg.Validate(); err != nil {
		bootLog.Error("invalid config", "error", err)
		os.Exit(1)
	}
	lvl, _ := cfg.Level()
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	script, err := game.ParseScript(cfg.Sim.Script)
	if err != nil {
		log.Error("parse script", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	g := game.New(cfg, log, nil)
	if err := g.Build(ctx); err != nil {
		log.Error("build world", "error", err)
		os.Exit(1)
	}

	if cfg.DumpPath != "" {
		n, err := report.Dump(cfg.DumpPath, g.Store(), g.Tiles())
		if err != nil {
			log.Error("dump tiles", "path", cfg.DumpPath, "error", err)
			os.Exit(1)
		}
		log.Info("tiles dumped", "path", cfg.DumpPath, "records", n)
	}
	for t, n := range report.Counts(g.Store(), g.Tiles()) {
		log.Debug("tile count", "type", t, "count", n)
	}

	if err := g.Run(ctx, script); err != nil {
		log.Error("simulation error", "error", err)
		os.Exit(1)
	}
}
