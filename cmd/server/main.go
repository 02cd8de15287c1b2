package main

import (
	"context"

	"github.com/OFFIS-RIT/carekg/internal/config"
	"github.com/OFFIS-RIT/carekg/internal/server"
	mid "github.com/OFFIS-RIT/carekg/internal/server/middleware"
	"github.com/OFFIS-RIT/carekg/internal/storage"
	"github.com/OFFIS-RIT/carekg/internal/util"
	"github.com/OFFIS-RIT/carekg/pkg/graph"
	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/logger/console"
	"github.com/OFFIS-RIT/carekg/pkg/logger/file"
	"github.com/OFFIS-RIT/carekg/pkg/store"
)

func main() {
	util.LoadEnv()

	cfg, err := config.Load()

	instances := []logger.LoggerInstance{console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: cfg.Debug,
	})}
	if cfg.LogFile != "" {
		instances = append(instances, file.NewFileLogger(file.FileLoggerParams{
			Path:  cfg.LogFile,
			Debug: cfg.Debug,
		}))
	}
	logger.Init(instances...)
	defer logger.Close()

	if err != nil {
		logger.Fatal("Failed to load configuration", "err", err)
	}

	ctx := context.Background()
	graphStorage, closeStorage, err := storage.OpenGraphStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open graph storage", "err", err)
	}
	defer closeStorage()

	snap, err := store.LoadSnapshot(ctx, graphStorage, cfg.GraphKey)
	if err != nil {
		logger.Fatal("Failed to load graph", "key", cfg.GraphKey, "err", err)
	}
	g := graph.FromSnapshot(snap)
	logger.Info("Loaded graph",
		"key", cfg.GraphKey,
		"build_id", snap.ID,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
	)

	server.Init(&mid.App{
		Graph:       g,
		BuildID:     snap.ID,
		BuiltAt:     snap.CreatedAt,
		MaxSeeds:    cfg.MaxSeeds,
		DefaultHops: cfg.DefaultHops,
	}, cfg.Port, cfg.ShutdownTimeout)
}
