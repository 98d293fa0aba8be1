package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"creature-forge/internal/agent"
	"creature-forge/internal/assets"
	"creature-forge/internal/config"
	"creature-forge/internal/engine"
	"creature-forge/internal/server"
	"creature-forge/internal/version"
	"creature-forge/pkg/logger"
)

func main() {
	// 1. Конфигурация
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}
	logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	logger.Log.Info("Starting creature forge...")
	logger.Log.Info(version.String())

	// 2. Сервис и контент мода
	svc, err := engine.Bootstrap(cfg, engine.NewMemoryRegistrar(assets.Vanilla()))
	if err != nil {
		// Ошибки отдельных шаблонов уже в логе, сервер поднимается с тем, что собралось.
		logger.Log.WithError(err).Warn("Some content failed to register")
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Prewarm {
		go agent.NewPrewarmer(svc).Run(ctx)
	}

	// 3. Запуск сервера
	srv := server.New(svc, cfg.Port)
	if err := srv.Run(ctx); err != nil {
		logger.Log.WithError(err).Fatal("Server error")
	}

	logger.Log.Info("Done.")
}
