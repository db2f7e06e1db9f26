// Package main запускает сбор месячного прогноза погоды.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weatherscraper/internal/app"
	"weatherscraper/internal/config"
	"weatherscraper/internal/service"
	"weatherscraper/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Format:   cfg.LogFormat,
		Output:   cfg.LogOutput,
		FilePath: cfg.LogPath,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Обработка сигналов
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("Failed to create application", zap.Error(err))
	}

	if err := application.Run(ctx); err != nil {
		stage, _ := service.StageOf(err)
		log.Error("Weather parsing failed", zap.String("stage", stage.String()), zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}

	log.Info("Weather parser stopped")
}
