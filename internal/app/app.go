// Package app содержит основную логику приложения.
package app

import (
	"context"
	"fmt"

	"weatherscraper/internal/config"
	"weatherscraper/internal/service"

	"go.uber.org/zap"
)

// App запускает сбор прогноза один раз или по расписанию
type App struct {
	config *config.Config
	logger *zap.Logger
	runner *service.Runner
}

// New создает приложение через фабрику компонентов
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	factory := NewComponentFactory(cfg, logger)

	notifier, err := factory.CreateNotifier()
	if err != nil {
		return nil, err
	}

	runner, err := factory.CreateRunner(notifier)
	if err != nil {
		return nil, err
	}

	return &App{
		config: cfg,
		logger: logger,
		runner: runner,
	}, nil
}

// Run выполняет один проход или, если задано расписание, повторяет проходы до отмены ctx
func (a *App) Run(ctx context.Context) error {
	if a.config.Schedule == "" {
		_, err := a.runner.RunOnce(ctx)
		return err
	}

	location, err := a.config.Location()
	if err != nil {
		return err
	}

	scheduler, err := service.NewScheduler(a.config.Schedule, location, func(ctx context.Context) {
		// Ошибка прохода уже залогирована; следующий запуск идет по расписанию
		_, _ = a.runner.RunOnce(ctx)
	}, a.logger)
	if err != nil {
		return err
	}

	a.logger.Info("Running on schedule", zap.String("schedule", a.config.Schedule))
	return scheduler.Run(ctx)
}
