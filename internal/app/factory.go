// Package app содержит фабрику компонентов приложения.
package app

import (
	"fmt"
	"time"

	"weatherscraper/internal/config"
	"weatherscraper/internal/external/scraper"
	"weatherscraper/internal/external/telegram"
	"weatherscraper/internal/service"
	"weatherscraper/internal/storage"

	"go.uber.org/zap"
)

// ComponentFactory создает компоненты приложения
type ComponentFactory struct {
	config *config.Config
	logger *zap.Logger
}

// NewComponentFactory создает новую фабрику компонентов
func NewComponentFactory(config *config.Config, logger *zap.Logger) *ComponentFactory {
	return &ComponentFactory{
		config: config,
		logger: logger,
	}
}

// CreateScraper создает загрузчик страницы
func (f *ComponentFactory) CreateScraper() (scraper.Fetcher, error) {
	scraperConfig := scraper.Config{
		Engine:    f.config.ScraperEngine,
		UserAgent: f.config.UserAgent,
		HTTPClientConfig: scraper.HTTPClientConfig{
			MaxIdleConns:          f.config.HTTPClientConfig.MaxIdleConns,
			MaxIdleConnsPerHost:   f.config.HTTPClientConfig.MaxIdleConnsPerHost,
			IdleConnTimeout:       f.config.HTTPClientConfig.IdleConnTimeout,
			TLSHandshakeTimeout:   f.config.HTTPClientConfig.TLSHandshakeTimeout,
			ResponseHeaderTimeout: f.config.HTTPClientConfig.ResponseHeaderTimeout,
			DisableKeepAlives:     f.config.HTTPClientConfig.DisableKeepAlives,
		},
	}

	fetcher, err := scraper.NewFetcher(scraperConfig, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create scraper: %w", err)
	}

	f.logger.Debug("Scraper created", zap.String("engine", f.config.ScraperEngine))
	return fetcher, nil
}

// CreateSink создает файловый приемник
func (f *ComponentFactory) CreateSink() storage.Sink {
	return storage.NewFileSink(f.config.OutputDir, f.logger)
}

// CreateNotifier создает клиент Telegram или пустой уведомитель
func (f *ComponentFactory) CreateNotifier() (service.Notifier, error) {
	if !f.config.TelegramEnabled() {
		f.logger.Debug("Telegram notifications are disabled")
		return service.NopNotifier{}, nil
	}

	client, err := telegram.NewClient(f.config.TelegramBotToken, f.config.TelegramChatID, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	return client, nil
}

// CreateClock возвращает часы в настроенном часовом поясе
func (f *ComponentFactory) CreateClock() (func() time.Time, error) {
	location, err := f.config.Location()
	if err != nil {
		return nil, err
	}
	return func() time.Time {
		return time.Now().In(location)
	}, nil
}

// CreateRunner собирает Collector и Runner
func (f *ComponentFactory) CreateRunner(notifier service.Notifier) (*service.Runner, error) {
	fetcher, err := f.CreateScraper()
	if err != nil {
		return nil, err
	}

	clock, err := f.CreateClock()
	if err != nil {
		return nil, err
	}

	collector := service.NewCollector(fetcher, f.CreateSink(), service.CollectorConfig{
		URL:          f.config.ForecastURL,
		FetchTimeout: f.config.FetchTimeout,
		RowSelector:  f.config.RowSelector,
		Clock:        clock,
	}, f.logger)

	return service.NewRunner(collector, notifier, f.logger), nil
}
