// Package config содержит загрузку и валидацию конфигурации.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultForecastURL страница месячного прогноза для Санкт-Петербурга
const DefaultForecastURL = "https://www.gismeteo.ru/weather-sankt-peterburg-4079/month/"

// Config представляет конфигурацию приложения
type Config struct {
	// Forecast
	ForecastURL  string
	FetchTimeout time.Duration
	RowSelector  string

	// Scraper
	ScraperEngine    string
	UserAgent        string
	HTTPClientConfig HTTPClientConfig

	// Output
	OutputDir string

	// Schedule (пусто - один запуск)
	Schedule string
	Timezone string

	// Telegram
	TelegramBotToken string
	TelegramChatID   int64

	// Logging
	LogLevel  string
	LogFormat string
	LogOutput string
	LogPath   string
}

// HTTPClientConfig представляет конфигурацию HTTP клиента
type HTTPClientConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл если он существует, иначе берем окружение
	_ = godotenv.Load()

	config := &Config{
		ForecastURL:   getEnv("FORECAST_URL", DefaultForecastURL),
		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 3*time.Second),
		RowSelector:   getEnv("ROW_SELECTOR", "a.row-item"),
		ScraperEngine: getEnv("SCRAPER_ENGINE", "colly"),
		UserAgent:     getEnv("USER_AGENT", ""),
		HTTPClientConfig: HTTPClientConfig{
			MaxIdleConns:          getEnvInt("HTTP_MAX_IDLE_CONNS", 10),
			MaxIdleConnsPerHost:   getEnvInt("HTTP_MAX_IDLE_CONNS_PER_HOST", 2),
			IdleConnTimeout:       getEnvDuration("HTTP_IDLE_CONN_TIMEOUT", 90*time.Second),
			TLSHandshakeTimeout:   getEnvDuration("HTTP_TLS_HANDSHAKE_TIMEOUT", 10*time.Second),
			ResponseHeaderTimeout: getEnvDuration("HTTP_RESPONSE_HEADER_TIMEOUT", 30*time.Second),
			DisableKeepAlives:     getEnvBool("HTTP_DISABLE_KEEP_ALIVES", false),
		},
		OutputDir:        getEnv("OUTPUT_DIR", "files"),
		Schedule:         getEnv("SCHEDULE", ""),
		Timezone:         getEnv("TIMEZONE", "Local"),
		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnvInt64("TELEGRAM_CHAT_ID", 0),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		LogOutput:        getEnv("LOG_OUTPUT", "both"),
		LogPath:          getEnv("LOG_PATH", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.ForecastURL == "" {
		return fmt.Errorf("FORECAST_URL is required")
	}

	if c.FetchTimeout <= 0 {
		return fmt.Errorf("FETCH_TIMEOUT must be positive")
	}

	if c.RowSelector == "" {
		return fmt.Errorf("ROW_SELECTOR is required")
	}

	if c.ScraperEngine != "colly" && c.ScraperEngine != "http" {
		return fmt.Errorf("SCRAPER_ENGINE must be colly or http, got %q", c.ScraperEngine)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}

	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	if c.TelegramBotToken != "" && c.TelegramChatID == 0 {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	switch c.LogOutput {
	case "stdout", "file", "both":
	default:
		return fmt.Errorf("LOG_OUTPUT must be stdout, file or both, got %q", c.LogOutput)
	}

	return nil
}

// Location возвращает часовой пояс для имени файла и расписания
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// TelegramEnabled сообщает, настроены ли уведомления
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

// getEnv получает переменную окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 получает переменную окружения как int64
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration получает переменную окружения как time.Duration
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getEnvBool получает переменную окружения как bool
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
