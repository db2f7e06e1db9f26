// Package scraper содержит типы для загрузки страницы прогноза.
package scraper

import (
	"context"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Движки загрузки страницы
const (
	EngineColly = "colly"
	EngineHTTP  = "http"
)

// DefaultUserAgent используется, если не задан другой
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Fetcher загружает и разбирает HTML страницу.
// Любая ошибка сети, таймаут, неуспешный статус или ошибка разбора возвращаются как error.
type Fetcher interface {
	Fetch(ctx context.Context, url string, timeout time.Duration) (*goquery.Document, error)
}

// Config представляет конфигурацию загрузчика
type Config struct {
	Engine           string
	UserAgent        string
	HTTPClientConfig HTTPClientConfig
}

// HTTPClientConfig представляет конфигурацию HTTP транспорта
type HTTPClientConfig struct {
	MaxIdleConns          int
	MaxIdleConnsPerHost   int
	IdleConnTimeout       time.Duration
	TLSHandshakeTimeout   time.Duration
	ResponseHeaderTimeout time.Duration
	DisableKeepAlives     bool
}
