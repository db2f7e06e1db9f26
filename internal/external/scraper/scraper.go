package scraper

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// CollyFetcher загружает страницу через colly
type CollyFetcher struct {
	config    Config
	transport http.RoundTripper
	logger    *zap.Logger
}

// NewFetcher создает загрузчик выбранного движка
func NewFetcher(config Config, logger *zap.Logger) (Fetcher, error) {
	switch config.Engine {
	case "", EngineColly:
		return NewCollyFetcher(config, logger), nil
	case EngineHTTP:
		return NewHTTPClient(config, logger), nil
	default:
		return nil, fmt.Errorf("unknown scraper engine: %s", config.Engine)
	}
}

// NewCollyFetcher создает загрузчик на colly
func NewCollyFetcher(config Config, logger *zap.Logger) *CollyFetcher {
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	return &CollyFetcher{
		config:    config,
		transport: newTransport(config.HTTPClientConfig),
		logger:    logger,
	}
}

// newCollector создает коллектор на один запрос: повторные посещения URL в разных запусках не должны отсекаться
func (f *CollyFetcher) newCollector(ctx context.Context, timeout time.Duration) *colly.Collector {
	collector := colly.NewCollector(
		colly.UserAgent(f.config.UserAgent),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	collector.WithTransport(f.transport)
	if timeout > 0 {
		collector.SetRequestTimeout(timeout)
	}

	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		r.Headers.Set("Accept-Language", "ru-RU,ru;q=0.9")
		f.logger.Debug("Making request", zap.String("url", r.URL.String()))
	})

	return collector
}

// Fetch загружает страницу один раз, без повторов
func (f *CollyFetcher) Fetch(ctx context.Context, url string, timeout time.Duration) (*goquery.Document, error) {
	collector := f.newCollector(ctx, timeout)

	var doc *goquery.Document
	var parseErr error

	collector.OnResponse(func(r *colly.Response) {
		f.logger.Debug("Received response",
			zap.String("url", r.Request.URL.String()),
			zap.Int("status", r.StatusCode),
			zap.Int("size", len(r.Body)))
		doc, parseErr = goquery.NewDocumentFromReader(bytes.NewReader(r.Body))
	})

	collector.OnError(func(r *colly.Response, err error) {
		f.logger.Error("Failed to fetch page", zap.String("url", url), zap.Int("status", r.StatusCode), zap.Error(err))
	})

	if err := collector.Visit(url); err != nil {
		return nil, fmt.Errorf("failed to visit page: %w", err)
	}
	collector.Wait()

	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", parseErr)
	}
	if doc == nil {
		return nil, fmt.Errorf("no response received from %s", url)
	}
	return doc, nil
}
