// Package scraper содержит HTTP клиент для загрузки страницы.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// HTTPClient загружает страницу через net/http и разбирает ее goquery
type HTTPClient struct {
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// newTransport создает транспорт по конфигурации
func newTransport(config HTTPClientConfig) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ResponseHeaderTimeout: config.ResponseHeaderTimeout,
		DisableKeepAlives:     config.DisableKeepAlives,
	}
}

// NewHTTPClient создает новый HTTP клиент
func NewHTTPClient(config Config, logger *zap.Logger) *HTTPClient {
	userAgent := config.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPClient{
		client:    &http.Client{Transport: newTransport(config.HTTPClientConfig)},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch получает HTML страницу, ограничивая запрос по времени timeout
func (c *HTTPClient) Fetch(ctx context.Context, url string, timeout time.Duration) (*goquery.Document, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9")

	c.logger.Debug("Making request", zap.String("url", url), zap.Duration("timeout", timeout))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	c.logger.Debug("Received response", zap.String("url", url), zap.Int("status", resp.StatusCode))
	return doc, nil
}
