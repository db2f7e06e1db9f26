// Package service содержит сбор прогноза и планировщик запусков.
package service

import (
	"context"
	"errors"
	"time"

	"weatherscraper/formatter"
	"weatherscraper/internal/external/scraper"
	"weatherscraper/internal/extractor"
	"weatherscraper/internal/model"
	"weatherscraper/internal/storage"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// DefaultRowSelector выбирает строки дней на странице месячного прогноза
const DefaultRowSelector = "a.row-item"

// CollectorConfig представляет конфигурацию сбора прогноза
type CollectorConfig struct {
	URL          string
	FetchTimeout time.Duration
	RowSelector  string
	// Clock задает источник времени (имя файла и год в датах)
	Clock func() time.Time
}

// Collector выполняет проход: загрузка, выбор строк, извлечение, запись
type Collector struct {
	source scraper.Fetcher
	sink   storage.Sink
	config CollectorConfig
	logger *zap.Logger
}

// NewCollector создает новый Collector
func NewCollector(source scraper.Fetcher, sink storage.Sink, config CollectorConfig, logger *zap.Logger) *Collector {
	if config.RowSelector == "" {
		config.RowSelector = DefaultRowSelector
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}
	return &Collector{
		source: source,
		sink:   sink,
		config: config,
		logger: logger,
	}
}

// Run выполняет один проход. Ошибки этапов возвращаются как *RunError.
// При ошибке записи уже записанные данные остаются в файле.
func (c *Collector) Run(ctx context.Context) (*model.RunSummary, error) {
	startedAt := c.config.Clock()
	c.logger.Info("Starting weather parsing", zap.String("url", c.config.URL))

	c.logger.Debug("Run stage", zap.String("stage", "fetching"))
	doc, err := c.source.Fetch(ctx, c.config.URL, c.config.FetchTimeout)
	if err == nil && doc == nil {
		err = errors.New("empty document")
	}
	if err != nil {
		c.logger.Error("Failed to fetch the page. Parsing aborted.", zap.String("url", c.config.URL), zap.Error(err))
		return nil, newRunError(StageFetch, err)
	}

	rows := doc.Find(c.config.RowSelector)
	c.logger.Debug("Run stage", zap.String("stage", "rows_selected"), zap.Int("rows", rows.Length()))

	c.logger.Debug("Run stage", zap.String("stage", "sink_preparing"))
	writer, err := c.sink.Create(storage.FileName(startedAt))
	if err != nil {
		c.logger.Error("Failed to create output file. Parsing aborted.", zap.Error(err))
		return nil, newRunError(StageSinkCreate, err)
	}

	c.logger.Debug("Run stage", zap.String("stage", "writing"), zap.String("path", writer.Name()))
	written, writeErr := c.writeRows(rows, writer)
	closeErr := writer.Close()

	if writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		c.logger.Error("Failed to write data to file. Parsing aborted.",
			zap.String("path", writer.Name()),
			zap.Int("rows_written", written),
			zap.Error(writeErr))
		runErr := newRunError(StageWrite, writeErr)
		runErr.Path = writer.Name()
		runErr.Rows = written
		return nil, runErr
	}

	summary := &model.RunSummary{
		FilePath:  writer.Name(),
		Rows:      written,
		StartedAt: startedAt,
		Duration:  c.config.Clock().Sub(startedAt),
	}
	c.logger.Info("Parsing completed",
		zap.String("path", summary.FilePath),
		zap.Int("rows", summary.Rows),
		zap.Duration("duration", summary.Duration))
	return summary, nil
}

// writeRows записывает строки по порядку документа и останавливается на первой ошибке.
// Extractor создается на каждый проход: запомненный месяц не переходит между запусками.
func (c *Collector) writeRows(rows *goquery.Selection, writer storage.Writer) (int, error) {
	ext := extractor.New(extractor.WithClock(c.config.Clock), extractor.WithLogger(c.logger))

	written := 0
	var writeErr error
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		record := model.NewWeatherRecord(
			ext.ExtractDate(row),
			ext.ExtractMinTemperature(row),
			ext.ExtractMaxTemperature(row),
		)
		if !record.Date().IsSome() {
			c.logger.Debug("Row without date", zap.Int("row", i))
		}

		if err := writer.Append(formatter.FormatRecord(record)); err != nil {
			writeErr = err
			return false
		}
		written++
		return true
	})

	return written, writeErr
}
