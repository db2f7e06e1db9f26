// Package extractor извлекает дату и температуры из строки месячного прогноза.
package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"weatherscraper/internal/model"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Селекторы полей внутри строки прогноза
const (
	DateSelector = "div.date"
	// Максимум берется из блока в градусах Цельсия
	MaxTemperatureSelector = "span.unit.unit_temperature_c"
	// Минимум на странице размечен классом для Фаренгейта, хотя значение в Цельсиях
	MinTemperatureSelector = "span.unit.unit_temperature_f"
)

// dateRegex: день месяца и необязательное сокращение месяца ("9 фев", "10")
var dateRegex = regexp.MustCompile(`(\d{1,2})(?: (\p{L}+))?`)

// Extractor разбирает строки одного документа по порядку.
// Хранит последний увиденный месяц, так как он указан только у первого дня месяца.
// Экземпляр предназначен для одного прохода и не потокобезопасен.
type Extractor struct {
	currentMonth model.Optional
	now          func() time.Time
	logger       *zap.Logger
}

// Option настраивает Extractor
type Option func(*Extractor)

// WithClock задает источник текущего времени (год даты берется из него)
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// WithLogger задает логгер
func WithLogger(logger *zap.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// New создает Extractor с пустым состоянием
func New(opts ...Option) *Extractor {
	e := &Extractor{
		currentMonth: model.None(),
		now:          time.Now,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CurrentMonth возвращает месяц, который будет подставлен в строки без месяца
func (e *Extractor) CurrentMonth() model.Optional {
	return e.currentMonth
}

// Reset сбрасывает запомненный месяц
func (e *Extractor) Reset() {
	e.currentMonth = model.None()
}

// ExtractDate возвращает дату строки в формате YYYY-MM-DD.
// None возвращается, если в тексте нет дня, если месяц не распознан
// или если месяц еще ни разу не встречался.
func (e *Extractor) ExtractDate(row *goquery.Selection) model.Optional {
	dateText := selectionText(row.Find(DateSelector))

	match := dateRegex.FindStringSubmatch(dateText)
	if match == nil {
		e.logger.Debug("No day found in date text", zap.String("date_text", dateText))
		return model.None()
	}

	day, err := strconv.Atoi(match[1])
	if err != nil {
		return model.None()
	}

	if token := match[2]; token != "" {
		month, ok := model.MonthNumber(token)
		if !ok {
			e.logger.Warn("Unknown month token", zap.String("token", token), zap.String("date_text", dateText))
			return model.None()
		}
		e.currentMonth = model.Some(month)
	}

	month, ok := e.currentMonth.Get()
	if !ok {
		e.logger.Warn("Day without month before any month was seen", zap.String("date_text", dateText))
		return model.None()
	}

	return model.Some(fmt.Sprintf("%d-%s-%02d", e.now().Year(), month, day))
}

// ExtractMaxTemperature возвращает текст максимальной температуры
func (e *Extractor) ExtractMaxTemperature(row *goquery.Selection) model.Optional {
	return e.firstText(row, MaxTemperatureSelector)
}

// ExtractMinTemperature возвращает текст минимальной температуры
func (e *Extractor) ExtractMinTemperature(row *goquery.Selection) model.Optional {
	return e.firstText(row, MinTemperatureSelector)
}

func (e *Extractor) firstText(row *goquery.Selection, selector string) model.Optional {
	sel := row.Find(selector).First()
	if sel.Length() == 0 {
		e.logger.Debug("Field not found in row", zap.String("selector", selector))
		return model.None()
	}
	return model.Some(selectionText(sel))
}

// selectionText собирает текст выборки с нормализацией пробелов
func selectionText(sel *goquery.Selection) string {
	parts := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, s.Text())
	})
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
