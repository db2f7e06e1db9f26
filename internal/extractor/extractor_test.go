package extractor

import (
	"strings"
	"testing"
	"time"

	"weatherscraper/internal/model"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC)
}

// rowsFromHTML разбирает фрагмент и возвращает строки прогноза по порядку
func rowsFromHTML(t *testing.T, html string) []*goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	var rows []*goquery.Selection
	doc.Find("a.row-item").Each(func(_ int, s *goquery.Selection) {
		rows = append(rows, s)
	})
	return rows
}

func dateRow(text string) string {
	return `<a class="row-item" href="#"><div class="date">` + text + `</div></a>`
}

func rowWithDate(t *testing.T, text string) *goquery.Selection {
	t.Helper()
	rows := rowsFromHTML(t, dateRow(text))
	require.Len(t, rows, 1)
	return rows[0]
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected model.Optional
	}{
		{name: "День и месяц", text: "9 фев", expected: model.Some("2024-02-09")},
		{name: "Двузначный день", text: "23 мар", expected: model.Some("2024-03-23")},
		{name: "Месяц в верхнем регистре", text: "1 ДЕК", expected: model.Some("2024-12-01")},
		{name: "Месяц с заглавной буквы", text: "5 Май", expected: model.Some("2024-05-05")},
		{name: "Лишние пробелы вокруг", text: "  7   окт  ", expected: model.Some("2024-10-07")},
		{name: "Нет цифр", text: "Сегодня", expected: model.None()},
		{name: "Пустой текст", text: "", expected: model.None()},
		{name: "Неизвестный месяц", text: "9 feb", expected: model.None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithClock(fixedClock))
			got := e.ExtractDate(rowWithDate(t, tt.text))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractDate_MissingDateField(t *testing.T) {
	rows := rowsFromHTML(t, `<a class="row-item"><div class="invalid">Some invalid content</div></a>`)
	require.Len(t, rows, 1)

	e := New(WithClock(fixedClock))
	assert.False(t, e.ExtractDate(rows[0]).IsSome())
	assert.False(t, e.CurrentMonth().IsSome())
}

func TestExtractDate_MonthCarryForward(t *testing.T) {
	rows := rowsFromHTML(t, dateRow("9 фев")+dateRow("10")+dateRow("11"))
	require.Len(t, rows, 3)

	e := New(WithClock(fixedClock))
	var got []string
	for _, row := range rows {
		got = append(got, e.ExtractDate(row).String())
	}

	assert.Equal(t, []string{"2024-02-09", "2024-02-10", "2024-02-11"}, got)
	assert.Equal(t, model.Some("02"), e.CurrentMonth())
}

func TestExtractDate_MonthChange(t *testing.T) {
	rows := rowsFromHTML(t, dateRow("28 фев")+dateRow("29")+dateRow("1 мар")+dateRow("2"))

	e := New(WithClock(fixedClock))
	var got []string
	for _, row := range rows {
		got = append(got, e.ExtractDate(row).String())
	}

	assert.Equal(t, []string{"2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}, got)
}

func TestExtractDate_UnknownMonthKeepsState(t *testing.T) {
	rows := rowsFromHTML(t, dateRow("9 фев")+dateRow("10 xyz")+dateRow("11"))

	e := New(WithClock(fixedClock))
	assert.Equal(t, model.Some("2024-02-09"), e.ExtractDate(rows[0]))

	assert.Equal(t, model.None(), e.ExtractDate(rows[1]))
	assert.Equal(t, model.Some("02"), e.CurrentMonth())

	assert.Equal(t, model.Some("2024-02-11"), e.ExtractDate(rows[2]))
}

func TestExtractDate_NoDigitsKeepsState(t *testing.T) {
	rows := rowsFromHTML(t, dateRow("9 фев")+dateRow("завтра"))

	e := New(WithClock(fixedClock))
	e.ExtractDate(rows[0])
	assert.Equal(t, model.None(), e.ExtractDate(rows[1]))
	assert.Equal(t, model.Some("02"), e.CurrentMonth())
}

func TestExtractDate_NoMonthSeen(t *testing.T) {
	rows := rowsFromHTML(t, dateRow("10")+dateRow("11 фев")+dateRow("12"))

	e := New(WithClock(fixedClock))
	assert.Equal(t, model.None(), e.ExtractDate(rows[0]))
	assert.False(t, e.CurrentMonth().IsSome())

	assert.Equal(t, model.Some("2024-02-11"), e.ExtractDate(rows[1]))
	assert.Equal(t, model.Some("2024-02-12"), e.ExtractDate(rows[2]))
}

func TestExtractDate_YearFromClock(t *testing.T) {
	e := New(WithClock(func() time.Time {
		return time.Date(2031, time.June, 30, 23, 59, 0, 0, time.UTC)
	}))

	assert.Equal(t, model.Some("2031-07-04"), e.ExtractDate(rowWithDate(t, "4 июл")))
}

func TestReset(t *testing.T) {
	e := New(WithClock(fixedClock))
	e.ExtractDate(rowWithDate(t, "9 фев"))
	require.True(t, e.CurrentMonth().IsSome())

	e.Reset()
	assert.False(t, e.CurrentMonth().IsSome())
	assert.Equal(t, model.None(), e.ExtractDate(rowWithDate(t, "10")))
}

func TestExtractTemperatures(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantMax model.Optional
		wantMin model.Optional
	}{
		{
			name: "Оба значения",
			html: `<a class="row-item"><div class="temp">` +
				`<div class="maxt"><span class="unit unit_temperature_c">3</span></div>` +
				`<div class="mint"><span class="unit unit_temperature_f">-10</span></div>` +
				`</div></a>`,
			wantMax: model.Some("3"),
			wantMin: model.Some("-10"),
		},
		{
			name:    "Нет полей",
			html:    `<a class="row-item"><span class="invalid">Invalid content</span></a>`,
			wantMax: model.None(),
			wantMin: model.None(),
		},
		{
			name:    "Только максимум",
			html:    `<a class="row-item"><span class="unit unit_temperature_c">+25</span></a>`,
			wantMax: model.Some("+25"),
			wantMin: model.None(),
		},
		{
			name: "Берется первое совпадение",
			html: `<a class="row-item">` +
				`<span class="unit unit_temperature_c">1</span><span class="unit unit_temperature_c">2</span>` +
				`<span class="unit unit_temperature_f">-1</span><span class="unit unit_temperature_f">-2</span>` +
				`</a>`,
			wantMax: model.Some("1"),
			wantMin: model.Some("-1"),
		},
		{
			name:    "Класс unit отсутствует",
			html:    `<a class="row-item"><span class="unit_temperature_c">5</span></a>`,
			wantMax: model.None(),
			wantMin: model.None(),
		},
		{
			name:    "Нечисловое значение сохраняется как есть",
			html:    `<a class="row-item"><span class="unit unit_temperature_c"> — </span></a>`,
			wantMax: model.Some("—"),
			wantMin: model.None(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := rowsFromHTML(t, tt.html)
			require.Len(t, rows, 1)

			e := New()
			assert.Equal(t, tt.wantMax, e.ExtractMaxTemperature(rows[0]))
			assert.Equal(t, tt.wantMin, e.ExtractMinTemperature(rows[0]))
		})
	}
}
