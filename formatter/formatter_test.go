package formatter

import (
	"errors"
	"strings"
	"testing"
	"time"

	"weatherscraper/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFormatRecord(t *testing.T) {
	tests := []struct {
		name     string
		record   model.WeatherRecord
		expected string
	}{
		{
			name:   "Все поля",
			record: model.NewWeatherRecord(model.Some("2024-02-09"), model.Some("-10"), model.Some("3")),
			expected: "Date: 2024-02-09 | Min Temp: -10        | Max Temp: 3         \n" +
				Separator + "\n",
		},
		{
			name:   "Отсутствующие поля",
			record: model.NewWeatherRecord(model.None(), model.None(), model.Some("+1")),
			expected: "Date: null       | Min Temp: null       | Max Temp: +1        \n" +
				Separator + "\n",
		},
		{
			name:   "Длинные значения не обрезаются",
			record: model.NewWeatherRecord(model.Some("2024-02-09"), model.Some("-10 и ниже"), model.Some("очень тепло")),
			expected: "Date: 2024-02-09 | Min Temp: -10 и ниже | Max Temp: очень тепло\n" +
				Separator + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRecord(tt.record))
		})
	}
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, 54, len(Separator))
	assert.Equal(t, strings.Repeat("_", 54), Separator)
}

func TestFormatRunReport(t *testing.T) {
	summary := &model.RunSummary{
		FilePath:  "files/weather_data_2024-02-01_12-00-00.txt",
		Rows:      30,
		StartedAt: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
	}

	report := FormatRunReport(summary, nil)
	assert.Contains(t, report, "completed")
	assert.Contains(t, report, "<code>files/weather_data_2024-02-01_12-00-00.txt</code>")
	assert.Contains(t, report, "Days: 30")
	assert.Contains(t, report, "Started: 2024-02-01_12-00-00")
	assert.Contains(t, report, "Duration: 1.5s")

	failed := FormatRunReport(nil, errors.New("fetch stage failed: <timeout>"))
	assert.Contains(t, failed, "failed")
	assert.Contains(t, failed, "&lt;timeout&gt;")
}
