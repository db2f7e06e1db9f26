package formatter

import (
	"fmt"
	"html"
	"strings"
	"time"

	"weatherscraper/internal/model"
)

// Separator отделяет записи в выходном файле
const Separator = "______________________________________________________"

// FormatRecord formats a forecast record as a two-line block for the output file
func FormatRecord(record model.WeatherRecord) string {
	line := fmt.Sprintf("Date: %-10s | Min Temp: %-10s | Max Temp: %-10s",
		record.Date().String(), record.MinTemperature().String(), record.MaxTemperature().String())
	return line + "\n" + Separator + "\n"
}

// FormatRunReport formats a run result for Telegram (HTML parse mode)
func FormatRunReport(summary *model.RunSummary, runErr error) string {
	var b strings.Builder
	if runErr != nil {
		b.WriteString("<b>Weather parsing failed</b>\n")
		b.WriteString(html.EscapeString(runErr.Error()))
		return b.String()
	}

	b.WriteString("<b>Weather parsing completed</b>\n")
	if summary == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "File: <code>%s</code>\n", html.EscapeString(summary.FilePath))
	fmt.Fprintf(&b, "Days: %d\n", summary.Rows)
	fmt.Fprintf(&b, "Started: %s\n", summary.StartedAt.Format(model.FileTimestampLayout))
	fmt.Fprintf(&b, "Duration: %s", summary.Duration.Round(time.Millisecond))
	return b.String()
}
