// Package storage содержит приемники записей прогноза.
package storage

import (
	"time"

	"weatherscraper/internal/model"
)

// Sink создает выходные файлы
type Sink interface {
	Create(name string) (Writer, error)
}

// Writer дописывает текст в созданный приемник
type Writer interface {
	Append(text string) error
	Close() error
	// Name возвращает идентификатор приемника (путь к файлу)
	Name() string
}

// FileName возвращает имя выходного файла для момента запуска
func FileName(startedAt time.Time) string {
	return "weather_data_" + startedAt.Format(model.FileTimestampLayout) + ".txt"
}
