package model

import "time"

// RunSummary описывает результат одного успешного прохода
type RunSummary struct {
	FilePath  string
	Rows      int
	StartedAt time.Time
	Duration  time.Duration
}
