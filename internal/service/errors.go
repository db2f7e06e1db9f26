package service

import (
	"errors"
	"fmt"
)

// Stage обозначает этап прохода, на котором он завершился ошибкой
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageSinkCreate Stage = "sink-create"
	StageWrite      Stage = "write"
)

// String возвращает строковое представление этапа
func (s Stage) String() string {
	return string(s)
}

// Сигнальные ошибки этапов для errors.Is
var (
	ErrFetch      = errors.New("fetch failed")
	ErrSinkCreate = errors.New("sink creation failed")
	ErrWrite      = errors.New("write failed")
)

// RunError описывает завершившийся ошибкой проход
type RunError struct {
	Stage Stage
	// Path указывает на файл с частично записанными данными (только для StageWrite)
	Path string
	// Rows число записей, успешно записанных до ошибки
	Rows int
	Err  error
}

func newRunError(stage Stage, err error) *RunError {
	return &RunError{Stage: stage, Err: err}
}

// Error реализует интерфейс error
func (e *RunError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

// Unwrap возвращает исходную ошибку
func (e *RunError) Unwrap() error {
	return e.Err
}

// Is сопоставляет ошибку с сигнальной ошибкой ее этапа
func (e *RunError) Is(target error) bool {
	switch e.Stage {
	case StageFetch:
		return target == ErrFetch
	case StageSinkCreate:
		return target == ErrSinkCreate
	case StageWrite:
		return target == ErrWrite
	default:
		return false
	}
}

// StageOf возвращает этап ошибки прохода
func StageOf(err error) (Stage, bool) {
	var runErr *RunError
	if errors.As(err, &runErr) {
		return runErr.Stage, true
	}
	return "", false
}
