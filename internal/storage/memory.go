package storage

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrInjected возвращается MemorySink при заданных сбоях
var ErrInjected = errors.New("injected storage failure")

// MemorySink хранит содержимое в памяти. Используется в тестах и для пробных запусков.
type MemorySink struct {
	mu    sync.Mutex
	files map[string]*strings.Builder
	order []string

	// FailCreate заставляет Create вернуть ошибку
	FailCreate bool
	// FailAfter > 0 заставляет Append вернуть ошибку после FailAfter успешных записей
	FailAfter int
}

// NewMemorySink создает пустой приемник
func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string]*strings.Builder)}
}

// Create создает новый файл в памяти
func (s *MemorySink) Create(name string) (Writer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCreate {
		return nil, fmt.Errorf("failed to create %s: %w", name, ErrInjected)
	}
	if _, exists := s.files[name]; exists {
		return nil, fmt.Errorf("file %s already exists", name)
	}

	s.files[name] = &strings.Builder{}
	s.order = append(s.order, name)
	return &memoryWriter{sink: s, name: name}, nil
}

// Files возвращает имена созданных файлов в порядке создания
func (s *MemorySink) Files() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.order...)
}

// Content возвращает содержимое файла
func (s *MemorySink) Content(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[name]
	if !ok {
		return "", false
	}
	return b.String(), true
}

type memoryWriter struct {
	sink    *MemorySink
	name    string
	appends int
	closed  bool
}

func (w *memoryWriter) Append(text string) error {
	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()

	if w.closed {
		return fmt.Errorf("write to closed file %s", w.name)
	}
	if w.sink.FailAfter > 0 && w.appends >= w.sink.FailAfter {
		return fmt.Errorf("failed to write to %s: %w", w.name, ErrInjected)
	}
	w.sink.files[w.name].WriteString(text)
	w.appends++
	return nil
}

func (w *memoryWriter) Close() error {
	w.sink.mu.Lock()
	defer w.sink.mu.Unlock()
	w.closed = true
	return nil
}

func (w *memoryWriter) Name() string {
	return w.name
}
