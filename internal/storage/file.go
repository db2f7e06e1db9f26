package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultDir каталог для выходных файлов по умолчанию
const DefaultDir = "files"

// FileSink создает текстовые файлы в каталоге
type FileSink struct {
	dir    string
	logger *zap.Logger
}

// NewFileSink создает приемник, пишущий в dir
func NewFileSink(dir string, logger *zap.Logger) *FileSink {
	if dir == "" {
		dir = DefaultDir
	}
	return &FileSink{
		dir:    dir,
		logger: logger,
	}
}

// Dir возвращает каталог приемника
func (s *FileSink) Dir() string {
	return s.dir
}

// Create создает каталог при необходимости и новый файл в нем.
// Существующий файл с тем же именем не перезаписывается.
func (s *FileSink) Create(name string) (Writer, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}

	s.logger.Debug("Output file created", zap.String("path", path))
	return &fileWriter{file: file, path: path}, nil
}

// fileWriter пишет без буферизации: после ошибки в файле остается все записанное ранее
type fileWriter struct {
	file *os.File
	path string
}

func (w *fileWriter) Append(text string) error {
	if _, err := w.file.WriteString(text); err != nil {
		return fmt.Errorf("failed to write to %s: %w", w.path, err)
	}
	return nil
}

func (w *fileWriter) Close() error {
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", w.path, err)
	}
	return nil
}

func (w *fileWriter) Name() string {
	return w.path
}
