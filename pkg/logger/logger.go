// Package logger содержит настройку логгера.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config представляет настройки логгера
type Config struct {
	Level string
	// Format: json или console
	Format string
	// Output: stdout, file или both
	Output string
	// FilePath путь к файлу логов (пусто - по умолчанию)
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// New создает логгер по конфигурации
func New(config Config) (*zap.Logger, error) {
	// Настраиваем кодировщик
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if config.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	level := parseLevel(config.Level)

	var cores []zapcore.Core

	// Консольный вывод
	if config.Output == "" || config.Output == "stdout" || config.Output == "both" {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	// Файловый вывод с ротацией
	if config.Output == "file" || config.Output == "both" {
		logPath := config.FilePath
		if logPath == "" {
			logPath = defaultLogPath()
		}
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    orDefault(config.MaxSize, 100), // MB
			MaxBackups: orDefault(config.MaxBackups, 3),
			MaxAge:     orDefault(config.MaxAge, 28), // days
			Compress:   true,
		}), level))
	}

	if len(cores) == 0 {
		return nil, fmt.Errorf("unknown log output: %s", config.Output)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// parseLevel разбирает уровень логирования, по умолчанию info
func parseLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

// defaultLogPath получает путь к файлу логов из APP_DATA_DIR или использует logs/app.log
func defaultLogPath() string {
	if dataDir := os.Getenv("APP_DATA_DIR"); dataDir != "" {
		return filepath.Join(dataDir, "app.log")
	}
	return filepath.Join("logs", "app.log")
}

func orDefault(value, def int) int {
	if value <= 0 {
		return def
	}
	return value
}
