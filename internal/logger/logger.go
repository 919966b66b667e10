// Package logger содержит настройку журналирования приложения
package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	globalLogger *zap.Logger
	mu           sync.RWMutex
)

// LogLevel определяет уровень журналирования
type LogLevel string

const (
	DebugLevel LogLevel = "debug"
	InfoLevel  LogLevel = "info"
	WarnLevel  LogLevel = "warn"
	ErrorLevel LogLevel = "error"
)

// Config содержит настройки журналирования
type Config struct {
	Level      LogLevel
	OutputPath string // Файл журнала, пустая строка - только консоль
	MaxSize    int    // Мегабайты до ротации
	MaxBackups int
	MaxAge     int // Дни
	Compress   bool
}

// parseLevel переводит уровень из конфигурации в уровень zap
func parseLevel(level LogLevel) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// InitLogger инициализирует глобальный журнал.
// Консольный вывод идет в stderr, чтобы не смешиваться с таблицами треков.
func InitLogger(config Config) error {
	level := parseLevel(config.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		level,
	)

	core := consoleCore
	if config.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputPath), 0755); err != nil {
			return err
		}

		// Ротация файла журнала через lumberjack
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.OutputPath,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})

		fileEncoderConfig := encoderConfig
		fileEncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		fileEncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		fileCore := zapcore.NewCore(
			zapcore.NewJSONEncoder(fileEncoderConfig),
			fileWriter,
			level,
		)
		core = zapcore.NewTee(consoleCore, fileCore)
	}

	SetLogger(zap.New(core))
	return nil
}

// SetLogger заменяет глобальный журнал (используется в тестах)
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = l
}

// L возвращает текущий журнал или заглушку, если журнал не инициализирован
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Debug выводит сообщение уровня debug
func Debug(msg string, fields ...zap.Field) {
	L().Debug(msg, fields...)
}

// Info выводит сообщение уровня info
func Info(msg string, fields ...zap.Field) {
	L().Info(msg, fields...)
}

// Warn выводит предупреждение
func Warn(msg string, fields ...zap.Field) {
	L().Warn(msg, fields...)
}

// Error выводит сообщение об ошибке
func Error(msg string, fields ...zap.Field) {
	L().Error(msg, fields...)
}

// Sync сбрасывает буферы журнала
func Sync() {
	_ = L().Sync()
}
