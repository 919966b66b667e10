package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestHelpersWithoutInit(t *testing.T) {
	SetLogger(nil)

	// Вызовы до инициализации не должны паниковать
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
	Sync()
}

func TestWarnIsRecorded(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Info("не попадет в журнал")
	Warn("неверный шаблон", zap.String("pattern", "abc"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Ожидалась 1 запись, получено %d", len(entries))
	}
	if entries[0].Message != "неверный шаблон" {
		t.Errorf("Неожиданное сообщение: %s", entries[0].Message)
	}
	if entries[0].ContextMap()["pattern"] != "abc" {
		t.Errorf("Ожидалось поле pattern=abc, получено %v", entries[0].ContextMap())
	}
}

func TestInitLoggerWithFile(t *testing.T) {
	defer SetLogger(nil)

	path := filepath.Join(t.TempDir(), "logs", "landscape.log")
	err := InitLogger(Config{Level: InfoLevel, OutputPath: path, MaxSize: 1})
	if err != nil {
		t.Fatalf("Ошибка инициализации журнала: %v", err)
	}

	Info("запись в файл")
	Sync()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Ошибка чтения файла журнала: %v", err)
	}
	if !strings.Contains(string(content), "запись в файл") {
		t.Errorf("Файл журнала не содержит сообщения: %s", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"unknown", zapcore.WarnLevel},
	}

	for _, test := range tests {
		if result := parseLevel(test.level); result != test.expected {
			t.Errorf("parseLevel(%s) = %v; expected %v", test.level, result, test.expected)
		}
	}
}
