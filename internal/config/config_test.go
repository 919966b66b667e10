package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

// writeConfig сохраняет конфигурацию во временный файл и возвращает путь
func writeConfig(t *testing.T, value any) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	data, err := yaml.Marshal(value)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}
	return configPath
}

// clearEnv сбрасывает переменные, которые могут переопределить конфигурацию
func clearEnv(t *testing.T) {
	t.Helper()
	for name := range envOverrides {
		t.Setenv(name, "")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)

	testConfig := Config{
		DataFile:      "/tmp/library.yaml",
		DefaultFormat: "csv",
		DefaultSort:   "year",
		LogLevel:      "debug",
		AwsBucketName: "test-bucket",
		AwsAccessKey:  "test-access-key",
		AwsSecretKey:  "test-secret-key",
		AwsRegion:     "us-east-1",
		AwsEndpoint:   "https://s3.amazonaws.com",
	}

	loadedConfig, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if *loadedConfig != testConfig {
		t.Errorf("Ожидалась конфигурация %+v, получено: %+v", testConfig, *loadedConfig)
	}
	if !loadedConfig.S3Enabled() {
		t.Error("Ожидалось, что S3 настроен")
	}
}

func TestDefaultConfig(t *testing.T) {
	clearEnv(t)

	// Минимальная конфигурация без настроек каталога
	minimalConfig := map[string]string{
		"aws_bucket_name": "test-bucket",
		"aws_access_key":  "test-key",
	}

	loadedConfig, err := LoadConfig(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	home, _ := os.UserHomeDir()
	expectedDataFile := filepath.Join(home, ".landscape-library.yaml")
	if loadedConfig.DataFile != expectedDataFile {
		t.Errorf("Ожидался DataFile по умолчанию: %s, получено: %s", expectedDataFile, loadedConfig.DataFile)
	}
	if loadedConfig.DefaultFormat != "long" {
		t.Errorf("Ожидался DefaultFormat: long, получено: %s", loadedConfig.DefaultFormat)
	}
	if loadedConfig.DefaultSort != "title" {
		t.Errorf("Ожидался DefaultSort: title, получено: %s", loadedConfig.DefaultSort)
	}
	if loadedConfig.LogLevel != "warn" {
		t.Errorf("Ожидался LogLevel: warn, получено: %s", loadedConfig.LogLevel)
	}
	if loadedConfig.AwsBucketName != "test-bucket" {
		t.Errorf("Ожидался AwsBucketName: test-bucket, получено: %s", loadedConfig.AwsBucketName)
	}
	if loadedConfig.S3Enabled() {
		t.Error("S3 не должен считаться настроенным без секретного ключа")
	}
}

func TestEnvVarOverride(t *testing.T) {
	clearEnv(t)

	baseConfig := Config{
		DataFile:      "/tmp/from-file.yaml",
		AwsBucketName: "default-bucket",
		AwsAccessKey:  "default-key",
		AwsRegion:     "us-west-1",
	}
	configPath := writeConfig(t, baseConfig)

	t.Setenv("AWS_BUCKET_NAME", "env-bucket")
	t.Setenv("AWS_ACCESS_KEY", "env-key")
	t.Setenv("LANDSCAPE_DATA_FILE", "/tmp/from-env.yaml")
	t.Setenv("LANDSCAPE_LOG_LEVEL", "INFO")

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.AwsBucketName != "env-bucket" {
		t.Errorf("Ожидался AwsBucketName из окружения: env-bucket, получено: %s", loadedConfig.AwsBucketName)
	}
	if loadedConfig.AwsAccessKey != "env-key" {
		t.Errorf("Ожидался AwsAccessKey из окружения: env-key, получено: %s", loadedConfig.AwsAccessKey)
	}
	if loadedConfig.DataFile != "/tmp/from-env.yaml" {
		t.Errorf("Ожидался DataFile из окружения, получено: %s", loadedConfig.DataFile)
	}
	if loadedConfig.LogLevel != "info" {
		t.Errorf("Ожидался LogLevel: info, получено: %s", loadedConfig.LogLevel)
	}
	// Незаданные переменные не затирают значения из файла
	if loadedConfig.AwsRegion != "us-west-1" {
		t.Errorf("Ожидался AwsRegion из файла: us-west-1, получено: %s", loadedConfig.AwsRegion)
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	clearEnv(t)

	loadedConfig, err := LoadConfig("/non/existent/config.yaml")
	if err != nil {
		t.Fatalf("Отсутствующий файл не должен приводить к ошибке: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(loadedConfig.DataFile, home) {
		t.Errorf("Ожидался DataFile в домашнем каталоге, получено: %s", loadedConfig.DataFile)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "invalid_config.yaml")
	invalidYAML := `aws_bucket_name: "test-bucket"
aws_access_key: "test-key"
invalid_field: [unclosed array
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}
	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		config map[string]string
	}{
		{"неизвестный формат", map[string]string{"default_format": "json"}},
		{"неизвестная сортировка", map[string]string{"default_sort": "by mood"}},
		{"неизвестный уровень журнала", map[string]string{"log_level": "trace"}},
		{"неверный адрес S3", map[string]string{"aws_endpoint": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.config))
			if err == nil {
				t.Fatal("Ожидалась ошибка валидации")
			}
			if !strings.Contains(err.Error(), "неверная конфигурация") {
				t.Errorf("Неожиданное сообщение об ошибке: %v", err)
			}
		})
	}
}

func TestLoadConfigWithTilde(t *testing.T) {
	clearEnv(t)

	testConfig := Config{
		DataFile: "~/music/library.yaml",
		LogFile:  "~/logs/landscape.log",
	}

	loadedConfig, err := LoadConfig(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	home, _ := os.UserHomeDir()
	expectedDataFile := filepath.Join(home, "music", "library.yaml")
	if loadedConfig.DataFile != expectedDataFile {
		t.Errorf("Ожидался DataFile с раскрытой тильдой: %s, получено: %s", expectedDataFile, loadedConfig.DataFile)
	}
	expectedLogFile := filepath.Join(home, "logs", "landscape.log")
	if loadedConfig.LogFile != expectedLogFile {
		t.Errorf("Ожидался LogFile с раскрытой тильдой: %s, получено: %s", expectedLogFile, loadedConfig.LogFile)
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("LANDSCAPE_DATA_FILE")

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte("LANDSCAPE_DATA_FILE=/tmp/dotenv.yaml\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи .env: %v", err)
	}

	if err := LoadEnv(envPath); err != nil {
		t.Fatalf("Ошибка загрузки .env: %v", err)
	}
	if got := os.Getenv("LANDSCAPE_DATA_FILE"); got != "/tmp/dotenv.yaml" {
		t.Errorf("Ожидалось значение из .env, получено: %s", got)
	}

	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Отсутствующий .env не должен приводить к ошибке: %v", err)
	}
}
