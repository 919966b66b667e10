// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath - путь к файлу конфигурации по умолчанию
	DefaultConfigPath = "~/.landscape"
	// DefaultDataFile - путь к файлу каталога по умолчанию
	DefaultDataFile = "~/.landscape-library.yaml"
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DataFile      string `yaml:"data_file" validate:"required"`
	DefaultFormat string `yaml:"default_format" validate:"oneof=long short csv xml"`
	DefaultSort   string `yaml:"default_sort" validate:"oneof=title duration writer performer year"`
	LogLevel      string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile       string `yaml:"log_file,omitempty"`

	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint,omitempty" validate:"omitempty,url"`
}

// Переменные окружения, переопределяющие значения из файла
var envOverrides = map[string]func(c *Config) *string{
	"LANDSCAPE_DATA_FILE": func(c *Config) *string { return &c.DataFile },
	"LANDSCAPE_LOG_LEVEL": func(c *Config) *string { return &c.LogLevel },
	"AWS_BUCKET_NAME":     func(c *Config) *string { return &c.AwsBucketName },
	"AWS_ACCESS_KEY":      func(c *Config) *string { return &c.AwsAccessKey },
	"AWS_SECRET_KEY":      func(c *Config) *string { return &c.AwsSecretKey },
	"AWS_REGION":          func(c *Config) *string { return &c.AwsRegion },
	"AWS_ENDPOINT":        func(c *Config) *string { return &c.AwsEndpoint },
}

var validate = validator.New()

// DefaultConfig возвращает конфигурацию со значениями по умолчанию
func DefaultConfig() *Config {
	return &Config{
		DataFile:      DefaultDataFile,
		DefaultFormat: "long",
		DefaultSort:   "title",
		LogLevel:      "warn",
	}
}

// LoadEnv подгружает переменные из .env файлов, если они есть.
// Уже заданные переменные окружения не перезаписываются.
func LoadEnv(files ...string) error {
	err := godotenv.Load(files...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используется конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	path := strings.Replace(filePath, "~", home, 1)

	config := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	applyEnv(config)
	fillDefaults(config)

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("неверная конфигурация %s: %w", path, err)
	}

	// Раскрываем тильду в путях
	config.DataFile = strings.Replace(config.DataFile, "~", home, 1)
	config.LogFile = strings.Replace(config.LogFile, "~", home, 1)

	return config, nil
}

func applyEnv(config *Config) {
	for name, field := range envOverrides {
		if value, ok := os.LookupEnv(name); ok && value != "" {
			*field(config) = value
		}
	}
}

// Устанавливаем значения по умолчанию, если они не заданы
func fillDefaults(config *Config) {
	defaults := DefaultConfig()
	if config.DataFile == "" {
		config.DataFile = defaults.DataFile
	}
	if config.DefaultFormat == "" {
		config.DefaultFormat = defaults.DefaultFormat
	}
	if config.DefaultSort == "" {
		config.DefaultSort = defaults.DefaultSort
	}
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
}

// S3Enabled сообщает, заданы ли параметры для резервного копирования в S3
func (c *Config) S3Enabled() bool {
	return c.AwsBucketName != "" && c.AwsAccessKey != "" && c.AwsSecretKey != ""
}
