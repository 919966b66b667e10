package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/config"
	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/logger"
	"github.com/hazadus/go-landscape/internal/metadata"
	"github.com/hazadus/go-landscape/internal/track"
	"github.com/hazadus/go-landscape/internal/uploader"
)

// Application хранит состояние приложения: конфигурацию, файл каталога
// и контейнер треков, с которым работают команды
type Application struct {
	Config    *config.Config
	Data      *data.Library
	Container *track.Container

	// YouTube и Storage подменяются в тестах; nil - настоящие клиенты
	YouTube metadata.VideoClient
	Storage uploader.Storage
}

// NewApplication создает приложение и загружает каталог
func NewApplication(cfg *config.Config) (*Application, error) {
	app := &Application{
		Config:    cfg,
		Data:      data.NewLibrary(),
		Container: track.NewContainer(),
	}
	if err := app.LoadData(); err != nil {
		return nil, err
	}
	return app, nil
}

// LoadData читает каталог из файла и выбирает все его треки
func (app *Application) LoadData() error {
	if err := app.Data.LoadData(app.Config.DataFile); err != nil {
		return fmt.Errorf("ошибка загрузки каталога: %w", err)
	}
	app.Container = track.NewContainerWith(app.Data.Tracks)
	if dropped := len(app.Data.Tracks) - app.Container.Size(); dropped > 0 {
		logger.Warn("в каталоге есть повторяющиеся треки", zap.Int("dropped", dropped))
	}
	return nil
}

// SaveData сохраняет все треки контейнера в файл каталога
func (app *Application) SaveData() error {
	app.Data.Tracks = app.Container.Tracks()
	return app.Data.SaveData(app.Config.DataFile)
}

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Переменные из .env дополняют окружение
	if err := config.LoadEnv(); err != nil {
		log.Printf("Ошибка чтения .env: %v", err)
	}

	cfg, err := config.LoadConfig(config.DefaultConfigPath)
	if err != nil {
		log.Printf("Ошибка загрузки конфигурации: %v", err)
		return 1
	}

	if err := logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}); err != nil {
		log.Printf("Ошибка инициализации журнала: %v", err)
		return 1
	}
	defer logger.Sync()

	app, err := NewApplication(cfg)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		return 1
	}
	logger.Debug("каталог загружен",
		zap.String("path", cfg.DataFile),
		zap.Int("tracks", app.Container.Size()))

	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
