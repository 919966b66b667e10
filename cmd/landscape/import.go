package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/fileio"
	"github.com/hazadus/go-landscape/internal/logger"
	"github.com/hazadus/go-landscape/internal/metadata"
)

// createImportCommand создает команду import с привязкой к экземпляру приложения
func (app *Application) createImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file...]",
		Short: "Import tracks from CSV, XML or audio files",
		Long: `Import tracks from .csv and .xml files, or create tracks from the tags
of audio files (.mp3, .m4a, .flac, .ogg). Duplicates and malformed records are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			imported, skipped := 0, 0
			for _, path := range args {
				added, bad, err := app.importFile(path)
				if err != nil {
					fmt.Printf("❌ %s: %v\n", path, err)
					continue
				}
				imported += added
				skipped += bad
			}

			if imported > 0 {
				if err := app.SaveData(); err != nil {
					return fmt.Errorf("ошибка сохранения данных: %w", err)
				}
			}

			fmt.Printf("📥 Импортировано треков: %d\n", imported)
			if skipped > 0 {
				fmt.Printf("⚠️  Пропущено некорректных записей: %d\n", skipped)
			}
			return nil
		},
	}
}

// trackSource - потоковый читатель треков
type trackSource interface {
	Next() (*data.Track, bool)
	Skipped() int
}

// importFile добавляет треки из файла и возвращает число добавленных
// и пропущенных записей
func (app *Application) importFile(path string) (int, int, error) {
	ext := strings.ToLower(filepath.Ext(path))

	if metadata.IsSupported(path) {
		t, err := metadata.NewExtractor().TrackFromFile(path)
		if err != nil {
			return 0, 0, err
		}
		if app.Container.Contains(t) {
			fmt.Printf("⚠️  Такой трек уже есть в каталоге: %s\n", t)
			return 0, 0, nil
		}
		app.Container.Add(t)
		return 1, 0, nil
	}

	if ext != ".csv" && ext != ".xml" {
		return 0, 0, fmt.Errorf("неподдерживаемый формат файла: %s", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	var src trackSource
	if ext == ".csv" {
		src = fileio.NewCSVReader(f)
	} else {
		src = fileio.NewXMLReader(f)
	}

	added := 0
	for {
		t, ok := src.Next()
		if !ok {
			break
		}
		if app.Container.Add(t) {
			added++
		}
	}

	logger.Info("импорт завершен",
		zap.String("path", path),
		zap.Int("added", added),
		zap.Int("skipped", src.Skipped()))

	return added, src.Skipped(), nil
}
