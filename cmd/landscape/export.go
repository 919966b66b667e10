package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/fileio"
	"github.com/hazadus/go-landscape/internal/format"
)

// createExportCommand создает команду export с привязкой к экземпляру приложения
func (app *Application) createExportCommand() *cobra.Command {
	var selection selectionOptions

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the selected tracks to a CSV or XML file",
		Long: `Write the selected tracks to a .csv or .xml file. The XML document is
accompanied by TrackContainer.dtd written next to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if _, err := app.applySelection(&selection); err != nil {
				return err
			}

			written, err := exportTracks(args[0], app.Container.Selection())
			if err != nil {
				return err
			}

			fmt.Printf("💾 Записано треков: %d в %s\n", written, args[0])
			return nil
		},
	}

	selection.bind(cmd)
	return cmd
}

// exportTracks пишет треки в файл, формат выбирается по расширению
func exportTracks(path string, tracks []*data.Track) (int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xml" {
		return 0, fmt.Errorf("неподдерживаемый формат файла: %s", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("ошибка создания файла: %w", err)
	}
	defer f.Close()

	if ext == ".csv" {
		w, err := fileio.NewWriter(f, format.CSV{})
		if err != nil {
			return 0, err
		}
		return w.PutAll(tracks), nil
	}

	w, err := fileio.NewXMLWriter(f)
	if err != nil {
		return 0, err
	}
	written, err := w.WriteAll(tracks)
	if err != nil {
		return 0, err
	}

	dtd, err := os.Create(filepath.Join(filepath.Dir(path), fileio.DTDFileName))
	if err != nil {
		return written, fmt.Errorf("ошибка создания DTD: %w", err)
	}
	defer dtd.Close()
	if err := fileio.WriteDTD(dtd); err != nil {
		return written, fmt.Errorf("ошибка записи DTD: %w", err)
	}

	return written, nil
}
