package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	var (
		selection  selectionOptions
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing and editing the selected tracks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := app.formatter(formatName)
			if err != nil {
				return err
			}
			ordering, err := app.applySelection(&selection)
			if err != nil {
				return err
			}

			// Создаем экземпляр TUI приложения
			tuiApp := tui.NewApp(app.Container, f, ordering, !selection.desc, app.SaveData)
			if err := tuiApp.Run(); err != nil {
				return fmt.Errorf("ошибка TUI: %w", err)
			}
			return nil
		},
	}

	selection.bind(cmd)
	cmd.Flags().StringVar(&formatName, "format", "", "output format: long, short, csv or xml")

	return cmd
}
