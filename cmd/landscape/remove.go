package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand() *cobra.Command {
	var (
		selection selectionOptions
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the selected tracks from the catalog",
		Long:  `Remove every track that passes the given filters. Use --all to empty the catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if len(selection.filters) == 0 && !all {
				return errors.New("укажите хотя бы один --filter или --all")
			}
			if all {
				selection.filters = nil
			}
			if _, err := app.applySelection(&selection); err != nil {
				return err
			}

			removed := app.Container.Remove()
			if removed == 0 {
				fmt.Println("🔍 Ни один трек не прошел фильтры, удалять нечего")
				return nil
			}

			if err := app.SaveData(); err != nil {
				return fmt.Errorf("ошибка сохранения данных: %w", err)
			}

			fmt.Printf("🗑️  Удалено треков: %d, осталось: %d\n", removed, app.Container.Size())
			return nil
		},
	}

	selection.bind(cmd)
	cmd.Flags().BoolVar(&all, "all", false, "remove all tracks")

	return cmd
}
