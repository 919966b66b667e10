package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "landscape",
		Short: "A console catalog of music tracks",
		Long: `A console catalog of music tracks: filter, sort, edit and export
the current selection, import tracks from CSV, XML, audio files or YouTube.`,
		SilenceUsage: true,
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createAddCommand())
	rootCmd.AddCommand(app.createEditCommand())
	rootCmd.AddCommand(app.createRemoveCommand())
	rootCmd.AddCommand(app.createImportCommand())
	rootCmd.AddCommand(app.createFetchCommand(ctx))
	rootCmd.AddCommand(app.createExportCommand())
	rootCmd.AddCommand(app.createBackupCommand(ctx))
	rootCmd.AddCommand(app.createMenuCommand())
	rootCmd.AddCommand(app.createTUICommand())

	return rootCmd
}
