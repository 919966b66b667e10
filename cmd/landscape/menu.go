package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/menu"
)

// createMenuCommand создает команду menu с привязкой к экземпляру приложения
func (app *Application) createMenuCommand() *cobra.Command {
	var (
		selection  selectionOptions
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Start an interactive console session",
		Long: `Start a numbered-menu console session over the catalog. Changes are
saved to the catalog file when the session ends.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := app.formatter(formatName)
			if err != nil {
				return err
			}
			ordering, err := app.applySelection(&selection)
			if err != nil {
				return err
			}

			in, out := cmd.InOrStdin(), cmd.OutOrStdout()
			session := menu.New(app.Container, in, out, menu.Options{
				Formatter:  f,
				Ordering:   ordering,
				Descending: selection.desc,
				Echo:       !isTerminal(in),
				Styled:     isTerminal(out),
			})
			session.Run()

			if err := app.SaveData(); err != nil {
				return fmt.Errorf("ошибка сохранения данных: %w", err)
			}
			return nil
		},
	}

	selection.bind(cmd)
	cmd.Flags().StringVar(&formatName, "format", "", "initial output format: long, short, csv or xml")

	return cmd
}
