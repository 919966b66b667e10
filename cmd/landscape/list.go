package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var (
		selection  selectionOptions
		formatName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the selected tracks",
		Long:  `Display the tracks of the catalog that pass the given filters, sorted and formatted.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			f, err := app.formatter(formatName)
			if err != nil {
				return err
			}
			if _, err := app.applySelection(&selection); err != nil {
				return err
			}
			app.listTracks(f)
			return nil
		},
	}

	selection.bind(cmd)
	cmd.Flags().StringVar(&formatName, "format", "", "output format: long, short, csv or xml")

	return cmd
}

func (app *Application) listTracks(f format.Formatter) {
	if app.Container.Size() == 0 {
		fmt.Println("📚 Каталог пуст. Добавьте треки с помощью команды 'add' или 'import'.")
		return
	}

	selection := app.Container.Selection()
	if len(selection) == 0 {
		fmt.Println("🔍 Выборка пуста: ни один трек не прошел фильтры.")
		return
	}

	fmt.Println(f.Header())
	if sep := f.TopSeparator(); sep != "" {
		fmt.Println(sep)
	}
	for _, t := range selection {
		fmt.Println(f.Format(t))
	}

	fmt.Println()
	fmt.Printf("📚 %d из %d записей выбрано, общая длительность %s\n",
		len(selection), app.Container.Size(),
		utils.FormatDurationFromSeconds(utils.TotalDuration(selection)))
}
