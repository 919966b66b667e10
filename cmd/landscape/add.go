package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/data"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand() *cobra.Command {
	var (
		fields      trackFields
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a track to the catalog",
		Long:  `Add a track described by flags, or fill it in an interactive form with --interactive.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := data.NewTrack()

			if interactive {
				if err := runTrackForm(t); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Println("🚫 Добавление отменено")
						return nil
					}
					return fmt.Errorf("ошибка ввода трека: %w", err)
				}
			} else {
				if !cmd.Flags().Changed("title") {
					return errors.New("укажите --title или используйте --interactive")
				}
				if _, err := fields.apply(cmd, t); err != nil {
					return err
				}
			}

			return app.addTrack(t)
		},
	}

	fields.bind(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "fill the track in an interactive form")

	return cmd
}

func (app *Application) addTrack(t *data.Track) error {
	if app.Container.Contains(t) {
		fmt.Printf("⚠️  Такой трек уже есть в каталоге: %s\n", t)
		return nil
	}
	app.Container.Add(t)

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("✅ Трек добавлен: %s\n", t)
	return nil
}
