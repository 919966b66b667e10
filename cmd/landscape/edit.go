package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/track"
)

// createEditCommand создает команду edit с привязкой к экземпляру приложения
func (app *Application) createEditCommand() *cobra.Command {
	var (
		selection   selectionOptions
		fields      trackFields
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "edit [index]",
		Short: "Edit a track of the selection",
		Long: `Edit the track at the given index of the current selection.
The index refers to the order printed by 'list' with the same filters and sorting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.applySelection(&selection); err != nil {
				return err
			}

			tracks := app.Container.Selection()
			index, err := strconv.Atoi(args[0])
			if err != nil || index < 0 || index >= len(tracks) {
				fmt.Printf("❌ Ошибка: неверный индекс %s, в выборке %d треков\n", args[0], len(tracks))
				return nil
			}

			target := tracks[index]
			draft := target.Clone()

			if interactive {
				if err := runTrackForm(draft); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Println("🚫 Редактирование отменено")
						return nil
					}
					return fmt.Errorf("ошибка ввода трека: %w", err)
				}
			} else {
				changed, err := fields.apply(cmd, draft)
				if err != nil {
					return err
				}
				if changed == 0 {
					fmt.Println("ℹ️  Не задано ни одного поля, трек не изменен")
					return nil
				}
			}

			return app.editTrack(target, draft)
		},
	}

	selection.bind(cmd)
	fields.bind(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "edit the track in an interactive form")

	return cmd
}

func (app *Application) editTrack(target, draft *data.Track) error {
	err := app.Container.Edit(target, func(t *data.Track) { *t = *draft })
	if errors.Is(err, track.ErrDuplicate) {
		fmt.Printf("⚠️  Такой трек уже есть в каталоге, изменения отменены: %s\n", draft)
		return nil
	}
	if err != nil {
		return err
	}

	if err := app.SaveData(); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	fmt.Printf("✏️  Трек изменен: %s\n", target)
	return nil
}
