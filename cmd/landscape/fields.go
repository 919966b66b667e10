package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/data"
)

// trackFields - флаги с полями трека для add и edit
type trackFields struct {
	title     string
	writer    string
	performer string
	duration  int
	year      int
}

func (f *trackFields) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "track title")
	cmd.Flags().StringVar(&f.writer, "writer", "", "writer name")
	cmd.Flags().StringVar(&f.performer, "performer", "", "performer name")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "duration in seconds")
	cmd.Flags().IntVar(&f.year, "year", data.MinYear, fmt.Sprintf("release year (%d-%d)", data.MinYear, data.MaxYear))
}

// apply переносит в трек только явно заданные флаги.
// Возвращает число измененных полей.
func (f *trackFields) apply(cmd *cobra.Command, t *data.Track) (int, error) {
	changed := 0
	flags := cmd.Flags()

	if flags.Changed("title") {
		t.SetTitle(f.title)
		changed++
	}
	if flags.Changed("writer") {
		a := t.Writer()
		if !a.SetName(f.writer) {
			return changed, fmt.Errorf("недопустимое имя автора: %q", f.writer)
		}
		t.SetWriter(a)
		changed++
	}
	if flags.Changed("performer") {
		a := t.Performer()
		if !a.SetName(f.performer) {
			return changed, fmt.Errorf("недопустимое имя исполнителя: %q", f.performer)
		}
		t.SetPerformer(a)
		changed++
	}
	if flags.Changed("duration") {
		if !t.SetDuration(f.duration) {
			return changed, fmt.Errorf("недопустимая длительность: %d", f.duration)
		}
		changed++
	}
	if flags.Changed("year") {
		if !t.SetYear(f.year) {
			return changed, fmt.Errorf("год должен быть в диапазоне %d-%d: %d", data.MinYear, data.MaxYear, f.year)
		}
		changed++
	}
	return changed, nil
}

// runTrackForm заполняет трек через интерактивную форму
func runTrackForm(t *data.Track) error {
	title := ""
	if t.HasTitle() {
		title = t.Title()
	}
	writer := t.Writer().Name()
	performer := t.Performer().Name()
	duration := strconv.Itoa(t.Duration())
	year := strconv.Itoa(t.Year())

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title),
			huh.NewInput().Title("Writer").Value(&writer).Validate(notBlank),
			huh.NewInput().Title("Performer").Value(&performer).Validate(notBlank),
			huh.NewInput().Title("Duration (seconds)").Value(&duration).Validate(validDuration),
			huh.NewInput().Title(fmt.Sprintf("Year (%d-%d)", data.MinYear, data.MaxYear)).Value(&year).Validate(validYear),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	// Значения уже проверены валидаторами формы
	seconds, _ := strconv.Atoi(strings.TrimSpace(duration))
	y, _ := strconv.Atoi(strings.TrimSpace(year))

	t.SetTitle(title)
	t.SetWriter(data.NewArtist(writer))
	t.SetPerformer(data.NewArtist(performer))
	t.SetDuration(seconds)
	t.SetYear(y)
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("значение не может быть пустым")
	}
	return nil
}

func validDuration(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !data.ValidDuration(n) {
		return fmt.Errorf("нужно неотрицательное целое число секунд")
	}
	return nil
}

func validYear(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !data.ValidYear(n) {
		return fmt.Errorf("год должен быть в диапазоне %d-%d", data.MinYear, data.MaxYear)
	}
	return nil
}
