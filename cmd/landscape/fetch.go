package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/metadata"
)

// createFetchCommand создает команду fetch с привязкой к экземпляру приложения
func (app *Application) createFetchCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch [YouTube URL or video ID]",
		Short: "Add a track from YouTube video metadata",
		Long: `Create a track from the title, author, duration and publish year of a YouTube video.
A title like "Artist - Title" is split into performer and title.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Создаем контекст с таймаутом для запроса (1 минута)
			fetchCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			t, err := app.fetchTrack(fetchCtx, args[0])
			if err != nil {
				return err
			}
			return app.addTrack(t)
		},
	}
}

func (app *Application) fetchTrack(ctx context.Context, url string) (*data.Track, error) {
	fetcher := metadata.NewFetcher(app.YouTube)
	fmt.Printf("🌐 Получаем сведения о видео: %s\n", url)

	var t *data.Track
	fetch := func(ctx context.Context) error {
		var err error
		t, err = fetcher.Fetch(ctx, url)
		return err
	}

	// Спиннер нужен только в терминале
	var err error
	if isTerminal(os.Stdout) {
		err = spinner.New().Title("Запрос к YouTube...").Context(ctx).ActionWithErr(fetch).Run()
	} else {
		err = fetch(ctx)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
