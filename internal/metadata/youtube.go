package metadata

import (
	"context"
	"fmt"
	"regexp"

	"github.com/kkdai/youtube/v2"

	"github.com/hazadus/go-landscape/internal/data"
)

// VideoClient - часть клиента YouTube, нужная для получения сведений о видео
type VideoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// Fetcher создает записи каталога по видео YouTube
type Fetcher struct {
	client VideoClient
}

// NewFetcher создает Fetcher. Если client равен nil, используется youtube.Client.
func NewFetcher(client VideoClient) *Fetcher {
	if client == nil {
		client = &youtube.Client{}
	}
	return &Fetcher{client: client}
}

// Fetch получает сведения о видео и строит по ним трек.
// Название вида "Artist - Title" разбирается на исполнителя и название,
// иначе исполнителем считается автор канала.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*data.Track, error) {
	videoID, err := extractVideoID(url)
	if err != nil {
		return nil, err
	}

	video, err := f.client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о видео: %w", err)
	}

	md := TrackMetadata{Title: video.Title, Artist: video.Author}
	if artist, title, ok := splitArtistTitle(video.Title); ok {
		md.Artist = artist
		md.Title = title
	}
	if !video.PublishDate.IsZero() {
		md.Year = video.PublishDate.Year()
	}

	return ToTrack(md, video.Duration), nil
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/v/)([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// extractVideoID извлекает ID видео из различных форматов YouTube URL
func extractVideoID(url string) (string, error) {
	for _, re := range videoIDPatterns {
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	// Если это просто ID видео (11 символов)
	if bareVideoID.MatchString(url) {
		return url, nil
	}

	return "", fmt.Errorf("не удалось извлечь ID видео из URL: %s", url)
}
