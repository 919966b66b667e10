// Package metadata строит записи каталога по тегам аудиофайлов и видео YouTube
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-landscape/internal/data"
)

// SupportedExtensions - расширения файлов, из которых читаются теги
var SupportedExtensions = []string{".mp3", ".m4a", ".flac", ".ogg"}

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Title    string
	Artist   string
	Composer string
	Year     int
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// IsSupported сообщает, можно ли прочитать теги из файла с таким расширением
func IsSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// ExtractFromReader извлекает метаданные из io.Reader
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return e.getDefaultMetadata(source)
	}

	result := TrackMetadata{
		Title:    metadata.Title(),
		Artist:   metadata.Artist(),
		Composer: metadata.Composer(),
		Year:     metadata.Year(),
	}
	if result.Artist == "" {
		result.Artist = metadata.AlbumArtist()
	}
	if strings.TrimSpace(result.Title) == "" {
		result.Title = e.getDefaultMetadata(source).Title
	}
	return result
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	// Вычисляем длительность
	return format.SampleRate.D(streamer.Len()), nil
}

// TrackFromFile создает трек по тегам файла.
// Длительность определяется только для MP3, для остальных форматов она 0.
func (e *Extractor) TrackFromFile(filePath string) (*data.Track, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}
	if !IsSupported(filePath) {
		return nil, fmt.Errorf("неподдерживаемый формат файла: %s", filepath.Ext(filePath))
	}

	var duration time.Duration
	if strings.EqualFold(filepath.Ext(filePath), ".mp3") {
		d, err := e.GetDuration(filePath)
		if err != nil {
			return nil, fmt.Errorf("ошибка получения длительности: %w", err)
		}
		duration = d
	}

	return ToTrack(e.ExtractFromFile(filePath), duration), nil
}

// ToTrack переносит метаданные в запись каталога.
// Недопустимые значения пропускаются, поле остается по умолчанию.
func ToTrack(md TrackMetadata, duration time.Duration) *data.Track {
	t := data.NewTrack()
	if strings.TrimSpace(md.Title) != "" {
		t.SetTitle(md.Title)
	}
	t.SetPerformer(data.NewArtist(md.Artist))
	t.SetWriter(data.NewArtist(md.Composer))
	t.SetDuration(int(duration.Round(time.Second) / time.Second))
	t.SetYear(md.Year)
	return t
}

// getDefaultMetadata возвращает метаданные по умолчанию на основе имени файла
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	fileName := filepath.Base(source)
	nameWithoutExt := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	artist, title, ok := splitArtistTitle(nameWithoutExt)
	if ok {
		return TrackMetadata{Artist: artist, Title: title}
	}

	// Если не удалось разобрать, используем имя файла как название
	return TrackMetadata{
		Artist: data.UnknownArtist,
		Title:  nameWithoutExt,
	}
}

// splitArtistTitle разбирает строку вида "Artist - Title"
func splitArtistTitle(s string) (artist, title string, ok bool) {
	parts := strings.Split(s, " - ")
	if len(parts) < 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(strings.Join(parts[1:], " - ")), true
}
