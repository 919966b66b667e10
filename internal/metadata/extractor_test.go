package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hazadus/go-landscape/internal/data"
)

func TestExtractMetadata(t *testing.T) {
	// Создаем временный тестовый файл
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "test.mp3")

	content := []byte("fake mp3 content for testing")
	err := os.WriteFile(testFilePath, content, 0644)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	extractor := NewExtractor()
	metadata := extractor.ExtractFromFile(testFilePath)

	// Проверяем, что метаданные извлечены (даже если файл не содержит реальных метаданных)
	if metadata.Title != "test" {
		t.Errorf("Ожидался Title: test, получено: %s", metadata.Title)
	}
	if metadata.Artist != data.UnknownArtist {
		t.Errorf("Ожидался Artist: %s, получено: %s", data.UnknownArtist, metadata.Artist)
	}
}

func TestExtractFromCorruptedFile(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "Unknown - Track.mp3")

	corruptedContent := []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}
	err := os.WriteFile(testFilePath, corruptedContent, 0644)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	extractor := NewExtractor()
	metadata := extractor.ExtractFromFile(testFilePath)

	// Проверяем, что метаданные извлечены из имени файла при ошибке
	if metadata.Artist != "Unknown" {
		t.Errorf("Ожидался Artist: Unknown, получено: %s", metadata.Artist)
	}
	if metadata.Title != "Track" {
		t.Errorf("Ожидался Title: Track, получено: %s", metadata.Title)
	}
}

func TestGetDefaultMetadata(t *testing.T) {
	extractor := NewExtractor()

	tests := []struct {
		source string
		artist string
		title  string
	}{
		{"/path/to/Artist - Title.mp3", "Artist", "Title"},
		{"/path/to/SimpleTrack.mp3", data.UnknownArtist, "SimpleTrack"},
		{"/path/to/Artist - Album - Title.mp3", "Artist", "Album - Title"},
	}

	for _, tt := range tests {
		metadata := extractor.ExtractFromFile(tt.source)
		if metadata.Artist != tt.artist {
			t.Errorf("%s: ожидался Artist: %s, получено: %s", tt.source, tt.artist, metadata.Artist)
		}
		if metadata.Title != tt.title {
			t.Errorf("%s: ожидался Title: %s, получено: %s", tt.source, tt.title, metadata.Title)
		}
	}
}

func TestExtractFromReader(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "Test - Song.mp3")

	err := os.WriteFile(testFilePath, []byte("test content"), 0644)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	file, err := os.Open(testFilePath)
	if err != nil {
		t.Fatalf("Ошибка открытия файла: %v", err)
	}
	defer file.Close()

	extractor := NewExtractor()
	metadata := extractor.ExtractFromReader(file, testFilePath)

	if metadata.Artist != "Test" {
		t.Errorf("Ожидался Artist: Test, получено: %s", metadata.Artist)
	}
	if metadata.Title != "Song" {
		t.Errorf("Ожидался Title: Song, получено: %s", metadata.Title)
	}
}

func TestIsSupported(t *testing.T) {
	tests := map[string]bool{
		"song.mp3":  true,
		"SONG.MP3":  true,
		"song.flac": true,
		"song.m4a":  true,
		"song.ogg":  true,
		"song.csv":  false,
		"song":      false,
	}

	for path, expected := range tests {
		if got := IsSupported(path); got != expected {
			t.Errorf("IsSupported(%q) = %v, ожидалось %v", path, got, expected)
		}
	}
}

func TestTrackFromFile(t *testing.T) {
	extractor := NewExtractor()

	// Файл без тегов и без MP3 кадров
	tempDir := t.TempDir()
	flacPath := filepath.Join(tempDir, "Nina Simone - Feeling Good.flac")
	if err := os.WriteFile(flacPath, []byte("not really flac"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	track, err := extractor.TrackFromFile(flacPath)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if track.Title() != "Feeling Good" {
		t.Errorf("Ожидался Title: Feeling Good, получено: %s", track.Title())
	}
	if track.Performer().Name() != "Nina Simone" {
		t.Errorf("Ожидался Performer: Nina Simone, получено: %s", track.Performer().Name())
	}
	if track.Writer().Name() != data.UnknownArtist {
		t.Errorf("Автор не должен быть известен, получено: %s", track.Writer().Name())
	}
	if track.Duration() != 0 || track.Year() != data.MinYear {
		t.Errorf("Ожидались значения по умолчанию, получено: %d, %d", track.Duration(), track.Year())
	}

	// Некорректный MP3
	mp3Path := filepath.Join(tempDir, "broken.mp3")
	if err := os.WriteFile(mp3Path, []byte("test content"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	_, err = extractor.TrackFromFile(mp3Path)
	if err == nil || !strings.Contains(err.Error(), "ошибка получения длительности") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}

	// Неподдерживаемый формат
	txtPath := filepath.Join(tempDir, "notes.txt")
	if err := os.WriteFile(txtPath, []byte("notes"), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	_, err = extractor.TrackFromFile(txtPath)
	if err == nil || !strings.Contains(err.Error(), "неподдерживаемый формат") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}

	// Несуществующий файл
	_, err = extractor.TrackFromFile("/non/existent/file.mp3")
	if err == nil || !strings.Contains(err.Error(), "ошибка получения информации о файле") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}

func TestToTrack(t *testing.T) {
	md := TrackMetadata{
		Title:    "Imagine",
		Artist:   "John Lennon",
		Composer: "Lennon",
		Year:     1971,
	}

	track := ToTrack(md, 183*time.Second+400*time.Millisecond)

	if track.Title() != "Imagine" {
		t.Errorf("Ожидался Title: Imagine, получено: %s", track.Title())
	}
	if track.Writer().Name() != "Lennon" {
		t.Errorf("Ожидался Writer: Lennon, получено: %s", track.Writer().Name())
	}
	if track.Duration() != 183 {
		t.Errorf("Ожидалась длительность 183, получено: %d", track.Duration())
	}
	if track.Year() != 1971 {
		t.Errorf("Ожидался год 1971, получено: %d", track.Year())
	}

	// Год вне допустимого диапазона и пустое название
	track = ToTrack(TrackMetadata{Year: 1850}, 0)
	if track.HasTitle() {
		t.Error("Пустое название не должно задаваться")
	}
	if track.Year() != data.MinYear {
		t.Errorf("Ожидался год по умолчанию, получено: %d", track.Year())
	}
}

func TestGetDuration(t *testing.T) {
	tempDir := t.TempDir()
	testFilePath := filepath.Join(tempDir, "test.mp3")

	err := os.WriteFile(testFilePath, []byte("test content"), 0644)
	if err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}

	extractor := NewExtractor()
	duration, err := extractor.GetDuration(testFilePath)

	// Ожидаем ошибку, так как файл не является валидным MP3
	if err == nil {
		t.Fatal("Ожидалась ошибка для некорректного MP3 файла")
	}
	if !strings.Contains(err.Error(), "ошибка декодирования MP3") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
	if duration != 0 {
		t.Errorf("Ожидалась длительность 0 при ошибке, получено: %v", duration)
	}
}

func TestGetDurationNonExistentFile(t *testing.T) {
	extractor := NewExtractor()
	_, err := extractor.GetDuration("/non/existent/file.mp3")

	if err == nil {
		t.Fatal("Ожидалась ошибка для несуществующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка открытия файла") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}
