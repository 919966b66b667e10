package uploader

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/fileio"
)

// MockStorage мок для хранилища
type MockStorage struct {
	uploadFunc func(reader io.Reader, key string) (string, error)
}

func (m *MockStorage) UploadFile(ctx context.Context, reader io.Reader, key string) (string, error) {
	return m.uploadFunc(reader, key)
}

func testTracks() []*data.Track {
	yesterday := data.NewTitledTrack("Yesterday")
	yesterday.SetWriter(data.NewArtist("Lennon"))
	yesterday.SetPerformer(data.NewArtist("Beatles"))
	yesterday.SetDuration(125)
	yesterday.SetYear(1965)

	imagine := data.NewTitledTrack("Imagine")
	imagine.SetWriter(data.NewArtist("John Lennon"))
	imagine.SetPerformer(data.NewArtist("John Lennon"))
	imagine.SetDuration(183)
	imagine.SetYear(1971)

	return []*data.Track{yesterday, imagine}
}

func newTestService(storage Storage) *Service {
	s := NewService(storage)
	s.now = func() time.Time { return time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "0c5e2a8e-7f3b-4d55-9e36-2f6d6c9b9a11" }
	return s
}

// TestSuccessfulBackup тестирует успешную загрузку резервной копии
func TestSuccessfulBackup(t *testing.T) {
	var uploaded []byte
	storage := &MockStorage{
		uploadFunc: func(reader io.Reader, key string) (string, error) {
			expectedKey := "landscape/2024-03-08-0c5e2a8e-7f3b-4d55-9e36-2f6d6c9b9a11.csv"
			if key != expectedKey {
				t.Errorf("Ожидался key: %s, получено: %s", expectedKey, key)
			}
			body, err := io.ReadAll(reader)
			if err != nil {
				t.Errorf("Ошибка чтения тела запроса: %v", err)
			}
			uploaded = body
			return "https://s3.example.com/bucket/" + key, nil
		},
	}

	var progress int64
	result, err := newTestService(storage).Backup(context.Background(), testTracks(), FormatCSV, func(n int64) {
		progress = n
	})
	if err != nil {
		t.Fatalf("Неожиданная ошибка при загрузке: %v", err)
	}

	if result.Tracks != 2 {
		t.Errorf("Ожидалось треков: 2, получено: %d", result.Tracks)
	}
	if result.Size != int64(len(uploaded)) || progress != result.Size {
		t.Errorf("Размер %d, прогресс %d, загружено %d", result.Size, progress, len(uploaded))
	}
	if !strings.HasSuffix(result.URL, result.Key) {
		t.Errorf("URL %s не содержит ключ %s", result.URL, result.Key)
	}

	// Загруженная копия читается обратно
	tracks := fileio.NewCSVReader(bytes.NewReader(uploaded)).ReadAll()
	if len(tracks) != 2 || !tracks[0].Equal(testTracks()[0]) {
		t.Errorf("Копия не совпадает с исходными треками: %v", tracks)
	}
}

// TestBackupErrorHandling тестирует обработку ошибок
func TestBackupErrorHandling(t *testing.T) {
	t.Run("StorageError", func(t *testing.T) {
		storage := &MockStorage{
			uploadFunc: func(reader io.Reader, key string) (string, error) {
				return "", errors.New("AccessDenied")
			},
		}

		_, err := newTestService(storage).Backup(context.Background(), testTracks(), FormatXML, nil)
		if err == nil {
			t.Fatal("Ожидалась ошибка загрузки")
		}
		if !strings.Contains(err.Error(), "ошибка загрузки в S3") {
			t.Errorf("Неожиданное сообщение об ошибке: %v", err)
		}
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		storage := &MockStorage{
			uploadFunc: func(reader io.Reader, key string) (string, error) {
				t.Error("Загрузка не должна вызываться")
				return "", nil
			},
		}

		_, err := newTestService(storage).Backup(context.Background(), testTracks(), "json", nil)
		if err == nil || !strings.Contains(err.Error(), "неизвестный формат") {
			t.Errorf("Неожиданная ошибка: %v", err)
		}
	})
}

// TestRender тестирует сериализацию во все форматы
func TestRender(t *testing.T) {
	testCases := []struct {
		format   string
		contains []string
	}{
		{FormatCSV, []string{"Yesterday, Lennon, Beatles, 125, 1965\n", "Imagine, John Lennon, John Lennon, 183, 1971\n"}},
		{FormatXML, []string{"<TrackContainer>", "<Title>Imagine</Title>", `SYSTEM "TrackContainer.dtd"`}},
		{FormatYAML, []string{"tracks:", "title: Yesterday", "duration: 183"}},
		{"YAML", []string{"year: 1971"}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			out, err := Render(testTracks(), tc.format)
			if err != nil {
				t.Fatalf("Неожиданная ошибка: %v", err)
			}
			for _, part := range tc.contains {
				if !strings.Contains(string(out), part) {
					t.Errorf("Ожидалось %q в:\n%s", part, out)
				}
			}
		})
	}
}

// TestObjectKey тестирует формирование ключа объекта
func TestObjectKey(t *testing.T) {
	now := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)

	key := ObjectKey(now, "abc", "XML")
	if key != "landscape/2025-12-31-abc.xml" {
		t.Errorf("Неожиданный ключ: %s", key)
	}

	// Ключ по умолчанию содержит UUID
	s := NewService(&MockStorage{})
	key = ObjectKey(now, s.newID(), FormatYAML)
	pattern := regexp.MustCompile(`^landscape/2025-12-31-[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.yaml$`)
	if !pattern.MatchString(key) {
		t.Errorf("Ключ не соответствует шаблону: %s", key)
	}
}

// TestProgressReader тестирует отслеживание прогресса чтения
func TestProgressReader(t *testing.T) {
	testData := "test content for progress tracking"
	reader := strings.NewReader(testData)

	var progressCalled bool
	var progressBytes int64

	progressReader := &ProgressReader{
		Reader: reader,
		Size:   int64(len(testData)),
		OnProgress: func(bytesRead int64) {
			progressCalled = true
			progressBytes = bytesRead
		},
	}

	buffer := make([]byte, 1024)
	n, err := progressReader.Read(buffer)

	if err != nil {
		t.Errorf("Неожиданная ошибка при чтении: %v", err)
	}
	if n != len(testData) {
		t.Errorf("Ожидалось прочитано байт: %d, получено: %d", len(testData), n)
	}
	if !progressCalled {
		t.Error("Callback прогресса не был вызван")
	}
	if progressBytes != int64(len(testData)) {
		t.Errorf("Ожидалось байт в callback: %d, получено: %d", len(testData), progressBytes)
	}
}

// TestFormatFileSize тестирует форматирование размера файла
func TestFormatFileSize(t *testing.T) {
	testCases := []struct {
		bytes    int64
		expected string
	}{
		{1024, "1.0 KB"},
		{2048, "2.0 KB"},
		{1048576, "1.0 MB"},
		{1073741824, "1.0 GB"},
		{512, "512 B"},
		{0, "0 B"},
	}

	for _, tc := range testCases {
		result := FormatFileSize(tc.bytes)
		if result != tc.expected {
			t.Errorf("Для %d байт ожидалось: %s, получено: %s", tc.bytes, tc.expected, result)
		}
	}
}
