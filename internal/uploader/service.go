// Package uploader готовит резервную копию выборки и загружает ее во внешнее хранилище
package uploader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/fileio"
	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/logger"
)

// KeyPrefix - каталог в bucket, куда складываются резервные копии
const KeyPrefix = "landscape"

// Форматы резервной копии
const (
	FormatCSV  = "csv"
	FormatXML  = "xml"
	FormatYAML = "yaml"
)

// Formats возвращает поддерживаемые форматы резервной копии
func Formats() []string {
	return []string{FormatCSV, FormatXML, FormatYAML}
}

// Storage - хранилище, принимающее объекты по ключу
type Storage interface {
	UploadFile(ctx context.Context, reader io.Reader, key string) (string, error)
}

// Service управляет процессом резервного копирования
type Service struct {
	storage Storage
	now     func() time.Time
	newID   func() string
}

// NewService создает новый сервис резервного копирования
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// UploadResult содержит результат загрузки
type UploadResult struct {
	URL    string
	Key    string
	Tracks int
	Size   int64
}

// Backup сохраняет треки в указанном формате и загружает их в хранилище
func (s *Service) Backup(ctx context.Context, tracks []*data.Track, formatName string, progressCallback func(int64)) (*UploadResult, error) {
	content, err := Render(tracks, formatName)
	if err != nil {
		return nil, err
	}

	key := ObjectKey(s.now(), s.newID(), formatName)

	// Создаем reader с отслеживанием прогресса
	var reader io.Reader = bytes.NewReader(content)
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     reader,
			Size:       int64(len(content)),
			OnProgress: progressCallback,
		}
	}

	url, err := s.storage.UploadFile(ctx, reader, key)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	logger.Info("резервная копия загружена",
		zap.String("key", key),
		zap.Int("tracks", len(tracks)),
		zap.Int("size", len(content)))

	return &UploadResult{
		URL:    url,
		Key:    key,
		Tracks: len(tracks),
		Size:   int64(len(content)),
	}, nil
}

// Render сериализует треки в один из форматов резервной копии
func Render(tracks []*data.Track, formatName string) ([]byte, error) {
	var buf bytes.Buffer

	switch strings.ToLower(formatName) {
	case FormatCSV:
		w, err := fileio.NewWriter(&buf, format.CSV{})
		if err != nil {
			return nil, err
		}
		w.PutAll(tracks)
	case FormatXML:
		w, err := fileio.NewXMLWriter(&buf)
		if err != nil {
			return nil, err
		}
		if _, err := w.WriteAll(tracks); err != nil {
			return nil, err
		}
	case FormatYAML:
		out, err := yaml.Marshal(&data.Library{Tracks: tracks})
		if err != nil {
			return nil, fmt.Errorf("ошибка сериализации данных: %w", err)
		}
		buf.Write(out)
	default:
		return nil, fmt.Errorf("неизвестный формат резервной копии: %s", formatName)
	}

	return buf.Bytes(), nil
}

// ObjectKey формирует ключ объекта вида landscape/<дата>-<id>.<формат>
func ObjectKey(now time.Time, id, formatName string) string {
	return fmt.Sprintf("%s/%s-%s.%s", KeyPrefix, now.Format("2006-01-02"), id, strings.ToLower(formatName))
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// FormatFileSize форматирует размер файла в читаемом виде
func FormatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
