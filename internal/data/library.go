// Package data содержит модель записи каталога и ее хранение на диске
package data

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// trackRecord - представление трека в YAML файле библиотеки
type trackRecord struct {
	Title     *string `yaml:"title,omitempty"`
	Writer    string  `yaml:"writer"`
	Performer string  `yaml:"performer"`
	Duration  int     `yaml:"duration"` // Длительность трека в секундах
	Year      int     `yaml:"year"`
}

// MarshalYAML реализует yaml.Marshaler
func (t *Track) MarshalYAML() (interface{}, error) {
	rec := trackRecord{
		Writer:    t.writer.Name(),
		Performer: t.performer.Name(),
		Duration:  t.duration,
		Year:      t.year,
	}
	if t.hasTitle {
		title := t.title
		rec.Title = &title
	}
	return rec, nil
}

// UnmarshalYAML реализует yaml.Unmarshaler.
// Значения проходят через сеттеры, недопустимые остаются по умолчанию.
func (t *Track) UnmarshalYAML(node *yaml.Node) error {
	var rec trackRecord
	if err := node.Decode(&rec); err != nil {
		return err
	}

	*t = *NewTrack()
	if rec.Title != nil {
		t.SetTitle(*rec.Title)
	}
	t.SetWriter(NewArtist(rec.Writer))
	t.SetPerformer(NewArtist(rec.Performer))
	t.SetDuration(rec.Duration)
	t.SetYear(rec.Year)
	return nil
}

// Library - содержимое файла библиотеки
type Library struct {
	Tracks []*Track `yaml:"tracks"`
}

// NewLibrary создает пустую библиотеку
func NewLibrary() *Library {
	return &Library{
		Tracks: make([]*Track, 0),
	}
}

// ExpandPath раскрывает тильду в начале пути
func ExpandPath(filePath string) (string, error) {
	if !strings.HasPrefix(filePath, "~") {
		return filePath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(filePath, "~", home, 1), nil
}

// LoadData загружает библиотеку из файла
func (l *Library) LoadData(filePath string) error {
	path, err := ExpandPath(filePath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// Если файл не найден, начинаем с пустой библиотеки
		if os.IsNotExist(err) {
			*l = *NewLibrary()
			return nil
		}
		return fmt.Errorf("ошибка чтения файла данных: %w", err)
	}
	if len(data) == 0 {
		*l = *NewLibrary()
		return nil
	}

	loaded := NewLibrary()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return fmt.Errorf("ошибка разбора данных: %w", err)
	}

	// Пустые элементы списка пропускаем
	tracks := loaded.Tracks[:0]
	for _, t := range loaded.Tracks {
		if t != nil {
			tracks = append(tracks, t)
		}
	}
	loaded.Tracks = tracks

	*l = *loaded
	return nil
}

// SaveData сохраняет библиотеку в файл
func (l *Library) SaveData(filePath string) error {
	path, err := ExpandPath(filePath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(l)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("ошибка создания директории: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	return nil
}
