package data

import (
	"fmt"
	"strings"
)

const (
	// UnknownTitle выводится вместо отсутствующего названия трека
	UnknownTitle = "unknown title"
	// UnknownArtist используется для артиста без имени
	UnknownArtist = "unknown"

	// MinYear и MaxYear задают допустимый диапазон года выпуска
	MinYear = 1900
	MaxYear = 2999

	// ширина колонок в текстовом представлении трека
	columnWidth = 10
)

// Artist описывает автора или исполнителя трека
type Artist struct {
	name string
}

// NewArtist создает артиста с указанным именем.
// Пустое имя заменяется на "unknown".
func NewArtist(name string) Artist {
	a := Artist{name: UnknownArtist}
	a.SetName(name)
	return a
}

// Name возвращает имя артиста
func (a Artist) Name() string {
	if a.name == "" {
		return UnknownArtist
	}
	return a.name
}

// SetName меняет имя артиста. Пустые и пробельные имена игнорируются.
func (a *Artist) SetName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	a.name = name
	return true
}

// Compare сравнивает артистов лексикографически по имени
func (a Artist) Compare(other Artist) int {
	return strings.Compare(a.Name(), other.Name())
}

func (a Artist) String() string {
	return a.Name()
}

// Track - запись каталога.
//
// Сеттеры молча отбрасывают недопустимые значения и возвращают false,
// предыдущее значение поля при этом сохраняется.
type Track struct {
	title     string
	hasTitle  bool
	duration  int // в секундах, 0 - неизвестна
	writer    Artist
	performer Artist
	year      int
}

// NewTrack создает трек без названия
func NewTrack() *Track {
	return &Track{
		writer:    NewArtist(""),
		performer: NewArtist(""),
		year:      MinYear,
	}
}

// NewTitledTrack создает трек с указанным названием
func NewTitledTrack(title string) *Track {
	t := NewTrack()
	t.SetTitle(title)
	return t
}

// Clone возвращает независимую копию трека
func (t *Track) Clone() *Track {
	c := *t
	return &c
}

// Title возвращает название трека или "unknown title"
func (t *Track) Title() string {
	if !t.hasTitle {
		return UnknownTitle
	}
	return t.title
}

// HasTitle сообщает, задано ли название
func (t *Track) HasTitle() bool {
	return t.hasTitle
}

// SetTitle задает название. Допустима любая строка.
func (t *Track) SetTitle(title string) bool {
	t.title = title
	t.hasTitle = true
	return true
}

// Duration возвращает длительность в секундах
func (t *Track) Duration() int {
	return t.duration
}

// SetDuration задает длительность; отрицательные значения отбрасываются
func (t *Track) SetDuration(seconds int) bool {
	if !ValidDuration(seconds) {
		return false
	}
	t.duration = seconds
	return true
}

// Writer возвращает автора
func (t *Track) Writer() Artist {
	return t.writer
}

// SetWriter задает автора
func (t *Track) SetWriter(a Artist) bool {
	t.writer = NewArtist(a.name)
	return true
}

// Performer возвращает исполнителя
func (t *Track) Performer() Artist {
	return t.performer
}

// SetPerformer задает исполнителя
func (t *Track) SetPerformer(a Artist) bool {
	t.performer = NewArtist(a.name)
	return true
}

// Year возвращает год выпуска
func (t *Track) Year() int {
	return t.year
}

// SetYear задает год; значения вне [1900, 2999] отбрасываются
func (t *Track) SetYear(year int) bool {
	if !ValidYear(year) {
		return false
	}
	t.year = year
	return true
}

// Equal сравнивает треки по всем полям
func (t *Track) Equal(other *Track) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Title() == other.Title() &&
		t.hasTitle == other.hasTitle &&
		t.duration == other.duration &&
		t.writer.Name() == other.writer.Name() &&
		t.performer.Name() == other.performer.Name() &&
		t.year == other.year
}

// Compare задает естественный порядок треков - по названию
func (t *Track) Compare(other *Track) int {
	return strings.Compare(t.Title(), other.Title())
}

// String возвращает строку фиксированной ширины:
// "<title> by <writer> performed by <performer> (mm:ss)"
func (t *Track) String() string {
	title := UnknownTitle
	if t.hasTitle {
		title = truncate(t.title, columnWidth)
	}

	return fmt.Sprintf("%10s by %10s performed by %10s (%s)",
		title,
		truncate(t.writer.Name(), columnWidth),
		truncate(t.performer.Name(), columnWidth),
		FormatMinSec(t.duration))
}

// ValidYear проверяет год выпуска
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// ValidDuration проверяет длительность
func ValidDuration(seconds int) bool {
	return seconds >= 0
}

// FormatMinSec форматирует секунды в виде mm:ss
func FormatMinSec(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// truncate обрезает строку до maxLen символов (рун)
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen])
}

// Truncate обрезает строку до maxLen символов без многоточия
func Truncate(s string, maxLen int) string {
	return truncate(s, maxLen)
}
