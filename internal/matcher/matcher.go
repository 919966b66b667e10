// Package matcher содержит предикаты для фильтрации выборки треков.
//
// Каждый предикат хранит изменяемый шаблон. SetPattern никогда не
// паникует: некорректный шаблон оставляет состояние без изменений и
// возвращает ошибку, которую вызывающий код может показать или проигнорировать.
package matcher

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/logger"
)

var (
	// ErrMalformedPattern - в шаблоне нет ни одного числа
	ErrMalformedPattern = errors.New("неверный шаблон")
	// ErrBoundsDiscarded - границы из шаблона не прошли проверку и отброшены
	ErrBoundsDiscarded = errors.New("границы отброшены")
	// ErrBoundsReset - граница вне допустимого диапазона, шаблон сброшен
	// к значению по умолчанию
	ErrBoundsReset = fmt.Errorf("%w, шаблон сброшен", ErrBoundsDiscarded)
)

// Matcher - предикат над треками с изменяемым шаблоном
type Matcher interface {
	// Matches сообщает, подходит ли трек
	Matches(t *data.Track) bool
	// SetPattern задает новый шаблон
	SetPattern(pat string) error
	// Pattern возвращает текущий шаблон
	Pattern() string
	// Reset возвращает шаблон по умолчанию
	Reset()
	// String возвращает описание с текущим шаблоном
	String() string
}

// field выбирает строковое поле трека
type field func(t *data.Track) []string

// textMatcher проверяет, что одно из полей начинается с шаблона
type textMatcher struct {
	label   string
	pattern string
	fields  field
}

func (m *textMatcher) Matches(t *data.Track) bool {
	for _, value := range m.fields(t) {
		if strings.HasPrefix(value, m.pattern) {
			return true
		}
	}
	return false
}

// SetPattern принимает любую строку, включая пустую
func (m *textMatcher) SetPattern(pat string) error {
	m.pattern = pat
	return nil
}

func (m *textMatcher) Pattern() string {
	return m.pattern
}

func (m *textMatcher) Reset() {
	m.pattern = ""
}

func (m *textMatcher) String() string {
	return fmt.Sprintf("%s (%s)", m.label, m.pattern)
}

// NewTitleMatcher выбирает треки, название которых начинается с шаблона
func NewTitleMatcher(pat string) Matcher {
	return &textMatcher{
		label:   "title starts with",
		pattern: pat,
		fields: func(t *data.Track) []string {
			return []string{t.Title()}
		},
	}
}

// NewWriterMatcher выбирает треки, имя автора которых начинается с шаблона
func NewWriterMatcher(pat string) Matcher {
	return &textMatcher{
		label:   "The name of the writer starts with",
		pattern: pat,
		fields: func(t *data.Track) []string {
			return []string{t.Writer().Name()}
		},
	}
}

// NewPerformerMatcher выбирает треки, имя исполнителя которых начинается с шаблона
func NewPerformerMatcher(pat string) Matcher {
	return &textMatcher{
		label:   "The name of the performer starts with",
		pattern: pat,
		fields: func(t *data.Track) []string {
			return []string{t.Performer().Name()}
		},
	}
}

// NewArtistMatcher выбирает треки, у которых автор ИЛИ исполнитель
// начинается с шаблона
func NewArtistMatcher(pat string) Matcher {
	return &textMatcher{
		label:   "The name of the Artist(=Writer or Performer) starts with",
		pattern: pat,
		fields: func(t *data.Track) []string {
			return []string{t.Writer().Name(), t.Performer().Name()}
		},
	}
}

// Названия видов фильтров для командной строки
const (
	KindTitle     = "title"
	KindWriter    = "writer"
	KindPerformer = "performer"
	KindArtist    = "artist"
	KindDuration  = "duration"
	KindYear      = "year"
)

// Kinds возвращает виды фильтров в порядке меню
func Kinds() []string {
	return []string{KindTitle, KindWriter, KindPerformer, KindArtist, KindDuration, KindYear}
}

// Defaults создает по одному предикату каждого вида с шаблонами по умолчанию
func Defaults() []Matcher {
	return []Matcher{
		NewTitleMatcher(""),
		NewWriterMatcher(""),
		NewPerformerMatcher(""),
		NewArtistMatcher(""),
		NewDurationMatcher(),
		NewYearMatcher(),
	}
}

// New создает предикат указанного вида и задает ему шаблон
func New(kind, pattern string) (Matcher, error) {
	var m Matcher
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindTitle:
		m = NewTitleMatcher("")
	case KindWriter:
		m = NewWriterMatcher("")
	case KindPerformer:
		m = NewPerformerMatcher("")
	case KindArtist:
		m = NewArtistMatcher("")
	case KindDuration:
		m = NewDurationMatcher()
	case KindYear:
		m = NewYearMatcher()
	default:
		return nil, fmt.Errorf("неизвестный вид фильтра: %q", kind)
	}

	if err := m.SetPattern(pattern); err != nil {
		return nil, fmt.Errorf("фильтр %s: %w", kind, err)
	}
	return m, nil
}

// Parse разбирает выражение "вид=шаблон", например "year=1990 1999"
func Parse(expr string) (Matcher, error) {
	kind, pattern, ok := strings.Cut(expr, "=")
	if !ok {
		return nil, fmt.Errorf("ожидалось выражение вида kind=pattern: %q", expr)
	}
	return New(kind, pattern)
}

// warn сообщает об отклоненном шаблоне в журнал
func warn(m Matcher, pat string, err error) {
	logger.Warn("шаблон фильтра отклонен",
		zap.String("matcher", m.String()),
		zap.String("pattern", pat),
		zap.Error(err))
}
