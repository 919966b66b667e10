package matcher

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/hazadus/go-landscape/internal/data"
)

// rangePattern выделяет одно или два числа: "LOWER" или "LOWER UPPER"
var rangePattern = regexp.MustCompile(`(\d+)[ ]*(\d*)`)

// Range - результат разбора числового шаблона
type Range struct {
	Lower    int
	Upper    int
	HasUpper bool // в шаблоне было второе число
}

// ParseRange разбирает шаблон "LOWER[ UPPER]".
// Берутся первые одно-два числа; шаблон без цифр считается неверным.
func ParseRange(pat string) (Range, error) {
	groups := rangePattern.FindStringSubmatch(pat)
	if groups == nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedPattern, pat)
	}

	lower, err := strconv.Atoi(groups[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedPattern, pat)
	}
	r := Range{Lower: lower}

	if groups[2] != "" {
		upper, err := strconv.Atoi(groups[2])
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q", ErrMalformedPattern, pat)
		}
		r.Upper = upper
		r.HasUpper = true
	}
	return r, nil
}

// DurationMatcher выбирает треки по длительности в секундах.
//
// Шаблон из одного числа меняет только нижнюю границу: верхняя
// сохраняет предыдущее значение. Бесконечной она бывает только у
// шаблона по умолчанию.
type DurationMatcher struct {
	lower int
	upper int
}

// NewDurationMatcher создает предикат с шаблоном "0 <max>"
func NewDurationMatcher() *DurationMatcher {
	m := &DurationMatcher{}
	m.Reset()
	return m
}

// Matches проверяет длительность трека
func (m *DurationMatcher) Matches(t *data.Track) bool {
	return m.matchesDuration(t.Duration())
}

func (m *DurationMatcher) matchesDuration(duration int) bool {
	if m.lower >= 0 && m.upper == math.MaxInt {
		return duration >= m.lower
	}
	if m.lower >= 0 && m.lower <= m.upper {
		return m.lower <= duration && duration <= m.upper
	}
	return false
}

// SetPattern задает границы. Пара чисел принимается только при lower <= upper.
func (m *DurationMatcher) SetPattern(pat string) error {
	r, err := ParseRange(pat)
	if err != nil {
		warn(m, pat, err)
		return err
	}

	if !r.HasUpper {
		m.lower = r.Lower
		return nil
	}
	if r.Lower > r.Upper {
		err := fmt.Errorf("%w: %d > %d", ErrBoundsDiscarded, r.Lower, r.Upper)
		warn(m, pat, err)
		return err
	}
	m.lower, m.upper = r.Lower, r.Upper
	return nil
}

// Pattern возвращает границы в виде "lower upper"
func (m *DurationMatcher) Pattern() string {
	return fmt.Sprintf("%d %d", m.lower, m.upper)
}

// Bounds возвращает текущие границы
func (m *DurationMatcher) Bounds() (lower, upper int) {
	return m.lower, m.upper
}

// Reset возвращает шаблон "0 <max>"
func (m *DurationMatcher) Reset() {
	m.lower, m.upper = 0, math.MaxInt
}

func (m *DurationMatcher) String() string {
	return fmt.Sprintf("duration in range (%d %d)", m.lower, m.upper)
}

// YearMatcher выбирает треки по году выпуска в пределах [1900, 2999]
type YearMatcher struct {
	lower int
	upper int
}

// NewYearMatcher создает предикат с шаблоном "1900 2999"
func NewYearMatcher() *YearMatcher {
	m := &YearMatcher{}
	m.Reset()
	return m
}

// Matches проверяет год трека
func (m *YearMatcher) Matches(t *data.Track) bool {
	return m.matchesYear(t.Year())
}

func (m *YearMatcher) matchesYear(year int) bool {
	return m.lower <= year && year <= m.upper
}

// SetPattern задает границы.
// Одно число вне диапазона лет сбрасывает обе границы к [1900, 2999]
// и возвращает ErrBoundsReset.
// Пара принимается только при lower < upper внутри диапазона.
func (m *YearMatcher) SetPattern(pat string) error {
	r, err := ParseRange(pat)
	if err != nil {
		warn(m, pat, err)
		return err
	}

	if !r.HasUpper {
		if !data.ValidYear(r.Lower) {
			m.Reset()
			err := fmt.Errorf("%w: %d", ErrBoundsReset, r.Lower)
			warn(m, pat, err)
			return err
		}
		m.lower, m.upper = r.Lower, data.MaxYear
		return nil
	}

	if r.Lower < r.Upper && data.ValidYear(r.Lower) && data.ValidYear(r.Upper) {
		m.lower, m.upper = r.Lower, r.Upper
		return nil
	}

	err = fmt.Errorf("%w: %d %d", ErrBoundsDiscarded, r.Lower, r.Upper)
	warn(m, pat, err)
	return err
}

// Pattern возвращает границы в виде "lower upper"
func (m *YearMatcher) Pattern() string {
	return fmt.Sprintf("%d %d", m.lower, m.upper)
}

// Bounds возвращает текущие границы
func (m *YearMatcher) Bounds() (lower, upper int) {
	return m.lower, m.upper
}

// Reset возвращает шаблон "1900 2999"
func (m *YearMatcher) Reset() {
	m.lower, m.upper = data.MinYear, data.MaxYear
}

func (m *YearMatcher) String() string {
	return fmt.Sprintf("year in range (%d %d)", m.lower, m.upper)
}
