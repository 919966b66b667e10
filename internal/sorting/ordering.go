// Package sorting содержит именованные порядки сортировки треков
package sorting

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/hazadus/go-landscape/internal/data"
)

// Ordering - полный порядок над треками по одному полю
type Ordering int

const (
	ByTitle Ordering = iota
	ByDuration
	ByWriter
	ByPerformer
	ByYear
)

var names = map[Ordering]string{
	ByTitle:     "title",
	ByDuration:  "duration",
	ByWriter:    "writer",
	ByPerformer: "performer",
	ByYear:      "year",
}

// All возвращает все порядки в порядке отображения в меню
func All() []Ordering {
	return []Ordering{ByTitle, ByDuration, ByWriter, ByPerformer, ByYear}
}

// Parse находит порядок по имени поля ("title", "year", ...)
func Parse(name string) (Ordering, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "by ")
	for o, n := range names {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("неизвестная сортировка: %q", name)
}

// Compare сравнивает два трека: отрицательное, ноль или положительное значение
func (o Ordering) Compare(a, b *data.Track) int {
	switch o {
	case ByDuration:
		return cmp.Compare(a.Duration(), b.Duration())
	case ByWriter:
		return a.Writer().Compare(b.Writer())
	case ByPerformer:
		return a.Performer().Compare(b.Performer())
	case ByYear:
		return cmp.Compare(a.Year(), b.Year())
	default:
		return strings.Compare(a.Title(), b.Title())
	}
}

// Name возвращает короткое имя порядка для флагов командной строки
func (o Ordering) Name() string {
	if n, ok := names[o]; ok {
		return n
	}
	return names[ByTitle]
}

// String возвращает подпись вида "by title"
func (o Ordering) String() string {
	return "by " + o.Name()
}

// Reverse оборачивает сравнение в обратный порядок
func Reverse(c interface{ Compare(a, b *data.Track) int }) func(a, b *data.Track) int {
	return func(a, b *data.Track) int {
		return -c.Compare(a, b)
	}
}
