// Package track содержит контейнер уникальных треков с выборкой
package track

import (
	"errors"
	"slices"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/sorting"
)

var (
	// ErrNotFound - трек не хранится в контейнере
	ErrNotFound = errors.New("трек не найден в каталоге")
	// ErrDuplicate - изменение сделало бы трек копией другого трека
	ErrDuplicate = errors.New("такой трек уже есть в каталоге")
)

// Matcher - предикат, по которому фильтруется выборка
type Matcher interface {
	Matches(t *data.Track) bool
}

// Comparator - порядок, по которому сортируется выборка
type Comparator interface {
	Compare(a, b *data.Track) int
}

// Container хранит множество уникальных треков и выборку - упорядоченное
// подмножество этих треков.
//
// Выборка может только сужаться фильтрами. Заново наполняет ее лишь Reset,
// Add не добавляет новый трек в выборку. Контейнер не потокобезопасен.
type Container struct {
	tracks    []*data.Track // в порядке добавления
	selection []*data.Track
}

// NewContainer создает пустой контейнер с пустой выборкой
func NewContainer() *Container {
	return &Container{
		tracks:    make([]*data.Track, 0),
		selection: make([]*data.Track, 0),
	}
}

// NewContainerWith создает контейнер с указанными треками, выбранными целиком
func NewContainerWith(tracks []*data.Track) *Container {
	c := NewContainer()
	c.AddAll(tracks)
	c.Reset()
	return c
}

// indexOf ищет трек, равный t
func (c *Container) indexOf(t *data.Track) int {
	return slices.IndexFunc(c.tracks, func(held *data.Track) bool {
		return held.Equal(t)
	})
}

// Contains сообщает, есть ли в контейнере трек, равный t
func (c *Container) Contains(t *data.Track) bool {
	return t != nil && c.indexOf(t) >= 0
}

// Add добавляет трек. Возвращает false для nil и для дубликатов.
// Выборка не меняется.
func (c *Container) Add(t *data.Track) bool {
	if t == nil || c.indexOf(t) >= 0 {
		return false
	}
	c.tracks = append(c.tracks, t)
	return true
}

// AddAll добавляет треки и возвращает число добавленных
func (c *Container) AddAll(tracks []*data.Track) int {
	added := 0
	for _, t := range tracks {
		if c.Add(t) {
			added++
		}
	}
	return added
}

// Reset выбирает все треки в порядке добавления
func (c *Container) Reset() {
	c.selection = c.selection[:0]
	if len(c.tracks) == 0 {
		return
	}
	c.selection = append(c.selection, c.tracks...)
}

// Filter убирает из выборки треки, не подходящие под m,
// и возвращает число убранных
func (c *Container) Filter(m Matcher) int {
	before := len(c.selection)
	c.selection = slices.DeleteFunc(c.selection, func(t *data.Track) bool {
		return !m.Matches(t)
	})
	return before - len(c.selection)
}

// Sort упорядочивает выборку. При ascending == false порядок обращается.
func (c *Container) Sort(cmp Comparator, ascending bool) {
	compare := cmp.Compare
	if !ascending {
		compare = sorting.Reverse(cmp)
	}
	slices.SortStableFunc(c.selection, compare)
}

// Remove удаляет выбранные треки из контейнера и возвращает их число.
// После удаления выбираются все оставшиеся треки.
// Пустая выборка ничего не удаляет и остается пустой.
func (c *Container) Remove() int {
	if len(c.selection) == 0 {
		return 0
	}

	removed := 0
	for _, t := range c.selection {
		if i := c.indexOf(t); i >= 0 {
			c.tracks = slices.Delete(c.tracks, i, i+1)
			removed++
		}
	}
	c.Reset()
	return removed
}

// Edit изменяет хранимый трек на месте.
// Если после изменения трек совпадет с другим треком контейнера,
// изменение откатывается и возвращается ErrDuplicate.
func (c *Container) Edit(t *data.Track, edit func(t *data.Track)) error {
	if t == nil || !slices.Contains(c.tracks, t) {
		return ErrNotFound
	}

	backup := *t
	edit(t)

	for _, held := range c.tracks {
		if held != t && held.Equal(t) {
			*t = backup
			return ErrDuplicate
		}
	}
	return nil
}

// Size возвращает число треков в контейнере (не в выборке)
func (c *Container) Size() int {
	return len(c.tracks)
}

// Selection возвращает копию текущей выборки
func (c *Container) Selection() []*data.Track {
	return slices.Clone(c.selection)
}

// SelectionSize возвращает длину выборки
func (c *Container) SelectionSize() int {
	return len(c.selection)
}

// Tracks возвращает все треки в порядке добавления
func (c *Container) Tracks() []*data.Track {
	return slices.Clone(c.tracks)
}
