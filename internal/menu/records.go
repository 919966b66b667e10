package menu

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/fileio"
	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/logger"
	"github.com/hazadus/go-landscape/internal/track"
)

// field описывает редактируемое поле трека
type field struct {
	name  string
	value func(t *data.Track) string
	set   func(t *data.Track, v string) bool
}

var fields = []field{
	{
		name:  "title",
		value: func(t *data.Track) string { return t.Title() },
		set:   func(t *data.Track, v string) bool { return t.SetTitle(v) },
	},
	{
		name:  "writer",
		value: func(t *data.Track) string { return t.Writer().Name() },
		set: func(t *data.Track, v string) bool {
			a := t.Writer()
			return a.SetName(v) && t.SetWriter(a)
		},
	},
	{
		name:  "performer",
		value: func(t *data.Track) string { return t.Performer().Name() },
		set: func(t *data.Track, v string) bool {
			a := t.Performer()
			return a.SetName(v) && t.SetPerformer(a)
		},
	},
	{
		name:  "duration",
		value: func(t *data.Track) string { return strconv.Itoa(t.Duration()) },
		set: func(t *data.Track, v string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			return err == nil && t.SetDuration(n)
		},
	},
	{
		name:  "year",
		value: func(t *data.Track) string { return strconv.Itoa(t.Year()) },
		set: func(t *data.Track, v string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			return err == nil && t.SetYear(n)
		},
	},
}

// editFields опрашивает пользователя по каждому полю трека.
// Пустой ответ оставляет прежнее значение. Возвращает, изменилось ли
// хоть одно поле, и false вторым значением, если ввод закончился.
func (s *Session) editFields(t *data.Track) (bool, bool) {
	changed := false
	for _, f := range fields {
		s.printf("%s: %s", f.name, f.value(t))
		for {
			line, ok := s.readLine("\tновое значение (Enter - оставить): ")
			if !ok {
				return changed, false
			}
			if line == "" {
				break
			}
			if f.set(t, line) {
				changed = true
				break
			}
			s.printf("недопустимое значение поля %s", f.name)
		}
	}
	return changed, true
}

func (s *Session) edit() {
	selection := s.container.Selection()
	if len(selection) == 0 {
		s.printf("Выборка пуста, редактировать нечего.")
		return
	}

	for i, t := range selection {
		s.printf("%d: %s", i, t)
	}
	choice, ok := s.readChoice("номер трека: ", len(selection))
	if !ok {
		return
	}

	target := selection[choice]
	draft := target.Clone()
	changed, ok := s.editFields(draft)
	if !ok || !changed {
		s.printf("Трек не изменен.")
		return
	}

	err := s.container.Edit(target, func(t *data.Track) { *t = *draft })
	switch {
	case errors.Is(err, track.ErrDuplicate):
		s.printf("Такой трек уже есть в каталоге, изменения отменены.")
	case err != nil:
		s.printf("Ошибка: %v", err)
	default:
		s.printf("Трек изменен: %s", target)
	}
}

func (s *Session) add() {
	t := data.NewTrack()
	changed, ok := s.editFields(t)
	if !ok || !changed {
		s.printf("Добавление отменено.")
		return
	}
	if !s.container.Add(t) {
		s.printf("Такой трек уже есть в каталоге.")
		return
	}
	s.printf("Трек добавлен: %s", t)
}

func (s *Session) readFileName() (string, bool) {
	name, ok := s.readLine("\tимя файла: ")
	if !ok {
		return "", false
	}
	name = strings.TrimSpace(name)
	if name == "" {
		s.printf("Нужно ввести имя файла.")
		return "", false
	}
	expanded, err := data.ExpandPath(name)
	if err != nil {
		s.printf("Ошибка: %v", err)
		return "", false
	}
	return expanded, true
}

func (s *Session) saveCSV() {
	name, ok := s.readFileName()
	if !ok {
		return
	}

	f, err := os.Create(name)
	if err != nil {
		s.printf("Ошибка: не удалось создать файл %s (%v)", name, err)
		return
	}
	defer f.Close()

	w, err := fileio.NewWriter(f, format.CSV{})
	if err != nil {
		s.printf("Ошибка: %v", err)
		return
	}
	s.printf("Записано треков: %d", w.PutAll(s.container.Selection()))
}

func (s *Session) saveXML() {
	name, ok := s.readFileName()
	if !ok {
		return
	}

	f, err := os.Create(name)
	if err != nil {
		s.printf("Ошибка: не удалось создать файл %s (%v)", name, err)
		return
	}
	defer f.Close()

	w, err := fileio.NewXMLWriter(f)
	if err != nil {
		s.printf("Ошибка: %v", err)
		return
	}
	n, err := w.WriteAll(s.container.Selection())
	if err != nil {
		s.printf("Ошибка: %v", err)
		return
	}
	s.printf("Записано треков: %d", n)

	// схема документа кладется рядом с ним
	dtdPath := filepath.Join(filepath.Dir(name), fileio.DTDFileName)
	if err := writeDTD(dtdPath); err != nil {
		logger.Warn("не удалось записать DTD", zap.String("path", dtdPath), zap.Error(err))
	}
}

func writeDTD(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fileio.WriteDTD(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// trackSource - потоковый читатель треков
type trackSource interface {
	Next() (*data.Track, bool)
	Skipped() int
}

func (s *Session) loadCSV() {
	s.load(func(f *os.File) trackSource { return fileio.NewCSVReader(f) })
}

func (s *Session) loadXML() {
	s.load(func(f *os.File) trackSource { return fileio.NewXMLReader(f) })
}

// load импортирует треки из файла. Новые треки в выборку не попадают.
func (s *Session) load(open func(f *os.File) trackSource) {
	name, ok := s.readFileName()
	if !ok {
		return
	}

	f, err := os.Open(name)
	if err != nil {
		s.printf("Ошибка: не удалось открыть файл %s", name)
		logger.Warn("не удалось открыть файл", zap.String("path", name), zap.Error(err))
		return
	}
	defer f.Close()

	src := open(f)
	imported := 0
	for {
		t, ok := src.Next()
		if !ok {
			break
		}
		if s.container.Add(t) {
			imported++
		}
	}

	s.printf("Импортировано треков: %d", imported)
	if skipped := src.Skipped(); skipped > 0 {
		s.printf("Пропущено некорректных записей: %d", skipped)
	}
}
