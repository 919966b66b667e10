// Package fileio читает и записывает треки в текстовых форматах CSV и XML.
//
// Читатели не прерываются на битых записях: такая запись пропускается,
// попадает в счетчик Skipped и в журнал, а чтение продолжается.
package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/format"
	"github.com/hazadus/go-landscape/internal/logger"
)

// Позиции полей в строке CSV
const (
	fieldTitle = iota
	fieldWriter
	fieldPerformer
	fieldDuration
	fieldYear

	fieldCount
)

// ErrNilArgument возвращается конструкторами при nil-аргументах
var ErrNilArgument = errors.New("аргумент не может быть nil")

// CSVReader построчно читает треки в формате
// "title, writer, performer, duration, year"
type CSVReader struct {
	r       *csv.Reader
	line    int
	skipped int
	done    bool
}

// NewCSVReader создает читателя поверх r
func NewCSVReader(r io.Reader) *CSVReader {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &CSVReader{r: cr}
}

// Next возвращает следующий корректный трек.
// Второе значение равно false, когда данные закончились.
func (r *CSVReader) Next() (*data.Track, bool) {
	for !r.done {
		record, err := r.r.Read()
		if errors.Is(err, io.EOF) {
			r.done = true
			break
		}
		r.line++

		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				// ошибка чтения источника, дальше читать нечего
				logger.Error("ошибка чтения CSV", zap.Error(err))
				r.done = true
				break
			}
			r.skip(err)
			continue
		}

		t, err := parseRecord(record)
		if err != nil {
			r.skip(err)
			continue
		}
		return t, true
	}
	return nil, false
}

// ReadAll читает все оставшиеся треки
func (r *CSVReader) ReadAll() []*data.Track {
	var tracks []*data.Track
	for {
		t, ok := r.Next()
		if !ok {
			return tracks
		}
		tracks = append(tracks, t)
	}
}

// Skipped возвращает количество пропущенных строк
func (r *CSVReader) Skipped() int {
	return r.skipped
}

func (r *CSVReader) skip(err error) {
	r.skipped++
	logger.Warn("строка CSV пропущена", zap.Int("line", r.line), zap.Error(err))
}

func parseRecord(record []string) (*data.Track, error) {
	if len(record) != fieldCount {
		return nil, fmt.Errorf("ожидалось %d полей, получено %d", fieldCount, len(record))
	}

	fields := make([]string, fieldCount)
	for i, f := range record {
		fields[i] = strings.TrimSpace(f)
	}
	return buildTrack(fields[fieldTitle], fields[fieldWriter], fields[fieldPerformer],
		fields[fieldDuration], fields[fieldYear])
}

// buildTrack проверяет текстовые поля и собирает из них трек
func buildTrack(title, writer, performer, duration, year string) (*data.Track, error) {
	for name, value := range map[string]string{"title": title, "writer": writer, "performer": performer} {
		if value == "" {
			return nil, fmt.Errorf("пустое поле %s", name)
		}
	}

	seconds, err := strconv.Atoi(duration)
	if err != nil || !data.ValidDuration(seconds) {
		return nil, fmt.Errorf("неверная длительность %q", duration)
	}
	y, err := strconv.Atoi(year)
	if err != nil || !data.ValidYear(y) {
		return nil, fmt.Errorf("неверный год %q", year)
	}

	t := data.NewTitledTrack(title)
	t.SetWriter(data.NewArtist(writer))
	t.SetPerformer(data.NewArtist(performer))
	t.SetDuration(seconds)
	t.SetYear(y)
	return t, nil
}

// Writer пишет треки по одному в заданном формате
type Writer struct {
	out       io.Writer
	formatter format.Formatter
}

// NewWriter создает Writer. Оба аргумента обязательны.
func NewWriter(out io.Writer, f format.Formatter) (*Writer, error) {
	if out == nil || f == nil {
		return nil, ErrNilArgument
	}
	return &Writer{out: out, formatter: f}, nil
}

// Put записывает трек и сообщает об успехе
func (w *Writer) Put(t *data.Track) bool {
	if t == nil {
		return false
	}
	if _, err := io.WriteString(w.out, w.formatter.Format(t)+"\n"); err != nil {
		logger.Warn("не удалось записать трек", zap.String("title", t.Title()), zap.Error(err))
		return false
	}
	return true
}

// PutAll записывает треки и возвращает количество записанных
func (w *Writer) PutAll(tracks []*data.Track) int {
	written := 0
	for _, t := range tracks {
		if w.Put(t) {
			written++
		}
	}
	return written
}
