// Package format содержит способы текстового представления треков
package format

import (
	"fmt"
	"strings"

	"github.com/hazadus/go-landscape/internal/data"
)

// Formatter превращает трек в строку определенного вида
type Formatter interface {
	// Header возвращает заголовок таблицы
	Header() string
	// TopSeparator возвращает разделитель под заголовком
	TopSeparator() string
	// Format форматирует один трек
	Format(t *data.Track) string
	// String возвращает описание формата
	String() string
}

// Названия форматов для командной строки
const (
	NameLong  = "long"
	NameShort = "short"
	NameCSV   = "csv"
	NameXML   = "xml"
)

// All возвращает все форматы в порядке меню
func All() []Formatter {
	return []Formatter{Long{}, Short{}, CSV{}, XML{}}
}

// Parse находит формат по имени
func Parse(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameLong:
		return Long{}, nil
	case NameShort:
		return Short{}, nil
	case NameCSV:
		return CSV{}, nil
	case NameXML:
		return XML{}, nil
	}
	return nil, fmt.Errorf("неизвестный формат: %q", name)
}

// separator возвращает строку дефисов длиной заголовка
func separator(header string) string {
	return strings.Repeat("-", len([]rune(header)))
}

// Long - название, автор и длительность
type Long struct{}

// Header возвращает заголовок таблицы
func (Long) Header() string {
	return "Title Writer (min:sec)"
}

// TopSeparator возвращает черту под заголовком
func (f Long) TopSeparator() string {
	return separator(f.Header())
}

// Format выводит трек одной строкой фиксированной ширины
func (Long) Format(t *data.Track) string {
	return fmt.Sprintf("%-10s, %s, (%s)",
		data.Truncate(t.Title(), 10),
		t.Writer(),
		data.FormatMinSec(t.Duration()))
}

// String возвращает подпись формата для меню
func (Long) String() string {
	return "long format [Title Writer (min:sec)]"
}

// Short - только название и длительность
type Short struct{}

// Header возвращает заголовок таблицы
func (Short) Header() string {
	return "Title      (min:sec)"
}

// TopSeparator возвращает черту под заголовком
func (f Short) TopSeparator() string {
	return separator(f.Header())
}

// Format выводит название и длительность трека
func (Short) Format(t *data.Track) string {
	return fmt.Sprintf("%-10s (%s)",
		data.Truncate(t.Title(), 10),
		data.FormatMinSec(t.Duration()))
}

// String возвращает подпись формата для меню
func (Short) String() string {
	return "short format [Title (min:sec)]"
}

// CSV - поля через запятую, читается обратно fileio.CSVReader
type CSV struct{}

// Header возвращает строку с именами полей
func (CSV) Header() string {
	return "Title, Writer, Performer, duration, year"
}

// TopSeparator для CSV пуст
func (CSV) TopSeparator() string {
	return ""
}

// Format выводит трек строкой CSV
func (CSV) Format(t *data.Track) string {
	return fmt.Sprintf("%s, %s, %s, %d, %d",
		csvField(t.Title()),
		csvField(t.Writer().Name()),
		csvField(t.Performer().Name()),
		t.Duration(),
		t.Year())
}

// String возвращает подпись формата вместе с заголовком
func (f CSV) String() string {
	return fmt.Sprintf("CSV format [%s]", f.Header())
}

// csvField заключает поле в кавычки, если без них строка не разберется
func csvField(s string) string {
	if s == "" || !strings.ContainsAny(s, ",\"\r\n") && strings.TrimSpace(s) == s {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// XML - элемент <Track> с пятью вложенными элементами.
// Сборкой документа целиком занимается fileio.XMLWriter.
type XML struct{}

// Header возвращает схему документа для справки
func (XML) Header() string {
	tab := "\t"
	return fmt.Sprintf("%1$s <TrackContainer>\n"+
		"%1$s%1$s<Track>\n"+
		"%1$s%1$s%1$s<Title>\"title\"</Title>\n"+
		"%1$s%1$s%1$s<Writer>\"writer.name\"</Writer>\n"+
		"%1$s%1$s%1$s<Performer>\"Performer.name\"</Performer>\n"+
		"%1$s%1$s%1$s<Duration>\"duration\"</Duration>\n"+
		"%1$s%1$s%1$s<Year>\"year\"</Year>\n"+
		"%1$s%1$s</Track>\n"+
		"%1$s</TrackContainer>", tab)
}

// TopSeparator для XML пуст
func (XML) TopSeparator() string {
	return ""
}

// Format выводит трек элементом <Track>
func (XML) Format(t *data.Track) string {
	return fmt.Sprintf("\t<Track>\n"+
		"\t\t<Title>%s</Title>\n"+
		"\t\t<Writer>%s</Writer>\n"+
		"\t\t<Performer>%s</Performer>\n"+
		"\t\t<Duration>%d</Duration>\n"+
		"\t\t<Year>%d</Year>\n"+
		"\t</Track>",
		escapeXML(t.Title()),
		escapeXML(t.Writer().Name()),
		escapeXML(t.Performer().Name()),
		t.Duration(),
		t.Year())
}

// String возвращает подпись формата
func (f XML) String() string {
	return "XML format\n" + f.Header()
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
