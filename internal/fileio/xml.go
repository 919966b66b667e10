package fileio

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hazadus/go-landscape/internal/data"
	"github.com/hazadus/go-landscape/internal/logger"
)

// DTDFileName - имя файла схемы, на который ссылается документ
const DTDFileName = "TrackContainer.dtd"

const doctype = `<!DOCTYPE TrackContainer SYSTEM "` + DTDFileName + `">`

// DTD описывает структуру документа, который пишет XMLWriter
const DTD = `<!ELEMENT TrackContainer (Track+)>
<!ELEMENT Track (Title,Writer,Performer,Duration,Year)>
<!ELEMENT Title (#PCDATA)>
<!ELEMENT Writer (#PCDATA)>
<!ELEMENT Performer (#PCDATA)>
<!ELEMENT Duration (#PCDATA)>
<!ELEMENT Year (#PCDATA)>
`

type xmlTrack struct {
	XMLName   xml.Name `xml:"Track"`
	Title     string   `xml:"Title"`
	Writer    string   `xml:"Writer"`
	Performer string   `xml:"Performer"`
	Duration  string   `xml:"Duration"`
	Year      string   `xml:"Year"`
}

type xmlContainer struct {
	XMLName xml.Name    `xml:"TrackContainer"`
	Tracks  []*xmlTrack `xml:"Track"`
}

// XMLReader читает элементы <Track> из документа <TrackContainer>
type XMLReader struct {
	dec     *xml.Decoder
	skipped int
	done    bool
}

// NewXMLReader создает читателя поверх r
func NewXMLReader(r io.Reader) *XMLReader {
	return &XMLReader{dec: xml.NewDecoder(r)}
}

// Next возвращает следующий корректный трек.
// Второе значение равно false, когда документ закончился или поврежден.
func (r *XMLReader) Next() (*data.Track, bool) {
	for !r.done {
		token, err := r.dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Error("ошибка разбора XML", zap.Error(err))
			}
			r.done = true
			break
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "Track" {
			continue
		}

		var raw xmlTrack
		if err := r.dec.DecodeElement(&raw, &start); err != nil {
			logger.Error("ошибка разбора XML", zap.Error(err))
			r.done = true
			break
		}

		t, err := buildTrack(
			strings.TrimSpace(raw.Title),
			strings.TrimSpace(raw.Writer),
			strings.TrimSpace(raw.Performer),
			strings.TrimSpace(raw.Duration),
			strings.TrimSpace(raw.Year))
		if err != nil {
			r.skipped++
			logger.Warn("элемент Track пропущен", zap.Error(err))
			continue
		}
		return t, true
	}
	return nil, false
}

// ReadAll читает все оставшиеся треки
func (r *XMLReader) ReadAll() []*data.Track {
	var tracks []*data.Track
	for {
		t, ok := r.Next()
		if !ok {
			return tracks
		}
		tracks = append(tracks, t)
	}
}

// Skipped возвращает количество пропущенных элементов
func (r *XMLReader) Skipped() int {
	return r.skipped
}

// XMLWriter пишет треки единым XML-документом
type XMLWriter struct {
	out io.Writer
}

// NewXMLWriter создает XMLWriter
func NewXMLWriter(out io.Writer) (*XMLWriter, error) {
	if out == nil {
		return nil, ErrNilArgument
	}
	return &XMLWriter{out: out}, nil
}

// WriteAll пишет документ и возвращает количество записанных треков
func (w *XMLWriter) WriteAll(tracks []*data.Track) (int, error) {
	container := xmlContainer{}
	for _, t := range tracks {
		if t == nil {
			continue
		}
		container.Tracks = append(container.Tracks, &xmlTrack{
			Title:     t.Title(),
			Writer:    t.Writer().Name(),
			Performer: t.Performer().Name(),
			Duration:  strconv.Itoa(t.Duration()),
			Year:      strconv.Itoa(t.Year()),
		})
	}

	if _, err := io.WriteString(w.out, xml.Header+doctype+"\n"); err != nil {
		return 0, fmt.Errorf("ошибка записи XML: %w", err)
	}

	enc := xml.NewEncoder(w.out)
	enc.Indent("", "    ")
	if err := enc.Encode(container); err != nil {
		return 0, fmt.Errorf("ошибка записи XML: %w", err)
	}
	if _, err := io.WriteString(w.out, "\n"); err != nil {
		return 0, fmt.Errorf("ошибка записи XML: %w", err)
	}

	return len(container.Tracks), nil
}

// WriteDTD пишет схему документа
func WriteDTD(out io.Writer) error {
	_, err := io.WriteString(out, DTD)
	return err
}
