package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewXMLWriter(&buf)
	require.NoError(t, err)

	original := sampleTracks()
	written, err := w.WriteAll(append(original, nil))
	require.NoError(t, err)
	assert.Equal(t, len(original), written)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `<!DOCTYPE TrackContainer SYSTEM "TrackContainer.dtd">`)
	assert.Contains(t, out, "<Title>Bohemian Rhapsody</Title>")
	assert.Contains(t, out, "<Duration>355</Duration>")

	r := NewXMLReader(strings.NewReader(out))
	parsed := r.ReadAll()
	require.Len(t, parsed, len(original))
	assert.Equal(t, 0, r.Skipped())
	for i := range original {
		assert.True(t, original[i].Equal(parsed[i]), "трек %d", i)
	}
}

func TestXMLReaderSkipsInvalidTracks(t *testing.T) {
	input := `<?xml version="1.0"?>
<TrackContainer>
    <Track>
        <Title>Good</Title>
        <Writer>A</Writer>
        <Performer>B</Performer>
        <Duration>10</Duration>
        <Year>2000</Year>
    </Track>
    <Track>
        <Title>No year</Title>
        <Writer>A</Writer>
        <Performer>B</Performer>
        <Duration>10</Duration>
    </Track>
    <Track>
        <Title>Bad duration</Title>
        <Writer>A</Writer>
        <Performer>B</Performer>
        <Duration>long</Duration>
        <Year>2000</Year>
    </Track>
    <Track>
        <Title>  Spaced  </Title>
        <Writer> C </Writer>
        <Performer> D </Performer>
        <Duration> 20 </Duration>
        <Year> 2010 </Year>
    </Track>
</TrackContainer>`

	r := NewXMLReader(strings.NewReader(input))
	tracks := r.ReadAll()

	require.Len(t, tracks, 2)
	assert.Equal(t, 2, r.Skipped())
	assert.Equal(t, "Good", tracks[0].Title())
	assert.Equal(t, "Spaced", tracks[1].Title())
	assert.Equal(t, "C", tracks[1].Writer().Name())
	assert.Equal(t, 2010, tracks[1].Year())
}

func TestXMLReaderBrokenDocument(t *testing.T) {
	input := `<TrackContainer><Track><Title>A</Title><Writer>B</Writer>` +
		`<Performer>C</Performer><Duration>1</Duration><Year>2000</Year></Track><Track><Title>`

	r := NewXMLReader(strings.NewReader(input))
	tracks := r.ReadAll()

	assert.Len(t, tracks, 1)
}

func TestXMLWriterRejectsNil(t *testing.T) {
	_, err := NewXMLWriter(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
}

func TestWriteDTD(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDTD(&buf))

	assert.Contains(t, buf.String(), "<!ELEMENT TrackContainer (Track+)>")
	assert.Contains(t, buf.String(), "<!ELEMENT Track (Title,Writer,Performer,Duration,Year)>")
}
