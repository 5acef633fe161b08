package docgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRTFGeneratorProducesValidEnvelope(t *testing.T) {
	gen := NewRTFGenerator()

	blob, err := gen.Generate(Document{
		Title: "Anforderungsprofil Vertriebsleiter",
		Sections: []Section{
			{Heading: "Anforderungsanalyse", Body: "Zeile eins\nZeile zwei"},
			{Heading: "Interviewleitfaden", Body: "Frage 1"},
		},
	})
	require.NoError(t, err)

	text := string(blob)
	assert.True(t, strings.HasPrefix(text, `{\rtf1`))
	assert.True(t, strings.HasSuffix(text, "}"))
	assert.Contains(t, text, "Anforderungsanalyse")
	assert.Contains(t, text, "Zeile eins")
	assert.Contains(t, text, "Frage 1")
}

func TestRTFGeneratorEscapesControlCharacters(t *testing.T) {
	gen := NewRTFGenerator()

	blob, err := gen.Generate(Document{
		Sections: []Section{{Body: `pfad\zu{datei}`}},
	})
	require.NoError(t, err)

	text := string(blob)
	assert.Contains(t, text, `pfad\\zu\{datei\}`)
}

func TestRTFGeneratorEncodesUmlauts(t *testing.T) {
	gen := NewRTFGenerator()

	blob, err := gen.Generate(Document{
		Sections: []Section{{Body: "Führungskompetenz"}},
	})
	require.NoError(t, err)

	// ü is code point 252
	assert.Contains(t, string(blob), `\u252?`)
	assert.NotContains(t, string(blob), "ü")
}

func TestRTFGeneratorSkipsEmptySections(t *testing.T) {
	gen := NewRTFGenerator()

	blob, err := gen.Generate(Document{
		Sections: []Section{{}, {Heading: "Befunde", Body: "Text"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(string(blob), "Befunde"))
}

func TestRTFGeneratorMetadata(t *testing.T) {
	gen := NewRTFGenerator()

	assert.Equal(t, "application/rtf", gen.ContentType())
	assert.Equal(t, ".rtf", gen.FileExtension())
}
