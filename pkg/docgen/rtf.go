package docgen

import (
	"strconv"
	"strings"
)

// RTFGenerator renders documents as Rich Text Format. RTF opens in every
// office suite without extra dependencies, which is all the export needs.
type RTFGenerator struct{}

var _ Generator = &RTFGenerator{}

func NewRTFGenerator() *RTFGenerator {
	return &RTFGenerator{}
}

func (g *RTFGenerator) ContentType() string {
	return "application/rtf"
}

func (g *RTFGenerator) FileExtension() string {
	return ".rtf"
}

func (g *RTFGenerator) Generate(doc Document) ([]byte, error) {
	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0 Helvetica;}}\f0\fs22` + "\n")

	if doc.Title != "" {
		b.WriteString(`{\fs32\b `)
		writeEscaped(&b, doc.Title)
		b.WriteString(`\par}\par` + "\n")
	}

	for _, s := range doc.Sections {
		if s.Heading == "" && s.Body == "" {
			continue
		}
		if s.Heading != "" {
			b.WriteString(`{\fs26\b `)
			writeEscaped(&b, s.Heading)
			b.WriteString(`\par}` + "\n")
		}
		if s.Body != "" {
			for _, line := range strings.Split(s.Body, "\n") {
				writeEscaped(&b, line)
				b.WriteString(`\par` + "\n")
			}
		}
		b.WriteString(`\par` + "\n")
	}

	b.WriteString("}")
	return []byte(b.String()), nil
}

// writeEscaped emits text with RTF control characters escaped and
// non-ASCII runes as \uN unicode escapes.
func writeEscaped(b *strings.Builder, text string) {
	for _, r := range text {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == '{':
			b.WriteString(`\{`)
		case r == '}':
			b.WriteString(`\}`)
		case r == '\n' || r == '\r':
			// handled by the caller splitting on newlines
		case r < 128:
			b.WriteRune(r)
		default:
			b.WriteString(`\u`)
			b.WriteString(strconv.Itoa(int(int16(r))))
			b.WriteString("?")
		}
	}
}
