package docgen

// Document is the provider-agnostic shape of an export: a title followed
// by headed text sections. Empty sections are skipped by generators.
type Document struct {
	Title    string
	Sections []Section
}

type Section struct {
	Heading string
	Body    string
}

// Generator renders a Document into an opaque binary blob. The export
// surface only ever sees this interface, never a concrete format.
type Generator interface {
	Generate(doc Document) ([]byte, error)
	ContentType() string
	FileExtension() string
}
