// Package document turns the oracle's raw reply text into a structured
// document for rendering. The oracle is instructed to answer with
// uppercase headers followed by a colon and single-dash bullets instead
// of Markdown; this package is the lexer for that convention.
package document

// Document is the parsed form of one assistant reply: an ordered list of
// paragraphs, each either a titled section or a plain group of lines.
// It is derived fresh from the raw text on every render and never
// persisted.
type Document struct {
	Paragraphs []Paragraph
}

// Paragraph is either a section (Title non-empty) or a plain line group.
type Paragraph struct {
	Title string
	Lines []Line
}

// IsSection reports whether the paragraph carries a header.
func (p Paragraph) IsSection() bool {
	return p.Title != ""
}

// Line is one line of a paragraph, bullet or plain.
type Line struct {
	Bullet bool
	Text   string
}
