package document

import (
	"regexp"
	"strings"
)

var (
	// A header is a first line of uppercase letters and spaces (accented
	// vowels included), at least 4 characters, with an optional trailing
	// colon. Case- and accent-sensitive: "ESTRATEGIA:" matches,
	// "Estrategia:" does not.
	headerRe = regexp.MustCompile(`^([A-ZÁÉÍÓÚ\s]{4,}):?$`)

	paragraphSplitRe = regexp.MustCompile(`\n\n+`)
)

const bulletMarker = "- "

// Parse converts raw reply text into a Document. It is total: any input,
// including the empty string, yields a document; the worst case is a
// single plain paragraph. Paragraph and line order are preserved exactly.
func Parse(raw string) Document {
	trimmed := strings.TrimSpace(raw)
	paragraphs := paragraphSplitRe.Split(trimmed, -1)

	doc := Document{Paragraphs: make([]Paragraph, 0, len(paragraphs))}
	for _, para := range paragraphs {
		lines := strings.Split(strings.TrimSpace(para), "\n")

		if m := headerRe.FindStringSubmatch(lines[0]); m != nil {
			doc.Paragraphs = append(doc.Paragraphs, Paragraph{
				Title: m[1],
				Lines: parseLines(lines[1:]),
			})
			continue
		}

		doc.Paragraphs = append(doc.Paragraphs, Paragraph{
			Lines: parseLines(lines),
		})
	}
	return doc
}

// parseLines classifies each line as bullet or plain. Blank lines inside
// a paragraph are kept as empty plain lines.
func parseLines(lines []string) []Line {
	out := make([]Line, 0, len(lines))
	for _, l := range lines {
		if strings.HasPrefix(l, bulletMarker) {
			out = append(out, Line{Bullet: true, Text: strings.TrimPrefix(l, bulletMarker)})
			continue
		}
		out = append(out, Line{Text: l})
	}
	return out
}
