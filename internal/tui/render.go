package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mpolanco/oraculo/internal/document"
)

// renderReply lays out an oracle reply: section titles in gold, bullets
// with a dot marker, plain prose wrapped to the column width.
func renderReply(raw string, maxWidth int, indent string) []string {
	doc := document.Parse(raw)

	var out []string
	for i, para := range doc.Paragraphs {
		if i > 0 {
			out = append(out, "")
		}
		if para.IsSection() {
			out = append(out, indent+styleSectionTitle.Render(para.Title))
		}
		for _, line := range para.Lines {
			if line.Bullet {
				wrapped := wrapText(line.Text, maxWidth-4)
				for j, w := range strings.Split(wrapped, "\n") {
					marker := "• "
					if j > 0 {
						marker = "  "
					}
					out = append(out, indent+"  "+lipgloss.NewStyle().Foreground(colorWhite).Render(marker+w))
				}
			} else {
				wrapped := wrapText(line.Text, maxWidth)
				for _, w := range strings.Split(wrapped, "\n") {
					out = append(out, indent+lipgloss.NewStyle().Foreground(colorWhite).Render(w))
				}
			}
		}
	}
	return out
}
