package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTitle string
	}{
		{
			name:      "uppercase header with colon",
			input:     "ESTRATEGIA:\nPrimera línea del análisis.",
			wantTitle: "ESTRATEGIA",
		},
		{
			name:      "uppercase header without colon",
			input:     "ESTRATEGIA\nPrimera línea del análisis.",
			wantTitle: "ESTRATEGIA",
		},
		{
			name:      "accented header",
			input:     "TÁCTICA DE DIFUSIÓN:\nPublica el martes.",
			wantTitle: "TÁCTICA DE DIFUSIÓN",
		},
		{
			name:      "mixed case is not a header",
			input:     "Estrategia:\nPrimera línea.",
			wantTitle: "",
		},
		{
			name:      "too short is not a header",
			input:     "PLA:\nPrimera línea.",
			wantTitle: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input)
			require.Len(t, doc.Paragraphs, 1)
			assert.Equal(t, tt.wantTitle, doc.Paragraphs[0].Title)
			assert.Equal(t, tt.wantTitle != "", doc.Paragraphs[0].IsSection())
		})
	}
}

func TestParseBullets(t *testing.T) {
	doc := Parse("HALLAZGOS:\n- hallazgo uno\n- hallazgo dos\n-sin espacio no es viñeta")
	require.Len(t, doc.Paragraphs, 1)

	lines := doc.Paragraphs[0].Lines
	require.Len(t, lines, 3)

	assert.True(t, lines[0].Bullet)
	assert.Equal(t, "hallazgo uno", lines[0].Text)
	assert.True(t, lines[1].Bullet)
	assert.Equal(t, "hallazgo dos", lines[1].Text)

	// "-" without a trailing space stays a plain line, marker intact.
	assert.False(t, lines[2].Bullet)
	assert.Equal(t, "-sin espacio no es viñeta", lines[2].Text)
}

func TestParseParagraphSplit(t *testing.T) {
	doc := Parse("Primer párrafo.\n\nSegundo párrafo.\n\n\n\nTercer párrafo.")
	require.Len(t, doc.Paragraphs, 3)
	for i, want := range []string{"Primer párrafo.", "Segundo párrafo.", "Tercer párrafo."} {
		require.Len(t, doc.Paragraphs[i].Lines, 1)
		assert.Equal(t, want, doc.Paragraphs[i].Lines[0].Text)
	}
}

func TestParsePlainText(t *testing.T) {
	// A reply with no structure at all is a single plain paragraph.
	doc := Parse("El oráculo responde en prosa llana sin encabezados.")
	require.Len(t, doc.Paragraphs, 1)
	assert.False(t, doc.Paragraphs[0].IsSection())
	require.Len(t, doc.Paragraphs[0].Lines, 1)
	assert.Equal(t, "El oráculo responde en prosa llana sin encabezados.", doc.Paragraphs[0].Lines[0].Text)
}

func TestParseHeaderOnlySection(t *testing.T) {
	doc := Parse("DIAGNÓSTICO")
	require.Len(t, doc.Paragraphs, 1)
	assert.Equal(t, "DIAGNÓSTICO", doc.Paragraphs[0].Title)
	assert.Empty(t, doc.Paragraphs[0].Lines)
}

func TestParseEmptyInput(t *testing.T) {
	doc := Parse("")
	require.Len(t, doc.Paragraphs, 1)
	assert.False(t, doc.Paragraphs[0].IsSection())
}

func TestParsePreservesOrder(t *testing.T) {
	input := "APERTURA:\nLa tesis.\n\nProsa intermedia sin título.\n\nCIERRE:\n- remate"
	doc := Parse(input)
	require.Len(t, doc.Paragraphs, 3)
	assert.Equal(t, "APERTURA", doc.Paragraphs[0].Title)
	assert.Equal(t, "", doc.Paragraphs[1].Title)
	assert.Equal(t, "CIERRE", doc.Paragraphs[2].Title)
	require.Len(t, doc.Paragraphs[2].Lines, 1)
	assert.True(t, doc.Paragraphs[2].Lines[0].Bullet)
	assert.Equal(t, "remate", doc.Paragraphs[2].Lines[0].Text)
}
