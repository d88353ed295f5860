package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mpolanco/oraculo/internal/oracle"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleTitle.Render("AYUDA DEL ORÁCULO")))
	b.WriteString("\n\n")

	section := func(title string, rows [][2]string) {
		b.WriteString("  " + styleSectionTitle.Render(title) + "\n")
		for _, r := range rows {
			cmd := lipgloss.NewStyle().Foreground(colorAccent).Width(26).Render("  " + r[0])
			b.WriteString(cmd + lipgloss.NewStyle().Foreground(colorWhite).Render(r[1]) + "\n")
		}
		b.WriteString("\n")
	}

	section("COMANDOS", [][2]string{
		{"/modo <nombre>", "Cambia el modo operativo"},
		{"/estilo <tono>", "Cambia el estilo de escritura"},
		{"/cruces a | b | c", "Fija las tres industrias del modo combinatoria"},
		{"/meta <texto>", "Actualiza tu meta profesional"},
		{"/nueva", "Inicia una consulta nueva"},
		{"/limpiar", "Borra el historial y vuelve al templo"},
		{"/inicio", "Vuelve al templo"},
		{"/llave", "Cambia la llave de acceso"},
		{"/salir", "Cierra el oráculo"},
	})

	section("MODOS ANALÍTICOS", modeRows(oracle.AnalyticalModes))
	section("MODOS DE ESCRITOR", modeRows(oracle.WriterModes))

	styleNames := make([]string, len(oracle.Styles))
	for i, s := range oracle.Styles {
		styleNames[i] = string(s)
	}
	b.WriteString("  " + styleSectionTitle.Render("ESTILOS") + "\n")
	b.WriteString("    " + lipgloss.NewStyle().Foreground(colorWhite).Render(strings.Join(styleNames, ", ")) + "\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
		styleStatusBar.Render("[Esc/Enter] Volver")))
	return b.String()
}

func modeRows(modes []oracle.Mode) [][2]string {
	rows := make([][2]string, len(modes))
	for i, m := range modes {
		rows[i] = [2]string{strings.ToLower(string(m)), m.DisplayName()}
	}
	return rows
}
