package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mpolanco/oraculo/internal/oracle"
)

func (a *App) handleHomeKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.editingGoal {
		switch msg.String() {
		case "enter":
			if err := a.state.sess.UpdateGoal(a.state.goalInput.Value()); err != nil {
				// Empty goal: keep editing.
				return nil
			}
			a.state.editingGoal = false
			a.state.goalInput.Reset()
		case "esc":
			a.state.editingGoal = false
			a.state.goalInput.Reset()
		}
		return nil
	}

	if a.state.confirmReset {
		if msg.String() == "x" {
			a.state.confirmReset = false
			if err := a.state.sess.Reset(); err != nil {
				a.state.statusNote = "No se pudo reiniciar el perfil."
				return nil
			}
			a.view = viewOnboarding
			a.state.onboardStep = 0
			a.state.nameInput.Reset()
			a.state.bioInput.Reset()
			a.state.goalInput.Reset()
			a.state.nameInput.Focus()
			return textinput.Blink
		}
		a.state.confirmReset = false
		return nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.state.returnView = viewHome
		a.view = viewHelp
		return nil
	}

	switch msg.String() {
	case "n":
		if _, err := a.state.sess.StartNew(); err != nil {
			a.state.statusNote = "No se pudo iniciar la consulta."
			return nil
		}
		a.enterChat()
		return textinput.Blink

	case "c":
		if len(a.state.sess.History()) == 0 {
			return nil
		}
		a.enterChat()
		return textinput.Blink

	case "g":
		a.state.editingGoal = true
		a.state.goalInput.SetValue(a.state.sess.Profile().ProfessionalGoal)
		a.state.goalInput.Focus()
		return textinput.Blink

	case "x":
		a.state.confirmReset = true
		return nil
	}

	return nil
}

func (a *App) enterChat() {
	a.view = viewChat
	a.state.scrollOffset = 0
	a.state.autoScroll = true
	a.state.statusNote = ""
	a.state.input.Focus()
}

func (a *App) renderHome() string {
	var b strings.Builder

	title := styleTitle.Render("NI MAGIA NI MÉTODO")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	sub := styleSubtitle.Render("El Templo de la Agudeza")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	b.WriteString("\n\n")

	profile := a.state.sess.Profile()
	boxWidth := min(64, max(40, a.width-8))

	var card strings.Builder
	card.WriteString(styleSectionTitle.Render("BUSCADOR ACTUAL"))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(profile.Name))
	card.WriteString("\n")
	card.WriteString(styleSubtitle.Render(truncate(profile.Bio, boxWidth-4)))
	card.WriteString("\n\n")
	card.WriteString(styleModeTag.Render("Meta profesional:"))
	card.WriteString("\n")
	if a.state.editingGoal {
		card.WriteString(a.state.goalInput.View())
	} else {
		card.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Render(wrapText(profile.ProfessionalGoal, boxWidth-4)))
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleAccentBox.Width(boxWidth).Render(card.String())))
	b.WriteString("\n\n")

	// Last interactions preview
	tail := a.state.sess.HistoryTail(3)
	if len(tail) > 0 {
		var hist strings.Builder
		hist.WriteString(styleSectionTitle.Render("HISTORIAL DE REVELACIONES"))
		hist.WriteString("\n\n")
		for _, t := range tail {
			who := "Oráculo"
			if t.Role == oracle.RoleUser {
				who = "Tú"
			}
			hist.WriteString(styleModeTag.Render(who))
			hist.WriteString("\n")
			hist.WriteString(styleSubtitle.Render(truncate(strings.ReplaceAll(t.Content, "\n", " "), boxWidth-4)))
			hist.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleBox.Width(boxWidth).Render(hist.String())))
		b.WriteString("\n\n")
	} else {
		empty := styleSubtitle.Render("Aún no has planteado nudos al Oráculo.")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, empty))
		b.WriteString("\n\n")
	}

	var status string
	switch {
	case a.state.confirmReset:
		status = styleError.Render("¿Reiniciar perfil e historial? [x] confirmar, cualquier otra tecla cancela")
	case a.state.editingGoal:
		status = styleStatusBar.Render("[Enter] Guardar meta  [Esc] Cancelar")
	default:
		parts := []string{"[n] Nueva consulta"}
		if len(a.state.sess.History()) > 0 {
			parts = append(parts, "[c] Continuar diálogo")
		}
		parts = append(parts, "[g] Cambiar meta", "[x] Reiniciar perfil", "[?] Ayuda", "[Esc] Salir")
		status = styleStatusBar.Render(strings.Join(parts, "  "))
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	if a.state.statusNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleError.Render(a.state.statusNote)))
	}

	return b.String()
}
