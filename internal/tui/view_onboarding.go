package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Onboarding collects the three profile fields in sequence. The Iniciación
// cannot complete with an empty field; an empty enter just stays put.
func (a *App) handleOnboardingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.state.onboardStep > 0 {
			a.state.onboardStep--
			return nil
		}
		a.quitting = true
		return tea.Quit

	case msg.String() == "enter":
		switch a.state.onboardStep {
		case 0:
			if strings.TrimSpace(a.state.nameInput.Value()) == "" {
				return nil
			}
			a.state.onboardStep = 1
			a.state.bioInput.Focus()
			return textinput.Blink
		case 1:
			if strings.TrimSpace(a.state.bioInput.Value()) == "" {
				return nil
			}
			a.state.onboardStep = 2
			a.state.goalInput.Focus()
			return textinput.Blink
		case 2:
			if strings.TrimSpace(a.state.goalInput.Value()) == "" {
				return nil
			}
			err := a.state.sess.Onboard(
				a.state.nameInput.Value(),
				a.state.bioInput.Value(),
				a.state.goalInput.Value(),
			)
			if err != nil {
				// Incomplete profile: stay on the form, nothing mutated.
				return nil
			}
			a.state.goalInput.Reset()
			a.view = viewHome
			return nil
		}
	}
	return nil
}

func (a *App) renderOnboarding() string {
	var b strings.Builder

	title := styleTitle.Render("NI MAGIA NI MÉTODO")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	sub := styleSubtitle.Render(`"Para desatar el nudo, primero debemos conocer la mano que lo sostiene."`)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	b.WriteString("\n\n")

	labels := []string{
		"¿Cuál es tu nombre?",
		"Perfil del Buscador",
		"¿Cuál es tu meta profesional?",
	}
	inputs := []string{
		a.state.nameInput.View(),
		a.state.bioInput.View(),
		a.state.goalInput.View(),
	}

	var form strings.Builder
	for i := 0; i <= a.state.onboardStep && i < len(labels); i++ {
		form.WriteString(styleSubtitle.Render(labels[i]))
		form.WriteString("\n")
		if i == a.state.onboardStep {
			form.WriteString(inputs[i])
		} else {
			value := [3]string{
				a.state.nameInput.Value(),
				a.state.bioInput.Value(),
				a.state.goalInput.Value(),
			}[i]
			form.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Render(value))
		}
		form.WriteString("\n\n")
	}
	if a.state.onboardStep == 2 {
		form.WriteString(styleSubtitle.Render("El Oráculo diseñará cada respuesta y post para impulsarte hacia este objetivo."))
		form.WriteString("\n")
	}

	box := styleAccentBox.Width(min(64, max(40, a.width-8))).Render(form.String())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Continuar  [Esc] Atrás  [Ctrl+C] Salir")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
