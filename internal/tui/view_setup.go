package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mpolanco/oraculo/internal/config"
	"github.com/mpolanco/oraculo/internal/llm"
)

// The setup view selects a model and acquires the API key. It is shown on
// first run and reopened whenever the provider rejects the credential.
func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	if a.state.keyChecking {
		return nil
	}

	switch a.state.setupStep {
	case 0: // Model selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedModel > 0 {
				a.state.selectedModel--
			}
		case "down", "j":
			if a.state.selectedModel < len(config.Models)-1 {
				a.state.selectedModel++
			}
		case "enter":
			a.state.cfg.Model = config.Models[a.state.selectedModel].ID
			a.state.setupStep = 1
			a.state.apiKeyInput.Focus()
			return nil
		case "esc":
			if a.HasKey() {
				a.view = a.state.returnView
				return nil
			}
			a.quitting = true
			return tea.Quit
		}

	case 1: // API key entry
		switch msg.String() {
		case "enter":
			key := strings.TrimSpace(a.state.apiKeyInput.Value())
			if key == "" {
				return nil
			}
			a.state.keyChecking = true
			a.state.setupErr = ""
			return a.saveKey(key)
		case "esc":
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return nil
		}
	}
	return nil
}

// saveKey persists the credential, rebuilds the provider, and pings the
// model to validate both before leaving the view.
func (a *App) saveKey(key string) tea.Cmd {
	cfg := a.state.cfg
	client := a.state.client
	return func() tea.Msg {
		cfg.APIKey = key
		if err := cfg.Save(); err != nil {
			return keyErrorMsg{err}
		}

		provider, err := llm.NewProvider(cfg)
		if err != nil {
			return keyErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := provider.Ping(ctx); err != nil {
			return keyErrorMsg{fmt.Errorf("la llave no fue aceptada: %w", err)}
		}

		client.SetProvider(provider)
		return keySavedMsg{}
	}
}

func (a *App) renderSetup() string {
	var b strings.Builder

	title := styleTitle.Render("NI MAGIA NI MÉTODO")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")
	sub := styleSubtitle.Render("Acceso al Oráculo")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, sub))
	b.WriteString("\n\n")

	boxWidth := min(64, max(40, a.width-8))
	var body strings.Builder

	switch a.state.setupStep {
	case 0:
		body.WriteString(styleSectionTitle.Render("ELIGE EL MODELO"))
		body.WriteString("\n\n")
		for i, m := range config.Models {
			cursor := "  "
			line := fmt.Sprintf("%s — %s", m.Name, m.Description)
			if i == a.state.selectedModel {
				cursor = "> "
				line = lipgloss.NewStyle().Foreground(colorAccent).Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(colorWhite).Render(line)
			}
			body.WriteString(cursor + line + "\n")
		}

	case 1:
		body.WriteString(styleSectionTitle.Render("LLAVE DE ACCESO"))
		body.WriteString("\n\n")
		body.WriteString(styleSubtitle.Render("Consigue una llave en https://aistudio.google.com/apikey"))
		body.WriteString("\n\n")
		body.WriteString(a.state.apiKeyInput.View())
		body.WriteString("\n")
		if a.state.keyChecking {
			body.WriteString("\n")
			body.WriteString(styleSubtitle.Render("Verificando la llave..."))
		}
		if a.state.setupErr != "" {
			body.WriteString("\n")
			body.WriteString(styleError.Render(wrapText(a.state.setupErr, boxWidth-4)))
		}
	}

	box := styleAccentBox.Width(boxWidth).Render(body.String())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Continuar  [Esc] Atrás")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
