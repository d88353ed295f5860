package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mpolanco/oraculo/internal/oracle"
)

// Loading messages shown while the oracle deliberates
var loadingMessages = []string{
	"El Oráculo está ejerciendo la Agudeza...",
	"Buscando el hallazgo en lo inesperado...",
	"Cruzando valor conceptual...",
	"Sopesando el Kairos...",
}

var spinnerFrames = []string{"◐", "◓", "◑", "◒"}

func (a *App) handleChatKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if !a.state.consulting {
			a.view = viewHome
		}
		return nil

	case "up":
		a.state.autoScroll = false
		a.state.scrollOffset++
		return nil

	case "down":
		if a.state.scrollOffset > 0 {
			a.state.scrollOffset--
		}
		if a.state.scrollOffset == 0 {
			a.state.autoScroll = true
		}
		return nil

	case "enter":
		if a.state.consulting {
			return nil
		}
		return a.handleChatInput()
	}
	return nil
}

func (a *App) handleChatInput() tea.Cmd {
	raw := strings.TrimSpace(a.state.input.Value())
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "/") {
		a.state.input.Reset()
		return a.handleCommand(raw)
	}

	// Submission is gated on a selected credential.
	if !a.HasKey() {
		a.OpenSelector()
		return nil
	}

	a.state.input.Reset()
	a.state.input.Blur()
	a.state.consulting = true
	a.state.consultStart = time.Now()
	a.state.statusNote = ""

	sess := a.state.sess
	return tea.Batch(tick(), func() tea.Msg {
		_, err := sess.Submit(context.Background(), raw)
		return consultationMsg{err: err}
	})
}

// handleCommand dispatches the chat slash commands.
func (a *App) handleCommand(raw string) tea.Cmd {
	cmd, arg, _ := strings.Cut(raw[1:], " ")
	cmd = strings.ToLower(cmd)
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "modo", "m":
		mode := oracle.Mode(strings.ToUpper(arg))
		if !mode.Valid() {
			a.state.statusNote = "Modo desconocido: " + arg
			return nil
		}
		a.state.sess.SetMode(mode)
		a.state.statusNote = ""

	case "estilo", "e":
		style := parseStyle(arg)
		if style == "" {
			a.state.statusNote = "Estilo desconocido: " + arg
			return nil
		}
		a.state.sess.SetStyle(style)
		a.state.statusNote = ""

	case "cruces":
		parts := strings.SplitN(arg, "|", 3)
		var c oracle.CombinatoriaInputs
		if len(parts) > 0 {
			c.Industry1 = strings.TrimSpace(parts[0])
		}
		if len(parts) > 1 {
			c.Industry2 = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			c.Industry3 = strings.TrimSpace(parts[2])
		}
		a.state.sess.SetCombinatoria(c)
		a.state.sess.SetMode(oracle.ModeCombinatoria)
		a.state.statusNote = ""

	case "meta":
		if err := a.state.sess.UpdateGoal(arg); err != nil {
			a.state.statusNote = "La meta no puede quedar vacía."
			return nil
		}
		a.state.statusNote = ""

	case "nueva", "n":
		if _, err := a.state.sess.StartNew(); err != nil {
			a.state.statusNote = "No se pudo iniciar la consulta."
			return nil
		}
		a.state.scrollOffset = 0
		a.state.autoScroll = true

	case "limpiar":
		if err := a.state.sess.ClearHistory(); err != nil {
			a.state.statusNote = "No se pudo limpiar el historial."
			return nil
		}
		a.view = viewHome

	case "inicio":
		a.view = viewHome

	case "llave":
		a.OpenSelector()

	case "ayuda", "h":
		a.state.returnView = viewChat
		a.view = viewHelp

	case "salir", "q":
		a.quitting = true
		return tea.Quit

	default:
		a.state.statusNote = "Comando desconocido: /" + cmd
	}
	return nil
}

// parseStyle resolves a tone label, accepting the unaccented spelling of
// académico.
func parseStyle(arg string) oracle.Style {
	arg = strings.ToLower(strings.TrimSpace(arg))
	if arg == "academico" {
		return oracle.StyleAcademico
	}
	s := oracle.Style(arg)
	if s.Valid() {
		return s
	}
	return ""
}

func (a *App) renderChat() string {
	boxWidth := min(76, a.width-4)
	leftPad := (a.width - boxWidth) / 2
	if leftPad < 2 {
		leftPad = 2
	}
	indent := strings.Repeat(" ", leftPad)

	headerHeight := 3
	inputHeight := 4
	if a.state.consulting {
		inputHeight = 2
	}
	availableHeight := a.height - headerHeight - inputHeight
	if availableHeight < 5 {
		availableHeight = 5
	}

	// === HEADER ===
	var header strings.Builder
	title := styleTitle.Render("NI MAGIA NI MÉTODO")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	header.WriteString("\n")
	header.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleModeTag.Render(a.modeLine())))
	header.WriteString("\n\n")

	// === MESSAGE LINES ===
	var messageLines []string
	for _, turn := range a.state.sess.History() {
		if turn.Role == oracle.RoleUser {
			content := wrapText(turn.Content, boxWidth-4)
			for j, line := range strings.Split(content, "\n") {
				prefix := "> "
				if j > 0 {
					prefix = "  "
				}
				styled := lipgloss.NewStyle().Foreground(colorUser).Render(prefix + line)
				messageLines = append(messageLines, indent+styled)
			}
		} else {
			messageLines = append(messageLines, renderReply(turn.Content, boxWidth-4, indent)...)
		}
		messageLines = append(messageLines, "")
	}

	if a.state.consulting {
		spinner := spinnerFrames[a.state.spinnerFrame%len(spinnerFrames)]
		elapsed := time.Since(a.state.consultStart).Seconds()
		msgIdx := int(elapsed/2) % len(loadingMessages)
		loading := lipgloss.NewStyle().Foreground(colorAccent).Italic(true).
			Render(fmt.Sprintf("%s %s", spinner, loadingMessages[msgIdx]))
		messageLines = append(messageLines, indent+loading)
	}

	// === SCROLL ===
	totalLines := len(messageLines)
	maxScroll := totalLines - availableHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if a.state.scrollOffset > maxScroll {
		a.state.scrollOffset = maxScroll
	}
	if a.state.autoScroll {
		a.state.scrollOffset = 0
	}
	endIdx := totalLines - a.state.scrollOffset
	startIdx := endIdx - availableHeight
	if startIdx < 0 {
		startIdx = 0
	}
	var visibleLines []string
	if startIdx < endIdx {
		visibleLines = messageLines[startIdx:endIdx]
	}

	// === INPUT/STATUS ===
	var footer strings.Builder
	if !a.state.consulting {
		if a.state.sess.Mode().IsWriter() {
			a.state.input.Placeholder = fmt.Sprintf("Escribe sobre un tema en estilo %s...", a.state.sess.Style())
		} else {
			a.state.input.Placeholder = "Plantea tu nudo estratégico... (/ayuda para comandos)"
		}
		inputBox := styleBox.Width(boxWidth).Render(a.state.input.View())
		footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
		footer.WriteString("\n")
	}

	var status string
	if a.state.consulting {
		elapsed := time.Since(a.state.consultStart).Seconds()
		status = styleStatusBar.Render(fmt.Sprintf("%.1fs  consultando...", elapsed))
	} else {
		var parts []string
		if a.state.scrollOffset > 0 {
			parts = append(parts, fmt.Sprintf("[scroll: %d]", a.state.scrollOffset))
		}
		if a.state.statusNote != "" {
			parts = append(parts, a.state.statusNote)
		}
		parts = append(parts, "[↑/↓] Desplazar  [/ayuda] Comandos  [Esc] Volver al Templo")
		status = styleStatusBar.Render(strings.Join(parts, "  "))
	}
	footer.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	// === COMBINE ===
	var messageArea strings.Builder
	for i, line := range visibleLines {
		messageArea.WriteString(line)
		if i < len(visibleLines)-1 {
			messageArea.WriteString("\n")
		}
	}
	padding := availableHeight - len(visibleLines)
	if padding > 0 {
		if len(visibleLines) > 0 {
			messageArea.WriteString("\n")
		}
		messageArea.WriteString(strings.Repeat("\n", padding-1))
	}

	return header.String() + messageArea.String() + "\n" + footer.String()
}

// modeLine describes the active strategic frame in the chat header.
func (a *App) modeLine() string {
	sess := a.state.sess
	mode := sess.Mode()
	line := "Modo: " + mode.DisplayName()
	if mode.IsWriter() {
		line += "  Estilo: " + string(sess.Style())
	}
	if mode == oracle.ModeCombinatoria {
		c := sess.Combinatoria()
		if c.Complete() {
			line += fmt.Sprintf("  Cruces: %s, %s, %s", c.Industry1, c.Industry2, c.Industry3)
		} else {
			line += "  Cruces: (usa /cruces a | b | c)"
		}
	}
	return line
}

// wrapText wraps text to fit within maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}
	if len(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += len(word)
	}

	return result.String()
}
