package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/mpolanco/oraculo/internal/config"
	"github.com/mpolanco/oraculo/internal/oracle"
	"github.com/mpolanco/oraculo/internal/session"
)

type state struct {
	// Wiring
	cfg    *config.Config
	sess   *session.Session
	client *oracle.Client
	logger *zap.Logger

	// Onboarding wizard
	onboardStep int
	nameInput   textinput.Model
	bioInput    textinput.Model
	goalInput   textinput.Model

	// Key/model setup
	keySelected   bool
	setupStep     int
	selectedModel int
	apiKeyInput   textinput.Model
	setupErr      string
	returnView    view
	keyChecking   bool

	// Home
	editingGoal  bool
	confirmReset bool

	// Chat
	input        textinput.Model
	consulting   bool
	consultStart time.Time
	spinnerFrame int
	scrollOffset int
	autoScroll   bool
	statusNote   string
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Plantea tu nudo estratégico... (/ayuda para comandos)"
	input.CharLimit = 1000
	input.Width = 60

	name := textinput.New()
	name.Placeholder = "Tu nombre o alias..."
	name.CharLimit = 80
	name.Width = 50

	bio := textinput.New()
	bio.Placeholder = "Tu industria, rol o desafío actual..."
	bio.CharLimit = 300
	bio.Width = 50

	goal := textinput.New()
	goal.Placeholder = "Ej: Ser reconocido como líder de opinión en sostenibilidad..."
	goal.CharLimit = 300
	goal.Width = 50

	apiKey := textinput.New()
	apiKey.Placeholder = "Pega tu llave de API de Gemini..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	return &state{
		input:       input,
		nameInput:   name,
		bioInput:    bio,
		goalInput:   goal,
		apiKeyInput: apiKey,
		autoScroll:  true,
	}
}
