package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/mpolanco/oraculo/internal/config"
	"github.com/mpolanco/oraculo/internal/llm"
	"github.com/mpolanco/oraculo/internal/oracle"
	"github.com/mpolanco/oraculo/internal/session"
	"github.com/mpolanco/oraculo/internal/store"
)

type view int

const (
	viewOnboarding view = iota
	viewHome
	viewChat
	viewSetup
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	program  *tea.Program
	quitting bool
}

// NewApp wires config, store, provider, and session together.
func NewApp(logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return nil, err
	}
	st, err := store.NewFileStore(dir)
	if err != nil {
		return nil, err
	}

	s := newState()
	s.cfg = cfg
	s.logger = logger

	a := &App{state: s}

	client := oracle.NewClient(nil, cfg.Temperature, cfg.ThinkingBudget, logger)
	if cfg.HasAPIKey() {
		if p, perr := llm.NewProvider(cfg); perr == nil {
			client.SetProvider(p)
			s.keySelected = true
		}
	}
	s.client = client

	sess, err := session.New(client, st, a, logger)
	if err != nil {
		return nil, err
	}
	s.sess = sess

	switch {
	case !s.keySelected:
		a.view = viewSetup
		s.returnView = viewOnboarding
		if sess.Onboarded() {
			s.returnView = viewHome
		}
	case sess.Onboarded():
		a.view = viewHome
	default:
		a.view = viewOnboarding
	}

	return a, nil
}

// SetProgram stores the program handle so the key selector can be opened
// from a command goroutine.
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

// HasKey reports whether a credential is currently selected. Only read on
// the event loop.
func (a *App) HasKey() bool {
	return a.state.keySelected && a.state.cfg.HasAPIKey()
}

// OpenSelector reopens the key entry view. Safe to call from any
// goroutine; the state change happens on the event loop.
func (a *App) OpenSelector() {
	if a.program != nil {
		a.program.Send(openKeySelectorMsg{})
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.WindowSize(), textinput.Blink}
	switch a.view {
	case viewSetup:
		a.state.apiKeyInput.Focus()
	case viewOnboarding:
		a.state.nameInput.Focus()
	case viewHome:
	}
	return tea.Batch(cmds...)
}

type (
	openKeySelectorMsg struct{}
	consultationMsg    struct{ err error }
	keySavedMsg        struct{}
	keyErrorMsg        struct{ error }
	tickMsg            time.Time
)

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tickMsg:
		if a.state.consulting {
			a.state.spinnerFrame++
			cmds = append(cmds, tick())
		}

	case consultationMsg:
		a.state.consulting = false
		a.state.autoScroll = true
		a.state.scrollOffset = 0
		if msg.err != nil {
			a.state.statusNote = "No se pudo completar la consulta."
			a.state.logger.Warn("submit failed", zap.Error(msg.err))
		}
		if a.view == viewChat {
			a.state.input.Focus()
			cmds = append(cmds, textinput.Blink)
		}

	case openKeySelectorMsg:
		a.state.keySelected = false
		a.state.returnView = a.view
		a.state.setupStep = 1
		a.state.setupErr = ""
		a.view = viewSetup
		a.state.apiKeyInput.Reset()
		a.state.apiKeyInput.Focus()
		cmds = append(cmds, textinput.Blink)

	case keySavedMsg:
		a.state.keyChecking = false
		a.state.keySelected = true
		a.state.setupErr = ""
		if a.state.sess.Onboarded() {
			a.view = a.state.returnView
			if a.view == viewSetup {
				a.view = viewHome
			}
		} else {
			a.view = viewOnboarding
			a.state.nameInput.Focus()
		}
		cmds = append(cmds, textinput.Blink)

	case keyErrorMsg:
		a.state.keyChecking = false
		a.state.setupErr = msg.error.Error()
	}

	// Route typing to the input owning the current view
	switch a.view {
	case viewOnboarding:
		var cmd tea.Cmd
		switch a.state.onboardStep {
		case 0:
			a.state.nameInput, cmd = a.state.nameInput.Update(msg)
		case 1:
			a.state.bioInput, cmd = a.state.bioInput.Update(msg)
		case 2:
			a.state.goalInput, cmd = a.state.goalInput.Update(msg)
		}
		cmds = append(cmds, cmd)
	case viewSetup:
		if a.state.setupStep == 1 {
			var cmd tea.Cmd
			a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	case viewHome:
		if a.state.editingGoal {
			var cmd tea.Cmd
			a.state.goalInput, cmd = a.state.goalInput.Update(msg)
			cmds = append(cmds, cmd)
		}
	case viewChat:
		if !a.state.consulting {
			var cmd tea.Cmd
			a.state.input, cmd = a.state.input.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewOnboarding:
		return a.handleOnboardingKey(msg)
	case viewHome:
		return a.handleHomeKey(msg)
	case viewChat:
		return a.handleChatKey(msg)
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Quit) || msg.String() == "enter" {
			a.view = a.state.returnView
		}
		return nil
	}
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewOnboarding:
		return a.renderOnboarding()
	case viewHome:
		return a.renderHome()
	case viewChat:
		return a.renderChat()
	case viewSetup:
		return a.renderSetup()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderHome()
	}
}
