// Package session holds the running consultation: the seeker's profile,
// the conversation log, the active mode, and the orchestration of one
// submission from user text to appended assistant turn.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mpolanco/oraculo/internal/oracle"
	"github.com/mpolanco/oraculo/internal/prompt"
	"github.com/mpolanco/oraculo/internal/store"
)

var (
	// ErrConsultationInFlight rejects a submission while another call is
	// outstanding. Submissions are strictly serialized.
	ErrConsultationInFlight = errors.New("session: a consultation is already in flight")

	// ErrEmptyInput rejects a blank submission.
	ErrEmptyInput = errors.New("session: empty input")

	// ErrNoProfile rejects consultation before onboarding.
	ErrNoProfile = errors.New("session: no profile")
)

// KeySelector is the credential interaction. HasKey gates submission;
// OpenSelector is invoked reactively when the provider rejects the
// credential, and resolves once the user picks a new one.
type KeySelector interface {
	HasKey() bool
	OpenSelector()
}

// Session is the explicit context threaded through the prompt compiler
// and the oracle client. Submit runs on a command goroutine while the
// event loop keeps reading state for rendering, so every field lives
// under mu; the blocking provider call itself runs unlocked on a
// snapshot.
type Session struct {
	mu       sync.Mutex
	inFlight bool

	profile      *oracle.UserProfile
	log          *oracle.ConversationLog
	mode         oracle.Mode
	style        oracle.Style
	combinatoria oracle.CombinatoriaInputs

	client *oracle.Client
	store  store.Store
	keys   KeySelector
	logger *zap.Logger
}

// New creates a session and restores profile and history from the store.
func New(client *oracle.Client, st store.Store, keys KeySelector, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		log:    oracle.NewConversationLog(),
		mode:   oracle.ModeAuto,
		style:  oracle.DefaultStyle,
		client: client,
		store:  st,
		keys:   keys,
		logger: logger,
	}

	var profile oracle.UserProfile
	ok, err := st.Load(store.SlotProfile, &profile)
	if err != nil {
		return nil, fmt.Errorf("session: load profile: %w", err)
	}
	if ok && profile.Complete() {
		s.profile = &profile
	}

	if _, err := st.Load(store.SlotHistory, s.log); err != nil {
		return nil, fmt.Errorf("session: load history: %w", err)
	}

	return s, nil
}

// Onboarded reports whether a profile exists.
func (s *Session) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Complete()
}

// Profile returns a copy of the current profile, nil before onboarding.
func (s *Session) Profile() *oracle.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// Onboard validates and persists the seeker's profile. A submission with
// any empty field is rejected without mutating anything.
func (s *Session) Onboard(name, bio, goal string) error {
	p, err := oracle.NewUserProfile(name, bio, goal)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	if err := s.store.Save(store.SlotProfile, p); err != nil {
		return fmt.Errorf("session: save profile: %w", err)
	}
	s.logger.Info("profile created", zap.String("name", p.Name))
	return nil
}

// UpdateGoal replaces the professional goal and persists the profile.
func (s *Session) UpdateGoal(goal string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.profile.Complete() {
		return ErrNoProfile
	}
	if err := s.profile.UpdateGoal(goal); err != nil {
		return err
	}
	if err := s.store.Save(store.SlotProfile, s.profile); err != nil {
		return fmt.Errorf("session: save profile: %w", err)
	}
	return nil
}

// History returns the conversation in chronological order.
func (s *Session) History() []oracle.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Turns()
}

// HistoryTail returns up to n of the most recent turns.
func (s *Session) HistoryTail(n int) []oracle.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.Tail(n)
}

// Mode returns the active mode.
func (s *Session) Mode() oracle.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode selects the mode applied to the next submission. Unknown modes
// are ignored.
func (s *Session) SetMode(m oracle.Mode) {
	if !m.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Style returns the active writer tone.
func (s *Session) Style() oracle.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetStyle selects the writer tone. Unknown styles are ignored.
func (s *Session) SetStyle(st oracle.Style) {
	if !st.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.style = st
}

// Combinatoria returns the three crossing inputs.
func (s *Session) Combinatoria() oracle.CombinatoriaInputs {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.combinatoria
}

// SetCombinatoria stores the three crossing inputs.
func (s *Session) SetCombinatoria(c oracle.CombinatoriaInputs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.combinatoria = c
}

// StartNew clears the log and opens with the oracle's greeting.
func (s *Session) StartNew() (oracle.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.profile.Complete() {
		return oracle.Turn{}, ErrNoProfile
	}
	greeting := oracle.NewAssistantTurn(fmt.Sprintf(
		"Habla, %s. Plantea tu nudo estratégico o elige una plataforma de difusión. "+
			"Como arbitrajista intelectual, buscaré el hallazgo en lo inesperado para acercarte a tu meta: %s.",
		s.profile.Name, s.profile.ProfessionalGoal))

	s.log.Clear()
	s.log.Append(greeting)
	if err := s.persistHistory(); err != nil {
		return oracle.Turn{}, err
	}
	return greeting, nil
}

// ClearHistory wipes the conversation but keeps the profile.
func (s *Session) ClearHistory() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Clear()
	return s.persistHistory()
}

// Reset clears both persistence slots and all in-memory state, returning
// the session to the onboarding state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Reset(); err != nil {
		return err
	}
	s.profile = nil
	s.log.Clear()
	s.mode = oracle.ModeAuto
	s.style = oracle.DefaultStyle
	s.combinatoria = oracle.CombinatoriaInputs{}
	s.logger.Info("session reset")
	return nil
}

// Busy reports whether a consultation is outstanding.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Submit appends the user turn, compiles the payload for the active mode,
// performs the provider call, and appends the resulting assistant turn.
// Any provider failure still resolves to a conversational turn; on an
// authorization failure the key selector is reopened first.
func (s *Session) Submit(ctx context.Context, text string) (oracle.Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return oracle.Turn{}, ErrEmptyInput
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return oracle.Turn{}, ErrConsultationInFlight
	}
	if !s.profile.Complete() {
		s.mu.Unlock()
		return oracle.Turn{}, ErrNoProfile
	}
	s.inFlight = true

	mode, style := s.mode, s.style
	profile := *s.profile
	var inputs *oracle.CombinatoriaInputs
	if mode == oracle.ModeCombinatoria {
		c := s.combinatoria
		inputs = &c
	}

	userTurn := oracle.NewUserTurn(text, mode, style)
	s.log.Append(userTurn)
	err := s.persistHistory()
	turns := s.log.Turns()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	if err != nil {
		return oracle.Turn{}, err
	}

	compiled, err := prompt.Compile(turns, mode, &profile, inputs, style)
	if err != nil {
		// The log invariants make this unreachable; degrade to the
		// generic failure turn rather than crash.
		s.logger.Error("compile failed", zap.Error(err))
		return s.appendAssistant(oracle.TransientFallback)
	}

	s.logger.Info("consultation",
		zap.String("mode", string(mode)),
		zap.Int("turns", len(compiled.Turns)),
	)

	result := s.client.Consult(ctx, compiled.Turns, compiled.SystemInstruction)
	if result.Kind == oracle.ResultAuthorization {
		s.keys.OpenSelector()
	}
	return s.appendAssistant(result.Text)
}

func (s *Session) appendAssistant(content string) (oracle.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	turn := oracle.NewAssistantTurn(content)
	s.log.Append(turn)
	if err := s.persistHistory(); err != nil {
		return oracle.Turn{}, err
	}
	return turn, nil
}

func (s *Session) persistHistory() error {
	if err := s.store.Save(store.SlotHistory, s.log); err != nil {
		return fmt.Errorf("session: save history: %w", err)
	}
	return nil
}
