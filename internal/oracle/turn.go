package oracle

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Role identifies the author of a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message in the conversation. Turns are immutable once
// created; the log only ever appends them.
type Turn struct {
	ID      string `json:"id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
	Mode    Mode   `json:"mode,omitempty"`
	Style   Style  `json:"style,omitempty"`
}

// NewUserTurn creates a user turn tagged with the mode and style active
// at submission time.
func NewUserTurn(content string, mode Mode, style Style) Turn {
	return Turn{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
		Mode:    mode,
		Style:   style,
	}
}

// NewAssistantTurn creates an assistant turn.
func NewAssistantTurn(content string) Turn {
	return Turn{
		ID:      uuid.NewString(),
		Role:    RoleAssistant,
		Content: content,
	}
}

// ConversationLog is the ordered, append-only sequence of turns. Insertion
// order is chronological order; the provider consumes it as-is.
type ConversationLog struct {
	turns []Turn
}

// NewConversationLog creates an empty log.
func NewConversationLog() *ConversationLog {
	return &ConversationLog{}
}

// Append adds a turn at the end of the log.
func (l *ConversationLog) Append(t Turn) {
	l.turns = append(l.turns, t)
}

// Len returns the number of turns.
func (l *ConversationLog) Len() int {
	return len(l.turns)
}

// Turns returns a copy of the log in chronological order.
func (l *ConversationLog) Turns() []Turn {
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// Last returns the most recent turn, if any.
func (l *ConversationLog) Last() (Turn, bool) {
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// Tail returns up to n of the most recent turns in chronological order.
func (l *ConversationLog) Tail(n int) []Turn {
	if n <= 0 || len(l.turns) == 0 {
		return nil
	}
	if n > len(l.turns) {
		n = len(l.turns)
	}
	out := make([]Turn, n)
	copy(out, l.turns[len(l.turns)-n:])
	return out
}

// Clear removes all turns.
func (l *ConversationLog) Clear() {
	l.turns = nil
}

// MarshalJSON persists the log as a plain array of turns.
func (l *ConversationLog) MarshalJSON() ([]byte, error) {
	if l.turns == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.turns)
}

// UnmarshalJSON restores a log persisted by MarshalJSON.
func (l *ConversationLog) UnmarshalJSON(data []byte) error {
	var turns []Turn
	if err := json.Unmarshal(data, &turns); err != nil {
		return err
	}
	l.turns = turns
	return nil
}
