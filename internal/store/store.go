// Package store persists the session's state as named JSON slots, the
// way the conversation and profile survive restarts.
package store

// Slot names. Each holds one JSON blob.
const (
	SlotProfile = "oracle_user_profile"
	SlotHistory = "oracle_chat_history"
)

// Store is a key-value persistence collaborator: two named slots read at
// startup and written after every mutation, plus a reset that clears both.
type Store interface {
	// Load reads a slot into v. ok is false when the slot has never been
	// written.
	Load(slot string, v any) (ok bool, err error)

	// Save writes a slot. Last write wins.
	Save(slot string, v any) error

	// Reset clears every slot.
	Reset() error
}
