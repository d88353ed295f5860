package llm

import (
	"context"
	"errors"
)

// Role values in the provider's two-party vocabulary. User turns map to
// RoleUser, assistant turns to RoleModel.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ErrAuthorization marks failures where the provider reports the
// credential or queried entity as invalid or unset. Callers react by
// reacquiring the API key instead of retrying.
var ErrAuthorization = errors.New("llm: authorization failed")

// Provider is the interface the generation backend must implement.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Generate sends the conversation and returns the response text.
	// A successful call with no usable content returns ("", nil).
	Generate(ctx context.Context, req *GenerateRequest) (string, error)

	// Ping checks that the provider is reachable with the configured
	// credential.
	Ping(ctx context.Context) error
}

// Message is one entry of the compiled conversation.
type Message struct {
	Role string
	Text string
}

// GenerateRequest represents a generation call.
type GenerateRequest struct {
	Messages          []Message
	SystemInstruction string
	Temperature       float64
	ThinkingBudget    int
}
