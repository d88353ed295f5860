package oracle

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/mpolanco/oraculo/internal/llm"
)

// Fixed sentences the oracle speaks when the provider cannot. User-visible
// failure behavior is always a conversational turn, never a dialog.
const (
	// EmptyFallback replaces a successful response that carried no text.
	EmptyFallback = "El Oráculo se ha sumido en un silencio abisal. Reintenta la consulta."

	// TransientFallback is appended on any non-authorization failure.
	TransientFallback = "El Oráculo ha tenido un síncope intelectual. Intenta refrescar tu visión."

	// ReauthNotice explains that the credential selector was reopened.
	ReauthNotice = "El Oráculo no reconoce tu llave de acceso. He reabierto el selector de credenciales; elige una llave válida y vuelve a plantear tu nudo."
)

// ResultKind classifies the outcome of a consultation.
type ResultKind int

const (
	// ResultSuccess carries the provider's text verbatim.
	ResultSuccess ResultKind = iota
	// ResultEmpty is a successful call that produced no usable content.
	ResultEmpty
	// ResultAuthorization means the credential or model was rejected.
	ResultAuthorization
	// ResultTransient covers every other failure.
	ResultTransient
)

// Result is the typed outcome of one provider call. Text is always
// renderable: the verbatim reply on success, a fixed fallback otherwise.
type Result struct {
	Kind ResultKind
	Text string
	Err  error
}

// Client sends compiled conversations to the generation provider and
// classifies failures. It holds the fixed sampling parameters.
type Client struct {
	mu             sync.RWMutex
	provider       llm.Provider
	temperature    float64
	thinkingBudget int
	logger         *zap.Logger
}

// NewClient creates an oracle client. A nil logger is replaced with a nop
// logger.
func NewClient(provider llm.Provider, temperature float64, thinkingBudget int, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		provider:       provider,
		temperature:    temperature,
		thinkingBudget: thinkingBudget,
		logger:         logger,
	}
}

// SetProvider swaps the generation provider, used after the credential
// changes.
func (c *Client) SetProvider(p llm.Provider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.provider = p
}

// Consult sends the compiled turns and system instruction. It never
// returns an error: failures are classified into the Result.
func (c *Client) Consult(ctx context.Context, turns []Turn, systemInstruction string) Result {
	c.mu.RLock()
	provider := c.provider
	c.mu.RUnlock()

	if provider == nil {
		c.logger.Warn("consult without provider")
		return Result{Kind: ResultAuthorization, Text: ReauthNotice, Err: llm.ErrAuthorization}
	}

	req := &llm.GenerateRequest{
		Messages:          make([]llm.Message, 0, len(turns)),
		SystemInstruction: systemInstruction,
		Temperature:       c.temperature,
		ThinkingBudget:    c.thinkingBudget,
	}
	for _, t := range turns {
		role := llm.RoleModel
		if t.Role == RoleUser {
			role = llm.RoleUser
		}
		req.Messages = append(req.Messages, llm.Message{Role: role, Text: t.Content})
	}

	text, err := provider.Generate(ctx, req)
	switch {
	case errors.Is(err, llm.ErrAuthorization):
		c.logger.Warn("authorization failure", zap.Error(err))
		return Result{Kind: ResultAuthorization, Text: ReauthNotice, Err: err}
	case err != nil:
		c.logger.Warn("provider failure", zap.Error(err))
		return Result{Kind: ResultTransient, Text: TransientFallback, Err: err}
	case text == "":
		c.logger.Info("empty response")
		return Result{Kind: ResultEmpty, Text: EmptyFallback}
	}

	c.logger.Debug("consultation complete", zap.Int("response_len", len(text)))
	return Result{Kind: ResultSuccess, Text: text}
}
