package oracle

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpolanco/oraculo/internal/llm"
)

// fakeProvider returns a scripted response and records the last request.
type fakeProvider struct {
	text    string
	err     error
	lastReq *llm.GenerateRequest
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Generate(_ context.Context, req *llm.GenerateRequest) (string, error) {
	f.lastReq = req
	return f.text, f.err
}

func (f *fakeProvider) Ping(context.Context) error { return f.err }

func TestConsultSuccess(t *testing.T) {
	fake := &fakeProvider{text: "HALLAZGO:\n- la respuesta"}
	client := NewClient(fake, 0.9, 32768, nil)

	turns := []Turn{
		NewAssistantTurn("Habla."),
		NewUserTurn("mi nudo", ModeAuto, DefaultStyle),
	}
	result := client.Consult(context.Background(), turns, "instrucción")

	assert.Equal(t, ResultSuccess, result.Kind)
	assert.Equal(t, "HALLAZGO:\n- la respuesta", result.Text)
	assert.NoError(t, result.Err)

	// Roles map to the provider's wire roles, order preserved.
	require.NotNil(t, fake.lastReq)
	require.Len(t, fake.lastReq.Messages, 2)
	assert.Equal(t, llm.RoleModel, fake.lastReq.Messages[0].Role)
	assert.Equal(t, llm.RoleUser, fake.lastReq.Messages[1].Role)
	assert.Equal(t, "instrucción", fake.lastReq.SystemInstruction)
	assert.Equal(t, 0.9, fake.lastReq.Temperature)
	assert.Equal(t, 32768, fake.lastReq.ThinkingBudget)
}

func TestConsultEmptyResponse(t *testing.T) {
	client := NewClient(&fakeProvider{text: ""}, 0.9, 32768, nil)
	result := client.Consult(context.Background(), []Turn{NewUserTurn("nudo", ModeAuto, DefaultStyle)}, "")

	assert.Equal(t, ResultEmpty, result.Kind)
	assert.Equal(t, EmptyFallback, result.Text)
	assert.NoError(t, result.Err)
}

func TestConsultAuthorizationFailure(t *testing.T) {
	authErr := fmt.Errorf("gemini: %w", llm.ErrAuthorization)
	client := NewClient(&fakeProvider{err: authErr}, 0.9, 32768, nil)
	result := client.Consult(context.Background(), []Turn{NewUserTurn("nudo", ModeAuto, DefaultStyle)}, "")

	assert.Equal(t, ResultAuthorization, result.Kind)
	assert.Equal(t, ReauthNotice, result.Text)
	assert.ErrorIs(t, result.Err, llm.ErrAuthorization)
}

func TestConsultTransientFailure(t *testing.T) {
	client := NewClient(&fakeProvider{err: errors.New("connection reset")}, 0.9, 32768, nil)
	result := client.Consult(context.Background(), []Turn{NewUserTurn("nudo", ModeAuto, DefaultStyle)}, "")

	assert.Equal(t, ResultTransient, result.Kind)
	assert.Equal(t, TransientFallback, result.Text)
	assert.Error(t, result.Err)
}

func TestConsultWithoutProvider(t *testing.T) {
	client := NewClient(nil, 0.9, 32768, nil)
	result := client.Consult(context.Background(), []Turn{NewUserTurn("nudo", ModeAuto, DefaultStyle)}, "")

	assert.Equal(t, ResultAuthorization, result.Kind)
	assert.Equal(t, ReauthNotice, result.Text)
}

func TestSetProviderSwaps(t *testing.T) {
	client := NewClient(&fakeProvider{err: errors.New("down")}, 0.9, 32768, nil)
	client.SetProvider(&fakeProvider{text: "de vuelta"})

	result := client.Consult(context.Background(), []Turn{NewUserTurn("nudo", ModeAuto, DefaultStyle)}, "")
	assert.Equal(t, ResultSuccess, result.Kind)
	assert.Equal(t, "de vuelta", result.Text)
}
