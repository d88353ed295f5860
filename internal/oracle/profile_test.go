package oracle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserProfile(t *testing.T) {
	tests := []struct {
		name            string
		inName, bio, goal string
		wantErr         bool
	}{
		{"all fields", "María", "Consultora", "Más clientes", false},
		{"trims whitespace", "  María  ", " Consultora ", " Más clientes ", false},
		{"empty name", "", "Consultora", "Más clientes", true},
		{"empty bio", "María", "", "Más clientes", true},
		{"empty goal", "María", "Consultora", "", true},
		{"whitespace only", "   ", "Consultora", "Más clientes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewUserProfile(tt.inName, tt.bio, tt.goal)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrProfileIncomplete)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "María", p.Name)
			assert.True(t, p.Complete())
		})
	}
}

func TestUpdateGoal(t *testing.T) {
	p, err := NewUserProfile("María", "Consultora", "Más clientes")
	require.NoError(t, err)

	require.NoError(t, p.UpdateGoal("  Vender la empresa  "))
	assert.Equal(t, "Vender la empresa", p.ProfessionalGoal)

	// A blank goal is rejected without touching the profile.
	assert.ErrorIs(t, p.UpdateGoal("   "), ErrProfileIncomplete)
	assert.Equal(t, "Vender la empresa", p.ProfessionalGoal)
}

func TestProfileCompleteNilSafe(t *testing.T) {
	var p *UserProfile
	assert.False(t, p.Complete())
}

func TestProfileSerialization(t *testing.T) {
	p, err := NewUserProfile("María", "Consultora", "Más clientes")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"professionalGoal"`)

	var restored UserProfile
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, *p, restored)
}
