package oracle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeValid(t *testing.T) {
	for _, m := range AnalyticalModes {
		assert.True(t, m.Valid(), "analytical mode %s", m)
		assert.False(t, m.IsWriter(), "analytical mode %s", m)
	}
	for _, m := range WriterModes {
		assert.True(t, m.Valid(), "writer mode %s", m)
		assert.True(t, m.IsWriter(), "writer mode %s", m)
	}

	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("INSTAGRAM").Valid())
	assert.False(t, Mode("auto").Valid())
}

func TestModeDisplayName(t *testing.T) {
	assert.Equal(t, "Auto-Detección", ModeAuto.DisplayName())
	assert.Equal(t, "KAIROS", ModeKairos.DisplayName())
	assert.Equal(t, "LINKEDIN", ModeLinkedIn.DisplayName())
}

func TestStyleValid(t *testing.T) {
	for _, s := range Styles {
		assert.True(t, s.Valid(), "style %s", s)
	}
	assert.False(t, Style("").Valid())
	assert.False(t, Style("sarcástico").Valid())
	assert.Equal(t, StyleProfesional, DefaultStyle)
}

func TestCombinatoriaInputsComplete(t *testing.T) {
	assert.False(t, CombinatoriaInputs{}.Complete())
	assert.False(t, CombinatoriaInputs{Industry1: "moda", Industry2: "logística"}.Complete())
	assert.True(t, CombinatoriaInputs{Industry1: "moda", Industry2: "logística", Industry3: "IA"}.Complete())
}
