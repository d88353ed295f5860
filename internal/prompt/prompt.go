// Package prompt compiles a conversation into the payload sent to the
// generation provider: the final user turn rewritten for the active mode,
// plus the session-wide system instruction.
package prompt

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/mpolanco/oraculo/internal/oracle"
)

//go:embed system_base.md
var systemBase string

//go:embed system_rules.md
var systemRules string

var (
	// ErrEmptyLog is returned when compiling with no turns.
	ErrEmptyLog = errors.New("prompt: conversation log is empty")

	// ErrLastTurnNotUser is returned when the log does not end with a
	// user turn.
	ErrLastTurnNotUser = errors.New("prompt: last turn must be a user turn")
)

// Compiled is the provider-ready payload. Turns carries the full log with
// only the final user turn's content rewritten; every earlier turn passes
// through unmodified.
type Compiled struct {
	Turns             []oracle.Turn
	SystemInstruction string
}

// Compile builds the outgoing payload. It is deterministic and has no
// side effects. inputs is only consulted in COMBINATORIA mode; style only
// in writer modes, defaulting to "profesional" when unset.
func Compile(
	turns []oracle.Turn,
	mode oracle.Mode,
	profile *oracle.UserProfile,
	inputs *oracle.CombinatoriaInputs,
	style oracle.Style,
) (Compiled, error) {
	if len(turns) == 0 {
		return Compiled{}, ErrEmptyLog
	}
	last := turns[len(turns)-1]
	if last.Role != oracle.RoleUser {
		return Compiled{}, ErrLastTurnNotUser
	}

	if !style.Valid() {
		style = oracle.DefaultStyle
	}

	out := make([]oracle.Turn, len(turns))
	copy(out, turns)
	rewritten := out[len(out)-1]
	rewritten.Content = rewriteFinal(last.Content, mode, profile, inputs, style)
	out[len(out)-1] = rewritten

	return Compiled{
		Turns:             out,
		SystemInstruction: SystemInstruction(profile, mode, style),
	}, nil
}

// rewriteFinal applies the mode-specific framing to the raw text of the
// final user turn.
func rewriteFinal(
	raw string,
	mode oracle.Mode,
	profile *oracle.UserProfile,
	inputs *oracle.CombinatoriaInputs,
	style oracle.Style,
) string {
	switch mode {
	case oracle.ModeFacebook, oracle.ModeLinkedIn, oracle.ModeTwitter, oracle.ModeBlog:
		return fmt.Sprintf(
			"ACTIVA FUNCIÓN DE ESCRITOR ESTRATÉGICO PARA %s.\n"+
				"ESTILO SELECCIONADO: %s.\n"+
				"META DEL USUARIO A IMPULSAR: %s.\n"+
				"TEMA O PROBLEMA A TRANSFORMAR: %s.\n"+
				"Genera una pieza de arbitraje intelectual que posicione al usuario hacia su meta. NO USES MARKDOWN.",
			mode, style, goalOf(profile), raw)

	case oracle.ModeAuto:
		return fmt.Sprintf(
			"AUTO-ANÁLISIS ESTRATÉGICO. Evalúa este nudo y aplica el marco más agudo para avanzar hacia: %s. Nudo: %s",
			goalOf(profile), raw)

	case oracle.ModeCombinatoria:
		if inputs == nil {
			return raw
		}
		return fmt.Sprintf(
			"EJERCE EL MODO COMBINATORIA. Cruza: %s, %s y %s. Halla la agudeza en el nudo: %s",
			inputs.Industry1, inputs.Industry2, inputs.Industry3, raw)

	case oracle.ModePivote:
		return fmt.Sprintf(
			"PIVOTE A LA OPORTUNIDAD. Encuentra la ineficiencia de mercado o error de percepción en este nudo: %s",
			raw)

	case oracle.ModeTopica, oracle.ModeAbduccion, oracle.ModeKairos:
		return raw
	}
	return raw
}

// SystemInstruction builds the session-wide directive: persona, seeker
// profile when present, the behavioral and format rules, and the active
// mode and style labels.
func SystemInstruction(profile *oracle.UserProfile, mode oracle.Mode, style oracle.Style) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(systemBase))
	b.WriteString("\n\n")

	if profile.Complete() {
		fmt.Fprintf(&b, "TE DIRIGES A: %s\n", profile.Name)
		fmt.Fprintf(&b, "PERFIL DEL BUSCADOR: %s\n", profile.Bio)
		fmt.Fprintf(&b, "META PROFESIONAL (TU NORTE): %s\n\n", profile.ProfessionalGoal)
		b.WriteString("IMPORTANTE: Toda respuesta debe ser un peldaño táctico hacia su META PROFESIONAL. No ofrezcas consejos genéricos. Ofrece hallazgos punzantes.\n\n")
	}

	b.WriteString(strings.TrimSpace(systemRules))
	fmt.Fprintf(&b, "\nMODO OPERATIVO: %s. ESTILO: %s.", mode, style)
	return b.String()
}

func goalOf(profile *oracle.UserProfile) string {
	if profile == nil {
		return ""
	}
	return profile.ProfessionalGoal
}
