package oracle

// Mode selects the strategic framework applied to the next consultation.
// Analytical modes shape how the oracle reasons about a knot; writer modes
// target a publishing channel instead.
type Mode string

const (
	ModeAuto         Mode = "AUTO"
	ModeTopica       Mode = "TOPICA"
	ModeAbduccion    Mode = "ABDUCCION"
	ModePivote       Mode = "PIVOTE"
	ModeCombinatoria Mode = "COMBINATORIA"
	ModeKairos       Mode = "KAIROS"

	ModeFacebook Mode = "FACEBOOK"
	ModeLinkedIn Mode = "LINKEDIN"
	ModeTwitter  Mode = "TWITTER"
	ModeBlog     Mode = "BLOG"
)

// AnalyticalModes lists the modes that produce direct strategic advice,
// in menu order.
var AnalyticalModes = []Mode{
	ModeAuto,
	ModeTopica,
	ModeAbduccion,
	ModePivote,
	ModeCombinatoria,
	ModeKairos,
}

// WriterModes lists the modes that produce ready-to-publish copy for a
// specific channel, in menu order.
var WriterModes = []Mode{
	ModeFacebook,
	ModeLinkedIn,
	ModeTwitter,
	ModeBlog,
}

// IsWriter reports whether the mode targets a publishing channel.
func (m Mode) IsWriter() bool {
	switch m {
	case ModeFacebook, ModeLinkedIn, ModeTwitter, ModeBlog:
		return true
	}
	return false
}

// Valid reports whether the mode is one of the ten known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeAuto, ModeTopica, ModeAbduccion, ModePivote, ModeCombinatoria,
		ModeKairos, ModeFacebook, ModeLinkedIn, ModeTwitter, ModeBlog:
		return true
	}
	return false
}

// DisplayName returns the label shown in the mode selector.
func (m Mode) DisplayName() string {
	if m == ModeAuto {
		return "Auto-Detección"
	}
	return string(m)
}

// Style is the tone requested for writer-mode output. Ignored by
// analytical modes.
type Style string

const (
	StyleProfesional Style = "profesional"
	StyleAcademico   Style = "académico"
	StyleSerio       Style = "serio"
	StyleFormal      Style = "formal"
	StyleInformal    Style = "informal"
	StyleAmigable    Style = "amigable"
)

// DefaultStyle is assumed when a writer mode is active and no style was
// chosen.
const DefaultStyle = StyleProfesional

// Styles lists all tone labels in menu order.
var Styles = []Style{
	StyleProfesional,
	StyleAcademico,
	StyleSerio,
	StyleFormal,
	StyleInformal,
	StyleAmigable,
}

// Valid reports whether the style is one of the six known tones.
func (s Style) Valid() bool {
	for _, known := range Styles {
		if s == known {
			return true
		}
	}
	return false
}

// CombinatoriaInputs holds the three industries crossed by the
// COMBINATORIA mode.
type CombinatoriaInputs struct {
	Industry1 string `json:"industry1"`
	Industry2 string `json:"industry2"`
	Industry3 string `json:"industry3"`
}

// Complete reports whether all three slots are filled.
func (c CombinatoriaInputs) Complete() bool {
	return c.Industry1 != "" && c.Industry2 != "" && c.Industry3 != ""
}
