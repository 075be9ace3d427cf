// Package faith decides whether faith-exclusive content may be shown
package faith

// Mode is the user's declared faith preference
type Mode string

// Modes
const (
	Off      Mode = "off"
	Light    Mode = "light"
	Disciple Mode = "disciple"
	Kingdom  Mode = "kingdom"
)

// ParseMode validates s
func ParseMode(s string) (Mode, bool) {
	switch m := Mode(s); m {
	case Off, Light, Disciple, Kingdom:
		return m, true
	}
	return "", false
}

// Allowed evaluates in order: hide denies, off denies, light needs consent, the rest allow
// Unknown modes deny.
func Allowed(mode Mode, lightConsent, hideInMind bool) bool {
	return Policy{}.Allowed(mode, lightConsent, hideInMind)
}

// Policy carries deployment overrides for the gate
type Policy struct {
	// LightByDefault lets light mode through without consent
	// It never overrides hide or off
	LightByDefault bool
}

// Allowed applies the gate with the policy's overrides
func (p Policy) Allowed(mode Mode, lightConsent, hideInMind bool) bool {
	if hideInMind {
		return false
	}
	switch mode {
	case Off:
		return false
	case Light:
		return lightConsent || p.LightByDefault
	case Disciple, Kingdom:
		return true
	default:
		return false
	}
}

// BlockedHint tells the client how to unlock faith content
const BlockedHint = "Enable Faith Mode (Light with consent, Disciple, or Kingdom) and unhide in Mind."
