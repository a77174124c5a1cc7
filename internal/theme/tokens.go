// Package theme provides Palette, the theme type the bundled sheets render
// with, and the built-in presets it is resolved from.
package theme

// Token names a themeable color.
type Token string

// Color tokens. These are the keys users can override in their config.
const (
	// Surfaces
	TokenSurfaceBg Token = "surface.bg"

	// Text hierarchy
	TokenTextPrimary   Token = "text.primary"
	TokenTextSecondary Token = "text.secondary"
	TokenTextMuted     Token = "text.muted"

	// Borders
	TokenBorderDefault   Token = "border.default"
	TokenBorderHighlight Token = "border.highlight"

	// Status indicators
	TokenStatusSuccess Token = "status.success"
	TokenStatusWarning Token = "status.warning"
	TokenStatusError   Token = "status.error"

	// Buttons
	TokenButtonText           Token = "button.text"
	TokenButtonPrimaryBg      Token = "button.primary.bg"
	TokenButtonPrimaryFocusBg Token = "button.primary.focus"
	TokenButtonDangerBg       Token = "button.danger.bg"
)

// AllTokens returns every valid token in display order.
func AllTokens() []Token {
	return []Token{
		TokenSurfaceBg,
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenBorderDefault,
		TokenBorderHighlight,
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonDangerBg,
	}
}

// Mode selects the color scheme a palette declares.
type Mode string

const (
	ModeAuto  Mode = "" // use the preset's own mode
	ModeDark  Mode = "dark"
	ModeLight Mode = "light"
)
