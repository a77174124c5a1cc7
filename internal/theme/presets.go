package theme

import "sort"

// Preset is a complete built-in color theme.
type Preset struct {
	Name        string
	Description string
	Mode        Mode
	Colors      map[Token]string
}

// DefaultPresetName is the preset used when none is configured.
const DefaultPresetName = "default"

// Presets contains all built-in presets.
var Presets = map[string]Preset{
	"default":          DefaultPreset,
	"catppuccin-mocha": CatppuccinMochaPreset,
	"catppuccin-latte": CatppuccinLattePreset,
	"dracula":          DraculaPreset,
	"nord":             NordPreset,
	"high-contrast":    HighContrastPreset,
}

// PresetNames returns the preset names, default first, the rest sorted.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		if name != DefaultPresetName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return append([]string{DefaultPresetName}, names...)
}

// DefaultPreset is a neutral dark scheme.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Neutral dark theme",
	Mode:        ModeDark,
	Colors: map[Token]string{
		TokenSurfaceBg: "#1E1E1E",

		TokenTextPrimary:   "#CCCCCC",
		TokenTextSecondary: "#BBBBBB",
		TokenTextMuted:     "#696969",

		TokenBorderDefault:   "#696969",
		TokenBorderHighlight: "#54A0FF",

		TokenStatusSuccess: "#73F59F",
		TokenStatusWarning: "#FECA57",
		TokenStatusError:   "#FF8787",

		TokenButtonText:           "#FFFFFF",
		TokenButtonPrimaryBg:      "#1A5276",
		TokenButtonPrimaryFocusBg: "#3498DB",
		TokenButtonDangerBg:       "#922B21",
	},
}

// CatppuccinMochaPreset is the dark Catppuccin flavor.
var CatppuccinMochaPreset = Preset{
	Name:        "catppuccin-mocha",
	Description: "Soothing pastel theme (dark)",
	Mode:        ModeDark,
	Colors: map[Token]string{
		TokenSurfaceBg: "#1E1E2E",

		TokenTextPrimary:   "#CDD6F4",
		TokenTextSecondary: "#BAC2DE",
		TokenTextMuted:     "#6C7086",

		TokenBorderDefault:   "#6C7086",
		TokenBorderHighlight: "#89B4FA",

		TokenStatusSuccess: "#A6E3A1",
		TokenStatusWarning: "#F9E2AF",
		TokenStatusError:   "#F38BA8",

		TokenButtonText:           "#1E1E2E",
		TokenButtonPrimaryBg:      "#89B4FA",
		TokenButtonPrimaryFocusBg: "#B4BEFE",
		TokenButtonDangerBg:       "#F38BA8",
	},
}

// CatppuccinLattePreset is the light Catppuccin flavor.
var CatppuccinLattePreset = Preset{
	Name:        "catppuccin-latte",
	Description: "Soothing pastel theme (light)",
	Mode:        ModeLight,
	Colors: map[Token]string{
		TokenSurfaceBg: "#EFF1F5",

		TokenTextPrimary:   "#4C4F69",
		TokenTextSecondary: "#5C5F77",
		TokenTextMuted:     "#9CA0B0",

		TokenBorderDefault:   "#9CA0B0",
		TokenBorderHighlight: "#1E66F5",

		TokenStatusSuccess: "#40A02B",
		TokenStatusWarning: "#DF8E1D",
		TokenStatusError:   "#D20F39",

		TokenButtonText:           "#EFF1F5",
		TokenButtonPrimaryBg:      "#1E66F5",
		TokenButtonPrimaryFocusBg: "#7287FD",
		TokenButtonDangerBg:       "#D20F39",
	},
}

// DraculaPreset is the Dracula theme.
var DraculaPreset = Preset{
	Name:        "dracula",
	Description: "Dark theme with vibrant colors",
	Mode:        ModeDark,
	Colors: map[Token]string{
		TokenSurfaceBg: "#282A36",

		TokenTextPrimary:   "#F8F8F2",
		TokenTextSecondary: "#F8F8F2",
		TokenTextMuted:     "#6272A4",

		TokenBorderDefault:   "#6272A4",
		TokenBorderHighlight: "#BD93F9",

		TokenStatusSuccess: "#50FA7B",
		TokenStatusWarning: "#F1FA8C",
		TokenStatusError:   "#FF5555",

		TokenButtonText:           "#282A36",
		TokenButtonPrimaryBg:      "#BD93F9",
		TokenButtonPrimaryFocusBg: "#FF79C6",
		TokenButtonDangerBg:       "#FF5555",
	},
}

// NordPreset is the Nord theme.
var NordPreset = Preset{
	Name:        "nord",
	Description: "Arctic, north-bluish color palette",
	Mode:        ModeDark,
	Colors: map[Token]string{
		TokenSurfaceBg: "#2E3440",

		TokenTextPrimary:   "#ECEFF4",
		TokenTextSecondary: "#E5E9F0",
		TokenTextMuted:     "#4C566A",

		TokenBorderDefault:   "#4C566A",
		TokenBorderHighlight: "#88C0D0",

		TokenStatusSuccess: "#A3BE8C",
		TokenStatusWarning: "#EBCB8B",
		TokenStatusError:   "#BF616A",

		TokenButtonText:           "#2E3440",
		TokenButtonPrimaryBg:      "#5E81AC",
		TokenButtonPrimaryFocusBg: "#81A1C1",
		TokenButtonDangerBg:       "#BF616A",
	},
}

// HighContrastPreset maximizes contrast for accessibility.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "Maximum contrast for accessibility",
	Mode:        ModeDark,
	Colors: map[Token]string{
		TokenSurfaceBg: "#000000",

		TokenTextPrimary:   "#FFFFFF",
		TokenTextSecondary: "#FFFFFF",
		TokenTextMuted:     "#FFFFFF",

		TokenBorderDefault:   "#FFFFFF",
		TokenBorderHighlight: "#00FFFF",

		TokenStatusSuccess: "#00FF00",
		TokenStatusWarning: "#FFFF00",
		TokenStatusError:   "#FF0000",

		TokenButtonText:           "#000000",
		TokenButtonPrimaryBg:      "#00FFFF",
		TokenButtonPrimaryFocusBg: "#FFFFFF",
		TokenButtonDangerBg:       "#FF0000",
	},
}
