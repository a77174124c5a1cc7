package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Resolution errors.
var (
	ErrUnknownPreset = errors.New("unknown theme preset")
	ErrUnknownToken  = errors.New("unknown color token")
	ErrInvalidColor  = errors.New("invalid hex color")
	ErrInvalidMode   = errors.New("invalid theme mode")
)

// Config mirrors config.ThemeConfig to avoid circular imports.
type Config struct {
	Preset string
	Mode   string
	Colors map[string]string
}

// Palette is a resolved, immutable theme. Two palettes are unchanged
// relative to each other when they would render the same CSS.
type Palette struct {
	name        string
	mode        Mode
	colors      map[Token]string
	fingerprint uint64
}

// Resolve builds a palette. Order of application:
// 1. Start with the default preset
// 2. Apply the named preset (if specified)
// 3. Apply the mode override (if specified)
// 4. Apply individual color overrides
func Resolve(cfg Config) (Palette, error) {
	name := DefaultPresetName
	colors := maps.Clone(DefaultPreset.Colors)
	mode := DefaultPreset.Mode

	if cfg.Preset != "" && cfg.Preset != DefaultPresetName {
		preset, ok := Presets[cfg.Preset]
		if !ok {
			return Palette{}, fmt.Errorf("%w: %s", ErrUnknownPreset, cfg.Preset)
		}
		name = preset.Name
		mode = preset.Mode
		maps.Copy(colors, preset.Colors)
	}

	switch m := Mode(cfg.Mode); m {
	case ModeAuto:
	case ModeDark, ModeLight:
		mode = m
	default:
		return Palette{}, fmt.Errorf("%w: %s (expected dark or light)", ErrInvalidMode, cfg.Mode)
	}

	for key, value := range cfg.Colors {
		token := Token(key)
		if !IsValidToken(token) {
			return Palette{}, fmt.Errorf("%w: %s", ErrUnknownToken, key)
		}
		if !IsValidHexColor(value) {
			return Palette{}, fmt.Errorf("%w for %s: %s", ErrInvalidColor, key, value)
		}
		colors[token] = value
	}

	return newPalette(name, mode, colors), nil
}

// MustResolve is like Resolve but panics on error.
func MustResolve(cfg Config) Palette {
	p, err := Resolve(cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// Default returns the default preset's palette.
func Default() Palette {
	return newPalette(DefaultPreset.Name, DefaultPreset.Mode, maps.Clone(DefaultPreset.Colors))
}

func newPalette(name string, mode Mode, colors map[Token]string) Palette {
	return Palette{name: name, mode: mode, colors: colors, fingerprint: fingerprint(mode, colors)}
}

// fingerprint hashes everything that affects rendering. The name does not.
func fingerprint(mode Mode, colors map[Token]string) uint64 {
	keys := slices.Sorted(maps.Keys(colors))
	d := xxhash.New()
	_, _ = d.WriteString(string(mode))
	for _, k := range keys {
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(string(k))
		_, _ = d.WriteString("=")
		_, _ = d.WriteString(colors[k])
	}
	return d.Sum64()
}

// Unchanged reports whether other renders identically to p. Differing
// fingerprints answer immediately; equal ones are confirmed entry by entry.
func (p Palette) Unchanged(other Palette) bool {
	if p.fingerprint != other.fingerprint {
		return false
	}
	return p.mode == other.mode && maps.Equal(p.colors, other.colors)
}

// Name returns the preset the palette was resolved from.
func (p Palette) Name() string { return p.name }

// Mode returns the palette's color scheme.
func (p Palette) Mode() Mode { return p.mode }

// Fingerprint returns the palette's content hash.
func (p Palette) Fingerprint() uint64 { return p.fingerprint }

// Color returns the hex color for token, or "" if unset.
func (p Palette) Color(token Token) string { return p.colors[token] }

// Colors returns a copy of the token map.
func (p Palette) Colors() map[Token]string { return maps.Clone(p.colors) }

// IsValidToken reports whether token is a known color token.
func IsValidToken(token Token) bool {
	return slices.Contains(AllTokens(), token)
}

// IsValidHexColor accepts #RGB and #RRGGBB.
func IsValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
