package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestResolve_Default(t *testing.T) {
	p, err := Resolve(Config{})
	require.NoError(t, err)
	require.Equal(t, "default", p.Name())
	require.Equal(t, ModeDark, p.Mode())
	require.Equal(t, "#CCCCCC", p.Color(TokenTextPrimary))
	require.True(t, p.Unchanged(Default()))
}

func TestResolve_Preset(t *testing.T) {
	p, err := Resolve(Config{Preset: "catppuccin-mocha"})
	require.NoError(t, err)
	require.Equal(t, "catppuccin-mocha", p.Name())
	require.Equal(t, "#CDD6F4", p.Color(TokenTextPrimary))
	require.False(t, p.Unchanged(Default()))
}

func TestResolve_LightPresetMode(t *testing.T) {
	p := MustResolve(Config{Preset: "catppuccin-latte"})
	require.Equal(t, ModeLight, p.Mode())

	forced := MustResolve(Config{Preset: "catppuccin-latte", Mode: "dark"})
	require.Equal(t, ModeDark, forced.Mode())
	require.False(t, p.Unchanged(forced), "mode affects rendering")
}

func TestResolve_ColorOverrides(t *testing.T) {
	p, err := Resolve(Config{
		Preset: "nord",
		Colors: map[string]string{
			"text.primary": "#FF0000",
			"status.error": "#0F0",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "#FF0000", p.Color(TokenTextPrimary))
	require.Equal(t, "#0F0", p.Color(TokenStatusError))
	require.Equal(t, NordPreset.Colors[TokenStatusSuccess], p.Color(TokenStatusSuccess))
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"unknown preset", Config{Preset: "solarized"}, ErrUnknownPreset},
		{"unknown token", Config{Colors: map[string]string{"nope": "#FFFFFF"}}, ErrUnknownToken},
		{"missing hash", Config{Colors: map[string]string{"text.primary": "FFFFFF"}}, ErrInvalidColor},
		{"bad length", Config{Colors: map[string]string{"text.primary": "#FFFF"}}, ErrInvalidColor},
		{"not hex", Config{Colors: map[string]string{"text.primary": "#GGGGGG"}}, ErrInvalidColor},
		{"bad mode", Config{Mode: "sepia"}, ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.cfg)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMustResolve_Panics(t *testing.T) {
	require.Panics(t, func() { MustResolve(Config{Preset: "solarized"}) })
}

func TestPresets_CoverAllTokens(t *testing.T) {
	for name, preset := range Presets {
		require.Equal(t, name, preset.Name)
		for _, tok := range AllTokens() {
			hex, ok := preset.Colors[tok]
			require.True(t, ok, "%s is missing %s", name, tok)
			require.True(t, IsValidHexColor(hex), "%s.%s = %q", name, tok, hex)
		}
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	require.Len(t, names, len(Presets))
	require.Equal(t, DefaultPresetName, names[0])
	require.Equal(t, []string{"catppuccin-latte", "catppuccin-mocha", "dracula", "high-contrast", "nord"}, names[1:])
}

func TestPalette_UnchangedIgnoresName(t *testing.T) {
	// default with every color overridden to mocha's values renders like mocha,
	// except for mode, which both share.
	colors := map[string]string{}
	for tok, hex := range CatppuccinMochaPreset.Colors {
		colors[string(tok)] = hex
	}
	lookalike := MustResolve(Config{Colors: colors})
	mocha := MustResolve(Config{Preset: "catppuccin-mocha"})

	require.NotEqual(t, lookalike.Name(), mocha.Name())
	require.True(t, lookalike.Unchanged(mocha))
	require.Equal(t, lookalike.Fingerprint(), mocha.Fingerprint())
}

func TestPalette_ColorsIsACopy(t *testing.T) {
	p := Default()
	c := p.Colors()
	c[TokenTextPrimary] = "#000000"
	require.Equal(t, "#CCCCCC", p.Color(TokenTextPrimary))
}

func TestProperty_UnchangedMatchesColorEquality(t *testing.T) {
	names := PresetNames()
	rapid.Check(t, func(rt *rapid.T) {
		a := MustResolve(Config{Preset: rapid.SampledFrom(names).Draw(rt, "a")})
		b := MustResolve(Config{Preset: rapid.SampledFrom(names).Draw(rt, "b")})

		same := a.Mode() == b.Mode()
		for _, tok := range AllTokens() {
			if a.Color(tok) != b.Color(tok) {
				same = false
			}
		}
		require.Equal(rt, same, a.Unchanged(b))
		require.Equal(rt, a.Unchanged(b), b.Unchanged(a))
	})
}
