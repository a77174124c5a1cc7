// Package config provides configuration types and defaults for cssgo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mariesavch/css-in-go/internal/log"
	"github.com/mariesavch/css-in-go/internal/theme"
)

// Config holds all configuration options for cssgo.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Output  OutputConfig  `mapstructure:"output"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Log     LogConfig     `mapstructure:"log"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base (optional).
	// Valid values: "default", "catppuccin-mocha", "catppuccin-latte",
	// "dracula", "nord", "high-contrast"
	Preset string `mapstructure:"preset"`

	// Mode forces light or dark color-scheme. If empty, uses the preset's.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Palette resolves the theme section into a palette.
func (t ThemeConfig) Palette() (theme.Palette, error) {
	return theme.Resolve(theme.Config{
		Preset: t.Preset,
		Mode:   t.Mode,
		Colors: t.FlattenedColors(),
	})
}

// OutputConfig controls where built stylesheets go.
type OutputConfig struct {
	// Path is the stylesheet file. Empty means stdout.
	Path string `mapstructure:"path"`

	// HTML wraps the stylesheet in a sample HTML document.
	HTML bool `mapstructure:"html"`
}

// WatchConfig controls config file watching.
type WatchConfig struct {
	// Debounce coalesces bursts of file events.
	// Default: 100ms
	Debounce time.Duration `mapstructure:"debounce"`
}

// TracingConfig holds tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/cssgo/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// MetricsConfig controls the Prometheus endpoint used by watch.
type MetricsConfig struct {
	// Addr is the listen address, e.g. ":9090". Empty disables it.
	Addr string `mapstructure:"addr"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Path  string `mapstructure:"path"` // default: debug.log
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/cssgo/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cssgo", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			// Default theme uses the "default" preset
			Preset: "",
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
		Log: LogConfig{
			Path: "debug.log",
		},
	}
}

// Validate checks every section.
func Validate(cfg Config) error {
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	if err := ValidateWatch(cfg.Watch); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTheme checks that the theme section resolves.
func ValidateTheme(t ThemeConfig) error {
	if _, err := t.Palette(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	return nil
}

// ValidateWatch checks watch options.
func ValidateWatch(w WatchConfig) error {
	if w.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %v", w.Debounce)
	}
	return nil
}

// ValidateTracing checks tracing options.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
			// Valid
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# cssgo configuration

# Theme configuration
# Use a preset theme or customize individual colors
theme:
  # Use a preset (run 'cssgo themes' to see available presets):
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Neutral dark theme
  #   catppuccin-mocha  - Soothing pastel theme (dark)
  #   catppuccin-latte  - Soothing pastel theme (light)
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - Maximum contrast for accessibility
  #
  # Force a color-scheme: "dark" or "light" (default: the preset's)
  # mode: dark
  #
  # Override specific colors (works with or without preset):
  # colors:
  #   text.primary: "#FFFFFF"
  #   status.error: "#FF0000"

# Output for 'cssgo build' and 'cssgo watch'
output:
  # path: dist/styles.css  # default: stdout
  html: false              # wrap the stylesheet in a sample HTML document

# Config file watching for 'cssgo watch'
watch:
  debounce: 100ms

# Prometheus endpoint for 'cssgo watch'
# metrics:
#   addr: ":9090"

# Tracing configuration
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/cssgo/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Debug logging (also enabled by --debug or CSSGO_DEBUG=1)
# log:
#   debug: true
#   path: debug.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
