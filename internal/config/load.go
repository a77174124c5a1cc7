package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// KeyDelimiter separates nested keys. The default "." would split dotted
// color tokens like "text.primary" in the theme.colors map.
const KeyDelimiter = "::"

// EnvPrefix prefixes environment overrides, e.g. CSSGO_THEME_PRESET.
const EnvPrefix = "CSSGO"

// NewViper returns a viper instance with defaults and env overrides set.
func NewViper() *viper.Viper {
	v := viper.NewWithOptions(viper.KeyDelimiter(KeyDelimiter))
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(KeyDelimiter, "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers Defaults with v.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	key := func(parts ...string) string { return strings.Join(parts, KeyDelimiter) }

	v.SetDefault(key("theme", "preset"), d.Theme.Preset)
	v.SetDefault(key("theme", "mode"), d.Theme.Mode)
	v.SetDefault(key("output", "path"), d.Output.Path)
	v.SetDefault(key("output", "html"), d.Output.HTML)
	v.SetDefault(key("watch", "debounce"), d.Watch.Debounce)
	v.SetDefault(key("tracing", "enabled"), d.Tracing.Enabled)
	v.SetDefault(key("tracing", "exporter"), d.Tracing.Exporter)
	v.SetDefault(key("tracing", "file_path"), d.Tracing.FilePath)
	v.SetDefault(key("tracing", "otlp_endpoint"), d.Tracing.OTLPEndpoint)
	v.SetDefault(key("tracing", "sample_rate"), d.Tracing.SampleRate)
	v.SetDefault(key("metrics", "addr"), d.Metrics.Addr)
	v.SetDefault(key("log", "debug"), d.Log.Debug)
	v.SetDefault(key("log", "path"), d.Log.Path)
}

// Decode unmarshals and validates the configuration held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	v := NewViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isNotExist(err) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	return Decode(v)
}
