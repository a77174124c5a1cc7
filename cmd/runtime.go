package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/mariesavch/css-in-go/internal/config"
	"github.com/mariesavch/css-in-go/internal/log"
	"github.com/mariesavch/css-in-go/internal/metrics"
	"github.com/mariesavch/css-in-go/internal/styles"
	"github.com/mariesavch/css-in-go/internal/theme"
	"github.com/mariesavch/css-in-go/internal/tracing"
)

// runtime bundles the instrumentation shared by every command.
type runtime struct {
	tracing  *tracing.Provider
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func newRuntime(tc config.TracingConfig) (*runtime, error) {
	tp, err := tracing.NewProvider(tracing.Config{
		Enabled:      tc.Enabled,
		Exporter:     tc.Exporter,
		FilePath:     tc.FilePath,
		OTLPEndpoint: tc.OTLPEndpoint,
		SampleRate:   tc.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &runtime{
		tracing:  tp,
		registry: reg,
		metrics:  metrics.New(reg),
	}, nil
}

func (r *runtime) options(extra ...styles.Option) []styles.Option {
	return append([]styles.Option{
		styles.WithTracer(r.tracing.Tracer()),
		styles.WithMetrics(r.metrics),
	}, extra...)
}

func (r *runtime) close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.tracing.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
	}
}

// palette resolves the configured theme, with preset overriding the
// configured preset when set.
func palette(preset string) (theme.Palette, error) {
	tc := cfg.Theme
	if preset != "" {
		tc.Preset = preset
	}
	return tc.Palette()
}

func baseThemeConfig() theme.Config {
	return theme.Config{
		Preset: cfg.Theme.Preset,
		Mode:   cfg.Theme.Mode,
		Colors: cfg.Theme.FlattenedColors(),
	}
}
