package styles

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/mariesavch/css-in-go/internal/log"
	"github.com/mariesavch/css-in-go/internal/metrics"
	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/pubsub"
	"github.com/mariesavch/css-in-go/internal/tracing"
)

// Target receives the full stylesheet text after every change.
type Target interface {
	SetText(css string)
}

// Change describes a flushed stylesheet.
type Change struct {
	ProviderID string
	Sheet      string // registered sheet; empty for rebuilds
	Sheets     int
	Stylesheet string
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	tracer  trace.Tracer
	metrics *metrics.Metrics
	broker  *pubsub.Broker[Change]
}

// WithTracer records registration and rebuild spans with tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) { o.tracer = tracer }
}

// WithMetrics records Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithBroker publishes a Change after every flush.
func WithBroker(b *pubsub.Broker[Change]) Option {
	return func(o *options) { o.broker = b }
}

// Provider owns one registry: the stylesheet, the registered sheets and the
// identifier counter. Class names are unique per Provider only.
//
// A Provider belongs to the goroutine that drives it. Methods are serialized
// by an internal lock, and any call made while a generator or the target is
// running panics with ErrReentrant instead of deadlocking. Other goroutines
// should observe the stylesheet through WithBroker.
type Provider[T Theme[T]] struct {
	id   string
	opts options

	mu       sync.Mutex
	busy     atomic.Bool
	poisoned bool
	reg      *registry[T]
}

// New creates a provider flushing to target, starting from theme.
func New[T Theme[T]](target Target, theme T, opts ...Option) *Provider[T] {
	if target == nil {
		panic("styles: New requires a target")
	}
	p := &Provider[T]{
		id:  uuid.NewString(),
		reg: newRegistry(target, theme),
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	if p.opts.tracer == nil {
		p.opts.tracer = noop.NewTracerProvider().Tracer("styles")
	}
	log.Debug(log.CatRegistry, "Provider created", "provider", p.id)
	return p
}

// NewMounted mounts a style element in root and creates a provider on it.
// It panics if root cannot hold a stylesheet.
func NewMounted[T Theme[T]](root mount.Node, theme T, opts ...Option) *Provider[T] {
	return New(mount.MustMount(root), theme, opts...)
}

// ID returns the provider's unique id.
func (p *Provider[T]) ID() string {
	return p.id
}

// Register returns the start of u's identifier range. A new sheet is run
// against the current theme, appended to the stylesheet and flushed; a
// sheet registered before returns its recorded start with no other effect.
func (p *Provider[T]) Register(u Updater[T]) Counter {
	_, span := p.opts.tracer.Start(context.Background(), tracing.SpanRegister,
		trace.WithAttributes(
			attribute.String(tracing.AttrProviderID, p.id),
			attribute.String(tracing.AttrSheetName, u.SheetName()),
			attribute.Int64(tracing.AttrSheetID, int64(u.SheetID())),
		))
	defer span.End()

	var (
		rng   Range
		isNew bool
		css   string
		count int
	)
	p.mutate(func(r *registry[T]) {
		rng, isNew = r.add(u)
		if isNew {
			css = r.css.String()
			count = len(r.records)
		}
	})

	span.SetAttributes(
		attribute.Bool(tracing.AttrDeduped, !isNew),
		attribute.Int64(tracing.AttrRangeStart, int64(rng.Start)),
		attribute.Int64(tracing.AttrRangeStop, int64(rng.Stop)),
	)
	p.opts.metrics.RecordRegistration(isNew)

	if isNew {
		log.Debug(log.CatRegistry, "Sheet registered", "provider", p.id, "sheet", u.SheetName(),
			"start", uint64(rng.Start), "stop", uint64(rng.Stop))
		p.flushed(pubsub.RegisteredEvent, Change{ProviderID: p.id, Sheet: u.SheetName(), Sheets: count, Stylesheet: css})
	}
	return rng.Start
}

// UpdateTheme replaces the theme. If theme reports itself unchanged relative
// to the current one nothing happens; otherwise every sheet is regenerated
// in registration order and the stylesheet is flushed once. Returns whether
// a rebuild ran.
func (p *Provider[T]) UpdateTheme(theme T) bool {
	_, span := p.opts.tracer.Start(context.Background(), tracing.SpanUpdateTheme,
		trace.WithAttributes(attribute.String(tracing.AttrProviderID, p.id)))
	defer span.End()

	var (
		rebuilt bool
		css     string
		count   int
		elapsed time.Duration
	)
	p.mutate(func(r *registry[T]) {
		if r.theme.Unchanged(theme) {
			return
		}
		r.theme = theme

		began := time.Now()
		r.rebuild()
		elapsed = time.Since(began)

		rebuilt = true
		css = r.css.String()
		count = len(r.records)
	})

	span.SetAttributes(attribute.Bool(tracing.AttrThemeChange, rebuilt))
	if !rebuilt {
		p.opts.metrics.RecordSkip()
		log.Debug(log.CatTheme, "Theme unchanged, rebuild skipped", "provider", p.id)
		return false
	}

	span.SetAttributes(
		attribute.Int(tracing.AttrSheetCount, count),
		attribute.Int(tracing.AttrCSSBytes, len(css)),
	)
	p.opts.metrics.RecordRebuild(elapsed)
	log.Info(log.CatRegistry, "Stylesheet rebuilt", "provider", p.id, "sheets", count,
		"bytes", len(css), "elapsed", elapsed)
	p.flushed(pubsub.RebuiltEvent, Change{ProviderID: p.id, Sheets: count, Stylesheet: css})
	return true
}

// Theme returns the current theme.
func (p *Provider[T]) Theme() T {
	var theme T
	p.read(func(r *registry[T]) { theme = r.theme })
	return theme
}

// Stylesheet returns the text last flushed to the target.
func (p *Provider[T]) Stylesheet() string {
	var css string
	p.read(func(r *registry[T]) { css = r.css.String() })
	return css
}

// Ranges returns the reserved identifier ranges in registration order.
func (p *Provider[T]) Ranges() []Range {
	var out []Range
	p.read(func(r *registry[T]) { out = r.ranges() })
	return out
}

// Allocated returns the next identifier the provider would hand out.
func (p *Provider[T]) Allocated() Counter {
	var c Counter
	p.read(func(r *registry[T]) { c = r.counter })
	return c
}

func (p *Provider[T]) lock() {
	if p.busy.Load() {
		violate(ErrReentrant, "provider %s", p.id)
	}
	p.mu.Lock()
	if p.poisoned {
		p.mu.Unlock()
		violate(ErrPoisoned, "provider %s", p.id)
	}
}

// mutate runs fn with exclusive access. If fn panics the provider stays
// poisoned and the panic propagates.
func (p *Provider[T]) mutate(fn func(r *registry[T])) {
	p.lock()
	defer p.mu.Unlock()
	p.busy.Store(true)
	defer p.busy.Store(false)

	p.poisoned = true
	fn(p.reg)
	p.poisoned = false
}

func (p *Provider[T]) read(fn func(r *registry[T])) {
	p.lock()
	defer p.mu.Unlock()
	fn(p.reg)
}

func (p *Provider[T]) flushed(kind pubsub.EventType, c Change) {
	p.opts.metrics.RecordFlush(len(c.Stylesheet))
	if p.opts.broker != nil {
		p.opts.broker.Publish(kind, c)
	}
}
