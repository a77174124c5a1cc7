package styles

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mariesavch/css-in-go/internal/metrics"
	"github.com/mariesavch/css-in-go/internal/mount"
	"github.com/mariesavch/css-in-go/internal/pubsub"
	"github.com/mariesavch/css-in-go/internal/tracing"
)

func TestProvider_TwoSheetsGetSequentialClasses(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red"})

	a := Use(p, fixedSheet("a", 1, nil))
	b := Use(p, fixedSheet("b", 1, nil))

	require.Equal(t, []string{"css-0"}, a)
	require.Equal(t, []string{"css-1"}, b)
	require.Equal(t, ".css-0{color:red}.css-1{color:red}", p.Stylesheet())
	require.Equal(t, []string{".css-0{color:red}", ".css-0{color:red}.css-1{color:red}"}, target.texts)
	require.Equal(t, Counter(2), p.Allocated())
}

func TestProvider_RegisterIsIdempotent(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red"})

	calls := 0
	sheet := fixedSheet("a", 3, &calls)

	first := p.Register(sheet)
	second := p.Register(sheet)

	require.Equal(t, first, second)
	require.Equal(t, 1, calls, "dedup hit must not run the generator")
	require.Len(t, target.texts, 1, "dedup hit must not flush")
	require.Len(t, p.Ranges(), 1)
}

func TestProvider_DistinctSheetsWithSameNameAreDistinct(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})

	a := p.Register(fixedSheet("same", 2, nil))
	b := p.Register(fixedSheet("same", 2, nil))

	require.Equal(t, Counter(0), a)
	require.Equal(t, Counter(2), b)
}

func TestProvider_EmptySheetReservesEmptyRange(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})

	empty := p.Register(fixedSheet("empty", 0, nil))
	next := p.Register(fixedSheet("next", 1, nil))

	require.Equal(t, Counter(0), empty)
	require.Equal(t, Counter(0), next)
	ranges := p.Ranges()
	require.Equal(t, uint64(0), ranges[0].Len())
	require.False(t, ranges[0].Contains(0))
	require.True(t, ranges[1].Contains(0))
}

func TestProvider_UpdateThemeUnchangedSkips(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red", label: "one"})
	p.Register(fixedSheet("a", 2, nil))
	before := p.Stylesheet()

	rebuilt := p.UpdateTheme(testTheme{color: "red", label: "two"})

	require.False(t, rebuilt)
	require.Len(t, target.texts, 1)
	require.Equal(t, before, p.Stylesheet())
	require.Equal(t, "one", p.Theme().label, "skipped update keeps the old theme")
}

func TestProvider_UpdateThemeRebuildsInPlace(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red"})
	calls := 0
	a := Use(p, fixedSheet("a", 1, &calls))
	b := Use(p, fixedSheet("b", 2, nil))

	require.True(t, p.UpdateTheme(testTheme{color: "blue"}))

	require.Equal(t, 2, calls)
	require.Len(t, target.texts, 3, "rebuild flushes exactly once")
	require.Equal(t, ".css-0{color:blue}.css-1{color:blue}.css-2{color:blue}", target.last())
	require.Equal(t, "blue", p.Theme().color)

	// class names handed out earlier stay valid
	require.Equal(t, []string{"css-0"}, a)
	require.Equal(t, []string{"css-1", "css-2"}, b)
	require.Equal(t, Counter(3), p.Allocated())
}

func TestProvider_RegisterAfterRebuildUsesNewTheme(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})
	p.Register(fixedSheet("a", 1, nil))
	p.UpdateTheme(testTheme{color: "blue"})
	p.Register(fixedSheet("b", 1, nil))

	require.Equal(t, ".css-0{color:blue}.css-1{color:blue}", p.Stylesheet())
}

func TestProvider_RebuildWithNoSheetsFlushesEmpty(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red"})

	require.True(t, p.UpdateTheme(testTheme{color: "blue"}))
	require.Equal(t, []string{""}, target.texts)
}

func TestProvider_EmptyThemeNeverRebuilds(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, EmptyTheme{})
	p.Register(NewSheet("x", func(_ EmptyTheme, css *strings.Builder, c *Counter) {
		css.WriteString("." + c.Class() + "{}")
	}, func(start Counter) string { return start.String() }))

	require.False(t, p.UpdateTheme(EmptyTheme{}))
	require.Len(t, target.texts, 1)
}

func TestProvider_NonDeterministicGeneratorPanics(t *testing.T) {
	target := &recordingTarget{}
	p := New(target, testTheme{color: "red"})

	// mints one class per character of the color
	sheet := NewSheet("unstable", func(th testTheme, css *strings.Builder, c *Counter) {
		for range th.color {
			css.WriteString("." + c.Class() + "{}")
		}
	}, func(start Counter) Counter { return start })
	p.Register(sheet)
	before := p.Stylesheet()

	requirePanicIs(t, ErrCounterMismatch, func() { p.UpdateTheme(testTheme{color: "blue"}) })

	require.Len(t, target.texts, 1, "failed rebuild must not flush")
	require.Equal(t, before, target.last())
	requirePanicIs(t, ErrPoisoned, func() { p.Stylesheet() })
	requirePanicIs(t, ErrPoisoned, func() { p.Register(fixedSheet("later", 1, nil)) })
}

func TestProvider_SpanMismatchPanics(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})
	sheet := NewSheet("liar", func(_ testTheme, css *strings.Builder, c *Counter) {
		css.WriteString("." + c.Class() + "{}")
	}, func(start Counter) Counter { return start }, Span(2))

	requirePanicIs(t, ErrSpanMismatch, func() { p.Register(sheet) })
	requirePanicIs(t, ErrPoisoned, func() { p.Ranges() })
}

func TestProvider_BackwardsCounterPanics(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})
	p.Register(fixedSheet("a", 2, nil))

	rewind := NewSheet("rewind", func(_ testTheme, _ *strings.Builder, c *Counter) {
		*c = 0
	}, func(start Counter) Counter { return start })

	requirePanicIs(t, ErrCounterMismatch, func() { p.Register(rewind) })
}

func TestProvider_ReentrantGeneratorPanics(t *testing.T) {
	p := New(&recordingTarget{}, testTheme{color: "red"})
	inner := fixedSheet("inner", 1, nil)
	outer := NewSheet("outer", func(_ testTheme, _ *strings.Builder, c *Counter) {
		p.Register(inner)
	}, func(start Counter) Counter { return start })

	requirePanicIs(t, ErrReentrant, func() { p.Register(outer) })
	requirePanicIs(t, ErrPoisoned, func() { p.Allocated() })
}

type reentrantTarget struct {
	p *Provider[testTheme]
}

func (r *reentrantTarget) SetText(string) { r.p.Stylesheet() }

func TestProvider_ReentrantTargetPanics(t *testing.T) {
	target := &reentrantTarget{}
	p := New[testTheme](target, testTheme{color: "red"})
	target.p = p

	requirePanicIs(t, ErrReentrant, func() { p.Register(fixedSheet("a", 1, nil)) })
}

func TestProvider_IDsAreUnique(t *testing.T) {
	a := New(&recordingTarget{}, EmptyTheme{})
	b := New(&recordingTarget{}, EmptyTheme{})
	require.NotEmpty(t, a.ID())
	require.NotEqual(t, a.ID(), b.ID())
}

func TestProvider_ClassNamesArePerProvider(t *testing.T) {
	sheet := fixedSheet("shared", 1, nil)
	a := New(&recordingTarget{}, testTheme{color: "red"})
	b := New(&recordingTarget{}, testTheme{color: "red"})
	b.Register(fixedSheet("first", 2, nil))

	require.Equal(t, Counter(0), a.Register(sheet))
	require.Equal(t, Counter(2), b.Register(sheet))
}

func TestNew_NilTargetPanics(t *testing.T) {
	require.Panics(t, func() { New[testTheme](nil, testTheme{}) })
}

func TestNewSheet_NilFuncsPanic(t *testing.T) {
	require.Panics(t, func() {
		NewSheet[testTheme, int]("x", nil, func(Counter) int { return 0 })
	})
}

func TestNewMounted_WritesIntoDocumentHead(t *testing.T) {
	doc := mount.NewDocument()
	p := NewMounted(doc, testTheme{color: "red"})
	classes := Use(p, fixedSheet("a", 1, nil))

	require.Equal(t, []string{"css-0"}, classes)
	require.Len(t, doc.Head.Children, 1)
	require.Equal(t, ".css-0{color:red}", doc.Head.Children[0].Text())
}

func TestNewMounted_FragmentPanics(t *testing.T) {
	require.Panics(t, func() { NewMounted(mount.NewFragment(), testTheme{}) })
}

func TestProvider_PublishesChanges(t *testing.T) {
	broker := pubsub.NewBroker[Change]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := broker.Subscribe(ctx)

	p := New(&recordingTarget{}, testTheme{color: "red"}, WithBroker(broker))
	sheet := fixedSheet("a", 1, nil)
	p.Register(sheet)
	p.Register(sheet) // dedup, no event
	p.UpdateTheme(testTheme{color: "red"})
	p.UpdateTheme(testTheme{color: "blue"})

	ev := receive(t, events)
	require.Equal(t, pubsub.RegisteredEvent, ev.Type)
	require.Equal(t, "a", ev.Payload.Sheet)
	require.Equal(t, 1, ev.Payload.Sheets)
	require.Equal(t, p.ID(), ev.Payload.ProviderID)

	ev = receive(t, events)
	require.Equal(t, pubsub.RebuiltEvent, ev.Type)
	require.Equal(t, ".css-0{color:blue}", ev.Payload.Stylesheet)

	select {
	case extra := <-events:
		t.Fatalf("unexpected event %v", extra.Type)
	default:
	}
}

func receive(t *testing.T, ch <-chan pubsub.Event[Change]) pubsub.Event[Change] {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return pubsub.Event[Change]{}
	}
}

func TestProvider_RecordsMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	p := New(&recordingTarget{}, testTheme{color: "red"}, WithMetrics(m))

	sheet := fixedSheet("a", 2, nil)
	p.Register(sheet)
	p.Register(sheet)
	p.UpdateTheme(testTheme{color: "red"})
	p.UpdateTheme(testTheme{color: "blue"})

	require.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues(metrics.ResultNew)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RegistrationsTotal.WithLabelValues(metrics.ResultDedup)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.SkippedUpdatesTotal))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RebuildsTotal))
	require.Equal(t, float64(len(p.Stylesheet())), testutil.ToFloat64(m.StylesheetBytes))
}

func TestProvider_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	p := New(&recordingTarget{}, testTheme{color: "red"}, WithTracer(tp.Tracer("test")))
	p.Register(fixedSheet("a", 1, nil))
	p.UpdateTheme(testTheme{color: "blue"})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, tracing.SpanRegister, spans[0].Name())
	require.Equal(t, tracing.SpanUpdateTheme, spans[1].Name())

	attrs := map[string]any{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInterface()
	}
	require.Equal(t, "a", attrs[tracing.AttrSheetName])
	require.Equal(t, false, attrs[tracing.AttrDeduped])
	require.Equal(t, int64(1), attrs[tracing.AttrRangeStop])
}
