package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mariesavch/css-in-go/internal/pubsub"
)

func TestFormat_FieldsAndOrphanKey(t *testing.T) {
	ts := time.Date(2026, 1, 2, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelWarn, CatRegistry, "rebuilt", []any{"sheets", 3, "orphan"})

	require.Equal(t, "2026-01-02T10:45:00 [WARN] [registry] rebuilt sheets=3 orphan=<missing>\n", got)
}

func TestWrite_RespectsLevelAndEnabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	SetMinLevel(LevelInfo)
	Debug(CatTheme, "hidden")
	Info(CatTheme, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[INFO] [theme] shown")

	SetEnabled(false)
	Error(CatTheme, "muted")
	require.NotContains(t, buf.String(), "muted")
}

func TestErrorErr_AppendsError(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	ErrorErr(CatMount, "write failed", errors.New("disk full"), "path", "/tmp/x.css")

	require.Contains(t, buf.String(), "path=/tmp/x.css error=disk full")
}

func TestWrite_NoLoggerIsNoop(t *testing.T) {
	Reset()
	require.NotPanics(t, func() { Info(CatConfig, "nothing") })
	require.Nil(t, NewListener(context.Background()))
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Info(CatUI, "preview started")

	event, ok := listener.Listen()().(pubsub.Event[string])
	require.True(t, ok)
	require.Equal(t, pubsub.LoggedEvent, event.Type)
	require.Contains(t, event.Payload, "preview started")
}

func TestNewListener_ReplaysRecentEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(Reset)

	Info(CatConfig, "loaded config")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event, ok := NewListener(ctx).Listen()().(pubsub.Event[string])
	require.True(t, ok)
	require.Contains(t, event.Payload, "loaded config")
}
