package styles

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTheme struct {
	color string
	label string // ignored by Unchanged
}

func (t testTheme) Unchanged(other testTheme) bool { return t.color == other.color }

type recordingTarget struct{ texts []string }

func (r *recordingTarget) SetText(css string) { r.texts = append(r.texts, css) }

func (r *recordingTarget) last() string {
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}

// fixedSheet mints n classes, each colored by the theme.
func fixedSheet(name string, n int, calls *int) *Sheet[testTheme, []string] {
	return NewSheet(name,
		func(th testTheme, css *strings.Builder, c *Counter) {
			if calls != nil {
				*calls++
			}
			for range n {
				fmt.Fprintf(css, ".%s{color:%s}", c.Class(), th.color)
			}
		},
		func(start Counter) []string {
			out := make([]string, n)
			for i := range out {
				out[i] = ClassAt(start, uint64(i))
			}
			return out
		},
		Span(uint64(n)),
	)
}

func requirePanicIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}
