package mount

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMount_CreatesStyleInHead(t *testing.T) {
	doc := NewDocument()

	s, err := Mount(doc)
	require.NoError(t, err)
	require.Len(t, doc.Head.Children, 1)
	require.Equal(t, "style", doc.Head.Children[0].Tag)
	require.Contains(t, doc.Head.Children[0].Attrs, MarkerAttr)
	require.Same(t, doc.Head.Children[0], s.Element())
}

func TestMount_ReusesMarkedStyle(t *testing.T) {
	doc := NewDocument()
	doc.Head.Append(NewElement("style", nil)) // unmarked, left alone

	first, err := Mount(doc)
	require.NoError(t, err)
	second, err := Mount(doc)
	require.NoError(t, err)

	require.Same(t, first.Element(), second.Element())
	require.Len(t, doc.Head.Children, 2)
}

func TestMount_UnsupportedRoots(t *testing.T) {
	tests := []struct {
		name string
		root Node
	}{
		{"fragment", NewFragment()},
		{"element", NewElement("div", nil)},
		{"nil", nil},
		{"headless document", &Document{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Mount(tt.root)
			require.ErrorIs(t, err, ErrUnsupportedRoot)
		})
	}
}

func TestMustMount_PanicsOnFragment(t *testing.T) {
	require.Panics(t, func() { MustMount(NewFragment()) })
}

func TestMountNear_FindsDocument(t *testing.T) {
	doc := NewDocument()
	div := doc.Body.Append(NewElement("div", nil))
	span := div.Append(NewElement("span", nil))

	require.Same(t, doc, span.Root())

	s, err := MountNear(span)
	require.NoError(t, err)
	s.SetText(".css-0{color:red}")
	require.Equal(t, ".css-0{color:red}", doc.Head.Children[0].Text())
}

func TestMountNear_FragmentChildFails(t *testing.T) {
	frag := NewFragment()
	host := frag.Append(NewElement("div", nil))
	child := host.Append(NewElement("p", nil))

	require.Same(t, frag, child.Root())
	_, err := MountNear(child)
	require.ErrorIs(t, err, ErrUnsupportedRoot)
}

func TestMountNear_DetachedElement(t *testing.T) {
	top := NewElement("div", nil)
	leaf := top.Append(NewElement("p", nil))

	require.Same(t, top, leaf.Root())
	_, err := MountNear(leaf)
	require.ErrorIs(t, err, ErrUnsupportedRoot)

	_, err = MountNear(nil)
	require.ErrorIs(t, err, ErrUnsupportedRoot)
}

func TestDocument_HTML(t *testing.T) {
	doc := NewDocument()
	s := MustMount(doc)
	s.SetText(".css-0>a{color:#fff}")
	doc.Body.Append(NewElement("div", map[string]string{"class": "css-0"}))

	out, err := doc.HTML()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	// style content is raw text, not escaped
	require.Contains(t, out, `<style data-cssgo="">.css-0>a{color:#fff}</style>`)
	require.Contains(t, out, `<div class="css-0"></div>`)
}

func TestFileTarget_WritesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "styles.css")
	f := NewFileTarget(path)

	f.SetText("a{}")
	f.SetText("b{}")
	require.NoError(t, f.Err())
	require.Equal(t, 2, f.Writes())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "b{}", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files should be cleaned up")
}

func TestFileTarget_RecordsError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	f := NewFileTarget(filepath.Join(blocker, "styles.css"))
	f.SetText("a{}")
	require.Error(t, f.Err())
	require.Equal(t, 0, f.Writes())
}

type recorder struct{ got []string }

func (r *recorder) SetText(css string) { r.got = append(r.got, css) }

func TestMulti_FansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	Multi{a, b}.SetText("x")
	require.Equal(t, []string{"x"}, a.got)
	require.Equal(t, []string{"x"}, b.got)
}
