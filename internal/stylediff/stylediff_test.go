package stylediff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines_Identical(t *testing.T) {
	lines := Lines("a\nb\n", "a\nb\n")
	require.Equal(t, []Line{{Equal, "a"}, {Equal, "b"}}, lines)
	require.Equal(t, Stats{}, Count(lines))
}

func TestLines_ChangedLine(t *testing.T) {
	a := ".css-0 {\n  color: #CCCCCC;\n}\n"
	b := ".css-0 {\n  color: #CDD6F4;\n}\n"
	lines := Lines(a, b)

	require.Equal(t, []Line{
		{Equal, ".css-0 {"},
		{Delete, "  color: #CCCCCC;"},
		{Insert, "  color: #CDD6F4;"},
		{Equal, "}"},
	}, lines)
	require.Equal(t, Stats{Added: 1, Removed: 1}, Count(lines))
}

func TestLines_Empty(t *testing.T) {
	require.Empty(t, Lines("", ""))
	require.Equal(t, []Line{{Insert, "x"}}, Lines("", "x\n"))
}

func TestUnified_CollapsesContext(t *testing.T) {
	a := "1\n2\n3\n4\n5\n6\n7\n"
	b := "1\n2\n3\nX\n5\n6\n7\n"

	out := Unified(Lines(a, b), 1)
	require.Equal(t, "@@\n 3\n-4\n+X\n 5\n@@\n", out)
}

func TestUnified_FullContext(t *testing.T) {
	out := Unified(Lines("a\nb\n", "a\nc\n"), -1)
	require.Equal(t, " a\n-b\n+c\n", out)
}
