// Package stylediff compares two rendered stylesheets line by line.
package stylediff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff line.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one line of a diff.
type Line struct {
	Op   Op
	Text string
}

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Lines diffs a against b on line boundaries.
func Lines(a, b string) []Line {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = Insert
		case diffmatchpatch.DiffDelete:
			op = Delete
		}
		for _, l := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: l})
		}
	}
	return out
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Count returns the added and removed line counts.
func Count(lines []Line) Stats {
	var s Stats
	for _, l := range lines {
		switch l.Op {
		case Insert:
			s.Added++
		case Delete:
			s.Removed++
		}
	}
	return s
}

// Unified renders lines with "+", "-" and " " prefixes. Unchanged runs
// longer than 2*context are collapsed to the context lines on either side.
// A negative context keeps every line.
func Unified(lines []Line, context int) string {
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal && context >= 0 {
			continue
		}
		keep[i] = true
		if l.Op != Equal {
			for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
				keep[j] = true
			}
		}
	}

	var b strings.Builder
	skipped := false
	for i, l := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString("@@\n")
			skipped = false
		}
		switch l.Op {
		case Insert:
			b.WriteString("+")
		case Delete:
			b.WriteString("-")
		default:
			b.WriteString(" ")
		}
		b.WriteString(l.Text)
		b.WriteString("\n")
	}
	if skipped {
		b.WriteString("@@\n")
	}
	return b.String()
}
