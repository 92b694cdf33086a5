// Package diffview shows line differences between an existing .scad file
// and freshly generated code.
package diffview

import (
	"fmt"
	"strings"

	"github.com/chazu/scadgen/internal/highlight"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Op is the kind of a diff line.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

// Line is one line of a line diff, without its newline.
type Line struct {
	Op   Op
	Text string
}

// Lines returns the line diff turning from into to.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		for _, ln := range splitLines(d.Text) {
			out = append(out, Line{Op: op, Text: ln})
		}
	}
	return out
}

// splitLines splits on newlines; a trailing newline does not start a new
// line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Stats counts inserted and deleted lines.
func Stats(lines []Line) (inserted, deleted int) {
	for _, l := range lines {
		switch l.Op {
		case Insert:
			inserted++
		case Delete:
			deleted++
		}
	}
	return inserted, deleted
}

// Format renders lines in unified style with " ", "+" and "-" prefixes,
// keeping at most context unchanged lines around each change. Skipped runs
// are shown as "@@ N unchanged lines @@". A negative context keeps all
// lines.
func Format(lines []Line, context int, h *highlight.Highlighter) string {
	if h == nil {
		h = highlight.New(false)
	}
	keep := make([]bool, len(lines))
	for i, l := range lines {
		if l.Op == Equal && context >= 0 {
			continue
		}
		lo, hi := i-context, i+context
		if context < 0 {
			lo, hi = i, i
		}
		for j := max(lo, 0); j <= hi && j < len(lines); j++ {
			keep[j] = true
		}
	}

	var b strings.Builder
	skipped := 0
	flush := func() {
		if skipped > 0 {
			b.WriteString(h.Color(highlight.Special, fmt.Sprintf("@@ %d unchanged lines @@", skipped)))
			b.WriteByte('\n')
			skipped = 0
		}
	}
	for i, l := range lines {
		if !keep[i] {
			skipped++
			continue
		}
		flush()
		switch l.Op {
		case Insert:
			b.WriteString(h.Color(highlight.String, "+"+l.Text))
		case Delete:
			b.WriteString(h.Color(highlight.Modifier, "-"+l.Text))
		default:
			b.WriteString(" " + l.Text)
		}
		b.WriteByte('\n')
	}
	flush()
	return b.String()
}
