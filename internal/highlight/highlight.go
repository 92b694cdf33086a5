// Package highlight colours generated OpenSCAD text for terminals.
package highlight

import (
	"strings"

	"github.com/fatih/color"
)

// Kind classifies a run of source text.
type Kind int

const (
	Plain Kind = iota
	Module
	Number
	String
	Literal
	Modifier
	Special
	Punct
)

// Token is a run of source text of one kind.
type Token struct {
	Kind Kind
	Text string
}

// Highlighter wraps tokens in ANSI colour sequences.
type Highlighter struct {
	enabled bool
	styles  map[Kind]*color.Color
}

// New returns a Highlighter. When enabled is false Code returns its input
// unchanged; when true colours are emitted even if stdout is not a
// terminal.
func New(enabled bool) *Highlighter {
	h := &Highlighter{
		enabled: enabled,
		styles: map[Kind]*color.Color{
			Module:   color.New(color.FgBlue, color.Bold),
			Number:   color.RGB(128, 216, 236),
			String:   color.RGB(8, 196, 16),
			Literal:  color.New(color.FgMagenta),
			Modifier: color.New(color.FgRed, color.Bold),
			Special:  color.New(color.FgYellow),
			Punct:    color.RGB(96, 96, 96),
		},
	}
	for _, c := range h.styles {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return h
}

// Enabled reports whether colours are emitted.
func (h *Highlighter) Enabled() bool { return h.enabled }

// Code returns src with each token coloured by kind.
func (h *Highlighter) Code(src string) string {
	if !h.enabled {
		return src
	}
	var b strings.Builder
	for _, tok := range Tokens(src) {
		b.WriteString(h.Color(tok.Kind, tok.Text))
	}
	return b.String()
}

// Color wraps s in the style for k. Newlines are left outside the escape
// sequences so each line resets on its own.
func (h *Highlighter) Color(k Kind, s string) string {
	c := h.styles[k]
	if !h.enabled || c == nil || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln != "" {
			lines[i] = c.Sprint(ln)
		}
	}
	return strings.Join(lines, "\n")
}

// Tokens splits OpenSCAD source into runs. Concatenating the Text of all
// tokens gives back src.
func Tokens(src string) []Token {
	var toks []Token
	emit := func(k Kind, s string) {
		if n := len(toks); n > 0 && toks[n-1].Kind == k && k == Punct {
			toks[n-1].Text += s
			return
		}
		toks = append(toks, Token{Kind: k, Text: s})
	}

	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == '"':
			j := i + 1
			for j < len(src) && src[j] != '"' {
				if src[j] == '\\' && j+1 < len(src) {
					j++
				}
				j++
			}
			if j < len(src) {
				j++
			}
			emit(String, src[i:j])
			i = j

		case c == '!' || c == '#' || c == '%' || c == '*':
			emit(Modifier, src[i:i+1])
			i++

		case c == '$' || isIdentStart(c):
			j := i + 1
			for j < len(src) && isIdent(src[j]) {
				j++
			}
			word := src[i:j]
			switch {
			case c == '$':
				emit(Special, word)
			case word == "true" || word == "false" || word == "undef":
				emit(Literal, word)
			case j < len(src) && src[j] == '(':
				emit(Module, word)
			default:
				emit(Plain, word)
			}
			i = j

		case isDigit(c) || (c == '-' && i+1 < len(src) && (isDigit(src[i+1]) || src[i+1] == '.')) ||
			(c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			j := i + 1
			for j < len(src) && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			emit(Number, src[i:j])
			i = j

		case strings.IndexByte("()[]{},;=/", c) >= 0:
			emit(Punct, src[i:i+1])
			i++

		default:
			emit(Plain, src[i:i+1])
			i++
		}
	}
	return toks
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdent(c byte) bool { return isIdentStart(c) || isDigit(c) }
