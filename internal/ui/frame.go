// Package ui frames interpreter output for the interactive shell.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Tone selects how a framed block is colored.
type Tone int

const (
	ToneNormal Tone = iota
	ToneError
	ToneWarning
)

const indent = "    "

// Framer draws a horizontal rule above and below each block of output.
type Framer struct {
	width int
	plain bool
}

// NewFramer creates a framer. Plain framers use ASCII rules and no color.
func NewFramer(width int, plain bool) *Framer {
	if width < 20 {
		width = 20
	}
	return &Framer{width: width, plain: plain}
}

// Frame renders body between two rules, indenting every line.
func (f *Framer) Frame(body string, tone Tone) string {
	if f.plain {
		rule := strings.Repeat("_", f.width)
		return rule + "\n" + indentLines(body) + "\n" + rule + "\n"
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false).
		BorderForeground(Slate).
		Width(f.width).
		PaddingLeft(len(indent))

	switch tone {
	case ToneError:
		style = style.Foreground(Red)
	case ToneWarning:
		style = style.Foreground(Yellow)
	}
	return style.Render(body) + "\n"
}

func indentLines(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
