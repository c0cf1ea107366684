package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tag names the role of a piece of text.
type Tag int

const (
	Plain Tag = iota
	Prompt
	Hint
	Answer
	Heading
	Step
	StepAlt
	Success
	Error
)

var (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorBlue   = lipgloss.Color("4")
)

// Palette renders text for a single output stream.
type Palette struct {
	styles map[Tag]lipgloss.Style
}

// New builds a palette whose color profile is detected from w.
// Non-terminal writers get plain text. noColor forces plain text.
func New(w io.Writer, noColor bool) Palette {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return FromRenderer(r)
}

// FromRenderer builds a palette on an existing renderer.
func FromRenderer(r *lipgloss.Renderer) Palette {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Palette{styles: map[Tag]lipgloss.Style{
		Plain:   base,
		Prompt:  base.Foreground(colorRed).Bold(true),
		Hint:    base.Foreground(colorYellow),
		Answer:  base.Foreground(colorGreen),
		Heading: base.Foreground(colorBlue).Bold(true),
		Step:    base.Foreground(colorYellow),
		StepAlt: base.Foreground(colorBlue),
		Success: base.Foreground(colorGreen).Bold(true),
		Error:   base.Foreground(colorRed),
	}}
}

// Render decorates text with the style for tag. Each line is styled on its
// own so multi-line text is never padded to a common width.
func (p Palette) Render(tag Tag, text string) string {
	style, ok := p.styles[tag]
	if !ok || text == "" {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
