package gradient

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Span is one styled unit of output: a grapheme cluster (or the whole text
// in degenerate cases) with its resolved foreground and background. A nil
// channel means that channel is left unstyled.
type Span struct {
	Content    string
	Foreground color.Color
	Background color.Color
}

// Render applies the span's colors through lipgloss and returns the styled
// string.
func (s Span) Render() string {
	return s.RenderWith(lipgloss.NewStyle())
}

// RenderWith renders on top of a base style, so callers can stack bold,
// italics, and the like underneath the gradient colors. The base style is a
// value and is never mutated.
func (s Span) RenderWith(base lipgloss.Style) string {
	if s.Foreground != nil {
		base = base.Foreground(s.Foreground)
	}
	if s.Background != nil {
		base = base.Background(s.Background)
	}
	return base.Render(s.Content)
}
