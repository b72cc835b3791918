package cli

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/andyrewlee/fadeline/internal/gradient"
)

// renderLine colors one line of text according to the request and returns
// the ANSI-styled result.
func renderLine(line string, req request) (string, error) {
	seq, err := gradient.AddGradient(line, req.fixed, req.stops, req.background, req.mode)
	if err != nil {
		return "", err
	}

	base := lipgloss.NewStyle()
	if req.bold {
		base = base.Bold(true)
	}

	var b strings.Builder
	for sp := range seq {
		// Without an explicit --fixed the non-gradient channel stays
		// untouched, so terminal defaults show through.
		if !req.fixedSet {
			if req.background {
				sp.Foreground = nil
			} else {
				sp.Background = nil
			}
		}
		b.WriteString(sp.RenderWith(base))
	}
	return b.String(), nil
}
