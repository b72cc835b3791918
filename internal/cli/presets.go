package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/andyrewlee/fadeline/internal/gradient"
	"github.com/andyrewlee/fadeline/internal/palette"
)

func buildPresetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List available gradient presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			names := palette.Names()

			nameWidth := 0
			for _, name := range names {
				if w := ansi.StringWidth(name); w > nameWidth {
					nameWidth = w
				}
			}

			for _, name := range names {
				p, _ := palette.Lookup(name)
				sample, err := renderLine(name, request{
					stops: p.Stops,
					mode:  gradient.BlendPerceptual,
				})
				if err != nil {
					// A preset shorter than its stop count renders flat
					// rather than failing the listing.
					sample = name
				}
				pad := strings.Repeat(" ", nameWidth-ansi.StringWidth(sample)+2)
				fmt.Fprintf(out, "%s%s%s\n", sample, pad, stopList(p))
			}
			return nil
		},
	}
}

func stopList(p palette.Preset) string {
	hexes := make([]string, len(p.Stops))
	for i, c := range p.Stops {
		hexes[i] = c.Hex()
	}
	return strings.Join(hexes, " > ")
}
