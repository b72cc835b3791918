// Package palette ships named gradient presets so callers do not have to
// hand-pick hex stops for common looks.
package palette

import (
	"sort"

	"github.com/andyrewlee/fadeline/internal/gradient"
)

// Preset is a named, ordered list of gradient stops.
type Preset struct {
	Name  string
	Stops []gradient.Color
}

// Tokyo Night-inspired stops where applicable, matching the rest of the
// project's look.
var presets = map[string]Preset{
	"sunset": {Name: "sunset", Stops: []gradient.Color{
		gradient.RGB(247, 118, 142), // soft red
		gradient.RGB(224, 175, 104), // amber
		gradient.RGB(187, 154, 247), // violet
	}},
	"ocean": {Name: "ocean", Stops: []gradient.Color{
		gradient.RGB(125, 207, 255), // cyan
		gradient.RGB(122, 162, 247), // blue
		gradient.RGB(61, 89, 161),   // deep blue
	}},
	"forest": {Name: "forest", Stops: []gradient.Color{
		gradient.RGB(158, 206, 106), // leaf green
		gradient.RGB(115, 218, 202), // teal
	}},
	"fire": {Name: "fire", Stops: []gradient.Color{
		gradient.RGB(255, 158, 100), // orange
		gradient.RGB(247, 118, 142), // red
		gradient.RGB(122, 162, 247), // blue core
	}},
	"rainbow": {Name: "rainbow", Stops: []gradient.Color{
		gradient.RGB(255, 0, 0),
		gradient.RGB(255, 165, 0),
		gradient.RGB(255, 255, 0),
		gradient.RGB(0, 255, 0),
		gradient.RGB(0, 127, 255),
		gradient.RGB(139, 0, 255),
	}},
	"mono": {Name: "mono", Stops: []gradient.Color{
		gradient.RGB(86, 95, 137),   // dimmed
		gradient.RGB(169, 177, 214), // lavender white
	}},
}

// Default returns the preset used when the caller names none.
func Default() Preset {
	return presets["sunset"]
}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Names lists all preset names, sorted.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
