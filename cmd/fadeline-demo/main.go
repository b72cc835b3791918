// Command fadeline-demo animates the gradient presets in the terminal.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/andyrewlee/fadeline/internal/gradient"
	"github.com/andyrewlee/fadeline/internal/palette"
)

const (
	demoText     = "the quick brown fox jumps over the lazy dog"
	tickInterval = 120 * time.Millisecond
)

// Matches the palette's dark surface.
var demoSurface = gradient.RGB(26, 27, 38)

type tickMsg time.Time

type keyMap struct {
	Mode       key.Binding
	Preset     key.Binding
	Background key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Mode:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "blend mode")),
		Preset:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "preset")),
		Background: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "background")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type model struct {
	presetNames []string
	presetIdx   int
	mode        gradient.BlendMode
	background  bool
	phase       int
	width       int
	height      int
	keys        keyMap
}

func newModel() *model {
	return &model{
		presetNames: palette.Names(),
		mode:        gradient.BlendPerceptual,
		keys:        defaultKeyMap(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.phase++
		return m, tick()
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			if m.mode == gradient.BlendPerceptual {
				m.mode = gradient.BlendLinear
			} else {
				m.mode = gradient.BlendPerceptual
			}
		case key.Matches(msg, m.keys.Preset):
			m.presetIdx = (m.presetIdx + 1) % len(m.presetNames)
		case key.Matches(msg, m.keys.Background):
			m.background = !m.background
		}
	}
	return m, nil
}

func (m *model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	p, _ := palette.Lookup(m.presetNames[m.presetIdx])
	stops := rotated(p.Stops, m.phase)

	line, err := renderGradientLine(demoText, stops, m.background, m.mode)
	if err != nil {
		line = demoText
	}

	status := fmt.Sprintf("preset: %s   mode: %s   channel: %s",
		p.Name, m.mode, channelName(m.background))
	help := "m blend mode · p preset · b background · q quit"

	muted := lipgloss.NewStyle().Foreground(gradient.RGB(86, 95, 137))
	content := strings.Join([]string{
		centered(line, demoText, m.width),
		"",
		centered(muted.Render(status), status, m.width),
		centered(muted.Render(help), help, m.width),
	}, "\n")

	if pad := (m.height - 4) / 2; pad > 0 {
		content = strings.Repeat("\n", pad) + content
	}
	view.SetContent(content)
	return view
}

func renderGradientLine(text string, stops []gradient.Color, background bool, mode gradient.BlendMode) (string, error) {
	seq, err := gradient.AddGradient(text, demoSurface, stops, background, mode)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for sp := range seq {
		b.WriteString(sp.Render())
	}
	return b.String(), nil
}

// rotated shifts the stop list by n so the gradient appears to travel.
func rotated(stops []gradient.Color, n int) []gradient.Color {
	out := make([]gradient.Color, len(stops))
	for i := range stops {
		out[i] = stops[(i+n)%len(stops)]
	}
	return out
}

// centered pads styled by the display width of its plain counterpart.
func centered(styled, plain string, width int) string {
	pad := (width - runewidth.StringWidth(plain)) / 2
	if pad <= 0 {
		return styled
	}
	return strings.Repeat(" ", pad) + styled
}

func channelName(background bool) string {
	if background {
		return "background"
	}
	return "foreground"
}

func main() {
	p := tea.NewProgram(newModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
