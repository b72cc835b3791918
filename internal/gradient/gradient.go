// Package gradient colors text character by character, distributing a list
// of color stops across the text and interpolating between adjacent stops
// with a selectable blend mode.
package gradient

import (
	"errors"
	"fmt"
	"image/color"
	"iter"

	"github.com/rivo/uniseg"
)

// ErrMoreColorsThanChars is returned when a multi-stop gradient is requested
// for a text too short to give every transition at least one character.
var ErrMoreColorsThanChars = errors.New("more colors than characters")

// AddGradient partitions text across the given color stops and yields one
// styled span per grapheme cluster, colored by its position in the gradient.
// The gradient lands on the background when background is true, otherwise on
// the foreground; fixed fills whichever channel the gradient does not.
//
// Degenerate inputs collapse to a single span: empty text yields one empty
// unstyled span, no stops yields the text unstyled, and one stop yields the
// text in that flat color. Two or more stops require
// len(clusters) >= len(colors) and fail with ErrMoreColorsThanChars
// otherwise, before any span is produced.
//
// The returned sequence is lazy and finite; re-ranging it recomputes from
// the start.
func AddGradient(text string, fixed Color, colors []Color, background bool, mode BlendMode) (iter.Seq[Span], error) {
	clusters := splitClusters(text)

	switch {
	case len(clusters) == 0:
		return oneSpan(Span{}), nil
	case len(colors) == 0:
		return oneSpan(Span{Content: text}), nil
	case len(colors) == 1:
		fg, bg := channels(colors[0], fixed, background)
		return oneSpan(Span{Content: text, Foreground: fg, Background: bg}), nil
	}

	if len(clusters) < len(colors) {
		return nil, fmt.Errorf("%w: %d colors for %d characters",
			ErrMoreColorsThanChars, len(colors), len(clusters))
	}

	return func(yield func(Span) bool) {
		ramp := newRampIter(colors, len(clusters), mode)
		defer ramp.Close()
		for _, cluster := range clusters {
			fg, bg := channels(ramp.Next(), fixed, background)
			if !yield(Span{Content: cluster, Foreground: fg, Background: bg}) {
				return
			}
		}
	}, nil
}

// stepPartition allots characters to the pairs adjacent color transitions:
// entry i is how many characters transition i colors. Entries are each >= 1
// and sum exactly to length, provided length >= pairs+1. The first
// transition takes the nominal ceil(length/pairs) steps; the rounding
// remainder lands on later transitions.
func stepPartition(length, pairs int) []int {
	steps := (length + pairs - 1) / pairs
	leftover := length - steps - (steps-1)*(pairs-1)

	part := make([]int, pairs)
	part[0] = steps
	for i := 1; i < pairs; i++ {
		if leftover > 0 {
			part[i] = steps
			leftover--
		} else {
			part[i] = steps - 1
		}
	}
	return part
}

// rampIter walks a multi-stop gradient one color at a time. State is the
// current transition index plus a pull-style handle on that transition's
// color sequence, which makes the boundary skip between transitions an
// explicit step instead of enumerator choreography.
type rampIter struct {
	colors    []Color
	mode      BlendMode
	partition []int
	pair      int
	pull      func() (Color, bool)
	stop      func()
}

func newRampIter(colors []Color, length int, mode BlendMode) *rampIter {
	it := &rampIter{
		colors:    colors,
		mode:      mode,
		partition: stepPartition(length, len(colors)-1),
	}
	it.pull, it.stop = iter.Pull(mode.Steps(colors[0], colors[1], it.partition[0]))
	return it
}

// Next returns the color for the next character. The caller must not ask
// for more colors than the partition covers.
func (it *rampIter) Next() Color {
	if c, ok := it.pull(); ok {
		return c
	}
	return it.startNextPair()
}

// startNextPair begins the following transition. Its sequence is requested
// one step longer than the transition's character allotment and advanced
// twice: the first advance discards the transition's start color, which the
// previous transition already emitted as its tail, and the second produces
// the color for the current character. The discarded head means interior
// transitions never show their own first color while the very first
// transition does; this asymmetry is inherited behavior, kept as is.
func (it *rampIter) startNextPair() Color {
	it.stop()
	it.pair++
	seq := it.mode.Steps(it.colors[it.pair], it.colors[it.pair+1], it.partition[it.pair]+1)
	it.pull, it.stop = iter.Pull(seq)
	it.pull()
	c, _ := it.pull()
	return c
}

// Close releases the underlying pull iterator. Safe to call more than once.
func (it *rampIter) Close() {
	it.stop()
}

func splitClusters(s string) []string {
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, string(gr.Runes()))
	}
	return out
}

func channels(grad, fixed Color, background bool) (fg, bg color.Color) {
	if background {
		return fixed, grad
	}
	return grad, fixed
}

func oneSpan(sp Span) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		yield(sp)
	}
}
