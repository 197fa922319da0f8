// Package packer compresses a conditioned frame's pixel grid into the
// small number of circuit-network signals the target game's
// combinators can carry, by packing several pixels into each 32-bit
// signal value.
package packer

import (
	"errors"
	"fmt"

	"github.com/colinchilds/giftorio-go/internal/bitpack"
	"github.com/colinchilds/giftorio-go/internal/catalog"
	"github.com/colinchilds/giftorio-go/internal/condition"
)

// ErrTooManyPixels is returned when a frame needs more pixel signals
// than the selected catalogue has available.
var ErrTooManyPixels = errors.New("packer: frame needs more signals than the catalogue provides")

// Value is one packed (signal, value) pair.
type Value struct {
	Signal catalog.Descriptor
	Word   int32
}

// widthFor maps a conditioned frame's pixel mode to its packing width.
func widthFor(mode condition.Mode) bitpack.Width {
	switch mode {
	case condition.Gray4:
		return bitpack.Width4
	case condition.Gray8:
		return bitpack.Width8
	default:
		return bitpack.Width24
	}
}

// Plan is the pixel-group-to-signal assignment for a whole run: signal
// assignment is identical across frames, so lamp k always listens for
// signal σ_k. Plan only depends on frame size, pixel mode, and the
// selected catalogue — never on pixel content.
type Plan struct {
	Width      bitpack.Width
	Signals    []catalog.Descriptor // one per packed word, in assignment order
	PixelCount int                  // W*H
}

// Build computes the packing plan for frames of the given size and
// mode against the given catalogue, without touching pixel data.
func Build(w, h int, mode condition.Mode, cat catalog.List) (Plan, error) {
	width := widthFor(mode)
	perWord := width.PerWord()
	n := w * h
	numWords := (n + perWord - 1) / perWord

	pixelSignals := cat.Pixels()
	if numWords > len(pixelSignals) {
		return Plan{}, fmt.Errorf("%w: need %d signals, catalogue has %d", ErrTooManyPixels, numWords, len(pixelSignals))
	}

	return Plan{Width: width, Signals: pixelSignals[:numWords], PixelCount: n}, nil
}

// Pack encodes one conditioned frame according to plan. Zero-valued
// words are kept (never elided): positional semantics on the
// receiving lamps require signal ↔ pixel-index to stay fixed.
func Pack(plan Plan, frame condition.Frame) []Value {
	out := make([]Value, len(plan.Signals))
	perWord := plan.Width.PerWord()

	idx := 0
	for wi := 0; wi < len(plan.Signals); wi++ {
		writer := bitpack.NewWriter(plan.Width)
		var word uint32
		for k := 0; k < perWord; k++ {
			var v uint32
			if idx < len(frame.Pix) {
				v = frame.Pix[idx]
			}
			idx++
			// perWord Puts always complete the word on the last
			// iteration, so the final assignment below always wins.
			if got, full := writer.Put(v); full {
				word = got
			}
		}
		out[wi] = Value{Signal: plan.Signals[wi], Word: int32(word)}
	}
	return out
}
