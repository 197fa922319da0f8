package giftorio

import (
	"errors"

	"github.com/colinchilds/giftorio-go/internal/catalog"
	"github.com/colinchilds/giftorio-go/internal/condition"
	"github.com/colinchilds/giftorio-go/internal/entity"
	"github.com/colinchilds/giftorio-go/internal/envelope"
	"github.com/colinchilds/giftorio-go/internal/layout"
	"github.com/colinchilds/giftorio-go/internal/packer"
	"github.com/colinchilds/giftorio-go/internal/selector"
)

const defaultLabel = "giftorio"

// Make runs the full pipeline — conditioning, packing, layout,
// selector wiring, and envelope encoding, in that order — and returns
// the finished blueprint string. progress may be nil; when non-nil it
// is called synchronously at each stage boundary and a Cancel return
// aborts the run with an Error{Kind: Cancelled}.
func Make(frames []Frame, cfg Config, progress ProgressFunc) (string, error) {
	if err := cfg.validate(); err != nil {
		return "", err
	}
	if len(frames) == 0 {
		return "", &Error{Kind: EmptyInput, Msg: "no frames provided"}
	}
	if err := report(progress, 0, "Decoding"); err != nil {
		return "", err
	}

	sources := make([]condition.Source, len(frames))
	for i, f := range frames {
		sources[i] = condition.Source{W: f.W, H: f.H, RGBA: f.RGBA, Delay: f.Delay}
	}

	condResult, err := condition.Run(sources, cfg.TargetFPS, cfg.MaxSize, cfg.GrayscaleBits)
	if err != nil {
		return "", classify(err)
	}
	if err := report(progress, 10, "Conditioning"); err != nil {
		return "", err
	}

	cat := catalog.Select(cfg.UseExpansion)
	w, h := condResult.Frames[0].W, condResult.Frames[0].H
	mode := condResult.Frames[0].Mode

	plan, err := packer.Build(w, h, mode, cat)
	if err != nil {
		return "", classify(err)
	}

	packed := make([][]packer.Value, len(condResult.Frames))
	for i, fr := range condResult.Frames {
		packed[i] = packer.Pack(plan, fr)
	}
	if err := report(progress, 25, "Packing"); err != nil {
		return "", err
	}

	m := entity.NewModel()
	layoutResult := layout.Plan(m, w, h, packed, cfg.UseExpansion, layout.Quality(cfg.SubstationQuality), cat.FrameIndex().Name)
	if err := report(progress, 45, "LayingOut"); err != nil {
		return "", err
	}

	if _, err := selector.Build(m, layoutResult, layoutResult.LampIDs, condResult.Dwell, cat.FrameIndex().Name); err != nil {
		return "", classify(err)
	}
	if err := report(progress, 70, "Wiring"); err != nil {
		return "", err
	}

	label := cfg.Label
	if label == "" {
		label = defaultLabel
	}
	bp, err := envelope.Encode(m, label)
	if err != nil {
		return "", &Error{Kind: Internal, Msg: err.Error()}
	}
	if err := report(progress, 90, "Encoding"); err != nil {
		return "", err
	}
	if err := report(progress, 100, "Done"); err != nil {
		return "", err
	}

	return bp, nil
}

// report calls progress, if any, translating a Cancel signal into a
// Cancelled error. A nil progress always continues.
func report(progress ProgressFunc, percent int, status string) error {
	if progress == nil {
		return nil
	}
	if progress(percent, status) == Cancel {
		return &Error{Kind: Cancelled, Msg: "cancelled at " + status}
	}
	return nil
}

// classify maps an internal package's sentinel error into the public
// error taxonomy. Internal packages cannot import this package's
// Error type themselves without creating an import cycle, so the
// mapping happens here, at the one place that imports every stage.
func classify(err error) error {
	switch {
	case errors.Is(err, condition.ErrEmptySource):
		return &Error{Kind: EmptyInput, Msg: err.Error()}
	case errors.Is(err, packer.ErrTooManyPixels):
		return &Error{Kind: TooManyPixels, Msg: err.Error()}
	case errors.Is(err, selector.ErrSelectorTooWide):
		return &Error{Kind: SelectorTooWide, Msg: err.Error()}
	default:
		return &Error{Kind: Internal, Msg: err.Error()}
	}
}
