package giftorio

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	qt "github.com/frankban/quicktest"

	"github.com/colinchilds/giftorio-go/internal/envelope"
)

func solidFrame(w, h int, r, g, b byte, delay int) Frame {
	pix := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4+0] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 0xFF
	}
	return Frame{RGBA: pix, W: w, H: h, Delay: delay}
}

func TestMakeRejectsEmptyInput(t *testing.T) {
	c := qt.New(t)
	_, err := Make(nil, Config{TargetFPS: 10, MaxSize: 10}, nil)
	var gerr *Error
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(asGiftorioErr(err, &gerr), qt.Equals, true)
	c.Assert(gerr.Kind, qt.Equals, EmptyInput)
}

func TestMakeRejectsBadFps(t *testing.T) {
	c := qt.New(t)
	frames := []Frame{solidFrame(2, 2, 255, 0, 0, 10)}
	_, err := Make(frames, Config{TargetFPS: 0, MaxSize: 10}, nil)
	var gerr *Error
	c.Assert(asGiftorioErr(err, &gerr), qt.Equals, true)
	c.Assert(gerr.Kind, qt.Equals, BadFps)
}

func TestMakeSingleFrameProducesValidBlueprintString(t *testing.T) {
	frames := []Frame{solidFrame(2, 2, 255, 0, 0, 10)}
	cfg := Config{TargetFPS: 1, MaxSize: 2, Label: "my-blueprint"}

	bp, err := Make(frames, cfg, nil)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if !strings.HasPrefix(bp, "0") {
		t.Fatalf("blueprint string does not start with the version byte: %q", bp[:1])
	}
	if _, err := envelope.Decode(bp); err != nil {
		t.Fatalf("Decode(Make(...)) failed: %v", err)
	}
}

func TestMakeIsDeterministic(t *testing.T) {
	frames := []Frame{
		solidFrame(2, 2, 255, 0, 0, 10),
		solidFrame(2, 2, 0, 0, 255, 10),
	}
	cfg := Config{TargetFPS: 1, MaxSize: 2}

	a, err := Make(frames, cfg, nil)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	b, err := Make(frames, cfg, nil)
	if err != nil {
		t.Fatalf("Make: %v", err)
	}
	if a == b {
		return
	}
	aJSON, errA := envelope.Decode(a)
	bJSON, errB := envelope.Decode(b)
	if errA != nil || errB != nil {
		t.Fatalf("two runs over identical input produced different blueprint strings (decode failed: %v / %v)", errA, errB)
	}
	if diff := cmp.Diff(string(aJSON), string(bJSON)); diff != "" {
		t.Errorf("two runs over identical input produced different blueprints (-first +second):\n%s", diff)
	}
}

func TestMakeHonorsCancellation(t *testing.T) {
	frames := []Frame{solidFrame(2, 2, 255, 0, 0, 10)}
	cfg := Config{TargetFPS: 1, MaxSize: 2}

	calls := 0
	_, err := Make(frames, cfg, func(percent int, status string) Signal {
		calls++
		return Cancel
	})
	var gerr *Error
	if !asGiftorioErr(err, &gerr) || gerr.Kind != Cancelled {
		t.Fatalf("err = %v, want Kind=Cancelled", err)
	}
	if calls != 1 {
		t.Errorf("progress called %d times, want exactly 1 (cancel on first callback)", calls)
	}
}

func asGiftorioErr(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
