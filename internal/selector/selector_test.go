package selector

import (
	"errors"
	"testing"

	"github.com/colinchilds/giftorio-go/internal/catalog"
	"github.com/colinchilds/giftorio-go/internal/entity"
	"github.com/colinchilds/giftorio-go/internal/layout"
	"github.com/colinchilds/giftorio-go/internal/packer"
)

func buildPlan(t *testing.T, m *entity.Model, numFrames int) (layout.Result, []int) {
	t.Helper()
	plan, err := packer.Build(1, 1, 0, catalog.Base)
	if err != nil {
		t.Fatalf("packer.Build: %v", err)
	}
	frames := make([][]packer.Value, numFrames)
	for i := range frames {
		vals := make([]packer.Value, len(plan.Signals))
		for j, sig := range plan.Signals {
			vals[j] = packer.Value{Signal: sig, Word: int32(j)}
		}
		frames[i] = vals
	}
	res := layout.Plan(m, 1, 1, frames, false, layout.QualityNone, "signal-frame")
	return res, res.LampIDs
}

func TestSingleBankCollapsesToPassThrough(t *testing.T) {
	m := entity.NewModel()
	lp, lampIDs := buildPlan(t, m, 1)
	wiresBefore := len(m.Wires)

	res, err := Build(m, lp, lampIDs, 60, "signal-frame")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.ClockSeedID != 0 || res.ClockDeciderID != 0 || res.BankDeciderIDs != nil {
		t.Errorf("single-bank result should have no clock/decider ids, got %+v", res)
	}
	wantWires := wiresBefore + len(lp.Banks[0].CombinatorIDs)*len(lampIDs)
	if len(m.Wires) != wantWires {
		t.Errorf("len(Wires) = %d, want %d", len(m.Wires), wantWires)
	}
	for _, e := range m.Entities {
		if e.Kind == entity.DeciderCombinator {
			t.Errorf("single-bank run should add no decider combinators, found one: %+v", e)
		}
	}
}

func TestMultiBankWiresClockAndDeciders(t *testing.T) {
	m := entity.NewModel()
	lp, lampIDs := buildPlan(t, m, 3)

	res, err := Build(m, lp, lampIDs, 60, "signal-frame")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if res.ClockSeedID == 0 || res.ClockDeciderID == 0 {
		t.Fatalf("multi-bank result missing clock ids: %+v", res)
	}
	if len(res.BankDeciderIDs) != 3 {
		t.Fatalf("len(BankDeciderIDs) = %d, want 3", len(res.BankDeciderIDs))
	}

	// clock self-loop must exist
	foundSelfLoop := false
	for _, w := range m.Wires {
		if w.FromID == res.ClockDeciderID && w.ToID == res.ClockDeciderID {
			foundSelfLoop = true
		}
	}
	if !foundSelfLoop {
		t.Errorf("clock decider is not wired to itself")
	}
}

func TestBankDeciderConditionsPartitionTheCycle(t *testing.T) {
	m := entity.NewModel()
	lp, lampIDs := buildPlan(t, m, 4)
	dwell := 10

	res, err := Build(m, lp, lampIDs, dwell, "signal-frame")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for k, id := range res.BankDeciderIDs {
		var e *entity.Entity
		for i := range m.Entities {
			if m.Entities[i].ID == id {
				e = &m.Entities[i]
			}
		}
		if e == nil || e.Decider == nil {
			t.Fatalf("bank decider %d not found", k)
		}
		conds := e.Decider.Conditions
		if len(conds) != 2 {
			t.Fatalf("bank %d: len(Conditions) = %d, want 2", k, len(conds))
		}
		wantLo := int32(k * dwell)
		wantHi := int32((k + 1) * dwell)
		if conds[0].Constant != wantLo || conds[1].Constant != wantHi {
			t.Errorf("bank %d: window = [%d,%d), want [%d,%d)", k, conds[0].Constant, conds[1].Constant, wantLo, wantHi)
		}
	}
}

// TestBankRedNetworksStayIsolated is the regression test for the bug
// where every bank decider's red input was bridged through the
// clock's red output, merging all banks' pixel data into one shared
// network. It asserts the fix directly: the clock only ever touches
// green ports, and each bank decider's red connections touch only
// that bank's own combinators.
func TestBankRedNetworksStayIsolated(t *testing.T) {
	m := entity.NewModel()
	lp, lampIDs := buildPlan(t, m, 3)

	res, err := Build(m, lp, lampIDs, 10, "signal-frame")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	for _, w := range m.Wires {
		if w.FromID == res.ClockSeedID || w.ToID == res.ClockSeedID || w.FromID == res.ClockDeciderID || w.ToID == res.ClockDeciderID {
			if w.FromPort == entity.InputRed || w.FromPort == entity.OutputRed || w.ToPort == entity.InputRed || w.ToPort == entity.OutputRed {
				t.Errorf("clock wire uses a red port, want green only: %+v", w)
			}
		}
	}

	bankOfCombinator := make(map[int]int)
	for k, bank := range lp.Banks {
		for _, cid := range bank.CombinatorIDs {
			bankOfCombinator[cid] = k
		}
	}
	for k, did := range res.BankDeciderIDs {
		for _, w := range m.Wires {
			if w.ToID != did || w.ToPort != entity.InputRed {
				continue
			}
			if bk, ok := bankOfCombinator[w.FromID]; ok && bk != k {
				t.Errorf("bank %d decider's red input is wired from bank %d's combinator %d", k, bk, w.FromID)
			}
		}
	}
}

func TestSelectorTooWideOnOverflow(t *testing.T) {
	lp := layout.Result{
		Banks:       make([]layout.Bank, 2),
		BankColumnX: []float64{0, 1},
	}
	m := entity.NewModel()
	_, err := Build(m, lp, nil, maxTick, "signal-frame")
	if !errors.Is(err, ErrSelectorTooWide) {
		t.Fatalf("err = %v, want ErrSelectorTooWide", err)
	}
}
