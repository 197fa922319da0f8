// Package selector builds the circuit logic that cycles through each
// frame's constant-combinator bank in turn: a free-running tick
// counter and, for every bank, a decider combinator that
// gates that bank's signals onto the shared lamp bus only while the
// counter sits in that bank's tick window.
//
// The clock and every bank's own pixel data are kept on separate wire
// colours. The clock (seed, self-loop, and its fan-out to every bank
// decider) lives entirely on green; each bank's own combinators feed
// their decider only on red. That keeps every bank decider's red
// network scoped to exactly one bank — no bank's red network is ever
// bridged into another's through the clock — so only one bank's
// signals reach the lamp bus at a time, while the tick count itself is
// still read by every decider at once over the shared green network.
package selector

import (
	"errors"
	"fmt"

	"github.com/colinchilds/giftorio-go/internal/entity"
	"github.com/colinchilds/giftorio-go/internal/layout"
)

// ErrSelectorTooWide is returned when a run's full cycle (frame count
// * dwell ticks) does not fit in the tick counter's 32-bit signed
// range.
var ErrSelectorTooWide = errors.New("selector: cycle length does not fit the tick counter")

const maxTick = 1<<31 - 1

// Result holds the ids of the entities selector.Build added, for
// callers that want to inspect or re-wire them (mainly tests).
type Result struct {
	ClockSeedID    int // 0 if the run collapsed to pass-through (one bank)
	ClockDeciderID int
	BankDeciderIDs []int
}

// Build wires banks onto lampIDs so that, at any moment, exactly one
// bank's pixel signals reach the lamps. With a single bank there is
// nothing to select between, so the bank is wired straight to the
// lamps with no clock or decider at all.
//
// tickSignal is the signal the free-running clock counts on; callers
// pass the catalogue's reserved frame-index signal
// (catalog.List.FrameIndex().Name), the same signal name each bank's
// own marker filter carries. Sharing the name is safe: the clock lives
// on green and each bank's marker lives on that bank's own red
// network, and every bank decider's tick condition reads green only
// (entity.Condition.Network), so the two never sum together.
func Build(m *entity.Model, plan layout.Result, lampIDs []int, dwell int, tickSignal string) (Result, error) {
	n := len(plan.Banks)
	if n == 0 {
		return Result{}, nil
	}
	if n == 1 {
		wireBankToLamps(m, plan.Banks[0], lampIDs)
		return Result{}, nil
	}

	cycle := n * dwell
	if cycle <= 0 || cycle > maxTick {
		return Result{}, fmt.Errorf("%w: %d ticks (%d banks * %d dwell)", ErrSelectorTooWide, cycle, n, dwell)
	}

	clockCol := plan.BankColumnX[0]
	seedID := m.AddConstant(
		entity.Position{X: clockCol, Y: -3},
		entity.ConstantPayload{Sections: []entity.Section{{Filters: []entity.Filter{
			{Signal: tickSignal, Value: 0},
		}}}},
	)
	clockID := m.AddDecider(
		entity.Position{X: clockCol, Y: -2},
		entity.DeciderPayload{
			Conditions: []entity.Condition{
				{Signal: tickSignal, Operator: "<", Constant: int32(cycle - 1), Network: "green"},
			},
			Outputs: []entity.Output{
				{Signal: tickSignal, Network: "green", Delta: 1},
			},
		},
	)
	m.Connect(seedID, entity.OutputGreen, clockID, entity.InputGreen)
	m.Connect(clockID, entity.OutputGreen, clockID, entity.InputGreen)

	bankDeciderIDs := make([]int, n)
	for k := 0; k < n; k++ {
		lo := int32(k * dwell)
		hi := int32((k + 1) * dwell)
		did := m.AddDecider(
			entity.Position{X: plan.BankColumnX[k], Y: -1},
			entity.DeciderPayload{
				Conditions: []entity.Condition{
					{Signal: tickSignal, Operator: ">=", Constant: lo, Network: "green"},
					{Signal: tickSignal, Operator: "<", Constant: hi, Combinator: "and", Network: "green"},
				},
				Outputs: []entity.Output{
					{Signal: "signal-everything", Network: "red", CopyCountFrom: true},
				},
			},
		)
		m.Connect(clockID, entity.OutputGreen, did, entity.InputGreen)
		for _, cid := range plan.Banks[k].CombinatorIDs {
			m.Connect(cid, entity.OutputRed, did, entity.InputRed)
		}
		for _, lid := range lampIDs {
			m.Connect(did, entity.OutputRed, lid, entity.InputRed)
		}
		bankDeciderIDs[k] = did
	}

	return Result{ClockSeedID: seedID, ClockDeciderID: clockID, BankDeciderIDs: bankDeciderIDs}, nil
}

func wireBankToLamps(m *entity.Model, bank layout.Bank, lampIDs []int) {
	for _, cid := range bank.CombinatorIDs {
		for _, lid := range lampIDs {
			m.Connect(cid, entity.OutputRed, lid, entity.InputRed)
		}
	}
}
