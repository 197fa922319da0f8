// Package layout places the lamp grid, the per-frame constant-
// combinator banks, and the power grid, and inserts all of them into
// an entity.Model.
//
// Both the lamp grid and the bank columns are addressed through the
// same logical-to-physical coordinate mapping (axisLayout): every
// (d-1) logical steps along an axis, one physical tile is left
// reserved as a "seam" for the power lattice. Because seam tiles are
// exactly the positions the power lattice occupies and nothing else
// ever is, every non-power entity and the power grid are structurally
// disjoint, and every non-power entity sits within d/2 — the chosen
// quality's supply radius — of some seam on both axes.
package layout

import (
	"github.com/colinchilds/giftorio-go/internal/entity"
	"github.com/colinchilds/giftorio-go/internal/packer"
)

// Quality mirrors the root package's SubstationQuality without
// importing it, to avoid an import cycle (the root package imports
// this one).
type Quality int

const (
	QualityNone Quality = iota
	QualityNormal
	QualityUncommon
	QualityRare
	QualityEpic
	QualityLegendary
)

// radius is the supply radius (half the side length of the square
// coverage area) for each quality tier.
func (q Quality) radius() int {
	switch q {
	case QualityNone:
		return 2
	case QualityNormal:
		return 9
	case QualityUncommon:
		return 10
	case QualityRare:
		return 11
	case QualityEpic:
		return 12
	case QualityLegendary:
		return 13
	default:
		return 9
	}
}

// diameter is the power lattice pitch: adjacent power nodes spaced by
// the full supply diameter tile the plane with no gaps.
func (q Quality) diameter() int { return 2 * q.radius() }

func (q Quality) usesSubstation() bool { return q != QualityNone }

// Filter capacities are invented game constants: K sections of S
// filters each. Base has a single section; the expansion catalogue's
// larger signal set is paired with a proportionally larger combinator
// capacity (5 sections), per spec.md's "K = 1 for base, higher with
// expansion". Plan uses only the total capacity: it writes all of a
// combinator's filters, marker included, into a single section.
const (
	baseFilterCapacity      = 20  // K=1 section * S=20
	expansionFilterCapacity = 100 // K=5 sections * S=20
)

func filterCapacity(useExpansion bool) int {
	if useExpansion {
		return expansionFilterCapacity
	}
	return baseFilterCapacity
}

// Bank is one frame's constant-combinator bank.
type Bank struct {
	// CombinatorIDs are the bank's combinator entity ids, in the
	// order the frame's packed values were distributed across them.
	CombinatorIDs []int
}

// Result is the layout planner's output.
type Result struct {
	// LampIDs is row-major: LampIDs[y*W+x] is the lamp entity id at
	// pixel (x, y).
	LampIDs []int
	Banks   []Bank
	// BankColumnX is the physical X coordinate of each bank's column,
	// for the selector stage to place its per-bank decider above the
	// corresponding bank — reusing the same column guarantees it rides
	// the same power coverage proof as the bank itself.
	BankColumnX []float64
}

// Plan places the lamp grid, one bank per frame, and the power grid,
// inserting every entity into m. frames holds each frame's packed
// (signal, value) pairs in packing order; markerSignal is the
// frame-index signal's name, written as a marker filter into every
// combinator.
func Plan(m *entity.Model, w, h int, frames [][]packer.Value, useExpansion bool, quality Quality, markerSignal string) Result {
	capacity := filterCapacity(useExpansion)
	pixelSlotsPerCombinator := capacity - 1 // one slot reserved for the marker filter
	if pixelSlotsPerCombinator < 1 {
		pixelSlotsPerCombinator = 1
	}

	maxSignals := 0
	for _, f := range frames {
		if len(f) > maxSignals {
			maxSignals = len(f)
		}
	}
	combinatorsPerBank := (maxSignals + pixelSlotsPerCombinator - 1) / pixelSlotsPerCombinator
	if combinatorsPerBank < 1 {
		combinatorsPerBank = 1
	}

	totalCols := w + len(frames)
	totalRows := h
	if combinatorsPerBank > totalRows {
		totalRows = combinatorsPerBank
	}

	d := quality.diameter()
	colPhys, colSeams := axisLayout(totalCols, d)
	rowPhys, rowSeams := axisLayout(totalRows, d)

	lampIDs := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := entity.Position{X: float64(colPhys(x)), Y: float64(rowPhys(y))}
			lampIDs[y*w+x] = m.AddLamp(pos)
		}
	}

	banks := make([]Bank, len(frames))
	bankColumnX := make([]float64, len(frames))
	for fi, values := range frames {
		col := w + fi
		bankColumnX[fi] = float64(colPhys(col))
		var ids []int
		for start := 0; start < len(values); start += pixelSlotsPerCombinator {
			end := start + pixelSlotsPerCombinator
			if end > len(values) {
				end = len(values)
			}
			filters := make([]entity.Filter, 0, end-start+1)
			for i, v := range values[start:end] {
				filters = append(filters, entity.Filter{Signal: v.Signal.Name, Value: v.Word, Slot: i})
			}
			filters = append(filters, entity.Filter{Signal: markerSignal, Value: int32(fi + 1), Slot: len(filters)})

			row := len(ids)
			pos := entity.Position{X: float64(colPhys(col)), Y: float64(rowPhys(row))}
			id := m.AddConstant(pos, entity.ConstantPayload{Sections: []entity.Section{{Filters: filters}}})
			ids = append(ids, id)
		}
		for i := 1; i < len(ids); i++ {
			m.Connect(ids[i-1], entity.OutputRed, ids[i], entity.OutputRed)
		}
		banks[fi] = Bank{CombinatorIDs: ids}
	}

	for _, px := range colSeams {
		for _, py := range rowSeams {
			pos := entity.Position{X: float64(px), Y: float64(py)}
			if quality.usesSubstation() {
				m.AddSubstation(pos)
			} else {
				m.AddMediumPole(pos)
			}
		}
	}

	return Result{LampIDs: lampIDs, Banks: banks, BankColumnX: bankColumnX}
}

// axisLayout maps `total` consecutive logical indices onto physical
// tile coordinates, reserving one seam tile every (d-1) logical steps
// for the power lattice, and returns the physical seam positions.
//
// Seam tiles fall at every multiple of d; every mapped logical index
// falls at an offset of 1..d-1 within its period, so seam and
// non-seam tiles never collide. The furthest any logical index can
// land from its nearest seam (left or right) is d/2, at the midpoint
// of a period — exactly the supply radius for a lattice pitched at d.
func axisLayout(total, d int) (phys func(int) int, seams []int) {
	usable := d - 1
	if usable < 1 {
		usable = 1
	}
	phys = func(n int) int {
		block := n / usable
		off := n % usable
		return block*d + 1 + off
	}
	numBlocks := (total + usable - 1) / usable
	if numBlocks < 1 {
		numBlocks = 1
	}
	seams = make([]int, numBlocks+1)
	for b := 0; b <= numBlocks; b++ {
		seams[b] = b * d
	}
	return phys, seams
}
