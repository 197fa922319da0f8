// Package entity is the in-memory blueprint graph: a dense-id arena of
// entities plus a separate symmetric wire edge list.
//
// Following the teacher codec's box package — which keys its box tree
// by a type tag plus a kind-specific payload rather than a class
// hierarchy — Entity is a tagged variant: one Kind plus one non-nil
// payload field. Wires are stored as an edge list, not as pointers
// inside entities, so the graph (cyclic by nature: lamps and
// combinators share buses) never needs owning pointers — see the
// design note on cyclic references.
package entity

// Kind identifies what an Entity represents.
type Kind int

const (
	Lamp Kind = iota
	ConstantCombinator
	DeciderCombinator
	Substation
	MediumPole
)

// Port identifies one of an entity's four circuit connection points.
type Port int

const (
	InputRed Port = iota + 1
	InputGreen
	OutputRed
	OutputGreen
)

// Position is a tile-unit coordinate; half-tile placement is allowed,
// so X and Y are float64.
type Position struct {
	X, Y float64
}

// Filter is one constant-combinator slot: a signal name, its value,
// and the slot index it occupies within its section.
type Filter struct {
	Signal string
	Value  int32
	Slot   int
}

// Section is an ordered list of filters within one constant combinator.
type Section struct {
	Filters []Filter
}

// ConstantPayload is a constant combinator's configuration.
type ConstantPayload struct {
	Sections []Section
}

// Condition is one decider-combinator comparison.
type Condition struct {
	Signal   string
	Operator string // "<", ">", "=", "<=", ">=", "!="
	Constant int32
	// Combinator is "and" or "or", joining this condition to the
	// previous one in the same decider. The first condition's
	// Combinator is ignored.
	Combinator string
	// Network restricts which wire colour this condition reads Signal
	// from: "red", "green", or "" for the real-combinator default of
	// both, summed. This model's deciders otherwise always sum a given
	// signal name across both colours at a shared input, so Network is
	// the only way two different signals sharing a name (one per
	// colour) can be read independently by the same decider.
	Network string
}

// Output is one decider-combinator output declaration.
type Output struct {
	Signal        string // signal name, or "signal-everything"
	Network       string // "red" or "green" — which input network is copied, and which output wire this asserts onto
	CopyCountFrom bool   // true copies the input count; false outputs constant 1
	// Delta, when nonzero, makes this output self-incrementing: output
	// = current network value of Signal + Delta, rather than a copy or
	// a fixed constant. This is the one decider output mode with no
	// real-world combinator equivalent; it exists so a tick counter can
	// be built from a self-looping decider alone, with no arithmetic
	// combinator kind in this model.
	Delta int32
}

// DeciderPayload is a decider combinator's configuration.
type DeciderPayload struct {
	Conditions []Condition
	Outputs    []Output
}

// LampPayload is a lamp's configuration. UseColors is always true:
// lamps display the colour present on the signal matching their pixel
// slot.
type LampPayload struct {
	UseColors bool
}

// PolePayload is a substation or medium-pole's configuration; neither
// currently needs fields beyond Kind and Position, but the type exists
// so Entity's payload pattern stays uniform across all five kinds.
type PolePayload struct{}

// Entity is one blueprint entity: a stable id, its kind, its position,
// and exactly one non-nil kind-specific payload.
type Entity struct {
	ID       int
	Kind     Kind
	Position Position

	Lamp     *LampPayload
	Constant *ConstantPayload
	Decider  *DeciderPayload
	Pole     *PolePayload
}

// Wire is one symmetric edge between two entity ports.
type Wire struct {
	FromID, ToID     int
	FromPort, ToPort Port
}

// Model is the full entity + wire graph for one blueprint, with dense
// id allocation starting at 1.
type Model struct {
	Entities []Entity
	Wires    []Wire
	nextID   int
}

// NewModel returns an empty Model ready for insertion.
func NewModel() *Model {
	return &Model{nextID: 1}
}

// AddLamp inserts a lamp at pos and returns its id.
func (m *Model) AddLamp(pos Position) int {
	return m.add(Entity{Kind: Lamp, Position: pos, Lamp: &LampPayload{UseColors: true}})
}

// AddConstant inserts a constant combinator at pos and returns its id.
func (m *Model) AddConstant(pos Position, payload ConstantPayload) int {
	return m.add(Entity{Kind: ConstantCombinator, Position: pos, Constant: &payload})
}

// AddDecider inserts a decider combinator at pos and returns its id.
func (m *Model) AddDecider(pos Position, payload DeciderPayload) int {
	return m.add(Entity{Kind: DeciderCombinator, Position: pos, Decider: &payload})
}

// AddSubstation inserts a substation at pos and returns its id.
func (m *Model) AddSubstation(pos Position) int {
	return m.add(Entity{Kind: Substation, Position: pos, Pole: &PolePayload{}})
}

// AddMediumPole inserts a medium electric pole at pos and returns its id.
func (m *Model) AddMediumPole(pos Position) int {
	return m.add(Entity{Kind: MediumPole, Position: pos, Pole: &PolePayload{}})
}

func (m *Model) add(e Entity) int {
	e.ID = m.nextID
	m.nextID++
	m.Entities = append(m.Entities, e)
	return e.ID
}

// Connect adds a symmetric wire edge between two entity ports. It
// panics if either id does not already exist in the model — a wire to
// a missing entity is a broken invariant (Internal, per the package
// this model backs), not a recoverable input error, since ids are only
// ever produced by this same Model.
func (m *Model) Connect(fromID int, fromPort Port, toID int, toPort Port) {
	if !m.has(fromID) || !m.has(toID) {
		panic("entity: Connect referenced an id not present in the model")
	}
	m.Wires = append(m.Wires, Wire{FromID: fromID, FromPort: fromPort, ToID: toID, ToPort: toPort})
}

// has reports whether id was ever allocated by this Model. Ids are
// dense and monotonic starting at 1, so membership is a range check.
func (m *Model) has(id int) bool {
	return id >= 1 && id < m.nextID
}
