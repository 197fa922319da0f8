// Package catalog provides the static table of circuit-network signals
// the target game exposes as combinator/lamp identifiers.
//
// The base and expansion lists are ordered: this order is the canonical
// pixel-to-signal assignment order used by the pixel packer and must be
// preserved across versions, per the source game's own signal ordering.
// Both lists are shipped as compile-time data, never parsed at runtime.
package catalog

// Category identifies the kind of signal a Descriptor names.
type Category int

const (
	Item Category = iota
	Fluid
	Virtual
	Recipe
)

// String returns the lowercase category name used in blueprint JSON.
func (c Category) String() string {
	switch c {
	case Item:
		return "item"
	case Fluid:
		return "fluid"
	case Virtual:
		return "virtual"
	case Recipe:
		return "recipe"
	default:
		return "unknown"
	}
}

// Descriptor names one circuit-network signal.
type Descriptor struct {
	Name     string
	Category Category
}

// List is an ordered, immutable sequence of signal descriptors. The
// order is the canonical assignment order: index i is always the same
// signal for a given List, across runs and across versions of this
// package.
type List []Descriptor

// FrameIndex returns the list's reserved frame-index signal: its last
// entry. Callers must never assign this signal to a pixel.
func (l List) FrameIndex() Descriptor {
	return l[len(l)-1]
}

// Pixels returns the portion of the list available for pixel packing:
// every entry except the reserved frame-index signal.
func (l List) Pixels() List {
	return l[:len(l)-1]
}

// Select returns Base or Expansion depending on useExpansion.
func Select(useExpansion bool) List {
	if useExpansion {
		return Expansion
	}
	return Base
}

// Base is the signal catalogue available without the game's expansion
// content. Its last entry is reserved as the frame-index signal.
var Base = List{
	{Name: "signal-0", Category: Virtual},
	{Name: "signal-1", Category: Virtual},
	{Name: "signal-2", Category: Virtual},
	{Name: "signal-3", Category: Virtual},
	{Name: "signal-4", Category: Virtual},
	{Name: "signal-5", Category: Virtual},
	{Name: "signal-6", Category: Virtual},
	{Name: "signal-7", Category: Virtual},
	{Name: "signal-8", Category: Virtual},
	{Name: "signal-9", Category: Virtual},
	{Name: "signal-A", Category: Virtual},
	{Name: "signal-B", Category: Virtual},
	{Name: "signal-C", Category: Virtual},
	{Name: "signal-D", Category: Virtual},
	{Name: "signal-E", Category: Virtual},
	{Name: "signal-F", Category: Virtual},
	{Name: "signal-G", Category: Virtual},
	{Name: "signal-H", Category: Virtual},
	{Name: "signal-I", Category: Virtual},
	{Name: "signal-J", Category: Virtual},
	{Name: "signal-K", Category: Virtual},
	{Name: "signal-L", Category: Virtual},
	{Name: "signal-M", Category: Virtual},
	{Name: "signal-N", Category: Virtual},
	{Name: "signal-O", Category: Virtual},
	{Name: "signal-P", Category: Virtual},
	{Name: "signal-Q", Category: Virtual},
	{Name: "signal-R", Category: Virtual},
	{Name: "signal-S", Category: Virtual},
	{Name: "signal-T", Category: Virtual},
	{Name: "signal-U", Category: Virtual},
	{Name: "signal-V", Category: Virtual},
	{Name: "signal-W", Category: Virtual},
	{Name: "signal-X", Category: Virtual},
	{Name: "signal-Y", Category: Virtual},
	{Name: "signal-Z", Category: Virtual},
	{Name: "wooden-chest", Category: Item},
	{Name: "iron-chest", Category: Item},
	{Name: "steel-chest", Category: Item},
	{Name: "storage-tank", Category: Item},
	{Name: "transport-belt", Category: Item},
	{Name: "fast-transport-belt", Category: Item},
	{Name: "express-transport-belt", Category: Item},
	{Name: "underground-belt", Category: Item},
	{Name: "fast-underground-belt", Category: Item},
	{Name: "express-underground-belt", Category: Item},
	{Name: "splitter", Category: Item},
	{Name: "fast-splitter", Category: Item},
	{Name: "express-splitter", Category: Item},
	{Name: "burner-inserter", Category: Item},
	{Name: "inserter", Category: Item},
	{Name: "long-handed-inserter", Category: Item},
	{Name: "fast-inserter", Category: Item},
	{Name: "filter-inserter", Category: Item},
	{Name: "stack-inserter", Category: Item},
	{Name: "stack-filter-inserter", Category: Item},
	{Name: "small-electric-pole", Category: Item},
	{Name: "medium-electric-pole", Category: Item},
	{Name: "big-electric-pole", Category: Item},
	{Name: "substation", Category: Item},
	{Name: "pipe", Category: Item},
	{Name: "pipe-to-ground", Category: Item},
	{Name: "pump", Category: Item},
	{Name: "rail", Category: Item},
	{Name: "train-stop", Category: Item},
	{Name: "rail-signal", Category: Item},
	{Name: "rail-chain-signal", Category: Item},
	{Name: "locomotive", Category: Item},
	{Name: "cargo-wagon", Category: Item},
	{Name: "fluid-wagon", Category: Item},
	{Name: "artillery-wagon", Category: Item},
	{Name: "car", Category: Item},
	{Name: "tank", Category: Item},
	{Name: "logistic-robot", Category: Item},
	{Name: "construction-robot", Category: Item},
	{Name: "logistic-chest-active-provider", Category: Item},
	{Name: "logistic-chest-passive-provider", Category: Item},
	{Name: "logistic-chest-storage", Category: Item},
	{Name: "logistic-chest-buffer", Category: Item},
	{Name: "logistic-chest-requester", Category: Item},
	{Name: "roboport", Category: Item},
	{Name: "lamp", Category: Item},
	{Name: "arithmetic-combinator", Category: Item},
	{Name: "decider-combinator", Category: Item},
	{Name: "constant-combinator", Category: Item},
	{Name: "power-switch", Category: Item},
	{Name: "programmable-speaker", Category: Item},
	{Name: "stone-brick", Category: Item},
	{Name: "concrete", Category: Item},
	{Name: "hazard-concrete", Category: Item},
	{Name: "landfill", Category: Item},
	{Name: "cliff-explosives", Category: Item},
	{Name: "repair-pack", Category: Item},
	{Name: "blueprint", Category: Item},
	{Name: "deconstruction-planner", Category: Item},
	{Name: "upgrade-planner", Category: Item},
	{Name: "blueprint-book", Category: Item},
	{Name: "boiler", Category: Item},
	{Name: "steam-engine", Category: Item},
	{Name: "solar-panel", Category: Item},
	{Name: "accumulator", Category: Item},
	{Name: "nuclear-reactor", Category: Item},
	{Name: "heat-pipe", Category: Item},
	{Name: "burner-mining-drill", Category: Item},
	{Name: "electric-mining-drill", Category: Item},
	{Name: "offshore-pump", Category: Item},
	{Name: "pumpjack", Category: Item},
	{Name: "stone-furnace", Category: Item},
	{Name: "steel-furnace", Category: Item},
	{Name: "electric-furnace", Category: Item},
	{Name: "assembling-machine-1", Category: Item},
	{Name: "assembling-machine-2", Category: Item},
	{Name: "assembling-machine-3", Category: Item},
	{Name: "oil-refinery", Category: Item},
	{Name: "chemical-plant", Category: Item},
	{Name: "centrifuge", Category: Item},
	{Name: "lab", Category: Item},
	{Name: "water", Category: Fluid},
	{Name: "crude-oil", Category: Fluid},
	{Name: "steam", Category: Fluid},
	{Name: "heavy-oil", Category: Fluid},
	{Name: "light-oil", Category: Fluid},
	{Name: "petroleum-gas", Category: Fluid},
	{Name: "lubricant", Category: Fluid},
	{Name: "sulfuric-acid", Category: Fluid},
	{Name: "signal-check", Category: Virtual},
	{Name: "signal-info", Category: Virtual},
	{Name: "signal-dot", Category: Virtual},
	{Name: "signal-red", Category: Virtual},
	{Name: "signal-green", Category: Virtual},
	{Name: "signal-blue", Category: Virtual},
	{Name: "signal-yellow", Category: Virtual},
	{Name: "signal-pink", Category: Virtual},
	{Name: "signal-cyan", Category: Virtual},
	{Name: "signal-white", Category: Virtual},
	{Name: "signal-black", Category: Virtual},
	{Name: "signal-grey", Category: Virtual},
	// Reserved: the frame-index marker signal. Never assigned to a pixel.
	{Name: "signal-frame", Category: Virtual},
}

// Expansion is a strict superset of Base: all of Base's pixel entries,
// in order, followed by the expansion-only entries and then the
// reserved frame-index signal, so Base's own frame-index entry appears
// once, as Expansion's last entry.
var Expansion = func() List {
	base := Base.Pixels() // drop Base's own frame-index marker; Expansion gets its own
	l := make(List, 0, len(base)+len(expansionOnly)+1)
	l = append(l, base...)
	l = append(l, expansionOnly...)
	l = append(l, Descriptor{Name: "signal-frame", Category: Virtual})
	return l
}()

// expansionOnly holds the signals introduced by the game's expansion
// content, appended after all Base entries.
var expansionOnly = List{
	{Name: "space-science-pack", Category: Item},
	{Name: "rocket-part", Category: Item},
	{Name: "satellite", Category: Item},
	{Name: "spidertron", Category: Item},
	{Name: "spidertron-remote", Category: Item},
	{Name: "cargo-landing-pad", Category: Item},
	{Name: "rocket-silo", Category: Item},
	{Name: "captive-biter-spawner", Category: Item},
	{Name: "cryogenic-plant", Category: Item},
	{Name: "electromagnetic-plant", Category: Item},
	{Name: "foundry", Category: Item},
	{Name: "big-mining-drill", Category: Item},
	{Name: "quality-module", Category: Item},
	{Name: "quality-module-2", Category: Item},
	{Name: "quality-module-3", Category: Item},
	{Name: "lightning-rod", Category: Item},
	{Name: "lightning-collector", Category: Item},
	{Name: "fusion-reactor", Category: Item},
	{Name: "fusion-generator", Category: Item},
	{Name: "tesla-turret", Category: Item},
	{Name: "railgun", Category: Item},
	{Name: "railgun-turret", Category: Item},
	{Name: "ammo-turret", Category: Item},
	{Name: "lithium", Category: Item},
	{Name: "holmium-plate", Category: Item},
	{Name: "holmium-ore", Category: Item},
	{Name: "supercapacitor", Category: Item},
	{Name: "vulcanite", Category: Item},
	{Name: "lava", Category: Fluid},
	{Name: "molten-iron", Category: Fluid},
	{Name: "molten-copper", Category: Fluid},
	{Name: "fluorine", Category: Fluid},
	{Name: "ammonia", Category: Fluid},
	{Name: "fluoroketone-hot", Category: Fluid},
	{Name: "fluoroketone-cold", Category: Fluid},
	{Name: "signal-shape-horizontal", Category: Virtual},
	{Name: "signal-shape-vertical", Category: Virtual},
	{Name: "signal-shape-diagonal", Category: Virtual},
	{Name: "quality-normal", Category: Virtual},
	{Name: "quality-uncommon", Category: Virtual},
	{Name: "quality-rare", Category: Virtual},
	{Name: "quality-epic", Category: Virtual},
	{Name: "quality-legendary", Category: Virtual},
}
