// Package envelope serializes an entity.Model into the importable
// blueprint string format: JSON, deflated with zlib, base64-encoded,
// and prefixed with a one-byte format version marker — the same
// envelope the target game's own blueprint strings use, so the
// output can be pasted directly into the game's blueprint library.
package envelope

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/colinchilds/giftorio-go/internal/entity"
)

// versionByte is prepended to every encoded string, ahead of the
// base64 payload, matching the target game's own blueprint-string
// convention of a leading ASCII digit identifying the envelope
// version.
const versionByte = '0'

// compressionLevel is fixed rather than left at the zlib default so
// that the same model always produces the same compressed bytes
// regardless of the Go toolchain's default changing across versions.
const compressionLevel = zlib.BestCompression

const blueprintItem = "blueprint"

// blueprintIconSignal identifies every giftorio blueprint's single
// library-thumbnail icon.
const blueprintIconSignal = "signal-info"

// blueprintFormatVersion mirrors the target game's packed version
// integer (major<<48 | minor<<32 | patch<<16 | build); 2.0.0 build 0
// is a recent-enough release for blueprints pasted into a current
// game install to accept without a format warning.
const blueprintFormatVersion int64 = 2 << 48

// Encode renders m as a complete blueprint string.
func Encode(m *entity.Model, label string) (string, error) {
	doc := document{Blueprint: blueprint{
		Item:     blueprintItem,
		Label:    label,
		Icons:    []bpIcon{{Index: 1, Signal: bpSignalID{Name: blueprintIconSignal}}},
		Version:  blueprintFormatVersion,
		Entities: make([]bpEntity, 0, len(m.Entities)),
		Wires:    make([][4]int, 0, len(m.Wires)),
	}}
	for _, e := range m.Entities {
		doc.Blueprint.Entities = append(doc.Blueprint.Entities, toBPEntity(e))
	}
	for _, w := range m.Wires {
		doc.Blueprint.Wires = append(doc.Blueprint.Wires, [4]int{w.FromID, int(w.FromPort), w.ToID, int(w.ToPort)})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("envelope: marshal blueprint: %w", err)
	}

	var zbuf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&zbuf, compressionLevel)
	if err != nil {
		return "", fmt.Errorf("envelope: init deflate: %w", err)
	}
	if _, err := zw.Write(data); err != nil {
		return "", fmt.Errorf("envelope: deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("envelope: close deflate stream: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(zbuf.Bytes())
	return string([]byte{versionByte}) + encoded, nil
}

// Decode reverses Encode, returning the decompressed blueprint JSON.
// It exists mainly for round-trip testing; the pipeline itself is
// write-only.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("envelope: empty string")
	}
	if s[0] != versionByte {
		return nil, fmt.Errorf("envelope: unsupported version byte %q", s[0])
	}
	raw, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("envelope: base64 decode: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("envelope: init inflate: %w", err)
	}
	defer zr.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(zr); err != nil {
		return nil, fmt.Errorf("envelope: inflate: %w", err)
	}
	return out.Bytes(), nil
}

type document struct {
	Blueprint blueprint `json:"blueprint"`
}

type blueprint struct {
	Item     string     `json:"item"`
	Label    string     `json:"label,omitempty"`
	Icons    []bpIcon   `json:"icons,omitempty"`
	Entities []bpEntity `json:"entities"`
	Wires    [][4]int   `json:"wires,omitempty"`
	Version  int64      `json:"version"`
}

// bpIcon is one of the blueprint's library-thumbnail icon slots. This
// pipeline always sets exactly one, at index 1, to a signal fixed
// regardless of the run's content, since the thumbnail only needs to
// identify the blueprint as a giftorio output, not depict its frames.
type bpIcon struct {
	Index  int        `json:"index"`
	Signal bpSignalID `json:"signal"`
}

type bpPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type bpSignalID struct {
	Name string `json:"name"`
}

type bpFilter struct {
	Index  int        `json:"index"`
	Signal bpSignalID `json:"signal"`
	Count  int32      `json:"count"`
}

type bpSection struct {
	Filters []bpFilter `json:"filters"`
}

type bpConstantBehavior struct {
	Sections []bpSection `json:"sections"`
}

type bpCondition struct {
	Signal     bpSignalID `json:"signal"`
	Comparator string     `json:"comparator"`
	Constant   int32      `json:"constant"`
	Combinator string     `json:"combinator,omitempty"`
	Network    string     `json:"network,omitempty"`
}

type bpOutput struct {
	Signal        bpSignalID `json:"signal"`
	Network       string     `json:"network,omitempty"`
	CopyCountFrom bool       `json:"copy_count_from_input"`
	Delta         int32      `json:"delta,omitempty"`
}

type bpDeciderBehavior struct {
	Conditions []bpCondition `json:"conditions"`
	Outputs    []bpOutput    `json:"outputs"`
}

type bpLampBehavior struct {
	UseColors bool `json:"use_colors"`
}

type bpEntity struct {
	EntityNumber int                 `json:"entity_number"`
	Name         string              `json:"name"`
	Position     bpPosition          `json:"position"`
	Constant     *bpConstantBehavior `json:"control_behavior,omitempty"`
	Decider      *bpDeciderBehavior  `json:"decider_conditions,omitempty"`
	Lamp         *bpLampBehavior     `json:"lamp_conditions,omitempty"`
}

func entityName(k entity.Kind) string {
	switch k {
	case entity.Lamp:
		return "small-lamp"
	case entity.ConstantCombinator:
		return "constant-combinator"
	case entity.DeciderCombinator:
		return "decider-combinator"
	case entity.Substation:
		return "substation"
	case entity.MediumPole:
		return "medium-electric-pole"
	default:
		return "unknown"
	}
}

func toBPEntity(e entity.Entity) bpEntity {
	out := bpEntity{
		EntityNumber: e.ID,
		Name:         entityName(e.Kind),
		Position:     bpPosition{X: e.Position.X, Y: e.Position.Y},
	}
	switch {
	case e.Lamp != nil:
		out.Lamp = &bpLampBehavior{UseColors: e.Lamp.UseColors}
	case e.Constant != nil:
		sections := make([]bpSection, 0, len(e.Constant.Sections))
		for _, s := range e.Constant.Sections {
			filters := make([]bpFilter, 0, len(s.Filters))
			for _, f := range s.Filters {
				filters = append(filters, bpFilter{Index: f.Slot, Signal: bpSignalID{Name: f.Signal}, Count: f.Value})
			}
			sections = append(sections, bpSection{Filters: filters})
		}
		out.Constant = &bpConstantBehavior{Sections: sections}
	case e.Decider != nil:
		conds := make([]bpCondition, 0, len(e.Decider.Conditions))
		for _, c := range e.Decider.Conditions {
			conds = append(conds, bpCondition{
				Signal:     bpSignalID{Name: c.Signal},
				Comparator: c.Operator,
				Constant:   c.Constant,
				Combinator: c.Combinator,
				Network:    c.Network,
			})
		}
		outs := make([]bpOutput, 0, len(e.Decider.Outputs))
		for _, o := range e.Decider.Outputs {
			outs = append(outs, bpOutput{
				Signal:        bpSignalID{Name: o.Signal},
				Network:       o.Network,
				CopyCountFrom: o.CopyCountFrom,
				Delta:         o.Delta,
			})
		}
		out.Decider = &bpDeciderBehavior{Conditions: conds, Outputs: outs}
	}
	return out
}
