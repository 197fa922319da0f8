package envelope

import (
	"encoding/json"
	"testing"

	"github.com/colinchilds/giftorio-go/internal/entity"
)

func sampleModel() *entity.Model {
	m := entity.NewModel()
	lamp := m.AddLamp(entity.Position{X: 0, Y: 0})
	cc := m.AddConstant(entity.Position{X: 1, Y: 0}, entity.ConstantPayload{
		Sections: []entity.Section{{Filters: []entity.Filter{{Signal: "signal-red", Value: 42, Slot: 0}}}},
	})
	m.Connect(cc, entity.OutputRed, lamp, entity.InputRed)
	return m
}

func TestEncodeStartsWithVersionByte(t *testing.T) {
	s, err := Encode(sampleModel(), "test")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(s) == 0 || s[0] != versionByte {
		t.Fatalf("Encode output does not start with version byte %q: %q", versionByte, s[:1])
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	m := sampleModel()
	a, err := Encode(m, "test")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b, err := Encode(m, "test")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if a != b {
		t.Errorf("two encodes of the same model produced different strings")
	}
}

func TestRoundTripPreservesEntitiesAndWires(t *testing.T) {
	m := sampleModel()
	s, err := Encode(m, "test")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	raw, err := Decode(s)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal decoded JSON: %v", err)
	}
	if len(doc.Blueprint.Entities) != len(m.Entities) {
		t.Errorf("len(Entities) = %d, want %d", len(doc.Blueprint.Entities), len(m.Entities))
	}
	if len(doc.Blueprint.Wires) != len(m.Wires) {
		t.Errorf("len(Wires) = %d, want %d", len(doc.Blueprint.Wires), len(m.Wires))
	}
	if doc.Blueprint.Item != blueprintItem {
		t.Errorf("Item = %q, want %q", doc.Blueprint.Item, blueprintItem)
	}
}

func TestDecodeRejectsBadVersionByte(t *testing.T) {
	if _, err := Decode("9abc"); err == nil {
		t.Errorf("Decode accepted an unrecognized version byte")
	}
}

func TestDecodeRejectsEmptyString(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Errorf("Decode accepted an empty string")
	}
}
