package entity

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestIdsAreDenseFromOne(t *testing.T) {
	c := qt.New(t)
	m := NewModel()
	var ids []int
	for i := 0; i < 5; i++ {
		ids = append(ids, m.AddLamp(Position{X: float64(i)}))
	}
	for i, id := range ids {
		c.Assert(id, qt.Equals, i+1)
	}
}

func TestConnectAddsSymmetricEdge(t *testing.T) {
	c := qt.New(t)
	m := NewModel()
	a := m.AddLamp(Position{})
	b := m.AddConstant(Position{}, ConstantPayload{})
	m.Connect(a, InputRed, b, OutputRed)
	c.Assert(m.Wires, qt.HasLen, 1)
	c.Assert(m.Wires[0], qt.Equals, Wire{FromID: a, FromPort: InputRed, ToID: b, ToPort: OutputRed})
}

func TestConnectPanicsOnMissingID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Connect with a missing id did not panic")
		}
	}()
	m := NewModel()
	a := m.AddLamp(Position{})
	m.Connect(a, InputRed, a+100, OutputRed)
}

func TestLampDefaultsUseColors(t *testing.T) {
	m := NewModel()
	m.AddLamp(Position{})
	if !m.Entities[0].Lamp.UseColors {
		t.Errorf("lamp UseColors = false, want true")
	}
}
