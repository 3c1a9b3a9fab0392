package core

import (
	"testing"
)

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionLeft) {
		t.Error("fresh frame has actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear did not reset actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionLeft) {
		t.Error("zero frame has actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero frame lost")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	c := f.Clone()
	f.Clear()
	if !c.Has(ActionPause) {
		t.Error("clone shares state with original")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("String = %q, want Confirm", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action String = %q", Action(99).String())
	}
}
