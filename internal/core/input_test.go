package core

import "testing"

func TestInputFrameSetAndClear(t *testing.T) {
	f := NewInputFrame()

	f.Set(ActionUp)
	f.Set(ActionConfirm)

	if !f.Has(ActionUp) || !f.Has(ActionConfirm) {
		t.Error("Expected set actions to be reported")
	}
	if f.Has(ActionDown) {
		t.Error("Unset action reported as set")
	}

	f.Clear()
	if f.Has(ActionUp) || f.Has(ActionConfirm) {
		t.Error("Clear() should drop all actions")
	}
}

func TestInputFrameClearKeepsPointer(t *testing.T) {
	// A held pointer steers across frames, so Clear must not drop it
	f := NewInputFrame()
	f.SetPointer(100, 50, true)
	f.Set(ActionLeft)

	f.Clear()

	if !f.Pointer.Engaged {
		t.Error("Clear() should keep the pointer engaged")
	}
	if f.Pointer.X != 100 || f.Pointer.Y != 50 {
		t.Errorf("Pointer = (%v, %v), expected (100, 50)", f.Pointer.X, f.Pointer.Y)
	}
}
