package render

import (
	"errors"
	"testing"
)

func TestScaleFitViewFollowsTerminal(t *testing.T) {
	size := V2(40, 20)
	v, err := NewScaleFitView(Background, func() (Vec2, error) { return size, nil })
	if err != nil {
		t.Fatal(err)
	}
	if got := v.View.Size(); got != V2(40, 18) {
		t.Errorf("initial size = %v, want (40, 18)", got)
	}

	v.Plot(V2(1, 1), Solid)
	size = V2(10, 5)
	v.EmptyRowCount = 0
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if got := v.View.Size(); got != V2(10, 4) {
		t.Errorf("resized = %v, want (10, 4)", got)
	}
	if c, _ := v.At(V2(1, 1)); c != Background {
		t.Errorf("Update should clear, got %v", c)
	}

	v.Plot(V2(0, 0), Solid)
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if c, _ := v.At(V2(0, 0)); c != Background {
		t.Errorf("Update at same size should clear, got %v", c)
	}
}

func TestScaleFitViewNeverNegative(t *testing.T) {
	v, err := NewScaleFitView(Empty, func() (Vec2, error) { return V2(3, 1), nil })
	if err != nil {
		t.Fatal(err)
	}
	if got := v.View.Size(); got != V2(3, 0) {
		t.Errorf("size = %v, want (3, 0)", got)
	}
	v.Plot(V2(0, 0), Solid)
}

func TestScaleFitViewError(t *testing.T) {
	_, err := NewScaleFitView(Empty, func() (Vec2, error) { return Vec2{}, ErrNoTerminal })
	if !errors.Is(err, ErrNoTerminal) {
		t.Errorf("err = %v, want ErrNoTerminal", err)
	}
}
