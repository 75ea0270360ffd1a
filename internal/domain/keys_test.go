package domain

import "testing"

func TestDirectionForCodeTable(t *testing.T) {
	tests := []struct {
		code KeyCode
		dir  Direction
		ok   bool
	}{
		{38, DirectionUp, true},
		{40, DirectionDown, true},
		{37, DirectionLeft, true},
		{39, DirectionRight, true},
		{13, 0, false},
		{65, 0, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		dir, ok := DirectionForCode(tt.code)
		if dir != tt.dir || ok != tt.ok {
			t.Errorf("DirectionForCode(%d) = (%v, %v), want (%v, %v)", tt.code, dir, ok, tt.dir, tt.ok)
		}
	}
}

func TestWithPressedTouchesOnlyOneFlag(t *testing.T) {
	k := Keys{}

	k = k.WithPressed(DirectionUp, true)
	k = k.WithPressed(DirectionRight, true)
	if k != (Keys{Up: true, Right: true}) {
		t.Fatalf("got %+v", k)
	}

	k = k.WithPressed(DirectionUp, false)
	if k != (Keys{Right: true}) {
		t.Fatalf("got %+v", k)
	}
}

func TestCoordsDistance(t *testing.T) {
	a := Coords{X: 3, Y: 0}
	b := Coords{X: 0, Y: 4}
	if d := a.Distance(b); d != 5 {
		t.Fatalf("Distance = %f, want 5", d)
	}
}
