package domain

import (
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTimeStepUpKeyFullSecond(t *testing.T) {
	// dt=1s with only Up held from a standstill: vy ramps to the
	// clamp, y goes to -90 and wraps back to 10.
	gs := NewGameState()
	gs.Keys = Keys{Up: true}

	gs = TimeStep(gs, 1.0)

	if !near(gs.Player.Vel.Y, -100) {
		t.Fatalf("vel.Y = %f, want -100", gs.Player.Vel.Y)
	}
	if !near(gs.Player.Pos.Y, 10) {
		t.Fatalf("pos.Y = %f, want 10 (wrapped from -90)", gs.Player.Pos.Y)
	}
	if !near(gs.Player.Pos.X, 10) || !near(gs.Player.Vel.X, 0) {
		t.Fatalf("x axis moved without input: pos=%f vel=%f", gs.Player.Pos.X, gs.Player.Vel.X)
	}
}

func TestDampingShrinksSpeedEachTick(t *testing.T) {
	gs := NewGameState()
	gs.Player.Vel = Coords{X: 5, Y: -3}

	for i := 0; i < 15; i++ {
		prev := gs.Player.Vel
		gs = TimeStep(gs, 0.016)
		if math.Abs(gs.Player.Vel.X) >= math.Abs(prev.X) {
			t.Fatalf("tick %d: |vel.X| did not shrink: %f -> %f", i, prev.X, gs.Player.Vel.X)
		}
		if math.Abs(gs.Player.Vel.Y) >= math.Abs(prev.Y) {
			t.Fatalf("tick %d: |vel.Y| did not shrink: %f -> %f", i, prev.Y, gs.Player.Vel.Y)
		}
	}
}

func TestDampingLeavesZeroVelocityAlone(t *testing.T) {
	gs := NewGameState()
	gs = TimeStep(gs, 0.016)

	if gs.Player.Vel.X != 0 || gs.Player.Vel.Y != 0 {
		t.Fatalf("velocity drifted from rest: %+v", gs.Player.Vel)
	}
	if !near(gs.Player.Pos.X, 10) || !near(gs.Player.Pos.Y, 10) {
		t.Fatalf("position drifted from rest: %+v", gs.Player.Pos)
	}
}

func TestVelocityClampedToMapSize(t *testing.T) {
	gs := NewGameState()
	gs.Keys = Keys{Right: true, Down: true}

	for i := 0; i < 10; i++ {
		gs = TimeStep(gs, 1.0)
		if gs.Player.Vel.X > MapSize || gs.Player.Vel.Y > MapSize {
			t.Fatalf("tick %d: velocity above clamp: %+v", i, gs.Player.Vel)
		}
	}
	if !near(gs.Player.Vel.X, MapSize) || !near(gs.Player.Vel.Y, MapSize) {
		t.Fatalf("velocity should saturate at %f, got %+v", float64(MapSize), gs.Player.Vel)
	}
}

func TestOpposingKeysCancelWithoutDamping(t *testing.T) {
	gs := NewGameState()
	gs.Player.Vel = Coords{Y: 5}
	gs.Keys = Keys{Up: true, Down: true}

	gs = TimeStep(gs, 0.1)

	// Distinct from the neither-pressed case, which would damp.
	if !near(gs.Player.Vel.Y, 5) {
		t.Fatalf("vel.Y = %f, want 5 (opposing keys must cancel exactly)", gs.Player.Vel.Y)
	}
}

func TestWrapAtBoundaries(t *testing.T) {
	tests := []struct {
		name string
		pos  float64
		want float64
	}{
		{"zero rests", 0, 0},
		{"map size rests", MapSize, MapSize},
		{"just above wraps down", MapSize + 0.5, 0.5},
		{"just below wraps up", -0.5, MapSize - 0.5},
		{"interior untouched", 42.5, 42.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.pos); !near(got, tt.want) {
				t.Fatalf("wrap(%f) = %f, want %f", tt.pos, got, tt.want)
			}
		})
	}
}

func TestPositionWrapsAcrossEdge(t *testing.T) {
	gs := NewGameState()
	gs.Player.Pos = Coords{X: 10, Y: 0.5}
	gs.Keys = Keys{Up: true}

	gs = TimeStep(gs, 0.1)

	// vel.Y = -10, y = 0.5 - 1 = -0.5, wraps to 99.5.
	if !near(gs.Player.Pos.Y, 99.5) {
		t.Fatalf("pos.Y = %f, want 99.5", gs.Player.Pos.Y)
	}
}

func TestCollisionIsStrictlyInsideRadius(t *testing.T) {
	tests := []struct {
		name     string
		pos      Coords
		gameOver bool
	}{
		{"exactly at radius", Coords{X: 60, Y: 30}, false},
		{"just inside radius", Coords{X: 60.001, Y: 30}, true},
		{"far away", Coords{X: 40, Y: 10}, false},
		{"second asteroid", Coords{X: 20, Y: 45}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState()
			gs.Player.Pos = tt.pos

			gs = TimeStep(gs, 0.016)

			if gs.IsGameOver != tt.gameOver {
				t.Fatalf("IsGameOver = %v, want %v (player at %+v)", gs.IsGameOver, tt.gameOver, tt.pos)
			}
		})
	}
}

func TestCollisionUsesPreWrapPosition(t *testing.T) {
	// Crossing the right edge lands the player next to the (20,50)
	// asteroid after wrapping, but the check sees the pre-wrap
	// coordinates and lets it pass.
	gs := NewGameState()
	gs.Player.Pos = Coords{X: 99, Y: 50}
	gs.Player.Vel = Coords{X: 100}
	gs.Keys = Keys{Right: true}

	gs = TimeStep(gs, 0.2)

	if !near(gs.Player.Pos.X, 19) {
		t.Fatalf("pos.X = %f, want 19 after wrap", gs.Player.Pos.X)
	}
	if gs.IsGameOver {
		t.Fatal("collision fired on the wrapped position; it must use the pre-wrap one")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	gs := NewGameState()
	gs.Player.Pos = Coords{X: 70, Y: 30}
	gs = TimeStep(gs, 0.016)
	if !gs.IsGameOver {
		t.Fatal("expected collision on top of asteroid")
	}

	frozen := gs
	gs.Keys = Keys{Right: true}
	for i := 0; i < 5; i++ {
		gs = TimeStep(gs, 0.5)
	}

	if !gs.IsGameOver {
		t.Fatal("game over flag must stay set")
	}
	if gs.Player != frozen.Player {
		t.Fatalf("player moved after game over: %+v -> %+v", frozen.Player, gs.Player)
	}
	if gs.Elapsed != frozen.Elapsed {
		t.Fatalf("clock advanced after game over: %f -> %f", frozen.Elapsed, gs.Elapsed)
	}
}

func TestElapsedAccumulatesWhileLive(t *testing.T) {
	gs := NewGameState()
	for i := 0; i < 10; i++ {
		gs = TimeStep(gs, 0.25)
	}
	if !near(gs.Elapsed, 2.5) {
		t.Fatalf("Elapsed = %f, want 2.5", gs.Elapsed)
	}
}

func TestReduceKeyTransitions(t *testing.T) {
	gs := NewGameState()

	gs = Reduce(gs, KeyDownEvent(KeyCodeUp))
	gs = Reduce(gs, KeyDownEvent(KeyCodeLeft))
	if !gs.Keys.Up || !gs.Keys.Left {
		t.Fatalf("flags not set: %+v", gs.Keys)
	}

	gs = Reduce(gs, KeyUpEvent(KeyCodeUp))
	if gs.Keys.Up {
		t.Fatal("Up flag not cleared on key up")
	}
	if !gs.Keys.Left {
		t.Fatal("Left flag cleared by unrelated key up")
	}
}

func TestReduceIgnoresUnknownCodes(t *testing.T) {
	gs := NewGameState()
	before := gs

	gs = Reduce(gs, KeyDownEvent(KeyCode(65)))
	gs = Reduce(gs, KeyUpEvent(KeyCode(27)))
	gs = Reduce(gs, KeyUpEvent(KeyCodeReset))

	if gs.Player != before.Player || gs.Keys != before.Keys ||
		gs.IsGameOver != before.IsGameOver || gs.Elapsed != before.Elapsed {
		t.Fatalf("state changed by no-op events: %+v", gs)
	}
}

func TestReduceResetRestoresDefaults(t *testing.T) {
	gs := NewGameState()
	gs.Keys = Keys{Down: true}
	gs = Reduce(gs, TickEvent(0.5))
	gs.Player.Pos = Coords{X: 70, Y: 30}
	gs = Reduce(gs, TickEvent(0.016))
	if !gs.IsGameOver {
		t.Fatal("setup: expected a collision")
	}

	gs = Reduce(gs, KeyDownEvent(KeyCodeReset))

	want := NewGameState()
	if gs.Player != want.Player {
		t.Fatalf("player not restored: %+v", gs.Player)
	}
	if gs.IsGameOver {
		t.Fatal("game over flag not cleared")
	}
	if gs.Keys != (Keys{}) {
		t.Fatalf("keys not cleared: %+v", gs.Keys)
	}
	if len(gs.Asteroids) != 2 ||
		gs.Asteroids[0].Pos != (Coords{X: 70, Y: 30}) ||
		gs.Asteroids[1].Pos != (Coords{X: 20, Y: 50}) {
		t.Fatalf("asteroid set not restored: %+v", gs.Asteroids)
	}
	if gs.Elapsed != 0 {
		t.Fatalf("Elapsed not reset: %f", gs.Elapsed)
	}
}

func TestReduceTickAppliesTimeStep(t *testing.T) {
	gs := NewGameState()
	gs.Keys = Keys{Right: true}

	gs = Reduce(gs, TickEvent(0.1))

	if !near(gs.Player.Vel.X, 10) {
		t.Fatalf("vel.X = %f, want 10", gs.Player.Vel.X)
	}
	if !near(gs.Player.Pos.X, 11) {
		t.Fatalf("pos.X = %f, want 11", gs.Player.Pos.X)
	}
}
