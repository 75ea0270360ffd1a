package domain

const (
	MapSize         = 100.0
	Accel           = 100.0
	DampingAccel    = Accel / 10
	CollisionRadius = 10.0
	PlayerStartX    = 10.0
	PlayerStartY    = 10.0
)

// Reduce applies one event to the state and returns the next state.
// Unknown key codes are no-ops.
func Reduce(gs GameState, event Event) GameState {
	switch event.Type {
	case EventKeyDown:
		if event.Code == KeyCodeReset {
			return NewGameState()
		}
		if dir, ok := DirectionForCode(event.Code); ok {
			gs.Keys = gs.Keys.WithPressed(dir, true)
		}
		return gs

	case EventKeyUp:
		if dir, ok := DirectionForCode(event.Code); ok {
			gs.Keys = gs.Keys.WithPressed(dir, false)
		}
		return gs

	case EventTick:
		return TimeStep(gs, event.Dt)
	}
	return gs
}

// TimeStep advances the simulation by dt seconds. Once the game is
// over the state is frozen until a reset.
func TimeStep(gs GameState, dt float64) GameState {
	if gs.IsGameOver {
		return gs
	}

	accel := Coords{
		X: axisAccel(gs.Keys.Left, gs.Keys.Right, gs.Player.Vel.X),
		Y: axisAccel(gs.Keys.Up, gs.Keys.Down, gs.Player.Vel.Y),
	}

	vel := gs.Player.Vel.Add(accel.Scale(dt))
	vel.X = clamp(vel.X, -MapSize, MapSize)
	vel.Y = clamp(vel.Y, -MapSize, MapSize)

	pos := gs.Player.Pos.Add(vel.Scale(dt))

	// Collision is checked against the pre-wrap position.
	gameOver := gs.IsGameOver
	for _, a := range gs.Asteroids {
		if pos.Distance(a.Pos) < CollisionRadius {
			gameOver = true
		}
	}

	gs.Player = Player{
		Pos: Coords{X: wrap(pos.X), Y: wrap(pos.Y)},
		Vel: vel,
	}
	gs.IsGameOver = gameOver
	gs.Elapsed += dt
	return gs
}

// axisAccel resolves one opposing key pair. Both pressed cancel out;
// neither pressed damps the current velocity toward zero.
func axisAccel(neg, pos bool, vel float64) float64 {
	switch {
	case neg && pos:
		return 0
	case neg:
		return -Accel
	case pos:
		return Accel
	case vel > 0:
		return -DampingAccel
	case vel < 0:
		return DampingAccel
	}
	return 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap folds a coordinate back onto the map by one map width at most.
// The velocity clamp bounds per-tick travel, so a single correction
// is enough.
func wrap(p float64) float64 {
	if p > MapSize {
		return p - MapSize
	}
	if p < 0 {
		return p + MapSize
	}
	return p
}
