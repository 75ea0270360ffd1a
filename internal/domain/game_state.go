package domain

type Player struct {
	Pos Coords
	Vel Coords
}

type Asteroid struct {
	Pos Coords
}

// GameState is the whole game as a value. Updates never mutate in
// place: TimeStep and Reduce return a fresh copy.
type GameState struct {
	Player     Player
	Asteroids  []Asteroid
	Keys       Keys
	IsGameOver bool
	Elapsed    float64
}

func NewGameState() GameState {
	return GameState{
		Player: Player{
			Pos: Coords{X: PlayerStartX, Y: PlayerStartY},
			Vel: Coords{},
		},
		Asteroids: []Asteroid{
			{Pos: Coords{X: 70, Y: 30}},
			{Pos: Coords{X: 20, Y: 50}},
		},
	}
}
