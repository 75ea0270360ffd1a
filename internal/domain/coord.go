package domain

import "math"

type Coords struct {
	X float64
	Y float64
}

func (c Coords) Add(other Coords) Coords {
	return Coords{
		X: c.X + other.X,
		Y: c.Y + other.Y,
	}
}

func (c Coords) Scale(factor float64) Coords {
	return Coords{
		X: c.X * factor,
		Y: c.Y * factor,
	}
}

func (c Coords) Distance(other Coords) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}
