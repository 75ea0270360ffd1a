package components

import (
	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	playerRadius = 2.5
	marginX      = 40
	marginY      = 100
)

// SceneRenderer draws the square map scaled to fit the window,
// like an SVG viewBox: field coordinates times Scale plus offset.
type SceneRenderer struct {
	Scale   float64
	OffsetX int
	OffsetY int
}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{Scale: 4}
}

func (sr *SceneRenderer) CalculateLayout(screenWidth, screenHeight int) {
	availableWidth := screenWidth - marginX*2
	availableHeight := screenHeight - marginY*2

	scaleW := float64(availableWidth) / domain.MapSize
	scaleH := float64(availableHeight) / domain.MapSize

	sr.Scale = scaleW
	if scaleH < scaleW {
		sr.Scale = scaleH
	}
	if sr.Scale < 1 {
		sr.Scale = 1
	}

	side := int(domain.MapSize * sr.Scale)
	sr.OffsetX = (screenWidth - side) / 2
	sr.OffsetY = (screenHeight - side) / 2
}

func (sr *SceneRenderer) DrawField(screen *ebiten.Image) {
	side := float32(domain.MapSize * sr.Scale)

	vector.DrawFilledRect(screen,
		float32(sr.OffsetX), float32(sr.OffsetY),
		side, side,
		types.ColorFieldBg, false)

	vector.StrokeRect(screen,
		float32(sr.OffsetX), float32(sr.OffsetY),
		side, side,
		1, types.ColorFieldBorder, false)
}

func (sr *SceneRenderer) DrawAsteroids(screen *ebiten.Image, asteroids []domain.Asteroid, dimmed bool) {
	c := types.ColorAsteroid
	if dimmed {
		c = types.Darken(c, 0.5)
	}
	for _, a := range asteroids {
		x, y := sr.toScreen(a.Pos)
		vector.DrawFilledCircle(screen, x, y, float32(domain.CollisionRadius*sr.Scale), c, true)
	}
}

func (sr *SceneRenderer) DrawPlayer(screen *ebiten.Image, player domain.Player, dimmed bool) {
	c := types.ColorPlayer
	if dimmed {
		c = types.Darken(c, 0.5)
	}
	x, y := sr.toScreen(player.Pos)
	vector.DrawFilledCircle(screen, x, y, float32(playerRadius*sr.Scale), c, true)
}

func (sr *SceneRenderer) toScreen(c domain.Coords) (float32, float32) {
	return float32(float64(sr.OffsetX) + c.X*sr.Scale),
		float32(float64(sr.OffsetY) + c.Y*sr.Scale)
}
