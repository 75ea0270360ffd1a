package types

import "image/color"

var (
	ColorBackground    = color.RGBA{15, 15, 25, 255}
	ColorFieldBg       = color.RGBA{25, 25, 40, 255}
	ColorFieldBorder   = color.RGBA{70, 70, 90, 255}
	ColorPlayer        = color.RGBA{100, 200, 255, 255}
	ColorAsteroid      = color.RGBA{150, 130, 110, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{255, 255, 100, 255}
	ColorGameOver      = color.RGBA{255, 100, 100, 255}
	ColorButton        = color.RGBA{70, 70, 80, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorButtonBorder  = color.RGBA{100, 100, 110, 255}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
