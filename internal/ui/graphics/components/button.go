package components

import (
	"image/color"

	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	hovered       bool
	pressed       bool
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		Text:   buttonText,
	}
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}

func (b *Button) Update() bool {
	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	if b.pressed {
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	} else if b.hovered {
		bgColor = types.ColorButtonHover
	} else {
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorButtonBorder, false)

	fonts := types.GetFonts()
	bounds := text.BoundString(fonts.Normal, b.Text)
	tx := b.X + (b.Width-bounds.Dx())/2
	ty := b.Y + (b.Height+bounds.Dy())/2
	text.Draw(screen, b.Text, fonts.Normal, tx, ty, types.ColorButtonText)
}
