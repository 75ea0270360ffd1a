package screens

import (
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics/components"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics/input"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnStart *components.Button
	btnQuit  *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:      ctx,
		btnStart: components.NewButton(0, 0, 250, 50, "Start"),
		btnQuit:  components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnStart.SetPosition(centerX-125, centerY-30)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnStart.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "ASTEROIDS"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorTextHighlight)
		}
	}
	text.Draw(screen, title, fonts.Normal, x, 100, types.ColorTextHighlight)

	subtitle := "Dodge the rocks"
	bounds = text.BoundString(fonts.Normal, subtitle)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, subtitle, fonts.Normal, x, 130, types.ColorTextDim)

	s.btnStart.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "Enter to start  |  ESC to quit"
	bounds = text.BoundString(fonts.Small, hint)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, hint, fonts.Small, x, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
