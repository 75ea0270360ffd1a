package screens

import (
	"fmt"
	"time"

	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics/components"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics/input"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// maxFrameDt caps elapsed time per tick so a stalled window never
// produces a step larger than the wrap correction can absorb.
const maxFrameDt = 0.1

type GameScreen struct {
	ctx types.ScreenContext

	scene    *components.SceneRenderer
	keyboard *input.KeyboardHandler

	state    domain.GameState
	lastTick time.Time
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:      ctx,
		scene:    components.NewSceneRenderer(),
		keyboard: input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetState(state domain.GameState) {
	s.state = state
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	events := s.keyboard.Poll()
	events = append(events, domain.TickEvent(s.frameDt()))

	return types.UIEvent{
		Type:    types.UIEventGameInput,
		Payload: types.GameInputData{Events: events},
	}
}

// frameDt measures wall-clock time since the previous frame. The
// first frame after entering the screen counts as zero elapsed.
func (s *GameScreen) frameDt() float64 {
	now := time.Now()
	defer func() { s.lastTick = now }()

	if s.lastTick.IsZero() {
		return 0
	}
	dt := now.Sub(s.lastTick).Seconds()
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	return dt
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()

	s.scene.CalculateLayout(w, h)
	s.scene.DrawField(screen)
	s.scene.DrawAsteroids(screen, s.state.Asteroids, s.state.IsGameOver)
	s.scene.DrawPlayer(screen, s.state.Player, s.state.IsGameOver)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	if s.state.IsGameOver {
		s.drawGameOver(screen, w, h)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	timeText := fmt.Sprintf("Time: %.1fs", s.state.Elapsed)
	text.Draw(screen, timeText, fonts.Normal, 20, 30, types.ColorText)

	speed := s.state.Player.Vel.Distance(domain.Coords{})
	speedText := fmt.Sprintf("Speed: %.0f", speed)
	bounds := text.BoundString(fonts.Normal, speedText)
	text.Draw(screen, speedText, fonts.Normal, w-bounds.Dx()-20, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "Arrows to move  |  Enter to restart  |  ESC for menu"
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	banner := "GAME OVER"
	bounds := text.BoundString(fonts.Normal, banner)
	x := (w - bounds.Dx()) / 2
	y := h / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, banner, fonts.Normal, x+dx, y+dy, types.ColorGameOver)
		}
	}

	hint := fmt.Sprintf("Survived %.1fs - press Enter to restart", s.state.Elapsed)
	bounds = text.BoundString(fonts.Small, hint)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, hint, fonts.Small, x, y+25, types.ColorText)
}

func (s *GameScreen) OnEnter() {
	s.lastTick = time.Time{}
}

func (s *GameScreen) OnExit() {}
