package graphics

import (
	"log"
	"sync"

	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 640
)

type Engine struct {
	width  int
	height int

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen

	state  domain.GameState
	dataMu sync.RWMutex

	eventCh chan types.UIEvent
}

func NewEngine() *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
		eventCh:       make(chan types.UIEvent, 100),
	}
}

func (e *Engine) RegisterScreens(menu types.Screen, game types.Screen) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Asteroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}
	event := screen.Update()

	e.handleEvent(event)

	return nil
}

func (e *Engine) Draw(screen *ebiten.Image) {
	currentScreen := e.screenMap[e.currentScreen]
	if currentScreen == nil {
		return
	}

	if updater, ok := currentScreen.(GameStateUpdater); ok {
		e.dataMu.RLock()
		updater.SetState(e.state)
		e.dataMu.RUnlock()
	}

	currentScreen.Draw(screen)
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) Events() <-chan types.UIEvent {
	return e.eventCh
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) SetState(state domain.GameState) {
	e.dataMu.Lock()
	e.state = state
	e.dataMu.Unlock()
}

func (e *Engine) handleEvent(event types.UIEvent) {
	switch event.Type {
	case types.UIEventNone:
		return

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	default:
		select {
		case e.eventCh <- event:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
}

type GameStateUpdater interface {
	SetState(state domain.GameState)
}
