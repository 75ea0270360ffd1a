package input

import (
	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps host keys to the key codes the simulation
// understands. Keys outside this table never produce events.
var keyBindings = []struct {
	key  ebiten.Key
	code domain.KeyCode
}{
	{ebiten.KeyUp, domain.KeyCodeUp},
	{ebiten.KeyDown, domain.KeyCodeDown},
	{ebiten.KeyLeft, domain.KeyCodeLeft},
	{ebiten.KeyRight, domain.KeyCodeRight},
	{ebiten.KeyEnter, domain.KeyCodeReset},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Poll returns the key transitions that happened since the previous
// frame, as domain events.
func (kh *KeyboardHandler) Poll() []domain.Event {
	var events []domain.Event
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, domain.KeyDownEvent(b.code))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			events = append(events, domain.KeyUpEvent(b.code))
		}
	}
	return events
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}
