package types

import (
	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventGameInput
	UIEventShowMenu
	UIEventQuit
)

// GameInputData carries one frame's worth of input and tick events,
// in the order they should be reduced.
type GameInputData struct {
	Events []domain.Event
}
