package domain

type Direction int32

const (
	DirectionUp Direction = iota + 1
	DirectionDown
	DirectionLeft
	DirectionRight
)

// KeyCode is the raw key identifier carried by keyboard events.
// The mapping table is part of the external contract.
type KeyCode int32

const (
	KeyCodeReset KeyCode = 13
	KeyCodeLeft  KeyCode = 37
	KeyCodeUp    KeyCode = 38
	KeyCodeRight KeyCode = 39
	KeyCodeDown  KeyCode = 40
)

// DirectionForCode translates a key code to a direction flag.
// Unrecognized codes (including Reset) return false.
func DirectionForCode(code KeyCode) (Direction, bool) {
	switch code {
	case KeyCodeUp:
		return DirectionUp, true
	case KeyCodeDown:
		return DirectionDown, true
	case KeyCodeLeft:
		return DirectionLeft, true
	case KeyCodeRight:
		return DirectionRight, true
	}
	return 0, false
}

// Keys holds the four independent directional flags. It is a value
// type: WithPressed returns an updated copy.
type Keys struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

func (k Keys) WithPressed(dir Direction, pressed bool) Keys {
	switch dir {
	case DirectionUp:
		k.Up = pressed
	case DirectionDown:
		k.Down = pressed
	case DirectionLeft:
		k.Left = pressed
	case DirectionRight:
		k.Right = pressed
	}
	return k
}
