package domain

type EventType int

const (
	EventKeyDown EventType = iota
	EventKeyUp
	EventTick
)

// Event is one element of the serialized input stream: a key
// transition carrying its code, or a frame tick carrying elapsed
// seconds.
type Event struct {
	Type EventType
	Code KeyCode
	Dt   float64
}

func KeyDownEvent(code KeyCode) Event {
	return Event{Type: EventKeyDown, Code: code}
}

func KeyUpEvent(code KeyCode) Event {
	return Event{Type: EventKeyUp, Code: code}
}

func TickEvent(dt float64) Event {
	return Event{Type: EventTick, Dt: dt}
}
