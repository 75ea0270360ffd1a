package app

import (
	"context"
	"log"
	"sync"

	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
)

type AppEvent struct {
	Type AppEventType
}

type AppEventType int

const (
	AppEventStateUpdated AppEventType = iota
	AppEventGameOver
)

// App owns the authoritative game state. All input and tick events
// funnel through one buffered channel and are reduced by a single
// goroutine, so reduction is serialized in arrival order.
type App struct {
	state domain.GameState
	mu    sync.RWMutex

	inputCh chan domain.Event
	eventCh chan AppEvent

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewApp() *App {
	return &App{
		state:   domain.NewGameState(),
		inputCh: make(chan domain.Event, 256),
		eventCh: make(chan AppEvent, 256),
	}
}

func (a *App) Start(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(ctx)

	a.wg.Add(1)
	go a.eventLoop()

	log.Println("App started")
}

func (a *App) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
}

// Dispatch queues one event for reduction. It never blocks the
// caller; a full queue drops the event.
func (a *App) Dispatch(event domain.Event) {
	select {
	case a.inputCh <- event:
	default:
		log.Println("Input queue full, dropping event")
	}
}

func (a *App) Events() <-chan AppEvent {
	return a.eventCh
}

func (a *App) GetState() domain.GameState {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

func (a *App) eventLoop() {
	defer a.wg.Done()

	for {
		select {
		case <-a.ctx.Done():
			return
		case event := <-a.inputCh:
			a.handleEvent(event)
		}
	}
}

func (a *App) handleEvent(event domain.Event) {
	a.mu.Lock()
	prev := a.state
	a.state = domain.Reduce(a.state, event)
	next := a.state
	a.mu.Unlock()

	a.publish(AppEvent{Type: AppEventStateUpdated})

	if !prev.IsGameOver && next.IsGameOver {
		log.Printf("Game over after %.1fs", next.Elapsed)
		a.publish(AppEvent{Type: AppEventGameOver})
	}
	if prev.IsGameOver && !next.IsGameOver {
		log.Println("Game reset")
	}
}

func (a *App) publish(event AppEvent) {
	select {
	case a.eventCh <- event:
	default:
		log.Println("Event channel full, dropping event")
	}
}
