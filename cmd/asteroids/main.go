package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/oliverholworthy/wlhn-asteroids/internal/app"
	"github.com/oliverholworthy/wlhn-asteroids/internal/domain"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/graphics/screens"
	"github.com/oliverholworthy/wlhn-asteroids/internal/ui/types"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	application := app.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application.Start(ctx)

	engine := graphics.NewEngine()

	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewGameScreen(engine),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		application.Stop()
		cancel()
		os.Exit(0)
	}()

	go handleAppEvents(application, engine)
	go handleUIEvents(application, engine)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}

func handleAppEvents(application *app.App, engine *graphics.Engine) {
	for event := range application.Events() {
		switch event.Type {
		case app.AppEventStateUpdated, app.AppEventGameOver:
			engine.SetState(application.GetState())
		}
	}
}

func handleUIEvents(application *app.App, engine *graphics.Engine) {
	for event := range engine.Events() {
		switch event.Type {
		case types.UIEventStartGame:
			application.Dispatch(domain.KeyDownEvent(domain.KeyCodeReset))
			engine.SetScreen(types.ScreenGame)

		case types.UIEventGameInput:
			data := event.Payload.(types.GameInputData)
			for _, ev := range data.Events {
				application.Dispatch(ev)
			}

		case types.UIEventQuit:
			application.Stop()
			os.Exit(0)
		}
	}
}
