package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/core"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/input"
	"github.com/lixenwraith/flip-rider/render"
)

// Muter toggles the sound cues; the audio manager implements it
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// App runs the game inside a tcell screen
// All game state is touched only from the goroutine calling Run
type App struct {
	screen   tcell.Screen
	game     *engine.Game
	renderer *render.TerminalRenderer
	keys     *input.Keymap
	hold     *input.HoldTracker
	muter    Muter
	hint     string

	eventCh chan tcell.Event
	stopCh  chan struct{}
}

// NewApp wires a game to a screen; hint is shown in the status bar
// A nil muter makes the mute key do nothing
func NewApp(screen tcell.Screen, game *engine.Game, renderer *render.TerminalRenderer, keys *input.Keymap, hold *input.HoldTracker, muter Muter, hint string) *App {
	return &App{
		screen:   screen,
		game:     game,
		renderer: renderer,
		keys:     keys,
		hold:     hold,
		muter:    muter,
		hint:     hint,
		eventCh:  make(chan tcell.Event, constant.EventQueueSize),
		stopCh:   make(chan struct{}),
	}
}

// Run polls input and advances the game at the fixed tick rate until quit
func (a *App) Run() error {
	core.Go(a.pollLoop)
	defer a.stop()

	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	if err := a.Frame(time.Now()); err != nil {
		return err
	}

	for {
		select {
		case ev := <-a.eventCh:
			if !a.HandleEvent(ev, time.Now()) {
				log.Printf("Quit requested")
				return nil
			}

		case now := <-ticker.C:
			if err := a.Frame(now); err != nil {
				return err
			}
		}
	}
}

// pollLoop forwards screen events until stopped or the screen is finalised
func (a *App) pollLoop() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			select {
			case <-a.stopCh:
				return
			default:
				continue
			}
		}

		select {
		case a.eventCh <- ev:
		case <-a.stopCh:
			return
		}
	}
}

func (a *App) stop() {
	close(a.stopCh)
	// Unblock PollEvent; a full queue is fine since Fini also ends polling
	_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// HandleEvent applies one input event; false means quit
func (a *App) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a.keys.Resolve(ev) {
		case input.ActionAccelerate:
			if a.game.Session().Active() {
				a.hold.Press(now)
			}
		case input.ActionRestart:
			a.restart()
		case input.ActionQuit:
			return false
		case input.ActionMute:
			if a.muter != nil {
				log.Printf("Sound muted: %v", a.muter.ToggleMute())
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if button := a.renderer.RestartButton(); !button.Empty() && button.Contains(x, y) {
				a.restart()
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
		a.renderer.Resize()
	}
	return true
}

// Frame advances the game one tick and redraws
func (a *App) Frame(now time.Time) error {
	res, err := a.game.Tick(engine.Input{Accelerate: a.hold.Held(now)})
	if err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	if res.Ended {
		a.hold.Release()
	}

	f := render.FrameFromGame(a.game, a.hold.Held(now), a.hint)
	f.Muted = a.muter != nil && a.muter.Muted()
	a.renderer.RenderFrame(f)
	return nil
}

func (a *App) restart() {
	a.hold.Release()
	a.game.Restart()
}
