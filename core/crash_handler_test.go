package core

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Go did not run the function")
	}
}

func TestHandleCrashNilIsNoop(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	SetCrashScreen(screen)
	defer SetCrashScreen(nil)

	// A nil recovery value must neither exit nor finalise the screen
	HandleCrash(nil)
	if crashScreen.Load() == nil {
		t.Error("screen unregistered by a nil crash")
	}
}
