package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/flip-rider/audio"
	"github.com/lixenwraith/flip-rider/config"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/window"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Terrain seed (0 = config value or time based)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log and show frame stats")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	cfg, logFile, err := config.Setup(*configFlag, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	cfg.ResolveSeed(time.Now())

	face, err := window.LoadScoreFace(cfg.Window.Font, cfg.Window.FontSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load font: %v\n", err)
		os.Exit(1)
	}

	keys, err := window.NewKeymap(cfg.Keys.Accelerate, cfg.Keys.Restart, cfg.Keys.Quit, cfg.Keys.Mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}

	var sounds engine.Sounds
	var muter window.Muter
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.MasterVolume)
		if err := sm.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			sm.SetMuted(*muteFlag)
			sounds = sm
			muter = sm
		}
	}

	game, err := engine.NewGame(cfg.GameParams(), sounds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Flip Rider")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(constant.TickRate)

	log.Printf("Starting window: seed %d, %dx%d", cfg.Seed, cfg.Window.Width, cfg.Window.Height)
	if err := ebiten.RunGame(window.NewApp(game, keys, face, muter, cfg.Debug)); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}
}
