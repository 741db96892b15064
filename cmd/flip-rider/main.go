package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/flip-rider/asset"
	"github.com/lixenwraith/flip-rider/audio"
	"github.com/lixenwraith/flip-rider/config"
	"github.com/lixenwraith/flip-rider/core"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/input"
	"github.com/lixenwraith/flip-rider/render"
	"github.com/lixenwraith/flip-rider/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Terrain seed (0 = config value or time based)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/flip-rider.log")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "flip-rider needs an interactive terminal")
		os.Exit(1)
	}

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

	font, err := loadFont(cfg.Terminal.Font)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load font: %v\n", err)
		os.Exit(1)
	}

	keys, err := input.NewKeymap(cfg.Keys.Accelerate, cfg.Keys.Restart, cfg.Keys.Quit, cfg.Keys.Mute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}
	mode, err := input.ParseMode(cfg.Input.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid input mode: %v\n", err)
		os.Exit(1)
	}
	hold := input.NewHoldTracker(mode,
		time.Duration(cfg.Input.HoldInitialMs)*time.Millisecond,
		time.Duration(cfg.Input.HoldRepeatMs)*time.Millisecond)

	// Audio failure is not fatal, the game runs silently
	var sounds engine.Sounds
	var muter terminal.Muter
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	core.SetCrashScreen(screen)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	renderer := render.NewTerminalRenderer(screen, font)
	hint := terminal.Hint(cfg.Keys.Accelerate, cfg.Keys.Restart, cfg.Keys.Quit, cfg.Keys.Mute, mode)
	app := terminal.NewApp(screen, game, renderer, keys, hold, muter, hint)

	log.Printf("Starting: seed %d, input %s", cfg.Seed, mode)
	if err := app.Run(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Game stopped: %v\n", err)
		os.Exit(1)
	}
}

func loadFont(path string) (*asset.SplashFont, error) {
	if path == "" {
		return asset.DefaultSplashFont()
	}
	return asset.LoadSplashFont(path)
}
