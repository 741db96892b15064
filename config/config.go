package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/flip-rider/bike"
	"github.com/lixenwraith/flip-rider/constant"
	"github.com/lixenwraith/flip-rider/engine"
	"github.com/lixenwraith/flip-rider/input"
	"github.com/lixenwraith/flip-rider/terrain"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Input modes
const (
	InputHold   = "hold"
	InputToggle = "toggle"
)

// Config is the full runtime configuration; every key is optional in the file
type Config struct {
	Seed  uint64 `toml:"seed"`
	Debug bool   `toml:"debug"`

	Physics  Physics  `toml:"physics"`
	Terrain  Terrain  `toml:"terrain"`
	Input    Input    `toml:"input"`
	Keys     Keys     `toml:"keys"`
	Audio    Audio    `toml:"audio"`
	Terminal Terminal `toml:"terminal"`
	Window   Window   `toml:"window"`
}

type Physics struct {
	Gravity            float64 `toml:"gravity"`
	MaxSpeed           float64 `toml:"max_speed"`
	AccelerationForce  float64 `toml:"acceleration_force"`
	RotationTorque     float64 `toml:"rotation_torque"`
	MaxAngularVelocity float64 `toml:"max_angular_velocity"`
	AngularFriction    float64 `toml:"angular_friction"`
	AirborneSpeed      float64 `toml:"airborne_speed"`
}

type Terrain struct {
	SegmentLength float64 `toml:"segment_length"`
	Step          float64 `toml:"step"`
	Threshold     float64 `toml:"threshold"`
	BaseY         float64 `toml:"base_y"`
	InitialLength float64 `toml:"initial_length"`
}

// Input selects how terminal key presses map to a held accelerate key
type Input struct {
	Mode          string `toml:"mode"`
	HoldInitialMs int    `toml:"hold_initial_ms"`
	HoldRepeatMs  int    `toml:"hold_repeat_ms"`
}

// Keys lists key names per action, e.g. "space", "enter", "r", "ctrl_c"
type Keys struct {
	Accelerate []string `toml:"accelerate"`
	Restart    []string `toml:"restart"`
	Quit       []string `toml:"quit"`
	Mute       []string `toml:"mute"`
}

type Audio struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
}

// Terminal holds terminal frontend options; an empty Font uses the embedded splash font
type Terminal struct {
	Font string `toml:"font"`
}

// Window holds window frontend options; an empty Font uses Go Regular
type Window struct {
	Font     string  `toml:"font"`
	FontSize float64 `toml:"font_size"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:            constant.Gravity,
			MaxSpeed:           constant.MaxSpeed,
			AccelerationForce:  constant.AccelerationForce,
			RotationTorque:     constant.RotationTorque,
			MaxAngularVelocity: constant.MaxAngularVelocity,
			AngularFriction:    constant.AngularFriction,
			AirborneSpeed:      constant.AirborneSpeed,
		},
		Terrain: Terrain{
			SegmentLength: constant.SegmentLength,
			Step:          constant.TerrainStep,
			Threshold:     constant.GenerateThreshold,
			BaseY:         constant.TerrainBaseY,
			InitialLength: constant.InitialTerrainLength,
		},
		Input: Input{
			Mode:          InputHold,
			HoldInitialMs: int(constant.HoldInitial.Milliseconds()),
			HoldRepeatMs:  int(constant.HoldRepeat.Milliseconds()),
		},
		Keys: Keys{
			Accelerate: []string{"space"},
			Restart:    []string{"r", "enter"},
			Quit:       []string{"q", "escape", "ctrl_c"},
			Mute:       []string{"m"},
		},
		Audio: Audio{
			Enabled:      true,
			MasterVolume: constant.AudioMasterVolume,
		},
		Window: Window{
			FontSize: constant.ScoreFontSize,
			Width:    constant.ScreenWidth,
			Height:   constant.ScreenHeight,
		},
	}
}

// Load reads path over the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.decode(string(data)); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	log.Printf("Config loaded from %s", path)
	return cfg, nil
}

// Parse decodes TOML text over the defaults and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Config: ignoring unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate rejects values the game cannot run with
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	p := c.Physics
	check(p.Gravity >= 0, "physics.gravity %v must not be negative", p.Gravity)
	check(p.MaxSpeed > 0, "physics.max_speed %v must be positive", p.MaxSpeed)
	check(p.AccelerationForce > 0, "physics.acceleration_force %v must be positive", p.AccelerationForce)
	check(p.RotationTorque > 0, "physics.rotation_torque %v must be positive", p.RotationTorque)
	check(p.MaxAngularVelocity > 0, "physics.max_angular_velocity %v must be positive", p.MaxAngularVelocity)
	check(p.AngularFriction > 0 && p.AngularFriction <= 1, "physics.angular_friction %v must be in (0, 1]", p.AngularFriction)
	check(p.AirborneSpeed >= 0, "physics.airborne_speed %v must not be negative", p.AirborneSpeed)

	t := c.Terrain
	check(t.SegmentLength > 0, "terrain.segment_length %v must be positive", t.SegmentLength)
	check(t.Step >= constant.MinTerrainStep, "terrain.step %v must be at least %v", t.Step, constant.MinTerrainStep)
	check(t.Threshold > 0 && t.Threshold < t.SegmentLength,
		"terrain.threshold %v must be positive and below segment_length %v", t.Threshold, t.SegmentLength)
	check(t.InitialLength >= 0, "terrain.initial_length %v must not be negative", t.InitialLength)

	in := c.Input
	check(in.Mode == InputHold || in.Mode == InputToggle, "input.mode %q must be %q or %q", in.Mode, InputHold, InputToggle)
	check(in.HoldInitialMs > 0, "input.hold_initial_ms %d must be positive", in.HoldInitialMs)
	check(in.HoldRepeatMs > 0, "input.hold_repeat_ms %d must be positive", in.HoldRepeatMs)

	check(len(c.Keys.Accelerate) > 0, "keys.accelerate must not be empty")
	check(len(c.Keys.Restart) > 0, "keys.restart must not be empty")
	check(len(c.Keys.Quit) > 0, "keys.quit must not be empty")
	if _, err := input.NewKeymap(c.Keys.Accelerate, c.Keys.Restart, c.Keys.Quit, c.Keys.Mute); err != nil {
		check(false, "%v", err)
	}

	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume %v must be in [0, 1]", c.Audio.MasterVolume)

	w := c.Window
	check(w.FontSize > 0, "window.font_size %v must be positive", w.FontSize)
	check(w.Width > 0 && w.Height > 0, "window size %dx%d must be positive", w.Width, w.Height)

	return errors.Join(errs...)
}

// GameParams converts the gameplay sections for engine.NewGame
func (c Config) GameParams() engine.Params {
	return engine.Params{
		Seed:    c.Seed,
		Gravity: c.Physics.Gravity,
		Dynamics: bike.Dynamics{
			MaxSpeed:           c.Physics.MaxSpeed,
			AccelerationForce:  c.Physics.AccelerationForce,
			RotationTorque:     c.Physics.RotationTorque,
			MaxAngularVelocity: c.Physics.MaxAngularVelocity,
			AngularFriction:    c.Physics.AngularFriction,
			AirborneSpeed:      c.Physics.AirborneSpeed,
		},
		Terrain: terrain.Config{
			SegmentLength: c.Terrain.SegmentLength,
			Step:          c.Terrain.Step,
			Threshold:     c.Terrain.Threshold,
			BaseY:         c.Terrain.BaseY,
			InitialLength: c.Terrain.InitialLength,
		},
		FallLimit: constant.FallLimit,
	}
}

// ResolveSeed replaces a zero seed with one derived from now
func (c *Config) ResolveSeed(now time.Time) uint64 {
	if c.Seed == 0 {
		c.Seed = uint64(now.UnixNano())
		log.Printf("Seed %d (time based)", c.Seed)
	}
	return c.Seed
}
