// Package config loads game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  Window  `yaml:"window"`
	Maze    Maze    `yaml:"maze"`
	Sim     Sim     `yaml:"sim"`
	Player  Player  `yaml:"player"`
	Enemies Enemies `yaml:"enemies"`
	Pickups Pickups `yaml:"pickups"`
	Audio   Audio   `yaml:"audio"`
	Assets  Assets  `yaml:"assets"`
	Log     Log     `yaml:"log"`
}

type Window struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Title       string `yaml:"title"`
	RenderScale int    `yaml:"render_scale"` // screen pixels per cast column
	HUDHeight   int    `yaml:"hud_height"`
}

type Maze struct {
	Width  int    `yaml:"width"`  // rooms across
	Height int    `yaml:"height"` // rooms down
	Expand int    `yaml:"expand"` // corridor widening factor
	Seed   int64  `yaml:"seed"`   // 0 picks a time-based seed
	File   string `yaml:"file"`   // hand-authored maze instead of generation
}

type Sim struct {
	TickRate float64 `yaml:"tick_rate"`
	MaxFrame float64 `yaml:"max_frame"`
}

type Player struct {
	FOVDegrees    float64 `yaml:"fov_deg"`
	Speed         float64 `yaml:"speed"`
	RunMultiplier float64 `yaml:"run_multiplier"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	StaminaRegen  float64 `yaml:"stamina_regen"`
	StaminaDrain  float64 `yaml:"stamina_drain"`
	FogRadius     int     `yaml:"fog_radius"`
}

type Enemies struct {
	Kind           string  `yaml:"kind"`
	Speed          float64 `yaml:"speed"`
	RepathInterval float64 `yaml:"repath_interval"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	Damage         float64 `yaml:"damage"`
}

type Pickups struct {
	Medkits          int     `yaml:"medkits"`
	MedkitAmount     float64 `yaml:"medkit_amount"`
	BinocularSeconds float64 `yaml:"binocular_seconds"`
	Attempts         int     `yaml:"attempts"`
}

type Audio struct {
	Dir         string  `yaml:"dir"`
	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

type Assets struct {
	Dir string `yaml:"dir"` // empty uses the built-in procedural textures
}

type Log struct {
	Level string `yaml:"level"`
}

// Default returns the shipped settings
func Default() Config {
	return Config{
		Window: Window{Width: 1820, Height: 980, Title: "Mazecaster", RenderScale: 3, HUDHeight: 60},
		Maze:   Maze{Width: 12, Height: 10, Expand: 2},
		Sim:    Sim{TickRate: 60, MaxFrame: 0.25},
		Player: Player{
			FOVDegrees:    60,
			Speed:         80,
			RunMultiplier: 1.6,
			RotationSpeed: math.Pi,
			StaminaRegen:  12,
			StaminaDrain:  60,
			FogRadius:     2,
		},
		Enemies: Enemies{Kind: "mimic", Speed: 18, RepathInterval: 1, AttackCooldown: 1, Damage: 50},
		Pickups: Pickups{Medkits: 6, MedkitAmount: 25, BinocularSeconds: 60, Attempts: 300},
		Audio:   Audio{MusicVolume: 0.45, SFXVolume: 0.3},
		Log:     Log{Level: "info"},
	}
}

// Load overlays the YAML file at path on top of Default and validates it
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML
func (c Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}

// FOV returns the field of view in radians
func (p Player) FOV() float64 {
	return p.FOVDegrees * math.Pi / 180
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.RenderScale <= 0:
		return fmt.Errorf("%w: render_scale %d", ErrInvalid, c.Window.RenderScale)
	case c.Maze.File == "" && (c.Maze.Width <= 0 || c.Maze.Height <= 0):
		return fmt.Errorf("%w: maze %dx%d", ErrInvalid, c.Maze.Width, c.Maze.Height)
	case c.Maze.Expand <= 0:
		return fmt.Errorf("%w: maze expand %d", ErrInvalid, c.Maze.Expand)
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %v", ErrInvalid, c.Sim.TickRate)
	case c.Sim.MaxFrame <= 0:
		return fmt.Errorf("%w: max_frame %v", ErrInvalid, c.Sim.MaxFrame)
	case c.Player.FOVDegrees <= 0 || c.Player.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_deg %v", ErrInvalid, c.Player.FOVDegrees)
	case c.Player.Speed <= 0:
		return fmt.Errorf("%w: player speed %v", ErrInvalid, c.Player.Speed)
	case c.Player.FogRadius < 0:
		return fmt.Errorf("%w: fog_radius %d", ErrInvalid, c.Player.FogRadius)
	case c.Pickups.Medkits < 0 || c.Pickups.Attempts <= 0:
		return fmt.Errorf("%w: pickups %+v", ErrInvalid, c.Pickups)
	case c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.SFXVolume < 0 || c.Audio.SFXVolume > 1:
		return fmt.Errorf("%w: volumes must be within [0,1]", ErrInvalid)
	}
	return nil
}
