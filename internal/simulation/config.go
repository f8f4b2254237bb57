// Package simulation provides the arena rules and the per-tick engines that apply them.
// Rules are loaded from an optional YAML file so every tunable lives in one place.
package simulation

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/zonearena/internal/input"
)

// Config holds all simulation rules for an arena session
type Config struct {
	Field   FieldConfig    `yaml:"field"`
	Player  PlayerConfig   `yaml:"player"`
	Enemy   EnemyConfig    `yaml:"enemy"`
	Bullet  BulletConfig   `yaml:"bullet"`
	Zone    ZoneConfig     `yaml:"zone"`
	Session SessionConfig  `yaml:"session"`
	Audio   AudioConfig    `yaml:"audio"`
	Keys    input.Bindings `yaml:"keys"`
}

// FieldConfig defines the logical canvas all positions live in
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the avatar spawned at session start
type PlayerConfig struct {
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`  // Units per tick per pressed axis
	Health float64 `yaml:"health"` // Starting (and maximum) health
}

// EnemyConfig defines the pursuing enemies
type EnemyConfig struct {
	Count         int     `yaml:"count"`
	Size          float64 `yaml:"size"`
	Speed         float64 `yaml:"speed"`          // Units per tick along the pursuit vector
	ContactDamage float64 `yaml:"contact_damage"` // Per overlapping enemy per tick
}

// BulletConfig defines the player's projectiles
type BulletConfig struct {
	DY float64 `yaml:"dy"` // Vertical displacement per tick
}

// ZoneConfig defines the shrinking safe zone
type ZoneConfig struct {
	CenterX    float64 `yaml:"center_x"`
	CenterY    float64 `yaml:"center_y"`
	Radius     float64 `yaml:"radius"`
	ShrinkRate float64 `yaml:"shrink_rate"` // Radius lost per tick
	MinRadius  float64 `yaml:"min_radius"`
	Damage     float64 `yaml:"damage"` // Per tick spent outside the zone
}

// SessionConfig defines loop-level settings
type SessionConfig struct {
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
	FrameTPS int   `yaml:"frame_tps"` // Frames (and therefore ticks) per second
}

// AudioConfig defines sound playback
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MusicVolume float64 `yaml:"music_volume"`
	SoundVolume float64 `yaml:"sound_volume"`
}

// DefaultConfig returns the classic arena rules
func DefaultConfig() *Config {
	return &Config{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			StartX: 400,
			StartY: 300,
			Size:   20,
			Speed:  3,
			Health: 100,
		},
		Enemy: EnemyConfig{
			Count:         10,
			Size:          20,
			Speed:         1.2,
			ContactDamage: 0.4,
		},
		Bullet: BulletConfig{
			DY: -5,
		},
		Zone: ZoneConfig{
			CenterX:    400,
			CenterY:    300,
			Radius:     300,
			ShrinkRate: 0.1,
			MinRadius:  30,
			Damage:     0.2,
		},
		Session: SessionConfig{
			Seed:     0,
			FrameTPS: 60,
		},
		Audio: AudioConfig{
			Enabled:     true,
			MusicVolume: 0.3,
			SoundVolume: 1.0,
		},
		Keys: input.DefaultBindings(),
	}
}

// LoadConfig loads simulation config from a YAML file.
// A missing file is not an error; the defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read simulation config: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig overlays YAML data on the defaults and validates the result.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig() // Start with defaults
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse simulation config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	return config, nil
}

// Validate checks that the rules describe a playable arena
func (c *Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("field size must be positive, got %.1fx%.1f", c.Field.Width, c.Field.Height)
	}
	if c.Player.Size <= 0 {
		return fmt.Errorf("player size must be positive, got %.1f", c.Player.Size)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player speed must not be negative, got %.1f", c.Player.Speed)
	}
	if c.Player.Health <= 0 {
		return fmt.Errorf("player health must be positive, got %.1f", c.Player.Health)
	}
	if c.Enemy.Count < 0 {
		return fmt.Errorf("enemy count must not be negative, got %d", c.Enemy.Count)
	}
	if c.Enemy.Size <= 0 {
		return fmt.Errorf("enemy size must be positive, got %.1f", c.Enemy.Size)
	}
	if c.Bullet.DY >= 0 {
		return fmt.Errorf("bullet dy must be negative (upward), got %.1f", c.Bullet.DY)
	}
	if c.Zone.MinRadius < 0 || c.Zone.Radius < c.Zone.MinRadius {
		return fmt.Errorf("zone radius range invalid: radius(%.1f) < min(%.1f)", c.Zone.Radius, c.Zone.MinRadius)
	}
	if c.Zone.ShrinkRate < 0 {
		return fmt.Errorf("zone shrink rate must not be negative, got %.2f", c.Zone.ShrinkRate)
	}
	if c.Session.FrameTPS <= 0 {
		return fmt.Errorf("frame_tps must be positive, got %d", c.Session.FrameTPS)
	}
	if c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1 || c.Audio.SoundVolume < 0 || c.Audio.SoundVolume > 1 {
		return fmt.Errorf("audio volumes must be within [0, 1]")
	}
	if err := c.Keys.Validate(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

// NewRand returns the random source for enemy placement, seeded from
// Session.Seed or from the clock when the seed is 0.
func (c *Config) NewRand() (*rand.Rand, int64) {
	seed := c.Session.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
