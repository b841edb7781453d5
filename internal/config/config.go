// Package config provides YAML-based game configuration loading and
// difficulty management for the jumper.
package config

import (
	"time"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

// JumperConfig contains all configuration for the platformer.
type JumperConfig struct {
	Physics    JumperPhysics    `yaml:"physics"`
	Lava       JumperLava       `yaml:"lava"`
	Timing     JumperTiming     `yaml:"timing"`
	Input      JumperInput      `yaml:"input"`
	Render     JumperRender     `yaml:"render"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperPhysics defines the simulation constants. Units are grid cells and
// seconds.
type JumperPhysics struct {
	PlayerSpeed float64 `yaml:"player_speed"`
	Gravity     float64 `yaml:"gravity"`
	JumpSpeed   float64 `yaml:"jump_speed"`
	WobbleSpeed float64 `yaml:"wobble_speed"`
	WobbleDist  float64 `yaml:"wobble_dist"`
	MaxStep     float64 `yaml:"max_step"`
	FinishDelay float64 `yaml:"finish_delay"`
}

// JumperLava defines moving lava speeds.
type JumperLava struct {
	BounceSpeed float64 `yaml:"bounce_speed"` // '=' and '|'
	DripSpeed   float64 `yaml:"drip_speed"`   // 'v'
}

// JumperTiming defines the driver's frame clamp and intermissions.
type JumperTiming struct {
	MaxFrameMs  int `yaml:"max_frame_ms"`
	LossPauseMs int `yaml:"loss_pause_ms"`
	WinPauseMs  int `yaml:"win_pause_ms"`
}

// JumperInput defines keyboard handling.
type JumperInput struct {
	HoldMs int `yaml:"hold_ms"` // How long a key counts as held after its last press
}

// JumperRender defines how levels map onto terminal cells.
type JumperRender struct {
	Scale int `yaml:"scale"` // Columns per grid unit
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases through a pack.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	LavaSpeedMultiplier float64 `yaml:"lava_speed_multiplier"` // Added to lava speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is not a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// EnginePhysics converts the config into engine tuning.
func (c JumperConfig) EnginePhysics() core.Physics {
	return core.Physics{
		PlayerSpeed: c.Physics.PlayerSpeed,
		Gravity:     c.Physics.Gravity,
		JumpSpeed:   c.Physics.JumpSpeed,
		WobbleSpeed: c.Physics.WobbleSpeed,
		WobbleDist:  c.Physics.WobbleDist,
		MaxStep:     c.Physics.MaxStep,
		FinishDelay: c.Physics.FinishDelay,
		BounceSpeed: c.Lava.BounceSpeed,
		DripSpeed:   c.Lava.DripSpeed,
	}
}

// PhysicsForLevel returns the engine tuning for the level at index,
// with lava speeds scaled by the difficulty manager.
func (c JumperConfig) PhysicsForLevel(dm *DifficultyManager, index int) core.Physics {
	p := c.EnginePhysics()
	if dm != nil {
		p.BounceSpeed = dm.LavaSpeed(p.BounceSpeed, index)
		p.DripSpeed = dm.LavaSpeed(p.DripSpeed, index)
	}
	return p
}

// MaxFrame returns the longest wall-clock gap the driver simulates at once.
func (t JumperTiming) MaxFrame() time.Duration {
	return time.Duration(t.MaxFrameMs) * time.Millisecond
}

// LossPause returns the intermission before restarting a lost level.
func (t JumperTiming) LossPause() time.Duration {
	return time.Duration(t.LossPauseMs) * time.Millisecond
}

// WinPause returns the intermission before advancing after a win.
func (t JumperTiming) WinPause() time.Duration {
	return time.Duration(t.WinPauseMs) * time.Millisecond
}

// Hold returns the key hold window.
func (i JumperInput) Hold() time.Duration {
	return time.Duration(i.HoldMs) * time.Millisecond
}
