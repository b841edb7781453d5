package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJumper loads the platformer configuration.
// Search order: customPath -> ~/.jumper/configs/jumper.yaml -> ./configs/jumper.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadJumper(customPath string) (JumperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultJumperConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseJumper(data)
		if err != nil {
			return DefaultJumperConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("jumper.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseJumper(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "jumper.yaml")); err == nil {
		if cfg, err := parseJumper(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseJumper(defaultJumperYAML)
	if err != nil {
		return DefaultJumperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseJumper(data []byte) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c JumperConfig) Validate() error {
	switch {
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("physics.max_step must be positive, got %v", c.Physics.MaxStep)
	case c.Physics.FinishDelay < 0:
		return fmt.Errorf("physics.finish_delay must not be negative, got %v", c.Physics.FinishDelay)
	case c.Timing.MaxFrameMs <= 0:
		return fmt.Errorf("timing.max_frame_ms must be positive, got %d", c.Timing.MaxFrameMs)
	case c.Timing.LossPauseMs < 0 || c.Timing.WinPauseMs < 0:
		return fmt.Errorf("timing pauses must not be negative")
	case c.Input.HoldMs <= 0:
		return fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMs)
	case c.Render.Scale < 1:
		return fmt.Errorf("render.scale must be at least 1, got %d", c.Render.Scale)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".jumper", "configs", filename)
}

// ApplyJumperPreset modifies the config based on a difficulty preset.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Lava.BounceSpeed *= 0.75
		cfg.Lava.DripSpeed *= 0.75
		cfg.Physics.FinishDelay = 1.5
	case DifficultyHard:
		cfg.Lava.BounceSpeed *= 1.25
		cfg.Lava.DripSpeed *= 1.25
		cfg.Physics.Gravity *= 1.1
	}
}
