package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default platformer configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: JumperPhysics{
			PlayerSpeed: 10,
			Gravity:     30,
			JumpSpeed:   17,
			WobbleSpeed: 8,
			WobbleDist:  0.07,
			MaxStep:     0.05,
			FinishDelay: 1,
		},
		Lava: JumperLava{
			BounceSpeed: 2,
			DripSpeed:   3,
		},
		Timing: JumperTiming{
			MaxFrameMs:  100,
			LossPauseMs: 500,
			WinPauseMs:  1000,
		},
		Input: JumperInput{
			HoldMs: 150,
		},
		Render: JumperRender{
			Scale: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 6,
			},
			Scaling: ScalingConfig{
				LavaSpeedMultiplier: 1.0,
			},
		},
	}
}
