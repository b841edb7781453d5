package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseJumper(defaultJumperYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultJumperConfig() {
		t.Errorf("embedded defaults differ from DefaultJumperConfig:\n%+v\n%+v", cfg, DefaultJumperConfig())
	}
}

func TestDefaultsMatchEnginePhysics(t *testing.T) {
	if got := DefaultJumperConfig().EnginePhysics(); got != core.DefaultPhysics() {
		t.Errorf("EnginePhysics() = %+v, want %+v", got, core.DefaultPhysics())
	}
}

func TestLoadJumperCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	data := "physics:\n  gravity: 20\ninput:\n  hold_ms: 200\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadJumper(path)
	if err != nil {
		t.Fatalf("LoadJumper: %v", err)
	}
	if cfg.Physics.Gravity != 20 {
		t.Errorf("Gravity = %v, want 20", cfg.Physics.Gravity)
	}
	if cfg.Input.Hold() != 200*time.Millisecond {
		t.Errorf("Hold() = %v, want 200ms", cfg.Input.Hold())
	}
	// Keys missing from the file keep their defaults.
	if cfg.Physics.JumpSpeed != 17 {
		t.Errorf("JumpSpeed = %v, want default 17", cfg.Physics.JumpSpeed)
	}
}

func TestLoadJumperErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadJumper(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  max_step: 0\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadJumper(bad); err == nil {
		t.Error("expected an error for max_step 0")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*JumperConfig)
	}{
		{"negative finish delay", func(c *JumperConfig) { c.Physics.FinishDelay = -1 }},
		{"zero frame clamp", func(c *JumperConfig) { c.Timing.MaxFrameMs = 0 }},
		{"negative pause", func(c *JumperConfig) { c.Timing.WinPauseMs = -5 }},
		{"zero hold", func(c *JumperConfig) { c.Input.HoldMs = 0 }},
		{"zero scale", func(c *JumperConfig) { c.Render.Scale = 0 }},
	}

	if err := DefaultJumperConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultJumperConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestApplyJumperPreset(t *testing.T) {
	easy := DefaultJumperConfig()
	ApplyJumperPreset(&easy, DifficultyEasy)
	if !easy.Difficulty.Enabled || easy.Lava.BounceSpeed >= 2 {
		t.Errorf("easy preset should enable ramping and slow lava, got %+v", easy.Lava)
	}

	hard := DefaultJumperConfig()
	ApplyJumperPreset(&hard, DifficultyHard)
	if hard.Difficulty.InitialLevel != 0.7 || hard.Lava.DripSpeed <= 3 {
		t.Errorf("hard preset not applied: %+v", hard)
	}

	fixed := DefaultJumperConfig()
	fixed.Difficulty.Enabled = true
	ApplyJumperPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("fixed preset should disable ramping")
	}
	if fixed.Lava != DefaultJumperConfig().Lava {
		t.Error("fixed preset should not change lava speed")
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		if _, ok := ParsePreset(s); !ok {
			t.Errorf("ParsePreset(%q) should succeed", s)
		}
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty

	dm := NewDifficultyManager(cfg)
	if dm.IsEnabled() {
		t.Fatal("difficulty ramp should be disabled by default")
	}
	if got := dm.LavaSpeed(2, 5); got != 2 {
		t.Errorf("disabled LavaSpeed = %v, want 2", got)
	}

	cfg.Enabled = true
	dm = NewDifficultyManager(cfg)
	tests := []struct {
		index int
		want  float64
	}{
		{0, 2},
		{3, 3},
		{6, 4},
		{20, 4},
	}
	for _, tc := range tests {
		if got := dm.LavaSpeed(2, tc.index); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("LavaSpeed(2, %d) = %v, want %v", tc.index, got, tc.want)
		}
	}

	dm.SetInitialLevel(2)
	if got := dm.Level(0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}

func TestPhysicsForLevel(t *testing.T) {
	cfg := DefaultJumperConfig()
	cfg.Difficulty.Enabled = true
	dm := NewDifficultyManager(cfg.Difficulty)

	p := cfg.PhysicsForLevel(dm, 6)
	if p.BounceSpeed != 4 || p.DripSpeed != 6 {
		t.Errorf("lava speeds = %v/%v, want 4/6", p.BounceSpeed, p.DripSpeed)
	}
	if p.Gravity != cfg.Physics.Gravity {
		t.Error("difficulty should only scale lava")
	}

	if got := cfg.PhysicsForLevel(nil, 6); got != cfg.EnginePhysics() {
		t.Error("nil manager should leave physics unchanged")
	}
}
