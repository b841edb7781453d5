package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/levels"
	"github.com/vovakirdan/pixel-jumper/internal/platform/tui"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

var flagStartLevel int

var playCmd = &cobra.Command{
	Use:   "play [pack]",
	Short: "Play a level pack",
	Long: `Start playing the given level pack, or the classic pack if none is named.

Controls:
  Left/Right, A/D, H/L  - Run
  Up, W, Space          - Jump
  P                     - Pause
  R                     - Restart the level (counts as a death)
  Esc/B                 - Leave
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower lava, longer pause after finishing a level
  normal - Default tuning
  hard   - Faster lava, heavier gravity
  fixed  - No lava speed ramp across levels

Examples:
  jumper play
  jumper play classic --level 4
  jumper play classic --difficulty hard
  jumper play mypack --levels ./packs`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartLevel, "level", 1, "Level to start at (1-based)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	packID := levels.ClassicID
	if len(args) > 0 {
		packID = args[0]
	}

	pack, err := registry.Create(packID)
	if err != nil {
		return fmt.Errorf("%w (run 'jumper list' to see available packs)", err)
	}
	if flagStartLevel < 1 || flagStartLevel > len(pack.Levels) {
		return fmt.Errorf("level %d out of range: %s has %d levels", flagStartLevel, pack.ID, len(pack.Levels))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "jumper")
	if err != nil {
		return err
	}
	defer closeLog()

	rt := runtimeConfig()
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := jumper.NewGame(pack, cfg, jumper.Options{StartLevel: flagStartLevel - 1, Seed: seed})
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("pack started", "pack", pack.ID, "level", flagStartLevel)
	result, err := tui.Run(game, store, rt, tui.ModelOptions{
		Player: playerName(),
		Hold:   cfg.Input.Hold(),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	printStats(pack, result.Stats)
	return nil
}

// printStats summarizes a finished local game.
func printStats(pack registry.Pack, s jumper.Stats) {
	switch {
	case s.Complete:
		fmt.Printf("%s cleared! %d deaths, %d coins in %s.\n",
			pack.Title, s.Deaths, s.Coins, tui.FormatDuration(s.Elapsed))
	case s.LevelsCleared > 0:
		fmt.Printf("%s: cleared %d/%d levels with %d deaths.\n",
			pack.Title, s.LevelsCleared, s.LevelCount, s.Deaths)
	}
}
