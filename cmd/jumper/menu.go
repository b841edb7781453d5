package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper"
	"github.com/vovakirdan/pixel-jumper/internal/platform/tui"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick level packs from a menu",
	Long: `Start jumper in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a pack, Tab for records.
Leaving a game returns you to the menu.

Examples:
  jumper menu
  jumper menu --fps 30
  jumper menu --levels ./packs --difficulty easy`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "jumper")
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	rt := runtimeConfig()
	player := playerName()

	for {
		menuResult, err := tui.RunMenu(store, rt)
		if err != nil {
			return err
		}
		rt = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsRecords {
			goBack, recErr := tui.RunRecords(store, rt.ScreenW, rt.ScreenH)
			if recErr != nil {
				return recErr
			}
			if goBack {
				continue
			}
			return nil
		}

		pack, err := registry.Create(menuResult.PackID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		seed := rt.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game, err := jumper.NewGame(pack, cfg, jumper.Options{Seed: seed})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}

		logger.Info("pack started", "pack", pack.ID)
		result, err := tui.Run(game, store, rt, tui.ModelOptions{
			Player: player,
			Hold:   cfg.Input.Hold(),
			Logger: logger,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !result.BackToMenu {
			printStats(pack, result.Stats)
			return nil
		}
	}
}
