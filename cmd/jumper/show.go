package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	platformcore "github.com/vovakirdan/pixel-jumper/internal/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

var flagAfter time.Duration

var showCmd = &cobra.Command{
	Use:   "show <pack> <level>",
	Short: "Print a level as text",
	Long: `Print a level in its plan notation. With --after, the level is first
simulated with no input for the given time, so moving lava and the falling
player appear where they end up.

Examples:
  jumper show classic 1
  jumper show classic 3 --after 2s`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	showCmd.Flags().DurationVar(&flagAfter, "after", 0, "Simulate this much idle time before printing")
}

func runShow(_ *cobra.Command, args []string) error {
	pack, err := registry.Create(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(pack.Levels) {
		return fmt.Errorf("level must be a number from 1 to %d", len(pack.Levels))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lvl := pack.Levels[n-1]
	level, err := core.NewLevel(core.Plan(lvl.Plan), core.Options{Physics: cfg.EnginePhysics(), Seed: flagSeed})
	if err != nil {
		return fmt.Errorf("%s level %d: %w", pack.ID, n, err)
	}

	var status core.Status
	const frame = 0.05
	for t := 0.0; t < flagAfter.Seconds(); t += frame {
		status = level.Animate(frame, platformcore.Keys{}).Status
	}

	fmt.Printf("%s - %d. %s (%dx%d)\n\n", pack.Title, n, lvl.Name, level.Width(), level.Height())
	fmt.Println(core.RenderASCII(level.Snapshot()))
	if flagAfter > 0 {
		fmt.Printf("\nAfter %s: %s\n", flagAfter, status)
	}
	return nil
}
