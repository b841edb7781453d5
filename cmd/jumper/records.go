package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-jumper/internal/platform/tui"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
	"github.com/vovakirdan/pixel-jumper/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var recordsCmd = &cobra.Command{
	Use:   "records [pack]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs. Runs that cleared the whole pack rank
first, then the most levels cleared, the fewest deaths and the shortest time.

On a terminal this opens the interactive records screen; with --plain, or
when output is piped, it prints a table.

Examples:
  jumper records
  jumper records classic --plain
  jumper records classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func init() {
	recordsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive screen")
	recordsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Runs to print per pack in plain mode")
	recordsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the stored runs of the pack")
}

func runRecords(_ *cobra.Command, args []string) error {
	var packIDs []string
	if len(args) > 0 {
		if !registry.Exists(args[0]) {
			return fmt.Errorf("unknown pack %q (run 'jumper list' to see available packs)", args[0])
		}
		packIDs = []string{args[0]}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if len(packIDs) == 0 {
			return errors.New("--clear needs a pack")
		}
		if err := store.ClearRuns(packIDs[0]); err != nil {
			return err
		}
		fmt.Printf("Cleared runs of %s.\n", packIDs[0])
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		rt := runtimeConfig()
		_, err := tui.RunRecords(store, rt.ScreenW, rt.ScreenH)
		return err
	}

	if len(packIDs) == 0 {
		for _, p := range registry.List() {
			packIDs = append(packIDs, p.ID)
		}
	}
	for i, id := range packIDs {
		if i > 0 {
			fmt.Println()
		}
		if err := printRecords(store, id); err != nil {
			return err
		}
	}
	return nil
}

// printRecords writes the best runs of one pack as a text table.
func printRecords(store *storage.Store, packID string) error {
	runs, err := store.TopRuns(packID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	title := packID
	if pack, err := registry.Create(packID); err == nil {
		title = pack.Title
	}
	fmt.Printf("Records - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Printf("Play 'jumper play %s' and clear a level to set one!\n", packID)
		return nil
	}

	rows := tui.RecordRows(runs)
	cols := tui.RecordColumns()

	for i, c := range cols {
		if i > 0 {
			fmt.Print("  ")
		}
		fmt.Printf("%-*s", c.Width, c.Title)
	}
	fmt.Println()
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Print("  ")
			}
			fmt.Printf("%-*s", cols[i].Width, cell)
		}
		fmt.Println()
	}

	if stats, err := store.GetPackStats(packID); err == nil && stats.Runs > 0 {
		fmt.Printf("\n%d runs, %d cleared", stats.Runs, stats.Completions)
		if stats.BestDeaths >= 0 {
			fmt.Printf(", fewest deaths %d", stats.BestDeaths)
		}
		fmt.Println()
	}
	return nil
}
