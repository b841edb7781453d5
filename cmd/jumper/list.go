package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all level packs",
	Long:  `Shows every registered level pack: the built-in ones and those loaded with --levels.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No level packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Levels, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'jumper play <id>' to play a pack.")
}
