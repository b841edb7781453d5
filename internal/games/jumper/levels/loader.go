// Package levels provides the built-in level packs and loads extra packs
// from disk. This package depends on the engine but the engine does not
// depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/core"
	"github.com/vovakirdan/pixel-jumper/internal/games/jumper/levels/formats"
	"github.com/vovakirdan/pixel-jumper/internal/registry"
)

// Loader handles loading packs from a directory.
type Loader struct {
	Root string

	// Skipped records the files the last LoadAll could not use.
	Skipped []error
}

// NewLoader creates a new pack loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all pack files.
// Invalid files are skipped and listed in Skipped.
// Returns packs sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]registry.Pack, error) {
	var packs []registry.Pack
	l.Skipped = nil

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		pack, err := l.LoadFile(path)
		if err != nil {
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		packs = append(packs, pack)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(packs, func(i, j int) bool {
		return packs[i].ID < packs[j].ID
	})

	return packs, nil
}

// LoadFile loads and validates a single pack file.
func (l *Loader) LoadFile(path string) (registry.Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	pack := registry.Pack{
		ID:     parsed.ID,
		Title:  parsed.Title,
		Levels: make([]registry.Level, 0, len(parsed.Levels)),
	}
	for i, lvl := range parsed.Levels {
		if err := core.ValidatePlan(core.Plan(lvl.Rows)); err != nil {
			return registry.Pack{}, fmt.Errorf("%s: level %d (%s): %w", path, i+1, lvl.Name, err)
		}
		pack.Levels = append(pack.Levels, registry.Level{Name: lvl.Name, Plan: lvl.Rows})
	}

	return pack, nil
}

// RegisterAll loads every pack under Root and adds it to the registry.
// Packs whose ID is already taken are skipped and listed in Skipped.
// Returns the IDs that were registered.
func (l *Loader) RegisterAll() ([]string, error) {
	packs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, p := range packs {
		if err := registry.RegisterPack(p); err != nil {
			l.Skipped = append(l.Skipped, err)
			continue
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Pack, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Pack{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
