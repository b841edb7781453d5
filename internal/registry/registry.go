// Package registry provides a global registry of level packs.
// Packs register themselves in init() functions, allowing the platform
// to discover and load campaigns without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Level is one named plan inside a pack.
// Plan rows use the jumper plan symbols and must all have the same length.
type Level struct {
	Name string
	Plan []string
}

// Pack is an ordered campaign of levels.
type Pack struct {
	ID     string
	Title  string
	Levels []Level
}

// PackInfo contains metadata about a registered pack.
type PackInfo struct {
	ID     string
	Title  string
	Levels int
}

// Factory builds a fresh copy of a pack.
type Factory func() Pack

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]PackInfo)
	mu        sync.RWMutex
)

// Register adds a pack factory to the registry.
// Typically called from an init() function.
// Panics if a pack with the same ID is already registered.
func Register(id string, f Factory) {
	if err := add(id, f); err != nil {
		panic(err.Error())
	}
}

// RegisterPack adds an already loaded pack, e.g. one read from disk.
// Unlike Register it reports duplicates as an error.
func RegisterPack(p Pack) error {
	if p.ID == "" {
		return fmt.Errorf("registry: pack has no id")
	}
	return add(p.ID, func() Pack { return clonePack(p) })
}

func add(id string, f Factory) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		return fmt.Errorf("registry: pack %q already registered", id)
	}

	p := f()
	factories[id] = f
	infos[id] = PackInfo{ID: id, Title: p.Title, Levels: len(p.Levels)}
	return nil
}

// List returns information about all registered packs, sorted by ID.
func List() []PackInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PackInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create builds a pack by its ID.
// Returns an error if the pack ID is not registered.
func Create(id string) (Pack, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return Pack{}, fmt.Errorf("registry: unknown pack %q", id)
	}

	return f(), nil
}

// Exists checks if a pack with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Unregister removes a pack. It reports whether the pack was present.
func Unregister(id string) bool {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := factories[id]; !ok {
		return false
	}
	delete(factories, id)
	delete(infos, id)
	return true
}

func clonePack(p Pack) Pack {
	levels := make([]Level, len(p.Levels))
	for i, l := range p.Levels {
		levels[i] = Level{Name: l.Name, Plan: append([]string(nil), l.Plan...)}
	}
	return Pack{ID: p.ID, Title: p.Title, Levels: levels}
}
