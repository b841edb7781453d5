// Package formats provides pluggable level pack file format parsers.
package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLPack represents the YAML structure for a pack file.
type YAMLPack struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title,omitempty"`
	Levels []YAMLLevel `yaml:"levels"`
}

// YAMLLevel is one level of a pack file. Rows are the plan, top to bottom.
type YAMLLevel struct {
	Name string   `yaml:"name,omitempty"`
	Rows []string `yaml:"rows"`
}

// Level represents a parsed level ready for validation.
type Level struct {
	Name string
	Rows []string
}

// Pack represents a parsed pack.
type Pack struct {
	ID     string
	Title  string
	Levels []Level
}

// ParseYAML parses a YAML pack file.
// Missing titles and level names are filled in; plans are not validated here.
func ParseYAML(data []byte) (Pack, error) {
	var yp YAMLPack
	if err := yaml.Unmarshal(data, &yp); err != nil {
		return Pack{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	id := strings.TrimSpace(yp.ID)
	if id == "" {
		return Pack{}, fmt.Errorf("pack has no id")
	}
	if len(yp.Levels) == 0 {
		return Pack{}, fmt.Errorf("pack %s has no levels", id)
	}

	pack := Pack{
		ID:     id,
		Title:  yp.Title,
		Levels: make([]Level, 0, len(yp.Levels)),
	}
	if pack.Title == "" {
		pack.Title = id
	}

	for i, yl := range yp.Levels {
		name := yl.Name
		if name == "" {
			name = fmt.Sprintf("Level %d", i+1)
		}
		pack.Levels = append(pack.Levels, Level{Name: name, Rows: yl.Rows})
	}

	return pack, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
