// Package config loads the optional keyboard layout file: a YAML document
// describing the positional key label table and layer display names for
// boards whose layout differs from the built-in defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout customizes decoding and display for a specific board.
type Layout struct {
	// PositionLabels replaces the built-in position→label table used by
	// the positional key event form. Order follows physical key position.
	PositionLabels []string `yaml:"positionLabels"`
	// LayerNames maps layer indices to display names. Empty entries fall
	// back to the synthesized "LAYER N" text.
	LayerNames []string `yaml:"layerNames"`
}

// LoadLayout reads and parses a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout file: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	return &l, nil
}

// LayerName returns the configured name for a layer index, or "" when the
// index has no entry.
func (l *Layout) LayerName(index int) string {
	if l == nil || index < 0 || index >= len(l.LayerNames) {
		return ""
	}
	return l.LayerNames[index]
}
