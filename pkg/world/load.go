package world

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a world catalog from a JSON file, fills in defaults, and
// validates it. A World is never returned partially populated: any
// problem in the source data fails the whole load.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read world file: %w", err)
	}
	return Parse(data)
}

// Parse builds a World from raw JSON. Used by Load and by tests.
func Parse(data []byte) (*World, error) {
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal world: %w", err)
	}

	// Keys double as map keys; backfill so callers can rely on them.
	for key, room := range w.Rooms {
		if room.Key == "" {
			room.Key = key
		}
	}
	for key, obj := range w.Objects {
		if obj.Key == "" {
			obj.Key = key
		}
		if obj.Size == 0 {
			obj.Size = 1
		}
	}
	for key, foe := range w.Foes {
		if foe.Key == "" {
			foe.Key = key
		}
	}

	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid world %q: %w", w.Name, err)
	}
	return &w, nil
}
