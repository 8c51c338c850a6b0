package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hollowoak/manor-engine/pkg/world"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <world.json>\n", os.Args[0])
		os.Exit(1)
	}

	filename := os.Args[1]
	validator := &WorldValidator{}

	if err := validator.validateFile(filename); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("World file is valid!")
}

type WorldValidator struct {
	errors []string
}

func (v *WorldValidator) validateFile(filename string) error {
	fmt.Printf("Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	if !strings.HasSuffix(baseName, ".json") {
		return fmt.Errorf("world file must have .json extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, ".json")
	if !isValidID(nameWithoutExt) {
		return fmt.Errorf("world filename '%s' must be lowercase snake_case (e.g., my_world.json, not my-world.json or MyWorld.json)", baseName)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	v.errors = nil

	if !json.Valid(data) {
		return fmt.Errorf("file %s contains invalid JSON", filename)
	}

	// Strict decode catches typo'd field names the loader would
	// silently drop.
	var strict world.World
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&strict); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", filename, err)
	}

	w, err := world.Parse(data)
	if err != nil {
		return fmt.Errorf("file %s: %w", filename, err)
	}

	v.validateWorld(w)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", filename, strings.Join(v.errors, "\n"))
	}

	fmt.Printf("  %d rooms, %d objects, %d foes\n", len(w.Rooms), len(w.Objects), len(w.Foes))
	return nil
}

// validateWorld enforces naming conventions on top of the semantic
// checks world.Parse already ran.
func (v *WorldValidator) validateWorld(w *world.World) {
	v.validateIDFormat("start_room", w.StartRoom)
	v.validateIDFormat("trophy_key", w.TrophyKey)
	v.validateIDFormat("lamp_key", w.LampKey)

	for roomKey, room := range w.Rooms {
		v.validateIDFormat("room key", roomKey)
		for dir := range room.Exits {
			v.validateIDFormat(fmt.Sprintf("exit direction in room %s", roomKey), dir)
		}
		for dir, gate := range room.Gates {
			v.validateIDFormat(fmt.Sprintf("gate flag for %s in room %s", dir, roomKey), gate.Flag)
		}
	}

	for objKey, obj := range w.Objects {
		v.validateIDFormat("object key", objKey)
		for i, interaction := range obj.Interactions {
			if interaction.RequiresFlag != "" {
				v.validateIDFormat(fmt.Sprintf("requires_flag in object %s interaction %s", objKey, i), interaction.RequiresFlag)
			}
			for flag := range interaction.SetsFlags {
				v.validateIDFormat(fmt.Sprintf("sets_flags in object %s interaction %s", objKey, i), flag)
			}
		}
		if obj.KeyFlag != "" {
			v.validateIDFormat(fmt.Sprintf("key_flag in object %s", objKey), obj.KeyFlag)
		}
	}

	for foeKey, foe := range w.Foes {
		v.validateIDFormat("foe key", foeKey)
		if foe.DefeatFlag != "" {
			v.validateIDFormat(fmt.Sprintf("defeat_flag in foe %s", foeKey), foe.DefeatFlag)
		}
	}
}

func (v *WorldValidator) validateIDFormat(fieldName, id string) {
	if id == "" {
		return
	}

	if !isValidID(id) {
		v.addError(fmt.Sprintf("%s '%s' should be lowercase snake_case", fieldName, id))
	}
}

func (v *WorldValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

var validIDRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidID(id string) bool {
	return validIDRegex.MatchString(id)
}
