package world

import (
	"fmt"
	"strings"
)

// ObjectKind classifies how an object participates in the world.
type ObjectKind string

const (
	KindItem      ObjectKind = "item"
	KindContainer ObjectKind = "container"
	KindScenery   ObjectKind = "scenery"
	KindNPC       ObjectKind = "npc"
)

// ExitGate blocks an exit until a flag holds the required value.
type ExitGate struct {
	Flag           string `json:"flag"`                      // Flag name checked in game state
	Value          bool   `json:"value"`                     // Required boolean value
	BlockedMessage string `json:"blocked_message,omitempty"` // Shown when the gate holds
}

// Room is a single location in the manor.
type Room struct {
	Key               string              `json:"key"`
	Name              string              `json:"name"`
	Description       string              `json:"description"`
	SpookyDescription string              `json:"spooky_description,omitempty"` // Variant shown at low sanity or under the blood moon
	Exits             map[string]string   `json:"exits,omitempty"`              // Direction → room key
	Gates             map[string]ExitGate `json:"gates,omitempty"`              // Direction → gate, for gated exits
	Items             []string            `json:"items,omitempty"`              // Object keys present at world start
	IsSafe            bool                `json:"safe,omitempty"`               // Restores sanity each turn spent here
	IsHazardous       bool                `json:"hazardous,omitempty"`          // Drains sanity on entry
	HazardDrain       int                 `json:"hazard_drain,omitempty"`       // Sanity lost on entering a hazardous room
	IsDark            bool                `json:"dark,omitempty"`               // Unreadable without an active light source
}

// Interaction describes what happens when a verb is used on an object.
type Interaction struct {
	RequiresFlag   string         `json:"requires_flag,omitempty"` // Flag that must be true first
	FailMessage    string         `json:"fail_message,omitempty"`  // Shown when the precondition fails
	Response       string         `json:"response"`
	SpookyResponse string         `json:"spooky_response,omitempty"`
	SetsFlags      map[string]bool `json:"sets_flags,omitempty"`
	SanityDelta    int            `json:"sanity_delta,omitempty"`
	ScoreDelta     int            `json:"score_delta,omitempty"`
	RevealsItems   []string       `json:"reveals_items,omitempty"` // Object keys added to the room
	Once           bool           `json:"once,omitempty"`          // Interaction fires only the first time
}

// Object is a thing in the world: an item, container, scenery, or NPC.
type Object struct {
	Key          string                 `json:"key"`
	Name         string                 `json:"name"`
	AltNames     []string               `json:"alt_names,omitempty"`
	Kind         ObjectKind             `json:"kind"`
	Takeable     bool                   `json:"takeable,omitempty"`
	Treasure     bool                   `json:"treasure,omitempty"`
	Value        int                    `json:"value,omitempty"`       // Score awarded when a treasure is cased
	Size         int                    `json:"size,omitempty"`        // Defaults to 1 at load time
	Capacity     int                    `json:"capacity,omitempty"`    // 0 means not a container
	Contains     []string               `json:"contains,omitempty"`    // Contents at world start
	AlwaysOpen   bool                   `json:"always_open,omitempty"` // Open surfaces like tables
	Lockable     bool                   `json:"lockable,omitempty"`
	OpensWith    string                 `json:"opens_with,omitempty"` // Object key that unlocks this
	KeyFlag      string                 `json:"key_flag,omitempty"`   // Flag set true on unlock, usable by exit gates
	Power        int                    `json:"power,omitempty"`      // Damage dealt when used as a weapon
	Against      []string               `json:"against,omitempty"`    // Foe keys this weapon harms
	Description  string                 `json:"description,omitempty"`
	Interactions map[string]Interaction `json:"interactions,omitempty"` // Canonical verb → interaction
}

// IsContainer reports whether the object can hold other objects.
func (o *Object) IsContainer() bool {
	return o.Capacity > 0
}

// Matches reports whether a player-typed word refers to this object.
func (o *Object) Matches(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	if strings.ToLower(o.Name) == word || o.Key == word {
		return true
	}
	for _, alt := range o.AltNames {
		if strings.ToLower(alt) == word {
			return true
		}
	}
	return false
}

// Foe is a hostile presence that can be fought.
type Foe struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Room        string   `json:"room"`
	HP          int      `json:"hp"`
	AC          int      `json:"ac"`
	Description string   `json:"description,omitempty"`
	DefeatFlag  string   `json:"defeat_flag,omitempty"` // Set true when the foe falls
	Reveals     []string `json:"reveals,omitempty"`     // Items dropped into the room on defeat
}

// World is the static catalog of rooms, objects, and foes. It is
// read-only after Load and safe to share across sessions.
type World struct {
	Name         string            `json:"name"`
	StartRoom    string            `json:"start_room"`
	TrophyKey    string            `json:"trophy_key"`    // Container that scores treasures
	VictoryScore int               `json:"victory_score"` // Score at which the session is won
	LampKey      string            `json:"lamp_key,omitempty"`
	LampFuel     int               `json:"lamp_fuel,omitempty"` // Starting fuel for the light source
	Rooms        map[string]*Room  `json:"rooms"`
	Objects      map[string]*Object `json:"objects"`
	Foes         map[string]*Foe   `json:"foes,omitempty"`
}

// GetRoom looks up a room by key.
func (w *World) GetRoom(key string) (*Room, bool) {
	r, ok := w.Rooms[key]
	return r, ok
}

// GetObject looks up an object by key.
func (w *World) GetObject(key string) (*Object, bool) {
	o, ok := w.Objects[key]
	return o, ok
}

// FindObject resolves a player-typed name to an object key, searching
// the given candidate keys in order.
func (w *World) FindObject(word string, candidates []string) (string, bool) {
	for _, key := range candidates {
		if obj, ok := w.Objects[key]; ok && obj.Matches(word) {
			return key, true
		}
	}
	return "", false
}

// Validate checks catalog integrity. It is called by Load and returns
// the first problem found, so a World is never partially usable.
func (w *World) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("world has no name")
	}
	if _, ok := w.Rooms[w.StartRoom]; !ok {
		return fmt.Errorf("start room %q not found", w.StartRoom)
	}
	if w.TrophyKey != "" {
		trophy, ok := w.Objects[w.TrophyKey]
		if !ok {
			return fmt.Errorf("trophy container %q not found", w.TrophyKey)
		}
		if !trophy.IsContainer() {
			return fmt.Errorf("trophy object %q has no capacity", w.TrophyKey)
		}
	}
	if w.LampKey != "" {
		if _, ok := w.Objects[w.LampKey]; !ok {
			return fmt.Errorf("lamp object %q not found", w.LampKey)
		}
	}

	// Each object must live in exactly one place: a room, a container,
	// or nowhere (revealed later or carried by a foe).
	owners := make(map[string]string)
	claim := func(objKey, owner string) error {
		if obj, ok := w.Objects[objKey]; !ok {
			return fmt.Errorf("%s references unknown object %q", owner, objKey)
		} else if obj.Kind == "" {
			return fmt.Errorf("object %q has no kind", objKey)
		}
		if prev, taken := owners[objKey]; taken {
			return fmt.Errorf("object %q placed in both %s and %s", objKey, prev, owner)
		}
		owners[objKey] = owner
		return nil
	}

	for key, room := range w.Rooms {
		if room.Key != "" && room.Key != key {
			return fmt.Errorf("room %q declares mismatched key %q", key, room.Key)
		}
		for dir, dest := range room.Exits {
			if _, ok := w.Rooms[dest]; !ok {
				return fmt.Errorf("room %q exit %q leads to unknown room %q", key, dir, dest)
			}
		}
		for dir := range room.Gates {
			if _, ok := room.Exits[dir]; !ok {
				return fmt.Errorf("room %q gates direction %q with no exit", key, dir)
			}
		}
		if room.IsHazardous && room.HazardDrain <= 0 {
			return fmt.Errorf("hazardous room %q has no hazard_drain", key)
		}
		for _, item := range room.Items {
			if err := claim(item, "room "+key); err != nil {
				return err
			}
		}
	}

	for key, obj := range w.Objects {
		if obj.Key != "" && obj.Key != key {
			return fmt.Errorf("object %q declares mismatched key %q", key, obj.Key)
		}
		if obj.Capacity < 0 {
			return fmt.Errorf("object %q has negative capacity", key)
		}
		if obj.Size < 0 {
			return fmt.Errorf("object %q has negative size", key)
		}
		if len(obj.Contains) > 0 && !obj.IsContainer() && !obj.AlwaysOpen {
			return fmt.Errorf("object %q has contents but no capacity", key)
		}
		if obj.OpensWith != "" {
			if _, ok := w.Objects[obj.OpensWith]; !ok {
				return fmt.Errorf("object %q opens with unknown object %q", key, obj.OpensWith)
			}
		}
		for _, inner := range obj.Contains {
			if inner == key {
				return fmt.Errorf("object %q contains itself", key)
			}
			if err := claim(inner, "container "+key); err != nil {
				return err
			}
		}
		if obj.Capacity > 0 {
			load := 0
			for _, inner := range obj.Contains {
				if in, ok := w.Objects[inner]; ok {
					load += in.Size
				}
			}
			if load > obj.Capacity {
				return fmt.Errorf("object %q starts overfull: contents size %d exceeds capacity %d",
					key, load, obj.Capacity)
			}
		}
	}

	// Containment must be acyclic beyond the direct self-check above.
	for key := range w.Objects {
		if err := w.checkContainmentCycle(key, key, 0); err != nil {
			return err
		}
	}

	for key, foe := range w.Foes {
		if _, ok := w.Rooms[foe.Room]; !ok {
			return fmt.Errorf("foe %q haunts unknown room %q", key, foe.Room)
		}
		if foe.HP <= 0 {
			return fmt.Errorf("foe %q has no hit points", key)
		}
		for _, item := range foe.Reveals {
			if err := claim(item, "foe "+key); err != nil {
				return err
			}
		}
	}

	return nil
}

func (w *World) checkContainmentCycle(origin, current string, depth int) error {
	if depth > len(w.Objects) {
		return fmt.Errorf("containment cycle involving object %q", origin)
	}
	obj, ok := w.Objects[current]
	if !ok {
		return nil
	}
	for _, inner := range obj.Contains {
		if inner == origin {
			return fmt.Errorf("object %q transitively contains itself", origin)
		}
		if err := w.checkContainmentCycle(origin, inner, depth+1); err != nil {
			return err
		}
	}
	return nil
}
