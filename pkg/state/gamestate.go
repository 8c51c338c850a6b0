package state

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/hollowoak/manor-engine/pkg/world"
)

// Sanity meter bounds. Every mutation clamps into this range.
const (
	SanityMin = 0
	SanityMax = 100
)

// GameState is the complete mutable record of one play session. It is
// owned by the caller (the session store) and mutated only by the
// engine; the engine never creates a second copy behind the caller's
// back.
type GameState struct {
	ID        uuid.UUID `json:"id"`
	World     string    `json:"world"` // Catalog name this session plays
	Room      string    `json:"room"`
	Inventory []string  `json:"inventory"`

	// Runtime containment. Rooms and containers start from the catalog
	// and diverge as the player moves things around. An object key is in
	// exactly one of: Inventory, one RoomItems entry, or one
	// ContainerContents entry. Collections marshal even when empty so a
	// serialize/deserialize round trip reproduces every field exactly.
	RoomItems         map[string][]string `json:"room_items"`
	ContainerContents map[string][]string `json:"container_contents"`
	OpenContainers    map[string]bool     `json:"open_containers"`

	Flags   map[string]Flag `json:"flags"`
	Visited map[string]bool `json:"visited"`
	Turns   int             `json:"turns"`

	Sanity   int  `json:"sanity"`
	LampFuel int  `json:"lamp_fuel"`
	LampLit  bool `json:"lamp_lit,omitempty"`

	Score           int             `json:"score"`
	Won             bool            `json:"won,omitempty"`
	ScoredTreasures map[string]bool `json:"scored_treasures"`

	// Remaining hit points per foe. A defeated foe is recorded at zero.
	FoeHP map[string]int `json:"foe_hp"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGameState starts a fresh session against a world catalog: full
// sanity, zero score, lamp fueled, containment copied from the catalog.
func NewGameState(w *world.World) *GameState {
	gs := &GameState{
		ID:                uuid.New(),
		World:             w.Name,
		Room:              w.StartRoom,
		Inventory:         make([]string, 0),
		RoomItems:         make(map[string][]string),
		ContainerContents: make(map[string][]string),
		OpenContainers:    make(map[string]bool),
		Flags:             make(map[string]Flag),
		Visited:           map[string]bool{w.StartRoom: true},
		Sanity:            SanityMax,
		LampFuel:          w.LampFuel,
		ScoredTreasures:   make(map[string]bool),
		FoeHP:             make(map[string]int),
		CreatedAt:         time.Now().UTC(),
		UpdatedAt:         time.Now().UTC(),
	}
	for key, room := range w.Rooms {
		if len(room.Items) > 0 {
			gs.RoomItems[key] = slices.Clone(room.Items)
		}
	}
	for key, obj := range w.Objects {
		if len(obj.Contains) > 0 {
			gs.ContainerContents[key] = slices.Clone(obj.Contains)
		}
		if obj.AlwaysOpen {
			gs.OpenContainers[key] = true
		}
	}
	for key, foe := range w.Foes {
		gs.FoeHP[key] = foe.HP
	}
	return gs
}

// GetFlag returns the flag, or a false boolean flag when unset.
func (gs *GameState) GetFlag(name string) Flag {
	if f, ok := gs.Flags[name]; ok {
		return f
	}
	return BoolFlag(false)
}

// FlagIsTrue reports whether a boolean flag is set and true.
func (gs *GameState) FlagIsTrue(name string) bool {
	f, ok := gs.Flags[name]
	return ok && f.Kind == FlagBool && f.Bool
}

// SetFlag stores a flag value.
func (gs *GameState) SetFlag(name string, f Flag) {
	if gs.Flags == nil {
		gs.Flags = make(map[string]Flag)
	}
	gs.Flags[name] = f
}

// HasItem reports whether an object is in the player's inventory.
func (gs *GameState) HasItem(key string) bool {
	return slices.Contains(gs.Inventory, key)
}

// AddItem appends an object to the inventory if not already carried.
func (gs *GameState) AddItem(key string) {
	if !gs.HasItem(key) {
		gs.Inventory = append(gs.Inventory, key)
	}
}

// RemoveItem drops an object from the inventory. Reports whether the
// object was present.
func (gs *GameState) RemoveItem(key string) bool {
	for i, item := range gs.Inventory {
		if item == key {
			gs.Inventory = append(gs.Inventory[:i], gs.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// ItemsInRoom returns the objects currently lying in a room.
func (gs *GameState) ItemsInRoom(roomKey string) []string {
	return gs.RoomItems[roomKey]
}

// RemoveFromRoom takes an object out of a room. Reports whether it was
// there.
func (gs *GameState) RemoveFromRoom(roomKey, objKey string) bool {
	items := gs.RoomItems[roomKey]
	for i, item := range items {
		if item == objKey {
			gs.RoomItems[roomKey] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// AddToRoom places an object into a room.
func (gs *GameState) AddToRoom(roomKey, objKey string) {
	if gs.RoomItems == nil {
		gs.RoomItems = make(map[string][]string)
	}
	if !slices.Contains(gs.RoomItems[roomKey], objKey) {
		gs.RoomItems[roomKey] = append(gs.RoomItems[roomKey], objKey)
	}
}

// Contents returns the current contents of a container.
func (gs *GameState) Contents(containerKey string) []string {
	return gs.ContainerContents[containerKey]
}

// RemoveFromContainer pulls an object out of a container. Reports
// whether it was inside.
func (gs *GameState) RemoveFromContainer(containerKey, objKey string) bool {
	items := gs.ContainerContents[containerKey]
	for i, item := range items {
		if item == objKey {
			gs.ContainerContents[containerKey] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// AddToContainer places an object into a container. Capacity checks are
// the engine's responsibility; this is pure bookkeeping.
func (gs *GameState) AddToContainer(containerKey, objKey string) {
	if gs.ContainerContents == nil {
		gs.ContainerContents = make(map[string][]string)
	}
	if !slices.Contains(gs.ContainerContents[containerKey], objKey) {
		gs.ContainerContents[containerKey] = append(gs.ContainerContents[containerKey], objKey)
	}
}

// IsOpen reports whether a container is currently open.
func (gs *GameState) IsOpen(containerKey string) bool {
	return gs.OpenContainers[containerKey]
}

// SetOpen records a container's open state.
func (gs *GameState) SetOpen(containerKey string, open bool) {
	if gs.OpenContainers == nil {
		gs.OpenContainers = make(map[string]bool)
	}
	gs.OpenContainers[containerKey] = open
}

// MarkVisited records that the player has seen a room.
func (gs *GameState) MarkVisited(roomKey string) {
	if gs.Visited == nil {
		gs.Visited = make(map[string]bool)
	}
	gs.Visited[roomKey] = true
}

// Clone deep-copies the state. The engine stages mutations on a clone so
// a failed precondition never leaves a half-applied delta behind.
func (gs *GameState) Clone() *GameState {
	cp := *gs
	cp.Inventory = slices.Clone(gs.Inventory)
	cp.RoomItems = cloneListMap(gs.RoomItems)
	cp.ContainerContents = cloneListMap(gs.ContainerContents)
	cp.OpenContainers = cloneBoolMap(gs.OpenContainers)
	cp.Visited = cloneBoolMap(gs.Visited)
	cp.ScoredTreasures = cloneBoolMap(gs.ScoredTreasures)
	if gs.Flags != nil {
		cp.Flags = make(map[string]Flag, len(gs.Flags))
		for k, v := range gs.Flags {
			cp.Flags[k] = v
		}
	}
	if gs.FoeHP != nil {
		cp.FoeHP = make(map[string]int, len(gs.FoeHP))
		for k, v := range gs.FoeHP {
			cp.FoeHP[k] = v
		}
	}
	return &cp
}

func cloneListMap(m map[string][]string) map[string][]string {
	if m == nil {
		return nil
	}
	cp := make(map[string][]string, len(m))
	for k, v := range m {
		cp[k] = slices.Clone(v)
	}
	return cp
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
