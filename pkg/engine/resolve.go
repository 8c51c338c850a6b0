package engine

import (
	"fmt"
	"strings"

	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/narrator"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// holder identifies where an object currently lives.
type holder struct {
	kind string // "room", "inventory", "container"
	key  string // Room key or container key; empty for inventory
}

// visibleCandidates lists every object key the player could refer to:
// the inventory, the current room's items (when visible), and the
// contents of open containers in reach. In darkness only carried
// objects can be referenced.
func (e *Engine) visibleCandidates(gs *state.GameState) []string {
	candidates := make([]string, 0, 8)
	candidates = append(candidates, gs.Inventory...)

	room, ok := e.world.GetRoom(gs.Room)
	if ok && mechanics.CanSee(room, gs) {
		candidates = append(candidates, gs.ItemsInRoom(gs.Room)...)
	}

	// Open containers in reach: carried or in a visible room.
	reach := make([]string, 0, len(candidates))
	reach = append(reach, candidates...)
	for _, key := range reach {
		obj, found := e.world.GetObject(key)
		if !found || (!obj.IsContainer() && !obj.AlwaysOpen) {
			continue
		}
		if gs.IsOpen(key) {
			candidates = append(candidates, gs.Contents(key)...)
		}
	}
	return candidates
}

// resolveObject maps a player-typed name to an object in reach.
func (e *Engine) resolveObject(word string, gs *state.GameState) (*world.Object, bool) {
	key, ok := e.world.FindObject(word, e.visibleCandidates(gs))
	if !ok {
		return nil, false
	}
	obj, _ := e.world.GetObject(key)
	return obj, true
}

// locate finds the single holder of an object among the reachable
// places. The exclusive-location invariant makes the first hit the only
// hit.
func (e *Engine) locate(objKey string, gs *state.GameState) (holder, bool) {
	if gs.HasItem(objKey) {
		return holder{kind: "inventory"}, true
	}
	for _, item := range gs.ItemsInRoom(gs.Room) {
		if item == objKey {
			return holder{kind: "room", key: gs.Room}, true
		}
	}
	for containerKey, contents := range gs.ContainerContents {
		for _, item := range contents {
			if item == objKey {
				return holder{kind: "container", key: containerKey}, true
			}
		}
	}
	return holder{}, false
}

// containsTransitively reports whether target sits anywhere inside
// root's runtime contents. Containment is acyclic going in, so the walk
// terminates.
func (e *Engine) containsTransitively(root, target string, gs *state.GameState) bool {
	for _, inner := range gs.Contents(root) {
		if inner == target || e.containsTransitively(inner, target, gs) {
			return true
		}
	}
	return false
}

// containerLoad sums the sizes of a container's current contents.
func (e *Engine) containerLoad(containerKey string, gs *state.GameState) int {
	total := 0
	for _, key := range gs.Contents(containerKey) {
		if obj, ok := e.world.GetObject(key); ok {
			total += obj.Size
		}
	}
	return total
}

// selectText runs a baseline/spooky pair through the variant rule for
// the session's current sanity and moon.
func (e *Engine) selectText(baseline, spooky string, gs *state.GameState) string {
	return narrator.Select(
		narrator.Variant{Baseline: baseline, Spooky: spooky},
		mechanics.TierFor(gs.Sanity),
		mechanics.BloodMoonRisen(gs.Turns),
		e.distorter,
	)
}

// describeRoom narrates a room: its description variant, visible items,
// and any haunt present. In darkness, contents are suppressed entirely.
func (e *Engine) describeRoom(room *world.Room, gs *state.GameState) string {
	if !mechanics.CanSee(room, gs) {
		return mechanics.DarknessDescription
	}

	var b strings.Builder
	b.WriteString(room.Name)
	b.WriteString("\n")
	b.WriteString(e.selectText(room.Description, room.SpookyDescription, gs))

	items := gs.ItemsInRoom(room.Key)
	for _, key := range items {
		if obj, ok := e.world.GetObject(key); ok && obj.Kind != world.KindScenery {
			fmt.Fprintf(&b, "\nThere is %s here.", withArticle(obj.Name))
		}
	}

	for foeKey, foe := range e.world.Foes {
		if foe.Room == room.Key && gs.FoeHP[foeKey] > 0 {
			fmt.Fprintf(&b, "\n%s", e.selectText(foe.Description, "", gs))
		}
	}
	return b.String()
}

// withArticle prefixes a name with "a"/"an" unless it is a proper noun.
func withArticle(name string) string {
	if name == "" {
		return name
	}
	first := rune(name[0])
	if first >= 'A' && first <= 'Z' {
		return name
	}
	switch name[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an " + name
	}
	return "a " + name
}
