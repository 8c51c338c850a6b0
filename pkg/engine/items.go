package engine

import (
	"fmt"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// unlockedFlag names the boolean flag tracking a container's lock.
func unlockedFlag(containerKey string) string {
	return "unlocked_" + containerKey
}

// handleTake moves an object from the room or an open container into
// the player's inventory.
func (e *Engine) handleTake(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Take what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if gs.HasItem(obj.Key) {
		return fail(FailPrecondition, "You're already carrying that.")
	}
	if !obj.Takeable {
		return fail(FailPrecondition, fmt.Sprintf("The %s won't come loose.", obj.Name))
	}

	where, found := e.locate(obj.Key, gs)
	if !found {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}

	switch where.kind {
	case "room":
		gs.RemoveFromRoom(where.key, obj.Key)
	case "container":
		if !gs.IsOpen(where.key) {
			container, _ := e.world.GetObject(where.key)
			return fail(FailPrecondition, fmt.Sprintf("The %s is closed.", container.Name))
		}
		gs.RemoveFromContainer(where.key, obj.Key)
	default:
		return fail(FailPrecondition, "You're already carrying that.")
	}
	gs.AddItem(obj.Key)

	res := succeed(fmt.Sprintf("You take the %s.", obj.Name))
	res.InventoryChanged = true
	return res
}

// handleDrop is the exact inverse of take: inventory back into the
// current room.
func (e *Engine) handleDrop(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Drop what?")
	}
	key, ok := e.world.FindObject(cmd.Object, gs.Inventory)
	if !ok {
		return fail(FailPrecondition, "You're not carrying that.")
	}
	obj, _ := e.world.GetObject(key)

	gs.RemoveItem(key)
	gs.AddToRoom(gs.Room, key)

	res := succeed(fmt.Sprintf("You set the %s down.", obj.Name))
	res.InventoryChanged = true
	return res
}

// handlePut places a carried object into a container, enforcing
// capacity before anything moves.
func (e *Engine) handlePut(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" || cmd.Instrument == "" {
		return fail(FailPrecondition, "Put what where?")
	}

	itemKey, ok := e.world.FindObject(cmd.Object, gs.Inventory)
	if !ok {
		return fail(FailPrecondition, "You're not carrying that.")
	}
	item, _ := e.world.GetObject(itemKey)

	container, ok := e.resolveObject(cmd.Instrument, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Instrument))
	}
	if !container.IsContainer() && !container.AlwaysOpen {
		return fail(FailPrecondition, fmt.Sprintf("The %s won't hold anything.", container.Name))
	}
	if container.Key == itemKey {
		return fail(FailPrecondition, "It won't fit inside itself.")
	}
	if e.containsTransitively(itemKey, container.Key, gs) {
		// The target container is somewhere inside the item being put.
		return fail(FailPrecondition,
			fmt.Sprintf("The %s is already inside the %s.", container.Name, item.Name))
	}
	if !gs.IsOpen(container.Key) {
		return fail(FailPrecondition, fmt.Sprintf("The %s is closed.", container.Name))
	}
	if container.Capacity > 0 && e.containerLoad(container.Key, gs)+item.Size > container.Capacity {
		return fail(FailCapacity, fmt.Sprintf("The %s is too full for that.", container.Name))
	}

	gs.RemoveItem(itemKey)
	gs.AddToContainer(container.Key, itemKey)

	res := succeed(fmt.Sprintf("You put the %s in the %s.", item.Name, container.Name))
	res.InventoryChanged = true

	if container.Key == e.world.TrophyKey {
		scoreBefore := gs.Score
		wonBefore := gs.Won
		res.notify(mechanics.AwardTreasure(gs, item, e.world.VictoryScore)...)
		res.ScoreDelta = gs.Score - scoreBefore
		res.Won = gs.Won && !wonBefore
	}
	return res
}

// handleOpen opens a container, refusing locked ones.
func (e *Engine) handleOpen(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Open what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if !obj.IsContainer() {
		// Non-containers can still carry an authored open response.
		if res := e.tryInteraction(cmd.Verb, obj, gs); res != nil {
			return res
		}
		return fail(FailPrecondition, fmt.Sprintf("The %s doesn't open.", obj.Name))
	}
	if gs.IsOpen(obj.Key) {
		return fail(FailPrecondition, fmt.Sprintf("The %s is already open.", obj.Name))
	}
	if e.isLocked(obj, gs) {
		return fail(FailPrecondition, fmt.Sprintf("The %s is locked.", obj.Name))
	}

	gs.SetOpen(obj.Key, true)

	contents := gs.Contents(obj.Key)
	if len(contents) == 0 {
		return succeed(fmt.Sprintf("You open the %s. It is empty.", obj.Name))
	}
	msg := fmt.Sprintf("You open the %s, revealing %s.", obj.Name, e.listNames(contents))
	return succeed(msg)
}

// handleClose shuts an open container. Open surfaces have nothing to
// shut.
func (e *Engine) handleClose(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Close what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if obj.AlwaysOpen {
		return fail(FailPrecondition, fmt.Sprintf("The %s has no lid.", obj.Name))
	}
	if !obj.IsContainer() || !gs.IsOpen(obj.Key) {
		return fail(FailPrecondition, fmt.Sprintf("The %s isn't open.", obj.Name))
	}

	gs.SetOpen(obj.Key, false)
	return succeed(fmt.Sprintf("You close the %s.", obj.Name))
}

// handleUnlock unlocks a lockable container with its matching key
// object, which must be carried.
func (e *Engine) handleUnlock(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Unlock what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if !obj.Lockable {
		return fail(FailPrecondition, fmt.Sprintf("The %s has no lock.", obj.Name))
	}
	if !e.isLocked(obj, gs) {
		return fail(FailPrecondition, fmt.Sprintf("The %s is already unlocked.", obj.Name))
	}

	if obj.OpensWith != "" {
		keyObj, _ := e.world.GetObject(obj.OpensWith)
		if cmd.Instrument != "" {
			instKey, carried := e.world.FindObject(cmd.Instrument, gs.Inventory)
			if !carried {
				return fail(FailPrecondition, "You're not carrying that.")
			}
			if instKey != obj.OpensWith {
				inst, _ := e.world.GetObject(instKey)
				return fail(FailPrecondition, fmt.Sprintf("The %s doesn't fit the lock.", inst.Name))
			}
		} else if !gs.HasItem(obj.OpensWith) {
			return fail(FailPrecondition, fmt.Sprintf("You have nothing that fits the %s's lock.", obj.Name))
		}

		gs.SetFlag(unlockedFlag(obj.Key), state.BoolFlag(true))
		if obj.KeyFlag != "" {
			gs.SetFlag(obj.KeyFlag, state.BoolFlag(true))
		}
		return succeed(fmt.Sprintf("The %s turns in the lock with a reluctant click.", keyObj.Name))
	}

	gs.SetFlag(unlockedFlag(obj.Key), state.BoolFlag(true))
	if obj.KeyFlag != "" {
		gs.SetFlag(obj.KeyFlag, state.BoolFlag(true))
	}
	return succeed(fmt.Sprintf("The %s unlocks.", obj.Name))
}

// handleLock re-locks a lockable container.
func (e *Engine) handleLock(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Lock what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if !obj.Lockable {
		return fail(FailPrecondition, fmt.Sprintf("The %s has no lock.", obj.Name))
	}
	if e.isLocked(obj, gs) {
		return fail(FailPrecondition, fmt.Sprintf("The %s is already locked.", obj.Name))
	}
	if gs.IsOpen(obj.Key) {
		return fail(FailPrecondition, fmt.Sprintf("Close the %s first.", obj.Name))
	}
	if obj.OpensWith != "" && !gs.HasItem(obj.OpensWith) {
		return fail(FailPrecondition, "You have nothing that fits the lock.")
	}

	gs.SetFlag(unlockedFlag(obj.Key), state.BoolFlag(false))
	if obj.KeyFlag != "" {
		gs.SetFlag(obj.KeyFlag, state.BoolFlag(false))
	}
	return succeed(fmt.Sprintf("You lock the %s.", obj.Name))
}

// isLocked reports whether a lockable container is still locked.
// Lockable containers start locked and stay locked until unlocked.
func (e *Engine) isLocked(obj *world.Object, gs *state.GameState) bool {
	if !obj.Lockable {
		return false
	}
	return !gs.FlagIsTrue(unlockedFlag(obj.Key))
}

// listNames joins object names for content listings.
func (e *Engine) listNames(keys []string) string {
	out := ""
	for i, key := range keys {
		obj, ok := e.world.GetObject(key)
		if !ok {
			continue
		}
		if i > 0 {
			if i == len(keys)-1 {
				out += " and "
			} else {
				out += ", "
			}
		}
		out += withArticle(obj.Name)
	}
	return out
}
