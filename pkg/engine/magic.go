package engine

import (
	"fmt"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/state"
)

// handlePray is quiet magic: authored interactions on an object when
// named, otherwise a small steadying of the mind in safe rooms only.
func (e *Engine) handlePray(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object != "" {
		obj, ok := e.resolveObject(cmd.Object, gs)
		if !ok {
			return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
		}
		if res := e.tryInteraction(command.VerbPray, obj, gs); res != nil {
			return res
		}
	}

	room, ok := e.world.GetRoom(gs.Room)
	if ok && room.IsSafe {
		res := succeed("You fold your hands and speak quietly into the hush. The hush, for once, listens.")
		before := gs.Sanity
		mechanics.ApplySanityGain(gs, 2)
		res.SanityDelta += gs.Sanity - before
		return res
	}
	return succeed(e.selectText(
		"Your words fall flat in the still air.",
		"Your words fall flat, and something falls flat with them, closer than you'd like.",
		gs))
}

// handleCast covers cast and chant: spellwork only works on objects
// that have been authored to receive it.
func (e *Engine) handleCast(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "You mumble half a syllable and lose the thread.")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if res := e.tryInteraction(cmd.Verb, obj, gs); res != nil {
		return res
	}
	return fail(FailPrecondition, fmt.Sprintf("The %s is deaf to incantation.", obj.Name))
}

// handleBanish drives a haunt out with a relic: it is an attack that
// insists on a fitting instrument.
func (e *Engine) handleBanish(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Banish what?")
	}
	foe, ok := e.findFoeHere(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("There is no %s here to banish.", cmd.Object))
	}
	weaponKey, ok := e.weaponAgainst(foe.Key, cmd.Instrument, gs)
	if !ok {
		return fail(FailPrecondition, "You carry nothing with the authority to banish it.")
	}
	return e.strikeFoe(foe, weaponKey, gs)
}

// handleMeditate trades a turn for composure, but only somewhere the
// house can't watch.
func (e *Engine) handleMeditate(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	room, ok := e.world.GetRoom(gs.Room)
	if !ok || !room.IsSafe {
		return fail(FailPrecondition, "You close your eyes, and immediately wish you hadn't. Not here.")
	}
	res := succeed("You sit with your back to the wall and breathe until your pulse agrees to slow.")
	before := gs.Sanity
	mechanics.ApplySanityGain(gs, mechanics.SafeRoomRestore)
	res.SanityDelta += gs.Sanity - before
	return res
}
