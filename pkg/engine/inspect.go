package engine

import (
	"fmt"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/state"
)

// handleLook describes the current room, or defers to examine when an
// object is named ("look at painting", "look under bed").
func (e *Engine) handleLook(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object != "" {
		return e.handleExamine(cmd, gs)
	}
	room, ok := e.world.GetRoom(gs.Room)
	if !ok {
		return fail(FailPrecondition, "You are nowhere you recognize.")
	}
	return succeed(e.describeRoom(room, gs))
}

// handleExamine inspects one object. Containers list their contents
// when open.
func (e *Engine) handleExamine(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Examine what?")
	}
	room, ok := e.world.GetRoom(gs.Room)
	if ok && !mechanics.CanSee(room, gs) {
		return fail(FailPrecondition, "It's too dark to make anything out.")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}

	if res := e.tryInteraction(command.VerbExamine, obj, gs); res != nil {
		return res
	}

	desc := obj.Description
	if desc == "" {
		desc = fmt.Sprintf("It's %s. Nothing more, probably.", withArticle(obj.Name))
	}
	msg := e.selectText(desc, "", gs)

	if obj.IsContainer() || obj.AlwaysOpen {
		switch {
		case !gs.IsOpen(obj.Key):
			msg += fmt.Sprintf(" The %s is closed.", obj.Name)
		case len(gs.Contents(obj.Key)) == 0:
			msg += fmt.Sprintf(" The %s is empty.", obj.Name)
		default:
			msg += fmt.Sprintf(" Inside you see %s.", e.listNames(gs.Contents(obj.Key)))
		}
	}
	return succeed(msg)
}

// handleRead reads an object. Only authored text is readable.
func (e *Engine) handleRead(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Read what?")
	}
	room, ok := e.world.GetRoom(gs.Room)
	if ok && !mechanics.CanSee(room, gs) {
		return fail(FailPrecondition, "It's far too dark to read.")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if res := e.tryInteraction(command.VerbRead, obj, gs); res != nil {
		return res
	}
	return fail(FailPrecondition, fmt.Sprintf("There's nothing written on the %s.", obj.Name))
}

// handleSearch rummages through an object, revealing whatever its
// authored interaction uncovers.
func (e *Engine) handleSearch(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Search what?")
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if res := e.tryInteraction(command.VerbSearch, obj, gs); res != nil {
		return res
	}
	return succeed(fmt.Sprintf("You find nothing of interest in the %s.", obj.Name))
}

// handleSense covers listen and smell, with or without an object.
func (e *Engine) handleSense(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object != "" {
		obj, ok := e.resolveObject(cmd.Object, gs)
		if !ok {
			return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
		}
		if res := e.tryInteraction(cmd.Verb, obj, gs); res != nil {
			return res
		}
	}
	if cmd.Verb == command.VerbListen {
		return succeed(e.selectText(
			"The house is quiet.",
			"The house is quiet the way a held breath is quiet.",
			gs))
	}
	return succeed(e.selectText(
		"Dust, old wood, and candle smoke.",
		"Dust, old wood, and under it all, something sweetly rotten.",
		gs))
}
