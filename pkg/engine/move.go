package engine

import (
	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/state"
)

// handleGo moves the player through an exit. A transition is legal iff
// the current room has an exit in that direction and its gate, if any,
// is satisfied. Illegal transitions return a blocked result and leave
// state untouched.
func (e *Engine) handleGo(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Direction == "" {
		return fail(FailPrecondition, "Which way do you want to go?")
	}

	room, ok := e.world.GetRoom(gs.Room)
	if !ok {
		return fail(FailPrecondition, "You are nowhere you recognize.")
	}

	dest, ok := room.Exits[cmd.Direction]
	if !ok {
		return fail(FailPrecondition, "You can't go that way.")
	}

	if gate, gated := room.Gates[cmd.Direction]; gated {
		if gs.FlagIsTrue(gate.Flag) != gate.Value {
			msg := gate.BlockedMessage
			if msg == "" {
				msg = "Something bars the way."
			}
			return fail(FailPrecondition, msg)
		}
	}

	destRoom, ok := e.world.GetRoom(dest)
	if !ok {
		// Load-time validation makes this unreachable for valid worlds.
		return fail(FailPrecondition, "The way ahead dissolves into nothing.")
	}

	gs.Room = dest
	gs.MarkVisited(dest)

	res := succeed("")
	res.RoomChanged = true
	res.Room = dest

	e.applyRoomEntry(gs, res, destRoom)
	res.Message = e.describeRoom(destRoom, gs)
	return res
}
