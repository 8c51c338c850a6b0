package engine

import (
	"fmt"
	"strings"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/state"
)

func (e *Engine) handleInventory(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if len(gs.Inventory) == 0 {
		return succeed("You are carrying nothing.")
	}
	var b strings.Builder
	b.WriteString("You are carrying:")
	for _, key := range gs.Inventory {
		if obj, ok := e.world.GetObject(key); ok {
			fmt.Fprintf(&b, "\n  %s", withArticle(obj.Name))
			if key == e.world.LampKey && gs.LampLit {
				b.WriteString(" (lit)")
			}
		}
	}
	return succeed(b.String())
}

func (e *Engine) handleScore(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	msg := fmt.Sprintf("Your score is %d points in %d moves.", gs.Score, gs.Turns)
	if gs.Won {
		msg += " The house has conceded. You have won."
	} else if e.world.VictoryScore > 0 {
		msg += fmt.Sprintf(" The house will yield at %d.", e.world.VictoryScore)
	}
	return succeed(msg)
}

func (e *Engine) handleWait(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	return succeed(e.selectText(
		"Time passes.",
		"Time passes. You are fairly sure it passes.",
		gs))
}

func (e *Engine) handleHelp(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	return succeed("Try commands like: go north, take lamp, open mailbox, " +
		"put locket in trophy case, examine painting, read letter, light lamp, " +
		"attack ghost with poker, inventory, score, diagnose.")
}

// handleDiagnose reports the player's condition without spending
// anything but the turn.
func (e *Engine) handleDiagnose(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	var b strings.Builder
	switch mechanics.TierFor(gs.Sanity) {
	case mechanics.TierStable:
		b.WriteString("Your mind is your own.")
	case mechanics.TierDisturbed:
		b.WriteString("Your hands won't quite stop shaking.")
	case mechanics.TierUnreliable:
		b.WriteString("You keep seeing things that refuse to be there when you look twice.")
	default:
		b.WriteString("You can hear the house thinking.")
	}
	if gs.LampLit {
		fmt.Fprintf(&b, " The lamp is lit, with %d turns of oil left.", gs.LampFuel)
	} else if gs.LampFuel > 0 {
		fmt.Fprintf(&b, " The lamp is out, with %d turns of oil left.", gs.LampFuel)
	} else {
		b.WriteString(" The lamp is dry.")
	}
	if mechanics.BloodMoonRisen(gs.Turns) {
		b.WriteString(" The blood moon is up.")
	}
	return succeed(b.String())
}

// handleLight puts the lamp into service: it must be carried and have
// fuel.
func (e *Engine) handleLight(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	lampKey := e.world.LampKey
	if lampKey == "" {
		return fail(FailPrecondition, "You have no light to kindle.")
	}
	if cmd.Object != "" {
		named, ok := e.resolveObject(cmd.Object, gs)
		if !ok {
			return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
		}
		if named.Key != lampKey {
			return fail(FailPrecondition, fmt.Sprintf("The %s won't hold a flame.", named.Name))
		}
	}
	if !gs.HasItem(lampKey) {
		return fail(FailPrecondition, "You're not carrying the lamp.")
	}
	if gs.LampLit {
		return fail(FailPrecondition, "The lamp is already lit.")
	}
	if gs.LampFuel <= 0 {
		return fail(FailPrecondition, "The lamp is out of oil.")
	}

	gs.LampLit = true
	res := succeed("The lamp catches, pushing a small circle of warm light around you.")
	if room, ok := e.world.GetRoom(gs.Room); ok && room.IsDark {
		res.notify(e.describeRoom(room, gs))
	}
	return res
}

func (e *Engine) handleExtinguish(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if !gs.LampLit {
		return fail(FailPrecondition, "The lamp isn't lit.")
	}
	gs.LampLit = false
	return succeed("You snuff the lamp. The dark closes in politely.")
}
