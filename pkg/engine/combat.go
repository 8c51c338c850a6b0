package engine

import (
	"fmt"
	"strings"

	"github.com/hollowoak/manor-engine/pkg/actor"
	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// findFoeHere resolves a typed name to a living foe in the current
// room.
func (e *Engine) findFoeHere(word string, gs *state.GameState) (*world.Foe, bool) {
	word = strings.ToLower(strings.TrimSpace(word))
	for key, foe := range e.world.Foes {
		if foe.Room != gs.Room || gs.FoeHP[key] <= 0 {
			continue
		}
		if strings.ToLower(foe.Name) == word || key == word {
			return foe, true
		}
	}
	return nil, false
}

// weaponAgainst picks a carried weapon effective against a foe. When
// the player names an instrument it must be carried and must work;
// otherwise the best carried weapon is chosen.
func (e *Engine) weaponAgainst(foeKey, instrument string, gs *state.GameState) (string, bool) {
	effective := func(obj *world.Object) bool {
		if obj.Power <= 0 {
			return false
		}
		for _, target := range obj.Against {
			if target == foeKey {
				return true
			}
		}
		return false
	}

	if instrument != "" {
		key, carried := e.world.FindObject(instrument, gs.Inventory)
		if !carried {
			return "", false
		}
		obj, _ := e.world.GetObject(key)
		if !effective(obj) {
			return "", false
		}
		return key, true
	}

	best := ""
	bestPower := 0
	for _, key := range gs.Inventory {
		obj, ok := e.world.GetObject(key)
		if ok && effective(obj) && obj.Power > bestPower {
			best = key
			bestPower = obj.Power
		}
	}
	return best, best != ""
}

// handleAttack swings at a haunt. Bare hands pass straight through;
// damage comes from a weapon's rated power, so combat stays
// deterministic.
func (e *Engine) handleAttack(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, "Attack what?")
	}
	foe, ok := e.findFoeHere(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("There is no %s here to fight.", cmd.Object))
	}

	if cmd.Instrument == "" {
		weaponKey, found := e.weaponAgainst(foe.Key, "", gs)
		if !found {
			return fail(FailPrecondition,
				fmt.Sprintf("Your fists pass through the %s like cold fog.", foe.Name))
		}
		return e.strikeFoe(foe, weaponKey, gs)
	}

	weaponKey, found := e.weaponAgainst(foe.Key, cmd.Instrument, gs)
	if !found {
		return fail(FailPrecondition,
			fmt.Sprintf("That does nothing at all to the %s.", foe.Name))
	}
	return e.strikeFoe(foe, weaponKey, gs)
}

// strikeFoe applies one weapon blow and settles defeat effects.
func (e *Engine) strikeFoe(foe *world.Foe, weaponKey string, gs *state.GameState) *ActionResult {
	weapon, _ := e.world.GetObject(weaponKey)

	haunt, err := actor.NewHaunt(foe, gs.FoeHP[foe.Key])
	if err != nil {
		if e.logger != nil {
			e.logger.Error("Failed to build haunt", "foe", foe.Key, "error", err)
		}
		return fail(FailPrecondition, "Something refuses to happen.")
	}

	remaining := haunt.TakeDamage(weapon.Power)
	gs.FoeHP[foe.Key] = remaining

	if !haunt.IsDefeated() {
		return succeed(e.selectText(
			fmt.Sprintf("You strike the %s with the %s. It thins and wavers, but holds.", foe.Name, weapon.Name),
			fmt.Sprintf("You strike the %s with the %s. It smiles wider.", foe.Name, weapon.Name),
			gs))
	}

	if foe.DefeatFlag != "" {
		gs.SetFlag(foe.DefeatFlag, state.BoolFlag(true))
	}
	for _, item := range foe.Reveals {
		gs.AddToRoom(gs.Room, item)
	}

	res := succeed(fmt.Sprintf(
		"The %s comes apart like smoke in a draft. The room is suddenly warmer.", foe.Name))
	if len(foe.Reveals) > 0 {
		res.notify(fmt.Sprintf("Something drops to the floor: %s.", e.listNames(foe.Reveals)))
	}
	return res
}
