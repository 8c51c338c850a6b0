package mechanics

import (
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// Lamp fuel burned per turn, normally and under the blood moon.
const (
	LampBurnRate          = 1
	BloodMoonLampBurnRate = 2
)

// LampTick burns lamp fuel for one turn. When fuel runs out the lamp
// goes dark within the same tick; it never takes a second turn for the
// player to find themselves in darkness.
func LampTick(gs *state.GameState, bloodMoon bool) []string {
	if !gs.LampLit {
		return nil
	}

	burn := LampBurnRate
	if bloodMoon {
		burn = BloodMoonLampBurnRate
	}
	gs.LampFuel -= burn
	if gs.LampFuel <= 0 {
		gs.LampFuel = 0
		gs.LampLit = false
		return []string{"The lamp gutters, flickers, and goes out."}
	}

	var notes []string
	if gs.LampFuel <= 5 {
		notes = append(notes, "The lamp is burning low.")
	}
	if bloodMoon {
		notes = append(notes, "The lamp flame strains against the red dark, burning twice as fast.")
	}
	return notes
}

// CanSee reports whether the player can make out the contents of a
// room. Dark rooms need an active light source.
func CanSee(room *world.Room, gs *state.GameState) bool {
	return !room.IsDark || gs.LampLit
}

// DarknessDescription replaces a room description when the player
// cannot see. Room contents are deliberately not mentioned.
const DarknessDescription = "It is pitch black here. The darkness has a texture, " +
	"like something breathing close to your face. You can see nothing at all."
