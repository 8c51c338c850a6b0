// Package mechanics holds the pure transformation rules of the game:
// sanity, light, the blood moon, and scoring. Every function here takes
// the state it operates on as an explicit parameter and performs no I/O.
package mechanics

import (
	"github.com/hollowoak/manor-engine/pkg/state"
)

// SanityTier buckets the sanity meter into narration tiers.
type SanityTier int

const (
	TierStable     SanityTier = iota // sanity >= 75
	TierDisturbed                    // 50 <= sanity < 75
	TierUnreliable                   // 25 <= sanity < 50
	TierSevere                       // sanity < 25
)

// Threshold boundaries are closed below: a sanity of exactly 75 is
// stable, exactly 50 is disturbed, exactly 25 is unreliable.
const (
	StableThreshold     = 75
	DisturbedThreshold  = 50
	UnreliableThreshold = 25
)

// SafeRoomRestore is the sanity regained per turn spent in a safe room.
const SafeRoomRestore = 5

// TierFor maps a sanity value to its narration tier.
func TierFor(sanity int) SanityTier {
	switch {
	case sanity >= StableThreshold:
		return TierStable
	case sanity >= DisturbedThreshold:
		return TierDisturbed
	case sanity >= UnreliableThreshold:
		return TierUnreliable
	default:
		return TierSevere
	}
}

// ApplySanityLoss reduces sanity by amount, clamping at the floor, and
// returns player-facing notifications. A zero or negative amount is a
// no-op.
func ApplySanityLoss(gs *state.GameState, amount int) []string {
	if amount <= 0 {
		return nil
	}
	before := gs.Sanity
	gs.Sanity -= amount
	if gs.Sanity < state.SanityMin {
		gs.Sanity = state.SanityMin
	}

	var notes []string
	if gs.Sanity < before {
		notes = append(notes, "Your sanity slips a little further.")
	}
	beforeTier := TierFor(before)
	afterTier := TierFor(gs.Sanity)
	if afterTier > beforeTier {
		switch afterTier {
		case TierDisturbed:
			notes = append(notes, "The shadows in the corners of your vision have started to move.")
		case TierUnreliable:
			notes = append(notes, "You are no longer certain your eyes are telling you the truth.")
		case TierSevere:
			notes = append(notes, "The manor is inside your head now.")
		}
	}
	return notes
}

// ApplySanityGain raises sanity by amount, clamping at the ceiling.
func ApplySanityGain(gs *state.GameState, amount int) {
	if amount <= 0 {
		return
	}
	gs.Sanity += amount
	if gs.Sanity > state.SanityMax {
		gs.Sanity = state.SanityMax
	}
}

// ApplySanityDelta routes a signed delta through loss or gain so the
// clamp invariant holds for any sequence of deltas.
func ApplySanityDelta(gs *state.GameState, delta int) []string {
	if delta < 0 {
		return ApplySanityLoss(gs, -delta)
	}
	ApplySanityGain(gs, delta)
	return nil
}
