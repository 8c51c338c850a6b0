package mechanics

import (
	"fmt"

	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// AwardTreasure credits a treasure placed in the trophy container.
// Each treasure scores at most once per session, and score never
// decreases; the won flag, once set, never resets.
func AwardTreasure(gs *state.GameState, obj *world.Object, victoryScore int) []string {
	if !obj.Treasure || obj.Value <= 0 {
		return nil
	}
	if gs.ScoredTreasures[obj.Key] {
		return nil
	}
	if gs.ScoredTreasures == nil {
		gs.ScoredTreasures = make(map[string]bool)
	}
	gs.ScoredTreasures[obj.Key] = true

	notes := []string{fmt.Sprintf("Your score rises by %d points.", obj.Value)}
	return append(notes, AddScore(gs, obj.Value, victoryScore)...)
}

// AddScore applies a monotonic score gain and latches the won flag at
// the victory threshold. Non-positive amounts are ignored: score never
// decreases.
func AddScore(gs *state.GameState, points, victoryScore int) []string {
	if points <= 0 {
		return nil
	}
	gs.Score += points
	if !gs.Won && victoryScore > 0 && gs.Score >= victoryScore {
		gs.Won = true
		return []string{"Something releases its grip on the house. You have won."}
	}
	return nil
}
