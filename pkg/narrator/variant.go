package narrator

import (
	"github.com/hollowoak/manor-engine/pkg/mechanics"
)

// Variant is a pair of pre-authored texts: the baseline and the spooky
// alternate. Rooms and interactions both carry one.
type Variant struct {
	Baseline string
	Spooky   string
}

// Select picks the text a player should see given their sanity tier,
// then applies the distortion strategy for the unreliable tier.
//
// Tier rules: stable reads the baseline; disturbed and below read the
// spooky alternate when one exists; unreliable additionally runs the
// text through the Distorter; the blood moon forces the spooky
// alternate regardless of tier. The severe tier's forced-relocation
// effect lives in the engine, not here - this function only chooses
// words.
func Select(v Variant, tier mechanics.SanityTier, bloodMoon bool, d Distorter) string {
	text := v.Baseline
	if (tier >= mechanics.TierDisturbed || bloodMoon) && v.Spooky != "" {
		text = v.Spooky
	}
	if tier >= mechanics.TierUnreliable && d != nil {
		text = d.Distort(text)
	}
	return text
}
