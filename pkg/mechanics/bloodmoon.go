package mechanics

// The blood moon rises on a fixed cycle derived purely from the turn
// counter, so two sessions with the same history always agree on the
// sky.
const (
	BloodMoonPeriod   = 60 // Turns per full cycle
	BloodMoonDuration = 13 // Turns the moon stays risen at the end of each cycle
)

// BloodMoonRisen reports whether the blood moon is up on a given turn.
func BloodMoonRisen(turn int) bool {
	if turn < 0 {
		return false
	}
	return turn%BloodMoonPeriod >= BloodMoonPeriod-BloodMoonDuration
}

// TurnsUntilBloodMoon returns how many turns remain before the next
// rise, or 0 while the moon is up.
func TurnsUntilBloodMoon(turn int) int {
	if BloodMoonRisen(turn) {
		return 0
	}
	return (BloodMoonPeriod - BloodMoonDuration) - turn%BloodMoonPeriod
}

// HazardDrainUnderMoon scales a hazardous room's sanity drain while the
// blood moon is risen: half again as much, rounded down.
func HazardDrainUnderMoon(drain int) int {
	return drain + drain/2
}
