package command

// Verb is a canonical action token. Free text is normalized into this
// closed set before dispatch, so the engine's handler table can be
// checked for exhaustiveness.
type Verb string

const (
	// Movement
	VerbGo Verb = "go"

	// Manipulation
	VerbTake    Verb = "take"
	VerbDrop    Verb = "drop"
	VerbPut     Verb = "put"
	VerbOpen    Verb = "open"
	VerbClose   Verb = "close"
	VerbLock    Verb = "lock"
	VerbUnlock  Verb = "unlock"
	VerbPush    Verb = "push"
	VerbPull    Verb = "pull"
	VerbTurn    Verb = "turn"
	VerbTouch   Verb = "touch"
	VerbBreak   Verb = "break"
	VerbBurn    Verb = "burn"
	VerbThrow   Verb = "throw"
	VerbGive    Verb = "give"
	VerbEat     Verb = "eat"
	VerbDrink   Verb = "drink"
	VerbWear    Verb = "wear"
	VerbRing    Verb = "ring"
	VerbUse     Verb = "use"

	// Inspection
	VerbLook    Verb = "look"
	VerbExamine Verb = "examine"
	VerbRead    Verb = "read"
	VerbSearch  Verb = "search"
	VerbListen  Verb = "listen"
	VerbSmell   Verb = "smell"
	VerbKnock   Verb = "knock"

	// Utility
	VerbInventory   Verb = "inventory"
	VerbScore       Verb = "score"
	VerbWait        Verb = "wait"
	VerbHelp        Verb = "help"
	VerbDiagnose    Verb = "diagnose"
	VerbLight       Verb = "light"
	VerbExtinguish  Verb = "extinguish"

	// Magic
	VerbPray     Verb = "pray"
	VerbCast     Verb = "cast"
	VerbBanish   Verb = "banish"
	VerbChant    Verb = "chant"
	VerbMeditate Verb = "meditate"

	// Combat
	VerbAttack Verb = "attack"

	// Parse failure marker. The executor answers with a gentle
	// "I don't understand" and leaves state untouched.
	VerbUnknown Verb = ""
)

// Directions are normalized to their long form.
const (
	DirNorth     = "north"
	DirSouth     = "south"
	DirEast      = "east"
	DirWest      = "west"
	DirNortheast = "northeast"
	DirNorthwest = "northwest"
	DirSoutheast = "southeast"
	DirSouthwest = "southwest"
	DirUp        = "up"
	DirDown      = "down"
)

// ParsedCommand is the structured form of one line of player input.
type ParsedCommand struct {
	Verb        Verb   `json:"verb"`
	Object      string `json:"object,omitempty"`      // Direct object, as typed (articles stripped)
	Instrument  string `json:"instrument,omitempty"`  // Second object of two-object verbs
	Preposition string `json:"preposition,omitempty"` // Relation between object and instrument
	Direction   string `json:"direction,omitempty"`   // Movement only
	Raw         string `json:"raw,omitempty"`         // Original input, trimmed
}

// IsUnknown reports whether the input failed to parse.
func (pc ParsedCommand) IsUnknown() bool {
	return pc.Verb == VerbUnknown
}
