package command

import (
	"strings"
)

// verbSynonyms maps every accepted verb word to its canonical verb.
// Static configuration: the table is never mutated after init.
var verbSynonyms = map[string]Verb{
	"go":    VerbGo,
	"walk":  VerbGo,
	"run":   VerbGo,
	"move":  VerbGo,
	"head":  VerbGo,
	"climb": VerbGo,
	"flee":  VerbGo,

	"take":   VerbTake,
	"get":    VerbTake,
	"grab":   VerbTake,
	"pick":   VerbTake, // "pick up lamp"
	"steal":  VerbTake,
	"drop":   VerbDrop,
	"leave":  VerbDrop,
	"put":    VerbPut,
	"place":  VerbPut,
	"insert": VerbPut,
	"stuff":  VerbPut,

	"open":   VerbOpen,
	"close":  VerbClose,
	"shut":   VerbClose,
	"lock":   VerbLock,
	"unlock": VerbUnlock,

	"push":  VerbPush,
	"press": VerbPush,
	"shove": VerbPush,
	"pull":  VerbPull,
	"drag":  VerbPull,
	"turn":  VerbTurn,
	"rotate": VerbTurn,
	"touch": VerbTouch,
	"feel":  VerbTouch,
	"break": VerbBreak,
	"smash": VerbBreak,
	"destroy": VerbBreak,
	"burn":  VerbBurn,
	"throw": VerbThrow,
	"toss":  VerbThrow,
	"give":  VerbGive,
	"offer": VerbGive,
	"eat":   VerbEat,
	"drink": VerbDrink,
	"sip":   VerbDrink,
	"wear":  VerbWear,
	"ring":  VerbRing,
	"use":   VerbUse,

	"look":    VerbLook,
	"l":       VerbLook,
	"examine": VerbExamine,
	"x":       VerbExamine,
	"inspect": VerbExamine,
	"read":    VerbRead,
	"search":  VerbSearch,
	"listen":  VerbListen,
	"smell":   VerbSmell,
	"sniff":   VerbSmell,
	"knock":   VerbKnock,

	"inventory": VerbInventory,
	"i":         VerbInventory,
	"inv":       VerbInventory,
	"score":     VerbScore,
	"wait":      VerbWait,
	"z":         VerbWait,
	"help":      VerbHelp,
	"diagnose":  VerbDiagnose,
	"light":      VerbLight,
	"extinguish": VerbExtinguish,
	"douse":      VerbExtinguish,

	"pray":     VerbPray,
	"cast":     VerbCast,
	"banish":   VerbBanish,
	"exorcise": VerbBanish,
	"chant":    VerbChant,
	"meditate": VerbMeditate,
	"rest":     VerbMeditate,

	"attack": VerbAttack,
	"kill":   VerbAttack,
	"hit":    VerbAttack,
	"fight":  VerbAttack,
	"strike": VerbAttack,
	"stab":   VerbAttack,
}

// directionSynonyms maps direction words and shorthands to long form.
var directionSynonyms = map[string]string{
	"north": DirNorth, "n": DirNorth,
	"south": DirSouth, "s": DirSouth,
	"east": DirEast, "e": DirEast,
	"west": DirWest, "w": DirWest,
	"northeast": DirNortheast, "ne": DirNortheast,
	"northwest": DirNorthwest, "nw": DirNorthwest,
	"southeast": DirSoutheast, "se": DirSoutheast,
	"southwest": DirSouthwest, "sw": DirSouthwest,
	"up": DirUp, "u": DirUp, "upstairs": DirUp,
	"down": DirDown, "d": DirDown, "downstairs": DirDown,
}

// prepositions split "<verb> <object> <prep> <instrument>" commands.
var prepositions = map[string]bool{
	"with":   true,
	"using":  true,
	"in":     true,
	"into":   true,
	"inside": true,
	"on":     true,
	"onto":   true,
	"under":  true,
	"behind": true,
	"at":     true,
	"to":     true,
	"from":   true,
}

// objectlessPrepositions may open a command with no direct object ahead
// of them: "look under bed", "turn on lamp". The prepositional target
// then becomes the object.
var objectlessPrepositions = map[string]bool{
	"under":  true,
	"behind": true,
	"at":     true,
	"in":     true,
	"inside": true,
	"on":     true,
	"onto":   true,
}

// articles are dropped before structural matching.
var articles = map[string]bool{
	"the": true,
	"a":   true,
	"an":  true,
	"my":  true,
}

// particles are verb particles consumed after specific verbs.
var particles = map[string]bool{
	"up":     true, // pick up, look up
	"out":    true, // blow out
	"around": true, // look around
}

// Parse maps one line of player input to a ParsedCommand. It is a pure
// function of its input: no side effects, no hidden state, identical
// input always yields an identical result. Unrecognized input returns a
// command with VerbUnknown rather than an error, so the executor can
// answer in fiction without mutating state.
func Parse(text string) ParsedCommand {
	raw := strings.TrimSpace(text)
	pc := ParsedCommand{Raw: raw}
	if raw == "" {
		return pc
	}

	tokens := tokenize(raw)
	if len(tokens) == 0 {
		return pc
	}

	// A bare direction is movement: "north", "n".
	if dir, ok := directionSynonyms[tokens[0]]; ok && len(tokens) == 1 {
		pc.Verb = VerbGo
		pc.Direction = dir
		return pc
	}

	verb, ok := verbSynonyms[tokens[0]]
	if !ok {
		return pc // VerbUnknown
	}
	pc.Verb = verb
	rest := tokens[1:]

	// Consume a verb particle: "pick up lamp", "look around".
	if len(rest) > 0 && particles[rest[0]] {
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return pc
	}

	// "<verb> <direction>": go north, flee east.
	if verb == VerbGo {
		if dir, ok := directionSynonyms[rest[0]]; ok {
			pc.Direction = dir
			return pc
		}
	}

	// Split at the first preposition: object words before, instrument
	// words after. "unlock door with key", "look under bed".
	objWords := make([]string, 0, len(rest))
	instWords := make([]string, 0)
	for i, tok := range rest {
		if prepositions[tok] {
			pc.Preposition = tok
			instWords = rest[i+1:]
			break
		}
		objWords = append(objWords, tok)
	}

	pc.Object = strings.Join(objWords, " ")
	pc.Instrument = strings.Join(instWords, " ")

	// "look under bed" and "turn on lamp" name no direct object ahead of
	// the preposition; treat the prepositional target as the object.
	if pc.Object == "" && pc.Instrument != "" && objectlessPrepositions[pc.Preposition] {
		pc.Object = pc.Instrument
		pc.Instrument = ""
	}

	return pc
}

// tokenize lowercases, strips punctuation, splits on whitespace, and
// drops articles.
func tokenize(s string) []string {
	s = strings.ToLower(s)
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\t':
			b.WriteRune(r)
		case r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	fields := strings.Fields(b.String())
	out := fields[:0]
	for _, f := range fields {
		if articles[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}
