// Package engine executes parsed commands against a world catalog and a
// session's game state. One call to Execute is one turn: synchronous,
// no I/O, no shared mutable state. WorldData is read-only and safely
// shared; each GameState belongs to exactly one session and the caller
// guarantees commands against it never interleave.
package engine

import (
	"log/slog"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/narrator"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// handlerFunc executes one verb against staged state. Handlers mutate
// the staged state freely; a failed result throws the staged copy away.
type handlerFunc func(e *Engine, cmd command.ParsedCommand, gs *state.GameState) *ActionResult

// Engine orchestrates verb handlers over a single world catalog.
type Engine struct {
	world     *world.World
	logger    *slog.Logger
	distorter narrator.Distorter
	roll      func(sides int) int // 1-based die roll, injectable for tests
	handlers  map[command.Verb]handlerFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithDistorter replaces the unreliable-narrator strategy.
func WithDistorter(d narrator.Distorter) Option {
	return func(e *Engine) { e.distorter = d }
}

// WithRoll replaces the die roll used by the severe-sanity effects.
// Tests pass a deterministic roll; a seeded source makes whole sessions
// reproducible.
func WithRoll(roll func(sides int) int) Option {
	return func(e *Engine) { e.roll = roll }
}

// New builds an engine for a loaded world.
func New(w *world.World, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		world:     w,
		logger:    logger,
		distorter: narrator.NewWordSwapDistorter(),
		roll:      func(sides int) int { return rand.IntN(sides) + 1 },
	}
	for _, opt := range opts {
		opt(e)
	}
	e.handlers = map[command.Verb]handlerFunc{
		command.VerbGo: (*Engine).handleGo,

		command.VerbTake:   (*Engine).handleTake,
		command.VerbDrop:   (*Engine).handleDrop,
		command.VerbPut:    (*Engine).handlePut,
		command.VerbOpen:   (*Engine).handleOpen,
		command.VerbClose:  (*Engine).handleClose,
		command.VerbLock:   (*Engine).handleLock,
		command.VerbUnlock: (*Engine).handleUnlock,

		command.VerbPush:  (*Engine).handleGentleVerb,
		command.VerbPull:  (*Engine).handleGentleVerb,
		command.VerbTurn:  (*Engine).handleGentleVerb,
		command.VerbTouch: (*Engine).handleGentleVerb,
		command.VerbRing:  (*Engine).handleGentleVerb,
		command.VerbKnock: (*Engine).handleGentleVerb,

		command.VerbBreak: (*Engine).handleHarshVerb,
		command.VerbBurn:  (*Engine).handleHarshVerb,
		command.VerbThrow: (*Engine).handleHarshVerb,
		command.VerbGive:  (*Engine).handleHarshVerb,
		command.VerbEat:   (*Engine).handleHarshVerb,
		command.VerbDrink: (*Engine).handleHarshVerb,
		command.VerbWear:  (*Engine).handleHarshVerb,
		command.VerbUse:   (*Engine).handleHarshVerb,

		command.VerbLook:    (*Engine).handleLook,
		command.VerbExamine: (*Engine).handleExamine,
		command.VerbRead:    (*Engine).handleRead,
		command.VerbSearch:  (*Engine).handleSearch,
		command.VerbListen:  (*Engine).handleSense,
		command.VerbSmell:   (*Engine).handleSense,

		command.VerbInventory:  (*Engine).handleInventory,
		command.VerbScore:      (*Engine).handleScore,
		command.VerbWait:       (*Engine).handleWait,
		command.VerbHelp:       (*Engine).handleHelp,
		command.VerbDiagnose:   (*Engine).handleDiagnose,
		command.VerbLight:      (*Engine).handleLight,
		command.VerbExtinguish: (*Engine).handleExtinguish,

		command.VerbPray:     (*Engine).handlePray,
		command.VerbCast:     (*Engine).handleCast,
		command.VerbBanish:   (*Engine).handleBanish,
		command.VerbChant:    (*Engine).handleCast,
		command.VerbMeditate: (*Engine).handleMeditate,

		command.VerbAttack: (*Engine).handleAttack,
	}
	return e
}

// Execute runs one parsed command against a session. The state delta is
// atomic: handlers work on a staged clone, and the clone is committed
// back into the caller's state only on success. Any text input yields a
// result; errors never escape for ordinary player input.
func (e *Engine) Execute(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if gs == nil {
		// Programming error in the caller, not player input.
		if e.logger != nil {
			e.logger.Error("Execute called with nil game state")
		}
		return fail(FailPrecondition, "There is no game in progress.")
	}

	if cmd.IsUnknown() {
		return fail(FailUnknownVerb, "I don't understand that. (Try 'help'.)")
	}

	handler, ok := e.handlers[cmd.Verb]
	if !ok {
		return fail(FailUnknownVerb, "I don't understand that. (Try 'help'.)")
	}

	staged := gs.Clone()
	res := handler(e, cmd, staged)
	if !res.Success {
		return res
	}

	e.endTurn(staged, res)
	staged.UpdatedAt = time.Now().UTC()
	*gs = *staged

	if e.logger != nil {
		e.logger.Debug("Command executed",
			"session", gs.ID.String(),
			"verb", string(cmd.Verb),
			"room", gs.Room,
			"turn", gs.Turns)
	}
	return res
}

// endTurn applies the per-turn mechanics that follow every successful
// action: the turn counter, the blood moon, the lamp, safe-room
// recovery, and the severe-sanity effects.
func (e *Engine) endTurn(gs *state.GameState, res *ActionResult) {
	gs.Turns++

	moonWasUp := mechanics.BloodMoonRisen(gs.Turns - 1)
	moonUp := mechanics.BloodMoonRisen(gs.Turns)
	if moonUp && !moonWasUp {
		res.notify("Through every window at once, a blood moon heaves itself above the treeline.")
	}
	if !moonUp && moonWasUp {
		res.notify("The red light drains from the sky. The ordinary dark feels almost kind.")
	}

	res.notify(mechanics.LampTick(gs, moonUp)...)

	if room, ok := e.world.GetRoom(gs.Room); ok && room.IsSafe {
		before := gs.Sanity
		mechanics.ApplySanityGain(gs, mechanics.SafeRoomRestore)
		if gs.Sanity > before {
			res.SanityDelta += gs.Sanity - before
			res.notify("The stillness of this room steadies your thoughts.")
		}
	}

	// Severe tier: the manor occasionally walks the player somewhere
	// else. One chance in six each turn, through a random passable exit.
	if mechanics.TierFor(gs.Sanity) == mechanics.TierSevere {
		if e.roll(6) == 1 {
			e.forceRelocation(gs, res)
		}
	}
}

// forceRelocation drags the player through a random exit they could
// legally take. No passable exit means no relocation.
func (e *Engine) forceRelocation(gs *state.GameState, res *ActionResult) {
	room, ok := e.world.GetRoom(gs.Room)
	if !ok {
		return
	}
	var open []string
	for dir := range room.Exits {
		if gate, gated := room.Gates[dir]; gated && gs.FlagIsTrue(gate.Flag) != gate.Value {
			continue
		}
		open = append(open, dir)
	}
	if len(open) == 0 {
		return
	}
	// Map iteration order is random; sort for a deterministic pick
	// under an injected roll.
	sort.Strings(open)
	dir := open[e.roll(len(open))-1]
	dest := room.Exits[dir]

	gs.Room = dest
	gs.MarkVisited(dest)
	res.RoomChanged = true
	res.Room = dest
	res.notify("You blink, and the room is a different room. You do not remember walking here.")
	if destRoom, ok := e.world.GetRoom(dest); ok {
		e.applyRoomEntry(gs, res, destRoom)
	}
}

// applyRoomEntry applies entry meter effects for hazardous rooms.
func (e *Engine) applyRoomEntry(gs *state.GameState, res *ActionResult, room *world.Room) {
	if !room.IsHazardous || room.HazardDrain <= 0 {
		return
	}
	drain := room.HazardDrain
	if mechanics.BloodMoonRisen(gs.Turns) {
		drain = mechanics.HazardDrainUnderMoon(drain)
	}
	before := gs.Sanity
	res.notify(mechanics.ApplySanityLoss(gs, drain)...)
	res.SanityDelta += gs.Sanity - before
}
