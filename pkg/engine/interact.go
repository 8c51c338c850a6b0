package engine

import (
	"fmt"

	"github.com/hollowoak/manor-engine/pkg/command"
	"github.com/hollowoak/manor-engine/pkg/mechanics"
	"github.com/hollowoak/manor-engine/pkg/state"
	"github.com/hollowoak/manor-engine/pkg/world"
)

// onceFlag names the flag guarding a fire-once interaction.
func onceFlag(objKey string, verb command.Verb) string {
	return "did_" + string(verb) + "_" + objKey
}

// tryInteraction looks up and applies an authored interaction for a
// verb on an object. Returns nil when the object has no entry for the
// verb; the caller decides the stock response.
func (e *Engine) tryInteraction(verb command.Verb, obj *world.Object, gs *state.GameState) *ActionResult {
	inter, ok := obj.Interactions[string(verb)]
	if !ok {
		return nil
	}

	if inter.RequiresFlag != "" && !gs.FlagIsTrue(inter.RequiresFlag) {
		msg := inter.FailMessage
		if msg == "" {
			msg = "Nothing happens."
		}
		return fail(FailPrecondition, msg)
	}

	if inter.Once && gs.FlagIsTrue(onceFlag(obj.Key, verb)) {
		return succeed("Nothing further happens.")
	}

	res := succeed(e.selectText(inter.Response, inter.SpookyResponse, gs))

	if inter.Once {
		gs.SetFlag(onceFlag(obj.Key, verb), state.BoolFlag(true))
	}
	for name, value := range inter.SetsFlags {
		gs.SetFlag(name, state.BoolFlag(value))
	}
	if inter.SanityDelta != 0 {
		before := gs.Sanity
		res.notify(mechanics.ApplySanityDelta(gs, inter.SanityDelta)...)
		res.SanityDelta += gs.Sanity - before
	}
	if inter.ScoreDelta > 0 {
		wonBefore := gs.Won
		res.notify(mechanics.AddScore(gs, inter.ScoreDelta, e.world.VictoryScore)...)
		res.ScoreDelta += inter.ScoreDelta
		res.Won = gs.Won && !wonBefore
	}
	for _, item := range inter.RevealsItems {
		gs.AddToRoom(gs.Room, item)
	}
	return res
}

// handleGentleVerb covers harmless manipulation: push, pull, turn,
// touch, ring, knock. Authored interactions fire; otherwise the world
// shrugs without changing.
func (e *Engine) handleGentleVerb(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, fmt.Sprintf("%s what?", titleVerb(cmd.Verb)))
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if res := e.tryInteraction(cmd.Verb, obj, gs); res != nil {
		return res
	}
	return succeed(fmt.Sprintf("You %s the %s. Nothing happens.", string(cmd.Verb), obj.Name))
}

// handleHarshVerb covers destructive or consuming manipulation: break,
// burn, throw, give, eat, drink, wear, use. Without an authored
// interaction these are refused rather than quietly absorbed.
func (e *Engine) handleHarshVerb(cmd command.ParsedCommand, gs *state.GameState) *ActionResult {
	if cmd.Object == "" {
		return fail(FailPrecondition, fmt.Sprintf("%s what?", titleVerb(cmd.Verb)))
	}
	obj, ok := e.resolveObject(cmd.Object, gs)
	if !ok {
		return fail(FailReferentNotFound, fmt.Sprintf("You see no %s here.", cmd.Object))
	}
	if res := e.tryInteraction(cmd.Verb, obj, gs); res != nil {
		return res
	}
	return fail(FailPrecondition, fmt.Sprintf("You can't %s the %s.", string(cmd.Verb), obj.Name))
}

// titleVerb capitalizes a verb for "Take what?" style prompts.
func titleVerb(v command.Verb) string {
	s := string(v)
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
