// Package actor wraps the d20 actor model for the hostile presences of
// the manor.
package actor

import (
	"fmt"

	"github.com/jwebster45206/d20"

	"github.com/hollowoak/manor-engine/pkg/world"
)

// Haunt is the runtime form of a hostile presence: the static catalog
// entry plus a d20 actor for the stat block, with remaining hit points
// tracked separately so a defeated haunt can sit at zero.
type Haunt struct {
	Spec  *world.Foe
	Actor *d20.Actor
	hp    int
}

// NewHaunt builds a Haunt from its catalog entry at the given remaining
// hit points. Remaining HP comes from game state so a half-banished
// haunt stays half-banished across the save/load round trip.
func NewHaunt(spec *world.Foe, remainingHP int) (*Haunt, error) {
	if spec == nil {
		return nil, fmt.Errorf("foe spec cannot be nil")
	}

	a, err := d20.NewActor(spec.Key).
		WithHP(spec.HP).
		WithAC(spec.AC).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build actor for foe %q: %w", spec.Key, err)
	}

	if remainingHP > spec.HP {
		remainingHP = spec.HP
	}
	if remainingHP < 0 {
		remainingHP = 0
	}

	return &Haunt{Spec: spec, Actor: a, hp: remainingHP}, nil
}

// HP returns the haunt's remaining hit points.
func (h *Haunt) HP() int {
	return h.hp
}

// AC returns the haunt's armor class from the d20 stat block.
func (h *Haunt) AC() int {
	if h.Actor == nil {
		return h.Spec.AC
	}
	return h.Actor.AC()
}

// TakeDamage reduces the haunt's hit points, flooring at zero, and
// returns the remaining total.
func (h *Haunt) TakeDamage(n int) int {
	if n <= 0 {
		return h.hp
	}
	h.hp -= n
	if h.hp < 0 {
		h.hp = 0
	}
	return h.hp
}

// IsDefeated reports whether the haunt has been dispelled.
func (h *Haunt) IsDefeated() bool {
	return h.hp <= 0
}
