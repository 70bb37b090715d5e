package entity

import (
	"github.com/kitemc/server/server/entity/ai"
	"github.com/kitemc/server/server/world"
)

// LivingKind names one of the hostile mob kinds spec.md §4.3's dungeon
// spawner can produce.
type LivingKind string

const (
	Skeleton LivingKind = "Skeleton"
	Zombie   LivingKind = "Zombie"
	Spider   LivingKind = "Spider"
)

// livingStats holds the per-kind constants that differentiate otherwise
// identical Living entities (spec.md §4.2.3 names kind only as a dispatch
// tag, not a separate struct per mob).
var livingStats = map[LivingKind]struct {
	Width, Height float64
	Health        int16
}{
	Skeleton: {Width: 0.6, Height: 1.8, Health: 20},
	Zombie:   {Width: 0.6, Height: 1.8, Health: 20},
	Spider:   {Width: 1.4, Height: 0.9, Health: 16},
}

// Living is every hostile/passive creature entity: a single struct
// discriminated by Kind, carrying an AI state machine, rather than a
// separate Go type per mob (spec.md §3's tagged-sum model, and spec.md §9's
// "avoid virtual-dispatch hierarchies per mob").
type Living struct {
	*world.EntityBase
	Kind LivingKind

	move MovementComputer
	AI   ai.State
}

// NewLiving returns a Living entity of the given kind at base's position.
func NewLiving(base *world.EntityBase, kind LivingKind) *Living {
	stats := livingStats[kind]
	base.Width = stats.Width
	base.Height = stats.Height
	base.Hoff = 0
	base.Health = stats.Health
	base.CanPickup = false
	base.Controlled = false
	base.RebuildBBox()
	return &Living{
		EntityBase: base,
		Kind:       kind,
		move:       MovementComputer{Gravity: 0.08, Drag: 0.02},
	}
}

// Tick runs one step of the creature AI state machine (spec.md §4.2.3),
// applies the resulting velocity through the shared collision step, and
// runs the common post-tick state.
func (l *Living) Tick(w *world.World, currentTick int64) (remove bool) {
	if l.Health <= 0 {
		return true
	}

	l.AI.Step(w, l.EntityBase, currentTick)

	newPos, newVel := l.move.TickMovement(w, l.Pos, l.BBox(), l.Vel)
	l.Pos, l.Vel = newPos, newVel
	l.OnGround = l.move.OnGround()
	l.RebuildBBox()
	w.EmitMoved(l.ID())

	TickBaseState(w, l.EntityBase, currentTick)
	return false
}
