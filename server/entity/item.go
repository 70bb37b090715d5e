package entity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/world"
)

// ItemPickupDelay is how many ticks a dropped item waits before it can be
// collected, so an entity that just broke the block it dropped from doesn't
// instantly re-absorb it (spec.md §4.2 step 5).
const ItemPickupDelay = 10

// ItemDespawnAge is how many ticks an uncollected item entity survives
// before despawning.
const ItemDespawnAge = 6000

// Item is a dropped item stack: it falls under gravity, slides to a stop,
// and is removed either once picked up or once it reaches ItemDespawnAge.
type Item struct {
	*world.EntityBase
	Stack block.ItemStack

	move  MovementComputer
	delay uint32
}

// NewItem returns an Item entity at pos holding stack.
func NewItem(base *world.EntityBase, stack block.ItemStack) *Item {
	base.Width = 0.25
	base.Height = 0.25
	base.Hoff = 0.125
	base.CanPickup = false
	base.Persistent = false
	base.RebuildBBox()
	return &Item{
		EntityBase: base,
		Stack:      stack,
		move:       MovementComputer{Gravity: 0.04, Drag: 0.02},
		delay:      ItemPickupDelay,
	}
}

func (i *Item) pickupItem() bool { return i.delay == 0 }

// Tick applies gravity/drag physics, ages the item towards its despawn
// limit, and runs the shared post-tick state.
func (i *Item) Tick(w *world.World, currentTick int64) (remove bool) {
	if i.delay > 0 {
		i.delay--
	}
	i.Lifetime++
	if i.Lifetime >= ItemDespawnAge {
		return true
	}

	newPos, newVel := i.move.TickMovement(w, i.Pos, i.BBox(), i.Vel)
	i.Pos, i.Vel = newPos, newVel
	i.OnGround = i.move.OnGround()
	i.RebuildBBox()
	w.EmitMoved(i.ID())

	TickBaseState(w, i.EntityBase, currentTick)
	return false
}
