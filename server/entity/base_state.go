package entity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// fireDamagePeriod is the legacy burn-damage period in ticks (spec.md §4.2
// common post-tick state). TickBaseState applies no burn damage, so nothing
// reads this constant.
const fireDamagePeriod = 20

// pickupRadius is how far a CanPickup entity reaches to collect nearby item
// entities (spec.md §4.2 step 5).
const pickupRadius = 1.0

// pickupTarget is implemented by entity kinds that can be collected by a
// CanPickup entity (currently only Item). Used instead of a global id
// registry so scanPickups never needs bookkeeping outside the entity table
// itself.
type pickupTarget interface {
	world.Entity
	pickupItem() bool
}

// TickBaseState runs the state every entity kind shares after its own
// movement/behaviour has run for the tick: lava/fire tracking, fire-time
// decay (no burn damage is applied), and — for entities marked CanPickup — a scan of the entity's
// own chunk neighbourhood for item entities to collect. Every kind's Tick
// should call this once, after moving itself, per spec.md §4.2 "tick_base_state".
func TickBaseState(w *world.World, b *world.EntityBase, currentTick int64) {
	pos := cube.PosFromVec3(b.Pos)
	id, _ := w.Block(pos)
	b.InLava = id == uint8(block.Lava) || id == uint8(block.StillLava)

	if b.InLava {
		b.FireTime = 160
	}
	if b.FireTime > 0 {
		b.FireTime--
		// Periodic fire damage (every fireDamagePeriod ticks) is intentionally
		// never applied: the source's equivalent branch was itself
		// unreachable, and the observable behavior (burning is cosmetic,
		// never lethal) is preserved rather than guessed at.
	}

	if b.CanPickup {
		scanPickups(w, b)
	}
}

// scanPickups collects any Item entity whose bounding box, grown by
// pickupRadius, overlaps b's, emitting a pickup event and removing the
// target rather than mutating it directly (spec.md §9 "World events
// replace direct callbacks").
func scanPickups(w *world.World, b *world.EntityBase) {
	cp := world.ChunkPosFromBlock(cube.PosFromVec3(b.Pos))
	reach := b.BBox().Grow(pickupRadius)
	for dx := int32(-1); dx <= 1; dx++ {
		for dz := int32(-1); dz <= 1; dz++ {
			for _, id := range w.EntitiesInChunk(world.ChunkPos{cp[0] + dx, cp[1] + dz}) {
				if id == b.ID() {
					continue
				}
				other, ok := w.Entity(id)
				if !ok {
					continue
				}
				target, isItem := other.(pickupTarget)
				if !isItem || !target.pickupItem() {
					continue
				}
				if reach.IntersectsWith(target.Base().BBox()) {
					w.EmitPickup(b.ID(), id)
					w.RemoveEntity(id)
				}
			}
		}
	}
}
