package entity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// FallingBlock is the transient entity a gravity-affected block (sand,
// gravel) becomes while it drops: spec.md §4.2 lists it alongside Item and
// Living as one of the legacy protocol's three non-player entity kinds.
// It falls straight down under gravity with no drag and, once it lands,
// turns back into a real block in the world rather than lingering as an
// entity.
type FallingBlock struct {
	*world.EntityBase
	BlockID   uint8
	BlockMeta uint8

	move MovementComputer
}

// NewFallingBlock returns a FallingBlock entity at base's position that will
// place (blockID, blockMeta) once it lands.
func NewFallingBlock(base *world.EntityBase, blockID, blockMeta uint8) *FallingBlock {
	base.Width = 0.98
	base.Height = 0.98
	base.Hoff = 0.49
	base.CanPickup = false
	base.Persistent = false
	base.RebuildBBox()
	return &FallingBlock{
		EntityBase: base,
		BlockID:    blockID,
		BlockMeta:  blockMeta,
		move:       MovementComputer{Gravity: 0.04, Drag: 0},
	}
}

// Tick falls the block one step and, once it has come to rest on the
// ground, places it back into the world and removes the entity.
func (f *FallingBlock) Tick(w *world.World, currentTick int64) (remove bool) {
	newPos, newVel := f.move.TickMovement(w, f.Pos, f.BBox(), f.Vel)
	f.Pos, f.Vel = newPos, newVel
	f.OnGround = f.move.OnGround()
	f.RebuildBBox()
	w.EmitMoved(f.ID())

	if f.OnGround {
		pos := cube.PosFromVec3(f.Pos)
		if id, _ := w.Block(pos); id == uint8(block.Air) {
			w.SetBlock(pos, f.BlockID, f.BlockMeta)
		}
		return true
	}

	TickBaseState(w, f.EntityBase, currentTick)
	return false
}
