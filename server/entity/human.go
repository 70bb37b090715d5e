package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/world"
)

// PlayerWidth and PlayerHeight are the fixed player hitbox dimensions
// spec.md §4.4's PositionLook/collision handling assumes.
const (
	PlayerWidth  = 0.6
	PlayerHeight = 1.8
)

// Human is the in-world entity a connected client drives: unlike Living, its
// velocity comes from the client's own PositionLook packets rather than an
// AI state machine (spec.md §4.4), so Tick runs the shared gravity, drag and
// collision step against whatever Vel/Pos the session handler last wrote in.
type Human struct {
	*world.EntityBase

	move MovementComputer
}

// NewHuman returns a Human entity at base's position, ready to be driven by
// a ServerPlayer.
func NewHuman(base *world.EntityBase) *Human {
	base.Width = PlayerWidth
	base.Height = PlayerHeight
	base.Hoff = 0
	base.CanPickup = true
	base.Controlled = true
	base.Persistent = true
	base.RebuildBBox()
	return &Human{
		EntityBase: base,
		move:       MovementComputer{Gravity: 0.08, Drag: 0.02},
	}
}

// Tick runs one step of gravity, drag and collision against the Human's
// current Vel, the same pipeline Living and Item use (spec.md §4.2.1). The
// collision step limits only this tick's move; it does not push the Human
// out of a block that a position set by Teleport already overlaps.
func (h *Human) Tick(w *world.World, currentTick int64) (remove bool) {
	b := h.Base()
	pos, vel := h.move.TickMovement(w, b.Pos, b.BBox(), b.Vel)
	b.Pos, b.Vel = pos, vel
	b.OnGround = h.move.OnGround()
	b.RebuildBBox()
	w.EmitMoved(h.ID())

	TickBaseState(w, b, currentTick)
	return false
}

// Teleport overwrites the Human's position directly, bypassing collision,
// used for respawn and the restore-from-OfflinePlayer path (spec.md §4.5).
func (h *Human) Teleport(pos mgl64.Vec3) {
	b := h.Base()
	b.Pos = pos
	b.Vel = mgl64.Vec3{}
	b.RebuildBBox()
	b.PosDirty = true
}
