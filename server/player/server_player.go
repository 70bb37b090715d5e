package player

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/entity"
	"github.com/kitemc/server/server/world"
)

// ServerPlayer is the live, in-world half of a connected client: a Human
// entity plus the OfflinePlayer snapshot it was restored from or created
// from (spec.md §4.4's "Insert a ServerPlayer into the world's player
// vector"). The session package drives it from inbound packets; the world
// package drives its Human entity like any other entity during World.Tick.
type ServerPlayer struct {
	Offline *OfflinePlayer
	Human   *entity.Human

	id world.EntityID
	w  *world.World
}

// Spawn inserts a new Human entity into w at off's restored position and
// returns the ServerPlayer wrapping it, the step spec.md §4.4 describes
// happening on the Handshaking -> Playing transition.
func Spawn(w *world.World, off *OfflinePlayer) *ServerPlayer {
	pos, _ := off.RestorePos()
	h := entity.NewHuman(world.NewEntityBase(0, pos, 0))
	h.Base().Yaw, h.Base().Pitch = off.Yaw, off.Pitch
	id := w.SpawnEntity(h)
	return &ServerPlayer{Offline: off, Human: h, id: id, w: w}
}

// ID returns the player's entity id within its current world.
func (p *ServerPlayer) ID() world.EntityID { return p.id }

// Pos returns the player's current live position (unraised, unlike
// OfflinePlayer.pos which is stored raised by saveYOffset).
func (p *ServerPlayer) Pos() mgl64.Vec3 { return p.Human.Base().Pos }

// Stance returns the wire-only stance value that accompanies Pos() on a
// PositionLook packet (spec.md §4.5).
func (p *ServerPlayer) Stance() float64 {
	return p.Human.Base().Pos[1] + stanceYOffset
}

// SetLook overwrites yaw/pitch, as reported by an inbound PositionLook
// packet.
func (p *ServerPlayer) SetLook(yaw, pitch float64) {
	p.Human.Base().Yaw, p.Human.Base().Pitch = yaw, pitch
}

// MoveTo overwrites the player's position directly from a client-reported
// PositionLook packet, stance discarded since it is derivable from pos
// (spec.md §4.5). No collision check is made here: the world's collision
// step limits only the moves of later ticks, and does not push the player
// out of a block that this position already overlaps.
func (p *ServerPlayer) MoveTo(pos mgl64.Vec3) {
	p.Human.Teleport(pos)
}

// Despawn removes the player's Human entity from its world, capturing its
// final position back into the OfflinePlayer snapshot (spec.md §4.5, "saved
// on disconnect/kick").
func (p *ServerPlayer) Despawn() {
	p.Offline.Save(p.Human.Base().Pos, p.Human.Base().Yaw, p.Human.Base().Pitch)
	p.w.RemoveEntity(p.id)
}
