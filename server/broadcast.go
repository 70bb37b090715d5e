package server

import (
	"math"

	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/protocol"
	"github.com/kitemc/server/server/session"
	"github.com/kitemc/server/server/world"
)

// ViewRangeChunks is the default per-player view range events are filtered
// to, spec.md §4.1 ("filtered by per-player view range (default 10
// chunks)").
const ViewRangeChunks = 10

// broadcastEvents is the server world wrapper of spec.md §2: it drains one
// world's event queue and turns each event into the outbound packet(s) the
// sessions currently tracking that world should see, using a Chebyshev
// chunk-distance filter around each session's player. Not every Event kind
// has a useful wire translation yet (EntityMetadataEvent, EntityPickupEvent
// and BlockEntityUpdateEvent carry no packet in this minimal wrapper, a
// documented gap rather than a silent drop); the ones that move a client's
// view of the world (block changes, entity spawn/move/despawn, weather) do.
func (s *Server) broadcastEvents(w *world.World, events []world.Event) {
	if len(events) == 0 {
		return
	}
	var recipients []*session.Session
	for _, sess := range s.Sessions() {
		if sw, ok := sess.World(); ok && sw == w {
			recipients = append(recipients, sess)
		}
	}
	if len(recipients) == 0 {
		return
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case world.BlockChangeEvent:
			cp := world.ChunkPosFromBlock(e.Pos)
			pkt := protocol.BlockChange{
				X: int32(e.Pos[0]), Y: int32(e.Pos[1]), Z: int32(e.Pos[2]),
				BlockID: e.ID, BlockMetadata: e.Meta,
			}
			sendToChunk(recipients, cp, pkt)
		case world.EntitySpawnEvent:
			ent, ok := w.Entity(e.ID)
			if !ok {
				continue
			}
			pos := ent.Base().Pos
			cp := world.ChunkPosFromBlock(cube.PosFromVec3(pos))
			sendToChunk(recipients, cp, protocol.EntitySpawn{
				EntityID: int32(e.ID), X: pos[0], Y: pos[1], Z: pos[2],
			})
		case world.EntityMoveEvent:
			ent, ok := w.Entity(e.ID)
			if !ok {
				continue
			}
			base := ent.Base()
			cp := world.ChunkPosFromBlock(cube.PosFromVec3(base.Pos))
			sendToChunk(recipients, cp, protocol.EntityTeleport{
				EntityID: int32(e.ID),
				X:        base.Pos[0], Y: base.Pos[1], Z: base.Pos[2],
				YawDeg:   float32(base.Yaw * 180 / math.Pi),
				PitchDeg: float32(base.Pitch * 180 / math.Pi),
			})
		case world.EntityDespawnEvent:
			// The entity is already gone from the world by the time its
			// despawn event drains, so there is no position left to filter
			// by; broadcast to every tracker of this world instead.
			for _, sess := range recipients {
				_ = sess.Send(protocol.EntityDespawn{EntityID: int32(e.ID)})
			}
		case world.WeatherChangeEvent:
			msg := "0"
			if e.Weather != world.Clear {
				msg = "1"
			}
			for _, sess := range recipients {
				_ = sess.Send(protocol.Notification{Message: msg})
			}
		}
	}
}

func sendToChunk(recipients []*session.Session, cp world.ChunkPos, pkt protocol.Packet) {
	for _, sess := range recipients {
		if sess.Player == nil {
			continue
		}
		pcp := world.ChunkPosFromBlock(cube.PosFromVec3(sess.Player.Pos()))
		if chunkDistance(pcp, cp) > ViewRangeChunks {
			continue
		}
		_ = sess.Send(pkt)
	}
}

func chunkDistance(a, b world.ChunkPos) int32 {
	dx := a[0] - b[0]
	if dx < 0 {
		dx = -dx
	}
	dz := a[1] - b[1]
	if dz < 0 {
		dz = -dz
	}
	if dx > dz {
		return dx
	}
	return dz
}
