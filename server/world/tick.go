package world

import (
	"github.com/kitemc/server/server/internal/cube"
)

// VoidCullY is the Y below which any entity is removed outright (spec.md
// §4.2 step 1, and the "ultimate recovery" from physics degeneracy per
// spec.md §7).
const VoidCullY = -64

// SpawnEntity assigns e a fresh, monotonically increasing id, inserts it at
// the end of the insertion order (so it is ticked starting next tick, not
// this one, per spec.md §5), and indexes its residency chunk.
func (w *World) SpawnEntity(e Entity) EntityID {
	w.nextEntityID++
	id := w.nextEntityID
	e.Base().id = id
	w.entities[id] = e
	w.entityOrder = append(w.entityOrder, id)
	cp := ChunkPosFromBlock(cube.PosFromVec3(e.Base().Pos))
	w.indexEntity(id, cp)
	w.emit(EntitySpawnEvent{ID: id})
	return id
}

// RemoveEntity deletes e from the world entirely: the entity table, the
// insertion order, and the chunk residency index.
func (w *World) RemoveEntity(id EntityID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	delete(w.culled, id)
	if cp, ok := w.entityChunkPos[id]; ok {
		w.deindexEntity(id, cp)
		delete(w.entityChunkPos, id)
	}
	for i, eid := range w.entityOrder {
		if eid == id {
			w.entityOrder = append(w.entityOrder[:i], w.entityOrder[i+1:]...)
			break
		}
	}
	w.emit(EntityDespawnEvent{ID: id})
}

// Entity returns the live entity with the given id, if any.
func (w *World) Entity(id EntityID) (Entity, bool) {
	e, ok := w.entities[id]
	return e, ok
}

// EntitiesInChunk returns the ids of entities currently resident in the given
// chunk, per the entities_by_chunk index (spec.md §3).
func (w *World) EntitiesInChunk(pos ChunkPos) []EntityID {
	set, ok := w.entitiesByChunk[pos]
	if !ok {
		return nil
	}
	ids := make([]EntityID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}

func (w *World) indexEntity(id EntityID, cp ChunkPos) {
	set, ok := w.entitiesByChunk[cp]
	if !ok {
		set = make(map[EntityID]struct{})
		w.entitiesByChunk[cp] = set
	}
	set[id] = struct{}{}
	w.entityChunkPos[id] = cp
}

func (w *World) deindexEntity(id EntityID, cp ChunkPos) {
	if set, ok := w.entitiesByChunk[cp]; ok {
		delete(set, id)
		if len(set) == 0 {
			delete(w.entitiesByChunk, cp)
		}
	}
}

// updateResidency recomputes the chunk residency index for id after its
// position may have changed during a tick, maintaining the "exactly one
// membership per live entity, matching floor(pos/16)" invariant (spec.md
// §3). An entity whose new chunk is not loaded is marked culled.
func (w *World) updateResidency(id EntityID, e Entity) {
	cp := ChunkPosFromBlock(cube.PosFromVec3(e.Base().Pos))
	old, had := w.entityChunkPos[id]
	if had && old == cp {
		w.culled[id] = !w.ChunkLoaded(cube.PosFromVec3(e.Base().Pos))
		return
	}
	if had {
		w.deindexEntity(id, old)
	}
	w.indexEntity(id, cp)
	w.culled[id] = !w.ChunkLoaded(cube.PosFromVec3(e.Base().Pos))
}

// Tick advances the world by a single 50ms step: scheduled block ticks,
// random ticks, block-entity ticks, and the entity pipeline, in that order
// (spec.md §4.1/§4.2). currentTick is the absolute tick counter, passed on
// to every block-entity and entity Tick call. wantsRandomTick and
// onRandomTick/onScheduledTick are injected by the caller (package server)
// so package world never needs to import the block registry.
func (w *World) Tick(currentTick int64, wantsRandomTick func(id uint8) bool, onScheduledTick, onRandomTick func(w *World, pos cube.Pos, id, meta uint8)) {
	w.Time++

	for _, t := range w.scheduled.DrainDue(w.Time) {
		if onScheduledTick != nil {
			id, meta := w.Block(t.Pos)
			if id == t.Block {
				onScheduledTick(w, t.Pos, t.Block, meta)
			}
		}
	}

	if wantsRandomTick != nil && onRandomTick != nil {
		w.TickRandomBlocks(wantsRandomTick, onRandomTick)
	}

	for _, be := range w.blockEntities {
		be.Tick(w, currentTick)
	}

	w.tickEntities(currentTick)
}

// TickRandomBlocks samples RandomTicksPerChunk random positions per loaded
// chunk and invokes onRandomTick for each whose block wants random ticks
// (spec.md §4.1). wantsRandomTick classifies a block id.
func (w *World) TickRandomBlocks(wantsRandomTick func(id uint8) bool, onRandomTick func(w *World, pos cube.Pos, id, meta uint8)) {
	for cp := range w.chunks {
		c := w.chunks[cp]
		for i := 0; i < RandomTicksPerChunk; i++ {
			x := int(w.Rand.Int31n(16))
			y := int(w.Rand.Int31n(128))
			z := int(w.Rand.Int31n(16))
			id, meta := c.Block(x, y, z)
			if wantsRandomTick(id) {
				pos := cube.Pos{int(cp[0])*16 + x, y, int(cp[1])*16 + z}
				onRandomTick(w, pos, id, meta)
			}
		}
	}
}

// tickEntities runs the entity tick pipeline in insertion order (spec.md
// §5). Each entity's record is removed from the table for the duration of
// its own Tick call and restored afterwards unless it asked to be removed,
// satisfying the "move ownership out of the world" rule of spec.md §3/§9
// without needing unsafe aliasing tricks.
func (w *World) tickEntities(currentTick int64) {
	order := append([]EntityID(nil), w.entityOrder...)
	for _, id := range order {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		if w.culled[id] {
			continue
		}
		base := e.Base()
		if base.Pos[1] < VoidCullY {
			w.RemoveEntity(id)
			continue
		}

		delete(w.entities, id)
		remove := e.Tick(w, currentTick)
		if !remove {
			w.entities[id] = e
			w.updateResidency(id, e)
		} else {
			w.RemoveEntity(id)
		}
	}
}
