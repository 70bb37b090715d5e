// Package world implements the chunked block grid, entity table and event
// queue that make up the authoritative simulation state (spec.md §3-§4.1).
// Adapted from the teacher's server/world/world.go: the chunk map, entity
// table with a cached per-entity state, scratch scan slices and the
// scheduled-update queue are kept, generalised from Dragonfly's on-demand
// Bedrock world to the legacy two-phase-generated, tick-scheduled world this
// spec describes.
package world

import (
	"log/slog"

	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/kitemc/server/server/world/chunk"
)

// Dimension selects the sky-colour/feature-set defaults of a World.
type Dimension uint8

const (
	Overworld Dimension = iota
	Nether
)

// Weather is the current precipitation state of a World.
type Weather uint8

const (
	Clear Weather = iota
	Rain
	Thunder
)

// RandomTicksPerChunk is the number of random positions sampled per loaded
// chunk every tick (spec.md §4.1, "typically 80").
const RandomTicksPerChunk = 80

// BlockEntity is extra state attached to a single block position: chests,
// furnaces, spawners, signs (spec.md glossary). Only Furnace, Spawner and
// Piston have non-trivial Tick implementations (spec.md §9); the rest are
// no-ops.
type BlockEntity interface {
	Pos() cube.Pos
	// BlockID is the id this block-entity is valid for, used to enforce the
	// "chest <-> Chest" consistency invariant (spec.md §3).
	BlockID() uint8
	Tick(w *World, currentTick int64)
}

// IsAirFunc reports whether a block id counts as empty for height-map
// purposes. Injected rather than imported from package block to avoid a
// world->block->world style dependency loop.
type IsAirFunc func(id uint8) bool

// World holds everything the spec.md §3 "World" data model describes: the
// chunk map, entity table, block-entity table, scheduled-tick queue, event
// queue and shared PRNG. A nil *World is not usable.
type World struct {
	log *slog.Logger

	Name      string
	Seed      int64
	Dimension Dimension
	Weather   Weather
	Time      uint64

	isAir IsAirFunc

	chunks map[ChunkPos]*chunk.Chunk

	entities        map[EntityID]Entity
	entityOrder     []EntityID
	entityChunkPos  map[EntityID]ChunkPos
	entitiesByChunk map[ChunkPos]map[EntityID]struct{}
	culled          map[EntityID]bool
	nextEntityID    EntityID

	blockEntities map[cube.Pos]BlockEntity

	scheduled *tickQueue
	events    []Event

	Rand *legacyrand.Rand

	// scratchRandomPositions and scratchPickup are scratch-buffer fields
	// that no code path reads or writes; the random-tick and pickup scans
	// keep their own locals.
	scratchRandomPositions []cube.Pos
	scratchPickup          []EntityID
}

// New constructs an empty World. isAir classifies a block id as air for
// height-map purposes; pass nil to treat only id 0 as air.
func New(name string, seed int64, dim Dimension, log *slog.Logger, isAir IsAirFunc) *World {
	if log == nil {
		log = slog.Default()
	}
	if isAir == nil {
		isAir = func(id uint8) bool { return id == 0 }
	}
	return &World{
		log:             log,
		Name:            name,
		Seed:            seed,
		Dimension:       dim,
		isAir:           isAir,
		chunks:          make(map[ChunkPos]*chunk.Chunk),
		entities:        make(map[EntityID]Entity),
		entityChunkPos:  make(map[EntityID]ChunkPos),
		entitiesByChunk: make(map[ChunkPos]map[EntityID]struct{}),
		culled:          make(map[EntityID]bool),
		blockEntities:   make(map[cube.Pos]BlockEntity),
		scheduled:       newTickQueue(),
		Rand:            legacyrand.New(seed),
	}
}

// LoadChunk installs c at pos, replacing any previous chunk there.
func (w *World) LoadChunk(pos ChunkPos, c *chunk.Chunk) {
	w.chunks[pos] = c
}

// UnloadChunk removes the chunk at pos. Entities resident there become
// culled (held but not ticked) until the chunk is loaded again.
func (w *World) UnloadChunk(pos ChunkPos) {
	delete(w.chunks, pos)
}

// Chunk returns the loaded chunk at pos, or nil if it is not loaded.
func (w *World) Chunk(pos ChunkPos) *chunk.Chunk {
	return w.chunks[pos]
}

// ChunkLoaded reports whether the chunk containing blockPos is loaded.
func (w *World) ChunkLoaded(blockPos cube.Pos) bool {
	_, ok := w.chunks[ChunkPosFromBlock(blockPos)]
	return ok
}

func localCoords(pos cube.Pos) (lx, ly, lz int) {
	cx, cz := pos.ChunkPos()
	lx = pos[0] - int(cx)*16
	lz = pos[2] - int(cz)*16
	return lx, pos[1], lz
}

// Block returns the id and metadata at an absolute position. Missing chunks
// return the air sentinel (spec.md §7), never an error.
func (w *World) Block(pos cube.Pos) (id, meta uint8) {
	c, ok := w.chunks[ChunkPosFromBlock(pos)]
	if !ok {
		return 0, 0
	}
	lx, ly, lz := localCoords(pos)
	return c.Block(lx, ly, lz)
}

// SetBlock writes a block without notifying neighbours.
func (w *World) SetBlock(pos cube.Pos, id, meta uint8) {
	w.setBlock(pos, id, meta, false)
}

// SetBlockNotify writes a block and pushes neighbour-change notifications to
// the six adjacent positions, for blocks that may react such as redstone,
// falling sand and water (spec.md §4.1).
func (w *World) SetBlockNotify(pos cube.Pos, id, meta uint8, notify func(neighbour cube.Pos)) {
	w.setBlock(pos, id, meta, true)
	if notify != nil {
		for _, f := range cube.Faces {
			notify(pos.Side(f))
		}
	}
}

func (w *World) setBlock(pos cube.Pos, id, meta uint8, removeStaleBlockEntity bool) {
	c, ok := w.chunks[ChunkPosFromBlock(pos)]
	if !ok {
		return
	}
	lx, ly, lz := localCoords(pos)
	c.SetBlock(lx, ly, lz, id, meta)
	if removeStaleBlockEntity {
		if be, exists := w.blockEntities[pos]; exists && be.BlockID() != id {
			delete(w.blockEntities, pos)
		}
	}
	w.emit(BlockChangeEvent{Pos: pos, ID: id, Meta: meta})
}

// HeightMap returns the topmost non-air Y of the column containing pos, or 0
// if the chunk is not loaded.
func (w *World) HeightMap(pos cube.Pos) uint8 {
	c, ok := w.chunks[ChunkPosFromBlock(pos)]
	if !ok {
		return 0
	}
	lx, _, lz := localCoords(pos)
	return c.HeightMap(lx, lz, w.isAir)
}

// SkyLight returns the sky light level at pos, or 0 if the chunk is not
// loaded.
func (w *World) SkyLight(pos cube.Pos) uint8 {
	c, ok := w.chunks[ChunkPosFromBlock(pos)]
	if !ok {
		return 0
	}
	lx, ly, lz := localCoords(pos)
	return c.SkyLight(lx, ly, lz)
}

// BlockEntityAt returns the block-entity at pos, if any.
func (w *World) BlockEntityAt(pos cube.Pos) (BlockEntity, bool) {
	be, ok := w.blockEntities[pos]
	return be, ok
}

// SetBlockEntity installs be at its own position. The caller is responsible
// for having just set the matching block id, preserving the "at most one
// block-entity per position, consistent with the block id" invariant
// (spec.md §3).
func (w *World) SetBlockEntity(be BlockEntity) {
	w.blockEntities[be.Pos()] = be
	w.emit(BlockEntityUpdateEvent{Pos: be.Pos()})
}

// RemoveBlockEntity removes any block-entity at pos.
func (w *World) RemoveBlockEntity(pos cube.Pos) {
	delete(w.blockEntities, pos)
}

// ScheduleTick schedules block at pos to be ticked delay ticks from now
// (spec.md §4.1).
func (w *World) ScheduleTick(pos cube.Pos, blockID uint8, delay uint64) {
	w.scheduled.Schedule(pos, blockID, w.Time+delay)
}

// SetWeather updates the weather and emits a change event if it actually
// changed.
func (w *World) SetWeather(weather Weather) {
	if w.Weather == weather {
		return
	}
	w.Weather = weather
	w.emit(WeatherChangeEvent{Weather: weather})
}

// PlayerNearby reports whether any Controlled entity (a player, as opposed
// to an AI-driven creature) lies within radius blocks of pos. Used by
// spawner block-entities to gate mob spawning on player proximity
// (spec.md §4.7).
func (w *World) PlayerNearby(pos cube.Pos, radius float64) bool {
	center := pos.Vec3()
	r2 := radius * radius
	for _, id := range w.entityOrder {
		e, ok := w.entities[id]
		if !ok {
			continue
		}
		b := e.Base()
		if !b.Controlled {
			continue
		}
		d := b.Pos.Sub(center)
		if d.Dot(d) <= r2 {
			return true
		}
	}
	return false
}
