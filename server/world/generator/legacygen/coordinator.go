package legacygen

import (
	"fmt"

	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// Populator places a feature spanning the 2x2 chunk neighbourhood at
// (pcx, pcz) with an 8-block offset (spec.md glossary "Populate"). r is
// seeded deterministically from world_seed xor (pcx, pcz) per spec.md §4.3.
type Populator interface {
	Populate(w *world.World, pcx, pcz int32, r *legacyrand.Rand)
}

// Generator coordinates the two-phase terrain/populate scheme. One
// Generator is shared read-only across workers; each worker owns its own
// Worker (private cache + staging world), per spec.md §5.
type Generator struct {
	seed       int64
	shared     *TerrainCache
	populators []Populator
}

// New returns a Generator for the given seed, running each populator (in
// order) over every chunk it populates.
func New(seed int64, populators ...Populator) *Generator {
	return &Generator{seed: seed, shared: NewTerrainCache(seed), populators: populators}
}

// Worker is a single chunk-generation worker: a private mutable terrain
// cache plus a private staging world used to run populate logic against.
// Exactly one goroutine may use a given Worker at a time.
type Worker struct {
	gen     *Generator
	private map[world.ChunkPos]*chunk.Chunk
	staging *world.World
}

// NewWorker returns a fresh Worker bound to g.
func (g *Generator) NewWorker() *Worker {
	return &Worker{
		gen:     g,
		private: make(map[world.ChunkPos]*chunk.Chunk),
		staging: world.New("staging", g.seed, world.Overworld, nil, nil),
	}
}

// corner identifies one of the four populate cells that cover a given
// target chunk, and the mask bit that populate cell sets on it.
type corner struct {
	dx, dz int32
	bit    uint8
}

var corners = [4]corner{
	{0, 0, chunk.PopulatedNN},
	{-1, 0, chunk.PopulatedPN},
	{0, -1, chunk.PopulatedNP},
	{-1, -1, chunk.PopulatedPP},
}

// Load runs spec.md §4.3's algorithm: ensure every populate cell covering
// (cx, cz) that hasn't yet run does so, then return the now-fully-populated
// chunk as a snapshot, removed from the staging world so "no chunk is ever
// seen twice" (spec.md §4.3 invariant).
func (wk *Worker) Load(cx, cz int32) (*chunk.Chunk, error) {
	target := wk.chunk(world.ChunkPos{cx, cz})
	if target.FullyPopulated() {
		return nil, fmt.Errorf("legacygen: chunk (%d,%d) already fully populated", cx, cz)
	}

	for _, c := range corners {
		pcx, pcz := cx+c.dx, cz+c.dz
		if target.Populated()&c.bit != 0 {
			continue
		}
		wk.populate(pcx, pcz)
	}

	if !target.FullyPopulated() {
		return nil, fmt.Errorf("legacygen: chunk (%d,%d) not fully populated after load", cx, cz)
	}

	pos := world.ChunkPos{cx, cz}
	delete(wk.private, pos)
	wk.staging.UnloadChunk(pos)
	return target, nil
}

// populate runs every registered Populator over the 2x2 neighbourhood at
// (pcx, pcz) and marks the corresponding corner bit on each of the four
// chunks it touches.
func (wk *Worker) populate(pcx, pcz int32) {
	touched := [4]world.ChunkPos{
		{pcx, pcz}, {pcx + 1, pcz}, {pcx, pcz + 1}, {pcx + 1, pcz + 1},
	}
	touchedBit := [4]uint8{
		chunk.PopulatedNN, chunk.PopulatedPN, chunk.PopulatedNP, chunk.PopulatedPP,
	}
	for _, p := range touched {
		c := wk.chunk(p)
		wk.staging.LoadChunk(p, c)
	}

	r := legacyrand.New(wk.gen.seed ^ (int64(pcx) << 32) ^ int64(uint32(pcz)))
	for _, pop := range wk.gen.populators {
		pop.Populate(wk.staging, pcx, pcz, r)
	}

	for i, p := range touched {
		wk.chunk(p).SetPopulatedBit(touchedBit[i])
	}
}

// chunk returns the chunk at pos from the private cache, falling back to the
// shared terrain cache (generating on a cache miss there), per spec.md §4.3
// step 3.
func (wk *Worker) chunk(pos world.ChunkPos) *chunk.Chunk {
	if c, ok := wk.private[pos]; ok {
		return c
	}
	c := wk.gen.shared.GetOrGenerate(pos).Clone()
	wk.private[pos] = c
	return c
}
