package legacygen

import (
	"sync"

	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// TerrainCache is the shared, lock-protected cache of terrain-only chunks
// described in spec.md §5: workers race to generate a given chunk's terrain,
// and the loser's result is discarded via InsertIfAbsent.
type TerrainCache struct {
	mu    sync.RWMutex
	seed  int64
	cache map[world.ChunkPos]*chunk.Chunk
}

// NewTerrainCache returns an empty cache for the given world seed.
func NewTerrainCache(seed int64) *TerrainCache {
	return &TerrainCache{seed: seed, cache: make(map[world.ChunkPos]*chunk.Chunk)}
}

// Get returns the cached terrain chunk at pos, if present.
func (c *TerrainCache) Get(pos world.ChunkPos) (*chunk.Chunk, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ch, ok := c.cache[pos]
	return ch, ok
}

// GetOrGenerate returns the cached terrain chunk at pos, generating and
// racing to insert it if absent. Two callers racing on the same pos both
// generate (terrain generation is pure, so this is safe/wasteful rather than
// unsafe) but only the first insertion is kept — "if two workers raced, keep
// the first" (spec.md §4.3 step 3).
func (c *TerrainCache) GetOrGenerate(pos world.ChunkPos) *chunk.Chunk {
	if ch, ok := c.Get(pos); ok {
		return ch
	}
	fresh := chunk.New()
	Terrain(c.seed, pos[0], pos[1], fresh)
	return c.InsertIfAbsent(pos, fresh)
}

// InsertIfAbsent installs ch at pos only if nothing is cached there yet, and
// returns whichever chunk ends up cached (the caller's ch, or the winner of
// a race). This is the "insert-if-absent primitive" spec.md §9 requires so
// that a half-written chunk is never published.
func (c *TerrainCache) InsertIfAbsent(pos world.ChunkPos, ch *chunk.Chunk) *chunk.Chunk {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.cache[pos]; ok {
		return existing
	}
	c.cache[pos] = ch
	return ch
}
