// Package save implements the ChunkSource persistence interface spec.md §6
// names as an external collaborator: loading and saving generated chunks so a
// restarted server does not have to regenerate its world. Grounded on the
// teacher's on-demand provider pattern and, for a concrete on-disk format, on
// the goleveldb-backed single-file Provider in the pack's Pile world format.
package save

import (
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// ChunkSource loads and saves generated chunks keyed by world name and chunk
// position (spec.md §6).
type ChunkSource interface {
	LoadChunk(worldName string, pos world.ChunkPos) (*chunk.Chunk, bool, error)
	SaveChunk(worldName string, pos world.ChunkPos, c *chunk.Chunk) error
	Close() error
}
