package world

import "github.com/kitemc/server/server/internal/cube"

// ChunkPos is the (cx, cz) key used to address a loaded Chunk.
type ChunkPos [2]int32

// ChunkPosFromBlock returns the chunk coordinate containing the given block
// position, per spec.md §3 ("floor(blockpos/16).xz").
func ChunkPosFromBlock(pos cube.Pos) ChunkPos {
	cx, cz := pos.ChunkPos()
	return ChunkPos{cx, cz}
}
