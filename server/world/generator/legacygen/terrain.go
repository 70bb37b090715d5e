// Package legacygen implements the two-phase terrain/populate chunk
// generator described in spec.md §4.3: a deterministic terrain pass followed
// by a populate pass that spans the 2x2 chunk neighbourhood at an 8-block
// offset, coordinated through a populated-corner bitmask so that a chunk is
// only handed back once all four overlapping populate runs have completed.
//
// The noise shape and the populate dispatch are grounded on the teacher's
// server/world/generator/pmgen package (octave-noise terrain fill, per-biome
// populator list); the coordination scheme, the lake fill-mask algorithm and
// the dungeon loot/chest placement are new, built to the letter of spec.md
// §4.3 since nothing in the retrieval pack implements that coordination.
package legacygen

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/kitemc/server/server/world/chunk"
)

const (
	seaLevel = 62
	maxY     = 128
)

// Terrain fills c with a stone/water column shaped by a cheap deterministic
// noise function, bedrock at y=0 and a dirt/grass cap at the surface. It is
// pure given (seed, cx, cz): two workers computing the same chunk produce
// byte-identical output, which is what makes the racing terrain cache in
// cache.go safe (spec.md §4.3 step 3 / §5).
func Terrain(seed int64, cx, cz int32, c *chunk.Chunk) {
	for x := 0; x < chunk.Width; x++ {
		wx := int64(cx)*16 + int64(x)
		for z := 0; z < chunk.Width; z++ {
			wz := int64(cz)*16 + int64(z)
			height := columnHeight(seed, wx, wz)
			for y := 0; y < maxY; y++ {
				switch {
				case y == 0:
					c.SetBlock(x, y, z, uint8(block.Bedrock), 0)
				case y < height-4:
					c.SetBlock(x, y, z, uint8(block.Stone), 0)
				case y < height:
					c.SetBlock(x, y, z, uint8(block.Dirt), 0)
				case y == height:
					if height < seaLevel {
						c.SetBlock(x, y, z, uint8(block.Sand), 0)
					} else {
						c.SetBlock(x, y, z, uint8(block.Grass), 0)
					}
				case y <= seaLevel:
					c.SetBlock(x, y, z, uint8(block.StillWater), 0)
				}
			}
		}
	}
}

// columnHeight computes a deterministic surface height in [50,78]: 64 plus
// one legacyrand draw in [-8,8] and one in [-6,6], each from a generator
// seeded by world seed mixed with the block column, standing
// in for the octave simplex noise the teacher's pmgen generator uses
// (SPEC_FULL §4.3): cheap, but reproducible and free of external deps beyond
// the legacy PRNG already required for bit-compatibility elsewhere.
func columnHeight(seed int64, x, z int64) int {
	r := legacyrand.New(seed ^ (x * 341873128712) ^ (z * 132897987541))
	base := 64 + int(r.Range(-8, 8))
	r2 := legacyrand.New(seed ^ (x*68928 + z*19283) ^ -0x61C8864680B583EB) // bit pattern 0x9E3779B97F4A7C15 as int64
	base += int(r2.Range(-6, 6))
	if base < 8 {
		base = 8
	}
	if base > maxY-8 {
		base = maxY - 8
	}
	return base
}
