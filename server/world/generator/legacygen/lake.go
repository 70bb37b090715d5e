package legacygen

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/kitemc/server/server/world"
)

// Lake places a water or lava pool, reproducing the PRNG draw sequence of
// the original's LakeGenerator::generate (mc173/src/gen/lake.rs) bit for
// bit: 4-7 random ellipsoids (next_int_bounded(4)+4, despite spec.md §4.3's
// prose rounding this to "4-8" — the source's own range tops out at 7) are
// OR-ed into a 16x8x16 fill mask using continuous next_dvec3() draws for
// each ellipsoid's diameter and center; a boundary validation pass then
// requires every empty cell bordering the mask to be non-fluid at and above
// the y=4 plane and solid-or-target-fluid below it; a carve pass places air
// at and above y=4 and the fluid below it; a grass conversion on the
// dirt rim; and, for lava, a chance to turn boundary stone-adjacent solid
// cells into stone.
//
// The lake's own x/y/z placement within the chunk (ox, oz, oy below) is not
// reproduced from the original: the caller-side code that picks a lake's
// seed position (mc173/src/gen/overworld.rs) was not present in the
// retrieved source pack, so this is an invented stand-in consistent with
// the source's "lake has a maximum size of 16x8x16" comment, not a
// bit-reproduction of anything.
type Lake struct {
	Fluid  uint8 // block.StillWater or block.StillLava
	Chance float64
}

const (
	lakeWidth  = 16
	lakeHeight = 8
)

// lakeMask is indexed [x][z][y], matching lake.rs's fill[dx][dz][dy] layout
// so the translation below can be checked cell-by-cell against the source.
type lakeMask [lakeWidth][lakeWidth][lakeHeight]bool

func (l Lake) Populate(w *world.World, pcx, pcz int32, r *legacyrand.Rand) {
	if r.Float64() >= l.Chance {
		return
	}
	ox := int(pcx)*16 + int(r.Int31n(16)) + 8
	oz := int(pcz)*16 + int(r.Int31n(16)) + 8
	oy := int(r.Range(8, 56))

	mask := ellipsoidMask(r)

	if !l.validateBoundary(w, &mask, ox, oy, oz) {
		return
	}

	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 0; y < lakeHeight; y++ {
				if !mask[x][z][y] {
					continue
				}
				pos := cube.Pos{ox - 8 + x, oy + y, oz - 8 + z}
				if y >= 4 {
					w.SetBlock(pos, uint8(block.Air), 0)
				} else {
					w.SetBlock(pos, l.Fluid, 0)
				}
			}
		}
	}

	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 4; y < lakeHeight; y++ {
				if !mask[x][z][y] {
					continue
				}
				pos := cube.Pos{ox - 8 + x, oy + y - 1, oz - 8 + z}
				id, _ := w.Block(pos)
				if id != uint8(block.Dirt) {
					continue
				}
				if w.SkyLight(pos.Side(cube.FaceUp)) > 0 {
					w.SetBlock(pos, uint8(block.Grass), 0)
				}
			}
		}
	}

	if l.Fluid == uint8(block.StillLava) {
		l.randomlyStoneBoundary(w, &mask, ox, oy, oz, r)
	}
}

// ellipsoidMask draws 4-7 ellipsoids from r and OR-s them into a fresh
// lakeMask, matching the fill-mask loop of LakeGenerator::generate: one
// next_int_bounded(4)+4 draw for the count, then two next_dvec3() draws
// (diameter, then center) per ellipsoid. Split out from Populate so the
// mask-construction PRNG sequence can be exercised directly in tests,
// independent of this package's own invented position-selection rolls.
func ellipsoidMask(r *legacyrand.Rand) lakeMask {
	var mask lakeMask
	count := int(r.Int31n(4)) + 4
	for n := 0; n < count; n++ {
		// a: ellipsoid diameter, drawn x,y,z; b: ellipsoid center within the
		// box, drawn x,y,z, scaled against the remaining space once a is
		// known. Matches next_dvec3()'s consumption order exactly.
		ax := r.Float64()*6 + 3
		ay := r.Float64()*4 + 2
		az := r.Float64()*6 + 3

		bx := r.Float64()*(lakeWidth-ax-2) + 1 + ax/2
		by := r.Float64()*(lakeHeight-ay-4) + 2 + ay/2
		bz := r.Float64()*(lakeWidth-az-2) + 1 + az/2

		rx, ry, rz := ax/2, ay/2, az/2

		for x := 1; x < lakeWidth-1; x++ {
			ndx := (float64(x) - bx) / rx
			for z := 1; z < lakeWidth-1; z++ {
				ndz := (float64(z) - bz) / rz
				for y := 1; y < lakeHeight-1; y++ {
					ndy := (float64(y) - by) / ry
					if ndx*ndx+ndy*ndy+ndz*ndz < 1 {
						mask[x][z][y] = true
					}
				}
			}
		}
	}
	return mask
}

// shellCell reports whether (x,z,y) is itself empty but borders a filled
// mask cell, mirroring lake.rs's inline "filled" boundary test: only
// in-bounds neighbours count, so a mask cell sitting exactly on the box's
// edge is never implicitly treated as bordering something outside the box.
func shellCell(mask *lakeMask, x, z, y int) bool {
	if mask[x][z][y] {
		return false
	}
	return (x < lakeWidth-1 && mask[x+1][z][y]) ||
		(x > 0 && mask[x-1][z][y]) ||
		(z < lakeWidth-1 && mask[x][z+1][y]) ||
		(z > 0 && mask[x][z-1][y]) ||
		(y < lakeHeight-1 && mask[x][z][y+1]) ||
		(y > 0 && mask[x][z][y-1])
}

// validateBoundary requires every shell cell (empty, bordering the mask) to
// be non-fluid at and above the y=4 plane and solid-or-target-fluid below it,
// rejecting the lake entirely if not, per spec.md §4.3.
func (l Lake) validateBoundary(w *world.World, mask *lakeMask, ox, oy, oz int) bool {
	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 0; y < lakeHeight; y++ {
				if !shellCell(mask, x, z, y) {
					continue
				}
				pos := cube.Pos{ox - 8 + x, oy + y, oz - 8 + z}
				id, _ := w.Block(pos)
				tp := block.Lookup(block.ID(id))
				if y >= 4 {
					if tp.Liquid {
						return false
					}
				} else if !tp.Solid && id != l.Fluid {
					return false
				}
			}
		}
	}
	return true
}

// randomlyStoneBoundary turns solid shell cells into stone: unconditionally
// below the y=4 plane, and with 1-in-2 odds above it. The odds roll is only
// drawn when y>=4, matching the source's short-circuited
// "dy < 4 || next_int_bounded(2) != 0" so the PRNG consumption stays
// identical to the reference.
func (l Lake) randomlyStoneBoundary(w *world.World, mask *lakeMask, ox, oy, oz int, r *legacyrand.Rand) {
	for x := 0; x < lakeWidth; x++ {
		for z := 0; z < lakeWidth; z++ {
			for y := 0; y < lakeHeight; y++ {
				if !shellCell(mask, x, z, y) {
					continue
				}
				if y < 4 {
					l.stoneIfSolid(w, ox, oy, oz, x, y, z)
					continue
				}
				if r.Int31n(2) != 0 {
					l.stoneIfSolid(w, ox, oy, oz, x, y, z)
				}
			}
		}
	}
}

func (l Lake) stoneIfSolid(w *world.World, ox, oy, oz, x, y, z int) {
	pos := cube.Pos{ox - 8 + x, oy + y, oz - 8 + z}
	id, _ := w.Block(pos)
	if block.Lookup(block.ID(id)).Solid {
		w.SetBlock(pos, uint8(block.Stone), 0)
	}
}
