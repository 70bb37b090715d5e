// Package cube provides the block-position, axis-aligned bounding box and
// rotation primitives shared by the world, entity and generator packages. It
// plays the same role as the teacher's server/block/cube package, trimmed to
// what the legacy entity/physics pipeline needs.
package cube

import "github.com/go-gl/mathgl/mgl64"

// Pos is an absolute block position.
type Pos [3]int

// Add returns pos shifted by the given deltas.
func (pos Pos) Add(other Pos) Pos {
	return Pos{pos[0] + other[0], pos[1] + other[1], pos[2] + other[2]}
}

// Vec3 returns the position as a mgl64.Vec3, pointing at its minimum corner.
func (pos Pos) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{float64(pos[0]), float64(pos[1]), float64(pos[2])}
}

// PosFromVec3 floors v to the block position that contains it.
func PosFromVec3(v mgl64.Vec3) Pos {
	return Pos{int(mgl64.Floor(v[0])), int(mgl64.Floor(v[1])), int(mgl64.Floor(v[2]))}
}

// Face is one of the six block faces.
type Face int

const (
	FaceDown Face = iota
	FaceUp
	FaceNorth
	FaceSouth
	FaceWest
	FaceEast
)

// Side returns the neighbouring position in the direction of f.
func (pos Pos) Side(f Face) Pos {
	switch f {
	case FaceDown:
		return Pos{pos[0], pos[1] - 1, pos[2]}
	case FaceUp:
		return Pos{pos[0], pos[1] + 1, pos[2]}
	case FaceNorth:
		return Pos{pos[0], pos[1], pos[2] - 1}
	case FaceSouth:
		return Pos{pos[0], pos[1], pos[2] + 1}
	case FaceWest:
		return Pos{pos[0] - 1, pos[1], pos[2]}
	case FaceEast:
		return Pos{pos[0] + 1, pos[1], pos[2]}
	}
	return pos
}

// Faces lists all six faces, used when scanning a position's neighbourhood.
var Faces = [6]Face{FaceDown, FaceUp, FaceNorth, FaceSouth, FaceWest, FaceEast}

// ChunkPos returns the chunk coordinate containing pos.
func (pos Pos) ChunkPos() (cx, cz int32) {
	return int32(floorDiv(pos[0], 16)), int32(floorDiv(pos[2], 16))
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Rotation holds a yaw/pitch pair. Degrees on the wire, radians internally
// per spec §6; Rotation itself is unit-agnostic and callers convert at the
// network boundary (the session layer converts inline with math.Pi).
type Rotation [2]float64

func (r Rotation) Yaw() float64   { return r[0] }
func (r Rotation) Pitch() float64 { return r[1] }

// BBox is an axis-aligned bounding box.
type BBox struct {
	min, max mgl64.Vec3
}

// Box returns a BBox with the given min and max corners.
func Box(minX, minY, minZ, maxX, maxY, maxZ float64) BBox {
	return BBox{min: mgl64.Vec3{minX, minY, minZ}, max: mgl64.Vec3{maxX, maxY, maxZ}}
}

func (b BBox) Min() mgl64.Vec3 { return b.min }
func (b BBox) Max() mgl64.Vec3 { return b.max }

// The translate/extend/offset and centre helpers below mirror the teacher's
// cube.BBox API (server/entity/movement.go uses Translate/Extend/YOffset).

func (b BBox) Translate(v mgl64.Vec3) BBox {
	return BBox{min: b.min.Add(v), max: b.max.Add(v)}
}

// Extend grows the box in the direction of v, as used to build the swept
// volume a moving entity occupies over one tick (spec §4.2.1 step 2).
func (b BBox) Extend(v mgl64.Vec3) BBox {
	nb := b
	for i := 0; i < 3; i++ {
		if v[i] > 0 {
			nb.max[i] += v[i]
		} else {
			nb.min[i] += v[i]
		}
	}
	return nb
}

// Grow expands the box by d on every axis in both directions.
func (b BBox) Grow(d float64) BBox {
	return BBox{min: b.min.Sub(mgl64.Vec3{d, d, d}), max: b.max.Add(mgl64.Vec3{d, d, d})}
}

// GrowVec3 expands the box by a different amount per axis.
func (b BBox) GrowVec3(d mgl64.Vec3) BBox {
	return BBox{min: b.min.Sub(d), max: b.max.Add(d)}
}

// IntersectsWith reports whether b and other overlap on all three axes.
func (b BBox) IntersectsWith(other BBox) bool {
	return b.min[0] < other.max[0] && b.max[0] > other.min[0] &&
		b.min[1] < other.max[1] && b.max[1] > other.min[1] &&
		b.min[2] < other.max[2] && b.max[2] > other.min[2]
}

// XOffset reduces deltaX so that b, if moved by it on the X axis, does not
// penetrate other. Returns deltaX unchanged if the boxes don't overlap on Y/Z.
func (b BBox) XOffset(other BBox, deltaX float64) float64 {
	if b.max[1] <= other.min[1] || b.min[1] >= other.max[1] {
		return deltaX
	}
	if b.max[2] <= other.min[2] || b.min[2] >= other.max[2] {
		return deltaX
	}
	if deltaX > 0 && b.max[0] <= other.min[0] {
		if d := other.min[0] - b.max[0]; d < deltaX {
			return d
		}
	} else if deltaX < 0 && b.min[0] >= other.max[0] {
		if d := other.max[0] - b.min[0]; d > deltaX {
			return d
		}
	}
	return deltaX
}

// YOffset is the Y-axis analogue of XOffset.
func (b BBox) YOffset(other BBox, deltaY float64) float64 {
	if b.max[0] <= other.min[0] || b.min[0] >= other.max[0] {
		return deltaY
	}
	if b.max[2] <= other.min[2] || b.min[2] >= other.max[2] {
		return deltaY
	}
	if deltaY > 0 && b.max[1] <= other.min[1] {
		if d := other.min[1] - b.max[1]; d < deltaY {
			return d
		}
	} else if deltaY < 0 && b.min[1] >= other.max[1] {
		if d := other.max[1] - b.min[1]; d > deltaY {
			return d
		}
	}
	return deltaY
}

// ZOffset is the Z-axis analogue of XOffset.
func (b BBox) ZOffset(other BBox, deltaZ float64) float64 {
	if b.max[0] <= other.min[0] || b.min[0] >= other.max[0] {
		return deltaZ
	}
	if b.max[1] <= other.min[1] || b.min[1] >= other.max[1] {
		return deltaZ
	}
	if deltaZ > 0 && b.max[2] <= other.min[2] {
		if d := other.min[2] - b.max[2]; d < deltaZ {
			return d
		}
	} else if deltaZ < 0 && b.min[2] >= other.max[2] {
		if d := other.max[2] - b.min[2]; d > deltaZ {
			return d
		}
	}
	return deltaZ
}

// Center returns the horizontal (x,z) centre and the minimum Y of the box.
func (b BBox) Center() mgl64.Vec3 {
	return mgl64.Vec3{(b.min[0] + b.max[0]) / 2, b.min[1], (b.min[2] + b.max[2]) / 2}
}

// BBoxFromPos builds the standard 1x1x1 solid-block box at pos, used as the
// candidate volume for collision against the block grid.
func BBoxFromPos(pos Pos) BBox {
	return Box(float64(pos[0]), float64(pos[1]), float64(pos[2]), float64(pos[0])+1, float64(pos[1])+1, float64(pos[2])+1)
}
