// Package entity implements the kind-specific entity structs (each embedding
// *world.EntityBase) that make up the tagged-sum entity model (spec.md §3),
// and the per-tick physics/AI pipeline that drives them (spec.md §4.2).
package entity

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// MovementComputer computes one tick of physics for an entity: gravity,
// drag/friction, then the swept collision step. Adapted from the teacher's
// server/entity/movement.go MovementComputer, generalized from Dragonfly's
// world.Tx-scoped block lookups to the legacy World's direct Block/BBoxes
// accessors, and extended with spec.md §4.2.1's auto-stepping requirement
// that the teacher's version (no such mechanic in Bedrock survival) doesn't
// have.
type MovementComputer struct {
	Gravity, Drag     float64
	DragBeforeGravity bool

	onGround bool
}

// StepHeight is the maximum Y an entity can auto-climb onto when a
// horizontal move would otherwise be blocked (spec.md §4.2.1).
const StepHeight = 0.5

// epsilon is the threshold below which a velocity/position delta is treated
// as zero, matching the teacher's movement.go.
const epsilon = 0.001

// blockBBoxPool caches scratch slices used while collecting the collision
// boxes around a moving entity; this runs every tick for every moving
// entity, so reusing the backing array keeps GC pressure low (ported
// verbatim in spirit from the teacher's blockBBoxPool).
var blockBBoxPool = sync.Pool{
	New: func() any { return make([]cube.BBox, 0, 16) },
}

// TickMovement applies gravity and drag to vel, then resolves the resulting
// move against the block grid, returning the new position and the
// (possibly zeroed) resulting velocity. OnGround reflects the state after
// this tick's resolution. bb must be the entity's bounding box already
// translated to its current world position (i.e. b.BBox()).
func (c *MovementComputer) TickMovement(w *world.World, pos mgl64.Vec3, bb cube.BBox, vel mgl64.Vec3) (newPos, newVel mgl64.Vec3) {
	vel = c.applyHorizontalForces(w, pos, c.applyVerticalForces(vel))
	dPos, vel := c.checkCollision(w, bb, vel)
	return pos.Add(dPos), vel
}

// OnGround reports whether the entity was resting on a solid block after
// the most recent TickMovement call.
func (c *MovementComputer) OnGround() bool { return c.onGround }

func (c *MovementComputer) applyVerticalForces(vel mgl64.Vec3) mgl64.Vec3 {
	if c.DragBeforeGravity {
		vel[1] *= 1 - c.Drag
	}
	vel[1] -= c.Gravity
	if !c.DragBeforeGravity {
		vel[1] *= 1 - c.Drag
	}
	return vel
}

// applyHorizontalForces applies friction to the horizontal velocity, using
// the slipperiness of the block the entity stands on when grounded.
func (c *MovementComputer) applyHorizontalForces(w *world.World, pos, vel mgl64.Vec3) mgl64.Vec3 {
	friction := 1 - c.Drag
	if c.onGround {
		below := cube.PosFromVec3(pos).Side(cube.FaceDown)
		id, _ := w.Block(below)
		friction *= block.Lookup(block.ID(id)).Slipperiness
	}
	vel[0] *= friction
	vel[2] *= friction
	return vel
}

// checkCollision resolves entityBBox's move by vel against the surrounding
// block grid on the Y, then X, then Z axes in turn (spec.md §4.2.1 step 2),
// auto-stepping up by StepHeight onto a ledge no higher than that when a
// horizontal move would otherwise be blocked while the entity is grounded.
func (c *MovementComputer) checkCollision(w *world.World, entityBBox cube.BBox, vel mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	deltaX, deltaY, deltaZ := vel[0], vel[1], vel[2]
	wasGrounded := c.onGround
	stepped := false

	blocks := blocksAround(w, entityBBox.Extend(vel))
	defer blockBBoxPool.Put(blocks[:0])

	if !floatEqual(deltaY, 0) {
		for _, bb := range blocks {
			deltaY = entityBBox.YOffset(bb, deltaY)
		}
		entityBBox = entityBBox.Translate(mgl64.Vec3{0, deltaY, 0})
	}
	if !floatEqual(deltaX, 0) {
		origDeltaX := deltaX
		for _, bb := range blocks {
			deltaX = entityBBox.XOffset(bb, deltaX)
		}
		if wasGrounded && !floatEqual(deltaX, origDeltaX) {
			if lifted, ok := tryStep(blocks, entityBBox, mgl64.Vec3{origDeltaX, 0, 0}); ok {
				entityBBox, deltaX, stepped = lifted, origDeltaX, true
			} else {
				entityBBox = entityBBox.Translate(mgl64.Vec3{deltaX, 0, 0})
			}
		} else {
			entityBBox = entityBBox.Translate(mgl64.Vec3{deltaX, 0, 0})
		}
	}
	if !floatEqual(deltaZ, 0) {
		origDeltaZ := deltaZ
		for _, bb := range blocks {
			deltaZ = entityBBox.ZOffset(bb, deltaZ)
		}
		if wasGrounded && !stepped && !floatEqual(deltaZ, origDeltaZ) {
			if _, ok := tryStep(blocks, entityBBox, mgl64.Vec3{0, 0, origDeltaZ}); ok {
				deltaZ, stepped = origDeltaZ, true
			}
		}
	}
	if stepped {
		deltaY += StepHeight
	}

	if !floatEqual(vel[1], 0) {
		c.onGround = false
	}
	if !floatEqual(deltaX, vel[0]) {
		vel[0] = 0
	}
	if !floatEqual(deltaY, vel[1]) {
		if vel[1] < 0 {
			c.onGround = true
		}
		vel[1] = 0
	}
	if !floatEqual(deltaZ, vel[2]) {
		vel[2] = 0
	}
	return mgl64.Vec3{deltaX, deltaY, deltaZ}, vel
}

// tryStep checks whether lifting bb by StepHeight and re-resolving delta at
// that height clears the obstruction entirely; if so it returns the lifted,
// translated box.
func tryStep(blocks []cube.BBox, bb cube.BBox, delta mgl64.Vec3) (cube.BBox, bool) {
	lifted := bb.Translate(mgl64.Vec3{0, StepHeight, 0})
	for _, other := range blocks {
		if d := lifted.YOffset(other, StepHeight); d < StepHeight {
			return cube.BBox{}, false
		}
	}
	dx, dz := delta[0], delta[2]
	for _, other := range blocks {
		if dx != 0 {
			dx = lifted.XOffset(other, dx)
		} else {
			dz = lifted.ZOffset(other, dz)
		}
	}
	if (dx != 0 && !floatEqual(dx, delta[0])) || (dz != 0 && !floatEqual(dz, delta[2])) {
		return cube.BBox{}, false
	}
	return lifted.Translate(mgl64.Vec3{dx, 0, dz}), true
}

// blocksAround returns the translated collision boxes of every block
// touching box, grown by a small margin to catch boxes the sweep will enter
// mid-tick.
func blocksAround(w *world.World, box cube.BBox) []cube.BBox {
	grown := box.Grow(0.25)
	min, max := grown.Min(), grown.Max()
	minX, minY, minZ := int(math.Floor(min[0])), int(math.Floor(min[1])), int(math.Floor(min[2]))
	maxX, maxY, maxZ := int(math.Ceil(max[0])), int(math.Ceil(max[1])), int(math.Ceil(max[2]))

	boxes := blockBBoxPool.Get().([]cube.BBox)
	boxes = boxes[:0]
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			for z := minZ; z <= maxZ; z++ {
				pos := cube.Pos{x, y, z}
				id, meta := w.Block(pos)
				tp := block.Lookup(block.ID(id))
				if tp.BBoxes == nil {
					continue
				}
				boxes2 := tp.BBoxes(meta)
				if len(boxes2) == 0 {
					continue
				}
				offset := mgl64.Vec3{float64(x), float64(y), float64(z)}
				for _, b := range boxes2 {
					boxes = append(boxes, b.Translate(offset))
				}
			}
		}
	}
	return boxes
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
