package world

import (
	"math"

	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/internal/legacyrand"
	"github.com/go-gl/mathgl/mgl64"
)

// EntityID uniquely and monotonically identifies a live entity (spec.md §3).
type EntityID uint64

// Entity is implemented by every kind-specific entity type defined in package
// entity. World only depends on this interface, never on concrete kinds,
// which keeps the entity package free to import world without a cycle
// (spec.md §9 "avoid virtual-dispatch hierarchies" is honoured one level up:
// the kinds themselves are a tagged sum, this interface only carries the
// common tick contract the World needs to drive them).
type Entity interface {
	ID() EntityID
	Base() *EntityBase
	// Tick advances the entity by one tick. It returns true if the entity
	// should be removed from the world after this tick.
	Tick(w *World, currentTick int64) (remove bool)
}

// EntityBase is the common part of every entity (spec.md §3 "base"). Kind
// structs in package entity embed a *EntityBase.
type EntityBase struct {
	id EntityID

	Pos, Vel    mgl64.Vec3
	Yaw, Pitch  float64 // radians
	Width, Hoff float64 // Hoff: size.height_offset, bb.min.y == pos.y - Hoff
	Height      float64
	bb          cube.BBox

	OnGround, InWater, InLava, NoClip bool
	CanPickup, Controlled, Persistent bool
	Coherent                          bool

	Lifetime     uint32
	Health       int16
	FireTime     uint16
	FallDistance float32

	PosDirty, VelDirty, LookDirty bool

	Rand *legacyrand.Rand
}

func NewEntityBase(id EntityID, pos mgl64.Vec3, seed int64) *EntityBase {
	return &EntityBase{id: id, Pos: pos, Persistent: true, Rand: legacyrand.New(seed)}
}

func (b *EntityBase) ID() EntityID { return b.id }

// Base returns b itself, so that any kind struct embedding *EntityBase
// satisfies the Entity interface's Base() method without writing its own.
func (b *EntityBase) Base() *EntityBase { return b }

// BBox returns the entity's current bounding box.
func (b *EntityBase) BBox() cube.BBox { return b.bb }

// RebuildBBox recomputes bb from Pos, Width and Height so that
// bb.center.xz == pos.xz and bb.min.y == pos.y - Hoff, the invariant spec.md
// §3 requires to hold after every physics step.
func (b *EntityBase) RebuildBBox() {
	hw := b.Width / 2
	min := mgl64.Vec3{b.Pos[0] - hw, b.Pos[1] - b.Hoff, b.Pos[2] - hw}
	max := mgl64.Vec3{b.Pos[0] + hw, b.Pos[1] - b.Hoff + b.Height, b.Pos[2] + hw}
	b.bb = cube.Box(min[0], min[1], min[2], max[0], max[1], max[2])
}

// SyncPosFromBBox is the inverse of RebuildBBox: it recomputes Pos from the
// current BBox (spec.md §4.2.1 step 8). The entity tick pipeline does not
// call it; it adds the collision delta to Pos and calls RebuildBBox instead.
func (b *EntityBase) SyncPosFromBBox() {
	c := b.bb.Center()
	b.Pos = mgl64.Vec3{c[0], b.bb.Min()[1] + b.Hoff, c[2]}
	b.PosDirty = true
}

// SetBBox overwrites the bounding box directly. The entity tick pipeline
// does not call it.
func (b *EntityBase) SetBBox(box cube.BBox) { b.bb = box }

// DecayLook scales v by factor. Creature AI uses it to ease its look yaw
// towards the direction of travel (spec.md §4.2.2).
func DecayLook(v, factor float64) float64 {
	return v * factor
}

// ClampFinite clamps a NaN/Inf velocity component to a finite range,
// spec.md §7's recovery path for physics degeneracy.
func ClampFinite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	const limit = 10.0
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// ClampVelocity applies ClampFinite to all three axes of v.
func ClampVelocity(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{ClampFinite(v[0]), ClampFinite(v[1]), ClampFinite(v[2])}
}
