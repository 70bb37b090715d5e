package entity

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// halfSlab is a test-only block id with a collision box half a block high,
// registered by TestTickMovementAutoStepsOntoLedge.
const halfSlab = block.ID(200)

// newTestWorld returns an empty world with the 3x3 chunks around the origin
// loaded, so that SetBlock calls near the origin take effect.
func newTestWorld() *world.World {
	w := world.New("test", 1, world.Overworld, slog.Default(), nil)
	for cx := int32(-1); cx <= 1; cx++ {
		for cz := int32(-1); cz <= 1; cz++ {
			w.LoadChunk(world.ChunkPos{cx, cz}, chunk.New())
		}
	}
	return w
}

func boxAt(pos mgl64.Vec3, halfWidth, height float64) cube.BBox {
	return cube.Box(pos[0]-halfWidth, pos[1], pos[2]-halfWidth, pos[0]+halfWidth, pos[1]+height, pos[2]+halfWidth)
}

func TestTickMovementComesToRestOnFloor(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 63, 0}, uint8(block.Stone), 0)

	c := MovementComputer{Gravity: 0.08, Drag: 0.02}
	pos := mgl64.Vec3{0.5, 64.1, 0.5}
	vel := mgl64.Vec3{}

	for i := 0; i < 40; i++ {
		bb := boxAt(pos, 0.3, 1.8)
		pos, vel = c.TickMovement(w, pos, bb, vel)
	}

	if !c.OnGround() {
		t.Fatal("expected entity to come to rest on the floor")
	}
	if pos[1] < 64 || pos[1] > 64.01 {
		t.Fatalf("expected entity to settle at y=64, got %v", pos[1])
	}
}

func TestTickMovementAutoStepsOntoLedge(t *testing.T) {
	w := newTestWorld()
	for x := -1; x <= 3; x++ {
		for z := -1; z <= 1; z++ {
			w.SetBlock(cube.Pos{x, 63, z}, uint8(block.Stone), 0)
		}
	}
	// A single ledge, StepHeight high, just past x=1.
	block.Register(halfSlab, block.Type{
		Name:     "test_half_slab",
		Material: block.MaterialSolid,
		BBoxes:   func(uint8) []cube.BBox { return []cube.BBox{cube.Box(0, 0, 0, 1, StepHeight, 1)} },
	})
	w.SetBlock(cube.Pos{2, 64, 0}, uint8(halfSlab), 0)

	c := MovementComputer{Gravity: 0.08, Drag: 0.02}
	pos := mgl64.Vec3{0.5, 64, 0.5}
	vel := mgl64.Vec3{}

	// Settle onto the floor first.
	for i := 0; i < 10; i++ {
		bb := boxAt(pos, 0.3, 1.8)
		pos, vel = c.TickMovement(w, pos, bb, vel)
	}

	for i := 0; i < 30; i++ {
		vel[0] = 0.1
		bb := boxAt(pos, 0.3, 1.8)
		pos, vel = c.TickMovement(w, pos, bb, vel)
	}

	if pos[0] < 2 {
		t.Fatalf("expected entity to step up and past the ledge, got x=%v", pos[0])
	}
}
