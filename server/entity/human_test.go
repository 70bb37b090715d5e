package entity

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

func TestHumanFallsAndSettlesOnGround(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 63, 0}, uint8(block.Stone), 0)

	base := world.NewEntityBase(0, mgl64.Vec3{0.5, 66, 0.5}, 1)
	h := NewHuman(base)
	w.SpawnEntity(h)

	for i := 0; i < 60; i++ {
		h.Tick(w, int64(i))
	}

	if !h.OnGround {
		t.Fatal("expected human to settle on the ground")
	}
}

func TestHumanTeleportOverridesPositionAndClearsVelocity(t *testing.T) {
	base := world.NewEntityBase(0, mgl64.Vec3{0, 64, 0}, 1)
	h := NewHuman(base)
	h.Vel = mgl64.Vec3{1, 1, 1}

	h.Teleport(mgl64.Vec3{10, 70, 10})

	if h.Pos != (mgl64.Vec3{10, 70, 10}) {
		t.Fatalf("expected Pos to be overwritten, got %v", h.Pos)
	}
	if h.Vel != (mgl64.Vec3{}) {
		t.Fatalf("expected Vel to be cleared by Teleport, got %v", h.Vel)
	}
	if !h.PosDirty {
		t.Fatal("expected PosDirty to be set after Teleport")
	}
}

func TestHumanCanPickUpNearbyItems(t *testing.T) {
	w := world.New("test", 1, world.Overworld, slog.Default(), nil)

	base := world.NewEntityBase(0, mgl64.Vec3{0, 64, 0}, 1)
	h := NewHuman(base)
	w.SpawnEntity(h)

	itemBase := world.NewEntityBase(0, mgl64.Vec3{0.2, 64, 0}, 1)
	it := NewItem(itemBase, block.ItemStack{ID: int16(block.Cobblestone), Count: 1})
	w.SpawnEntity(it)
	it.delay = 0

	h.Tick(w, 0)

	if !h.CanPickup {
		t.Fatal("expected Human to be marked CanPickup")
	}
	if _, ok := w.Entity(it.ID()); ok {
		t.Fatal("expected the nearby item to be picked up and removed from the world")
	}
}
