package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

func TestFallingBlockPlacesBlockOnLanding(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 63, 0}, uint8(block.Stone), 0)

	base := world.NewEntityBase(0, mgl64.Vec3{0.5, 70, 0.5}, 1)
	fb := NewFallingBlock(base, uint8(block.Sand), 0)
	w.SpawnEntity(fb)

	removed := false
	for i := 0; i < 200 && !removed; i++ {
		removed = fb.Tick(w, int64(i))
	}

	if !removed {
		t.Fatal("expected the falling block entity to be removed once it lands")
	}
	id, _ := w.Block(cube.Pos{0, 64, 0})
	if id != uint8(block.Sand) {
		t.Fatalf("expected sand placed at the landing position, got block id %d", id)
	}
}

func TestFallingBlockRestsOnTopOfExistingBlockWithoutOverwritingIt(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 63, 0}, uint8(block.Stone), 0)
	w.SetBlock(cube.Pos{0, 64, 0}, uint8(block.Stone), 0)

	base := world.NewEntityBase(0, mgl64.Vec3{0.5, 70, 0.5}, 1)
	fb := NewFallingBlock(base, uint8(block.Sand), 0)
	w.SpawnEntity(fb)

	removed := false
	for i := 0; i < 200 && !removed; i++ {
		removed = fb.Tick(w, int64(i))
	}

	if !removed {
		t.Fatal("expected the falling block entity to be removed once it lands")
	}
	if id, _ := w.Block(cube.Pos{0, 64, 0}); id != uint8(block.Stone) {
		t.Fatalf("expected existing stone to remain unmodified, got block id %d", id)
	}
	if id, _ := w.Block(cube.Pos{0, 65, 0}); id != uint8(block.Sand) {
		t.Fatalf("expected sand placed on top of the existing stone, got block id %d", id)
	}
}
