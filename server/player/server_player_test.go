package player

import (
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

func testWorld() *world.World {
	return world.New("test", 1, world.Overworld, slog.Default(), nil)
}

func TestSpawnInsertsHumanAtRestoredPosition(t *testing.T) {
	w := testWorld()
	w.SetBlock(cube.Pos{0, 63, 0}, uint8(block.Stone), 0)

	off := New("Steve", "test", mgl64.Vec3{0.5, 64, 0.5})
	sp := Spawn(w, off)

	if sp.ID() == 0 {
		t.Fatal("expected a nonzero entity id from SpawnEntity")
	}
	if e, ok := w.Entity(sp.ID()); !ok || e.ID() != sp.ID() {
		t.Fatalf("expected world to contain the spawned Human under its id, got ok=%v e.ID()=%v", ok, e.ID())
	}
	if !closeVec(sp.Pos(), mgl64.Vec3{0.5, 64, 0.5}) {
		t.Fatalf("expected spawn pos %v, got %v", mgl64.Vec3{0.5, 64, 0.5}, sp.Pos())
	}
}

func TestMoveToUpdatesLivePosition(t *testing.T) {
	w := testWorld()
	off := New("Steve", "test", mgl64.Vec3{0, 70, 0})
	sp := Spawn(w, off)

	sp.MoveTo(mgl64.Vec3{5, 71, -3})
	if !closeVec(sp.Pos(), mgl64.Vec3{5, 71, -3}) {
		t.Fatalf("expected pos to update, got %v", sp.Pos())
	}
	if sp.Stance() != sp.Pos()[1]+stanceYOffset {
		t.Fatalf("expected stance derived from live pos")
	}
}

func TestDespawnSavesFinalPositionAndRemovesEntity(t *testing.T) {
	w := testWorld()
	off := New("Steve", "test", mgl64.Vec3{0, 70, 0})
	sp := Spawn(w, off)
	sp.MoveTo(mgl64.Vec3{1, 72, 1})
	sp.SetLook(0.7, -0.2)

	sp.Despawn()

	if _, ok := w.Entity(sp.ID()); ok {
		t.Fatal("expected entity to be removed from the world after Despawn")
	}
	pos, _ := off.RestorePos()
	if !closeVec(pos, mgl64.Vec3{1, 72, 1}) {
		t.Fatalf("expected OfflinePlayer to capture final pos, got %v", pos)
	}
	if off.Yaw != 0.7 || off.Pitch != -0.2 {
		t.Fatalf("expected OfflinePlayer to capture final look, got %v/%v", off.Yaw, off.Pitch)
	}
}
