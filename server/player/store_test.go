package player

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/kitemc/server/server/block"
)

func TestStoreLoadMissingReturnsNotOK(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	_, ok, err := s.Load("nobody")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a username never saved")
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	s, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer s.Close()

	p := New("Steve", "overworld", mgl64.Vec3{4, 64, 4})
	p.Save(mgl64.Vec3{10, 65, -2}, 0.25, 0.1)
	p.Main.SetItem(0, block.ItemStack{ID: 1, Meta: 0, Count: 5})
	p.HandSlot = 3

	if err := s.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, ok, err := s.Load("Steve")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true after saving")
	}
	if loaded.World != "overworld" {
		t.Fatalf("expected world %q, got %q", "overworld", loaded.World)
	}
	if loaded.HandSlot != 3 {
		t.Fatalf("expected hand slot 3, got %d", loaded.HandSlot)
	}
	if item := loaded.Main.Item(0); item.ID != 1 || item.Count != 5 {
		t.Fatalf("expected restored main slot 0 to be item 1x5, got %+v", item)
	}

	pos, _ := loaded.RestorePos()
	if !closeVec(pos, mgl64.Vec3{10, 65, -2}) {
		t.Fatalf("expected restored pos %v, got %v", mgl64.Vec3{10, 65, -2}, pos)
	}
}
