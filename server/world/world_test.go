package world

import (
	"testing"

	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world/chunk"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeEntity struct {
	base *EntityBase
}

func (f *fakeEntity) ID() EntityID     { return f.base.ID() }
func (f *fakeEntity) Base() *EntityBase { return f.base }
func (f *fakeEntity) Tick(*World, int64) bool { return false }

func newTestWorld() *World {
	w := New("test", 0, Overworld, nil, nil)
	w.LoadChunk(ChunkPos{0, 0}, chunk.New())
	return w
}

func TestSetBlockRoundTripThroughWorld(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{1, 5, 1}, 3, 0)
	id, _ := w.Block(cube.Pos{1, 5, 1})
	if id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}
}

func TestBlockInUnloadedChunkIsAir(t *testing.T) {
	w := newTestWorld()
	id, meta := w.Block(cube.Pos{1000, 5, 1000})
	if id != 0 || meta != 0 {
		t.Fatalf("expected air sentinel, got id=%d meta=%d", id, meta)
	}
}

func TestScheduleTickIdempotent(t *testing.T) {
	w := newTestWorld()
	w.ScheduleTick(cube.Pos{1, 1, 1}, 5, 10)
	w.ScheduleTick(cube.Pos{1, 1, 1}, 5, 10)
	if w.scheduled.Len() != 1 {
		t.Fatalf("expected duplicate schedule to be absorbed, queue has %d entries", w.scheduled.Len())
	}
}

func TestEntityResidencyInvariant(t *testing.T) {
	w := newTestWorld()
	e := &fakeEntity{base: NewEntityBase(0, mgl64.Vec3{5, 65, 5}, 1)}
	id := w.SpawnEntity(e)

	cp := ChunkPos{0, 0}
	found := false
	for _, eid := range w.EntitiesInChunk(cp) {
		if eid == id {
			found = true
		}
	}
	if !found {
		t.Fatal("entity not indexed in its residency chunk")
	}

	total := 0
	for _, set := range w.entitiesByChunk {
		total += len(set)
	}
	if total != 1 {
		t.Fatalf("expected exactly one chunk membership, found %d", total)
	}
}

func TestVoidCullRemovesEntity(t *testing.T) {
	w := newTestWorld()
	e := &fakeEntity{base: NewEntityBase(0, mgl64.Vec3{0, -100, 0}, 1)}
	id := w.SpawnEntity(e)
	w.Tick(0, nil, nil, nil)
	if _, ok := w.Entity(id); ok {
		t.Fatal("entity below void cull Y should have been removed")
	}
}

func TestDrainEventsOrderAndClear(t *testing.T) {
	w := newTestWorld()
	w.SetBlock(cube.Pos{0, 1, 0}, 1, 0)
	w.SetBlock(cube.Pos{0, 2, 0}, 2, 0)
	events := w.DrainEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if ev, ok := events[0].(BlockChangeEvent); !ok || ev.ID != 1 {
		t.Fatalf("expected first event to be the id=1 change, got %#v", events[0])
	}
	if more := w.DrainEvents(); len(more) != 0 {
		t.Fatal("expected event queue to be empty after drain")
	}
}
