package ai

import (
	"log/slog"
	"testing"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
	"github.com/kitemc/server/server/world/chunk"
)

// flatWorld returns a world with a flat stone floor at y=63 and air above,
// spanning a chunk around the origin wide enough for the tests below.
func flatWorld() *world.World {
	w := world.New("test", 1, world.Overworld, slog.Default(), nil)
	for cx := int32(-1); cx <= 1; cx++ {
		for cz := int32(-1); cz <= 1; cz++ {
			w.LoadChunk(world.ChunkPos{cx, cz}, chunk.New())
		}
	}
	for x := -16; x < 32; x++ {
		for z := -16; z < 32; z++ {
			w.SetBlock(cube.Pos{x, 63, z}, uint8(block.Stone), 0)
		}
	}
	return w
}

func TestFindPathReachesTarget(t *testing.T) {
	w := flatWorld()
	start := cube.Pos{0, 64, 0}
	target := cube.Pos{5, 64, 3}

	path := FindPath(w, start, target, 8)
	if len(path) == 0 {
		t.Fatal("expected a non-empty path")
	}
	if path[len(path)-1] != target {
		t.Fatalf("expected path to end at target %v, got %v", target, path[len(path)-1])
	}
}

func TestFindPathReturnsPartialPathWhenUnreachable(t *testing.T) {
	w := flatWorld()
	start := cube.Pos{0, 64, 0}
	// Surround the start with one-block walls so nothing at its own level is
	// walkable; the wall tops one block up still are, while the target sits
	// far outside anything the budget could reach.
	for _, off := range neighbourOffsets {
		w.SetBlock(cube.Pos{start[0] + off[0], start[1], start[2] + off[1]}, uint8(block.Stone), 0)
	}
	target := cube.Pos{1000, 64, 1000}

	path := FindPath(w, start, target, 4)
	if len(path) == 0 {
		t.Fatal("expected a partial path towards the unreachable target, got none")
	}
	if path[len(path)-1] == target {
		t.Fatalf("expected the partial path to stop short of the unreachable target, got %v", path)
	}
}

func TestWalkableRequiresSolidFloorAndAirAbove(t *testing.T) {
	w := flatWorld()
	if !walkable(w, cube.Pos{0, 64, 0}) {
		t.Fatal("expected a position with a solid floor and two air cells above to be walkable")
	}
	w.SetBlock(cube.Pos{0, 64, 0}, uint8(block.Stone), 0)
	if walkable(w, cube.Pos{0, 64, 0}) {
		t.Fatal("expected a solid block to not be walkable")
	}
}
