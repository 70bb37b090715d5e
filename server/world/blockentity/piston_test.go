package blockentity

import (
	"testing"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
)

func TestNewPistonStartsRetracted(t *testing.T) {
	p := NewPiston(cube.Pos{1, 2, 3})

	if p.Extended {
		t.Fatal("expected a new piston to start retracted")
	}
	if p.Pos() != (cube.Pos{1, 2, 3}) {
		t.Fatalf("Pos() = %v, want {1,2,3}", p.Pos())
	}
	if p.BlockID() != uint8(block.Piston) {
		t.Fatalf("BlockID() = %d, want Piston", p.BlockID())
	}
}

func TestPistonTickIsNoOp(t *testing.T) {
	p := NewPiston(cube.Pos{0, 0, 0})
	p.Tick(nil, 0)
	if p.Extended {
		t.Fatal("Tick should never change Extended on its own")
	}
}
