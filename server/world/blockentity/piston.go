package blockentity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// Piston tracks a piston's extended/retracted state. spec.md §9 notes that
// of the legacy block entities only Furnace, Spawner, and Piston have
// non-trivial ticks in the original, but its push/pull animation and block
// displacement are the redstone engine's concern (out of scope per spec.md
// §1); Tick is deliberately a no-op until that's built.
type Piston struct {
	pos      cube.Pos
	Extended bool
}

// NewPiston returns a retracted piston block entity at pos.
func NewPiston(pos cube.Pos) *Piston {
	return &Piston{pos: pos}
}

func (p *Piston) Pos() cube.Pos  { return p.pos }
func (p *Piston) BlockID() uint8 { return uint8(block.Piston) }

// Tick is a no-op: piston extend/retract is driven by redstone signal
// changes, not a per-tick timer, and redstone propagation is not modeled.
func (p *Piston) Tick(w *world.World, currentTick int64) {}
