package blockentity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// Sign holds the four text lines of a placed sign. It performs no per-tick
// work.
type Sign struct {
	pos   cube.Pos
	Lines [4]string
}

// NewSign returns a blank sign at pos.
func NewSign(pos cube.Pos) *Sign {
	return &Sign{pos: pos}
}

func (s *Sign) Pos() cube.Pos  { return s.pos }
func (s *Sign) BlockID() uint8 { return uint8(block.SignPost) }

// Tick is a no-op: a sign has no autonomous behaviour.
func (s *Sign) Tick(w *world.World, currentTick int64) {}
