package blockentity

import (
	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// SpawnFunc creates one entity of Kind near pos in w; injected so this
// package never imports package entity (entity already imports world, and
// a world->entity->world cycle must be avoided, per the same discipline
// legacygen.Dungeon.SpawnSpawner uses).
type SpawnFunc func(w *world.World, pos cube.Pos, kind string)

const (
	spawnerMinDelay    = 200
	spawnerMaxDelay    = 800
	spawnerRadius      = 4
	spawnerActiveRange = 16
)

// Spawner periodically attempts to spawn one entity of Kind within
// spawnerRadius blocks, resetting its delay counter each time regardless of
// whether the attempt produced an entity (spec.md §4.7).
type Spawner struct {
	pos   cube.Pos
	Kind  string
	delay int
	spawn SpawnFunc
}

// NewSpawner returns a spawner at pos that will call spawn to produce kind
// entities.
func NewSpawner(pos cube.Pos, kind string, spawn SpawnFunc) *Spawner {
	return &Spawner{pos: pos, Kind: kind, spawn: spawn, delay: spawnerMinDelay}
}

func (s *Spawner) Pos() cube.Pos  { return s.pos }
func (s *Spawner) BlockID() uint8 { return uint8(block.MobSpawner) }

// Tick counts down the spawn delay and, on reaching zero, attempts a single
// spawn and rerolls the delay within [spawnerMinDelay, spawnerMaxDelay]. A
// spawner only attempts the spawn itself when a player is within
// spawnerActiveRange blocks, but the delay still resets either way so the
// spawner doesn't burst-spawn the moment a player arrives.
func (s *Spawner) Tick(w *world.World, currentTick int64) {
	s.delay--
	if s.delay > 0 {
		return
	}
	if s.spawn != nil && w.PlayerNearby(s.pos, spawnerActiveRange) {
		dx := int(w.Rand.Int31n(2*spawnerRadius+1)) - spawnerRadius
		dz := int(w.Rand.Int31n(2*spawnerRadius+1)) - spawnerRadius
		s.spawn(w, cube.Pos{s.pos[0] + dx, s.pos[1], s.pos[2] + dz}, s.Kind)
	}
	s.delay = spawnerMinDelay + int(w.Rand.Int31n(spawnerMaxDelay-spawnerMinDelay))
}
