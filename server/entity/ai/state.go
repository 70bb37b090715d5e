package ai

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

const (
	wanderRadius        = 8
	replanChance        = 0.02 // per-tick probability of picking a new wander target, rolled even while a path is being followed
	pathStepSpeed       = 0.2
	lookTargetDecay     = 0.3
	targetReachedDistSq = 0.25
)

// State is the creature AI state machine driving a Living entity (spec.md
// §4.2.3): it periodically re-plans a wander path, follows it one node at a
// time, and tracks a look target that decays towards the direction of
// travel.
type State struct {
	path      []cube.Pos
	pathIndex int

	lookYaw, lookPitch float64
}

// Step advances the state machine by one tick: if the current path is
// exhausted or re-planning is triggered, pick a random reachable point
// within wanderRadius and compute a new path to it; otherwise step towards
// the next path node and update velocity/look accordingly.
func (s *State) Step(w *world.World, b *world.EntityBase, currentTick int64) {
	if s.pathIndex >= len(s.path) || w.Rand.Float64() < replanChance {
		s.replan(w, b)
	}
	if s.pathIndex >= len(s.path) {
		return
	}

	target := s.path[s.pathIndex].Vec3().Add(mgl64.Vec3{0.5, 0, 0.5})
	toTarget := target.Sub(b.Pos)
	toTarget[1] = 0
	if toTarget.Dot(toTarget) <= targetReachedDistSq {
		s.pathIndex++
		return
	}

	dir := toTarget.Normalize()
	b.Vel[0] = dir[0] * pathStepSpeed
	b.Vel[2] = dir[2] * pathStepSpeed

	targetYaw := yawOf(dir)
	s.lookYaw = world.DecayLook(s.lookYaw-targetYaw, lookTargetDecay) + targetYaw
	b.Yaw = s.lookYaw
}

func (s *State) replan(w *world.World, b *world.EntityBase) {
	start := cube.PosFromVec3(b.Pos)
	dx := int(w.Rand.Int31n(2*wanderRadius+1)) - wanderRadius
	dz := int(w.Rand.Int31n(2*wanderRadius+1)) - wanderRadius
	target := cube.Pos{start[0] + dx, start[1], start[2] + dz}

	s.path = FindPath(w, start, target, wanderRadius)
	s.pathIndex = 0
}

func yawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir[0], dir[2])
}
