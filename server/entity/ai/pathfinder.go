// Package ai implements the creature behaviour state machine and path
// finder that drive Living entities (spec.md §4.2.3, SPEC_FULL.md §4.6).
package ai

import (
	"container/heap"
	"math"

	"github.com/kitemc/server/server/block"
	"github.com/kitemc/server/server/internal/cube"
	"github.com/kitemc/server/server/world"
)

// nodeBudgetPerVolume bounds the search so a stuck creature never stalls the
// tick loop; the budget is this constant times radius^3, per SPEC_FULL.md
// §4.6.
const nodeBudgetPerVolume = 2

// node is one explored position in the path search.
type node struct {
	pos    cube.Pos
	g, h   float64
	parent *node
	index  int // heap index, maintained by container/heap
}

func (n *node) f() float64 { return n.g + n.h }

type openSet []*node

func (o openSet) Len() int            { return len(o) }
func (o openSet) Less(i, j int) bool  { return o[i].f() < o[j].f() }
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i]; o[i].index, o[j].index = i, j }
func (o *openSet) Push(x any)         { n := x.(*node); n.index = len(*o); *o = append(*o, n) }
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}

// walkable reports whether a creature could stand at pos: the block at pos
// and the one above it must be non-solid, and the block below must be solid
// or a liquid the creature can traverse (SPEC_FULL.md §4.6).
func walkable(w *world.World, pos cube.Pos) bool {
	here, _ := w.Block(pos)
	above, _ := w.Block(pos.Side(cube.FaceUp))
	below, _ := w.Block(pos.Side(cube.FaceDown))
	if block.Lookup(block.ID(here)).Solid || block.Lookup(block.ID(above)).Solid {
		return false
	}
	belowType := block.Lookup(block.ID(below))
	return belowType.Solid || belowType.Liquid
}

var neighbourOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func heuristic(a, b cube.Pos) float64 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// FindPath runs an A*-style search from start to target over the walkable
// block graph, returning the sequence of positions to step through
// (excluding start). It aborts once it has expanded the node budget for the
// given radius and returns the best partial path found so far instead of no
// path at all, so creature AI stays responsive even when no full route
// exists (SPEC_FULL.md §4.6).
func FindPath(w *world.World, start, target cube.Pos, radius int) []cube.Pos {
	budget := nodeBudgetPerVolume * radius * radius * radius
	if budget < 16 {
		budget = 16
	}

	startNode := &node{pos: start, g: 0, h: heuristic(start, target)}
	open := &openSet{startNode}
	heap.Init(open)

	visited := map[cube.Pos]*node{start: startNode}
	best := startNode
	expanded := 0

	for open.Len() > 0 && expanded < budget {
		cur := heap.Pop(open).(*node)
		expanded++
		if cur.h < best.h {
			best = cur
		}
		if cur.pos == target {
			best = cur
			break
		}
		for _, off := range neighbourOffsets {
			for dy := -1; dy <= 1; dy++ {
				np := cube.Pos{cur.pos[0] + off[0], cur.pos[1] + dy, cur.pos[2] + off[1]}
				if !withinRadius(start, np, radius) || !walkable(w, np) {
					continue
				}
				cost := 1.0
				if off[0] != 0 && off[1] != 0 {
					cost = math.Sqrt2
				}
				if dy != 0 {
					cost += 1
				}
				g := cur.g + cost
				if existing, ok := visited[np]; ok {
					if g < existing.g {
						existing.g = g
						existing.parent = cur
						heap.Fix(open, existing.index)
					}
					continue
				}
				n := &node{pos: np, g: g, h: heuristic(np, target), parent: cur}
				visited[np] = n
				heap.Push(open, n)
			}
		}
	}

	return reconstruct(best)
}

func withinRadius(start, pos cube.Pos, radius int) bool {
	dx, dy, dz := pos[0]-start[0], pos[1]-start[1], pos[2]-start[2]
	return dx*dx+dy*dy+dz*dz <= radius*radius
}

func reconstruct(n *node) []cube.Pos {
	var path []cube.Pos
	for cur := n; cur != nil && cur.parent != nil; cur = cur.parent {
		path = append([]cube.Pos{cur.pos}, path...)
	}
	return path
}
