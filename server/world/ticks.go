package world

import (
	"container/heap"

	"github.com/kitemc/server/server/internal/cube"
)

// scheduledTick is one entry in the pending_block_ticks priority queue
// (spec.md §3/§4.1). Ties on Due are broken by insertion index to give a
// stable order across a tick (spec.md §5 "Ordering").
type scheduledTick struct {
	Due   uint64
	Pos   cube.Pos
	Block uint8
	seq   uint64
	index int
}

type tickKey struct {
	pos   cube.Pos
	block uint8
}

// tickQueue is a min-heap on (Due, seq) with a side index for the
// schedule_tick dedup rule ("duplicates (same pos+id) are absorbed").
type tickQueue struct {
	items []*scheduledTick
	byKey map[tickKey]*scheduledTick
	seq   uint64
}

func newTickQueue() *tickQueue {
	return &tickQueue{byKey: make(map[tickKey]*scheduledTick)}
}

func (q *tickQueue) Len() int { return len(q.items) }
func (q *tickQueue) Less(i, j int) bool {
	if q.items[i].Due != q.items[j].Due {
		return q.items[i].Due < q.items[j].Due
	}
	return q.items[i].seq < q.items[j].seq
}
func (q *tickQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}
func (q *tickQueue) Push(x any) {
	t := x.(*scheduledTick)
	t.index = len(q.items)
	q.items = append(q.items, t)
}
func (q *tickQueue) Pop() any {
	old := q.items
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return t
}

// Schedule inserts (pos, block) to fire at due, absorbing a duplicate entry
// for the same (pos, block) pair that is still pending (spec.md §8 invariant
// 6: schedule_tick is idempotent before drain).
func (q *tickQueue) Schedule(pos cube.Pos, block uint8, due uint64) {
	k := tickKey{pos, block}
	if _, ok := q.byKey[k]; ok {
		return
	}
	q.seq++
	t := &scheduledTick{Due: due, Pos: pos, Block: block, seq: q.seq}
	q.byKey[k] = t
	heap.Push(q, t)
}

// DrainDue pops and returns every entry whose Due is <= now, in due-time
// order with insertion-index tie-break.
func (q *tickQueue) DrainDue(now uint64) []scheduledTick {
	var due []scheduledTick
	for q.Len() > 0 && q.items[0].Due <= now {
		t := heap.Pop(q).(*scheduledTick)
		delete(q.byKey, tickKey{t.Pos, t.Block})
		due = append(due, *t)
	}
	return due
}
