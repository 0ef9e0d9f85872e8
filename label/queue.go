package label

import "container/heap"

// item is one node's entry in Queue's internal heap.
type item struct {
	node  uint32
	key   int32
	index int
}

type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h itemHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *itemHeap) Push(x interface{}) {
	it := x.(*item)
	it.index = len(*h)
	*h = append(*h, it)
}
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is an addressable min-priority queue over node ids, keeping at
// most one live entry per node with O(log n) decrease-key and
// increase-key.
//
// This generalises the teacher's dijkstra.nodePQ, which pushes a fresh
// duplicate heap entry on every relaxation and filters stale pops against
// a visited set on the way out: that lazy strategy relies on a scalar key
// only ever improving. Here a node's key is the minimum Key across its
// whole unsettled label set (Container.MinKey), which can also regress —
// the cheapest unsettled label can itself get dropped when a newly
// offered label dominates it — so Queue must support true
// key updates in both directions rather than tolerate staleness.
type Queue struct {
	h     itemHeap
	index map[uint32]*item
}

// NewQueue returns an empty Queue.
func NewQueue() *Queue {
	return &Queue{index: make(map[uint32]*item)}
}

// Len returns the number of nodes currently queued.
func (q *Queue) Len() int { return len(q.h) }

// Push inserts node with the given key, or updates its key (up or down)
// if the node is already queued.
func (q *Queue) Push(node uint32, key int32) {
	if it, ok := q.index[node]; ok {
		it.key = key
		heap.Fix(&q.h, it.index)
		return
	}
	it := &item{node: node, key: key}
	q.index[node] = it
	heap.Push(&q.h, it)
}

// Pop removes and returns the node with the smallest key.
func (q *Queue) Pop() (node uint32, key int32, ok bool) {
	if len(q.h) == 0 {
		return 0, 0, false
	}
	it := heap.Pop(&q.h).(*item)
	delete(q.index, it.node)
	return it.node, it.key, true
}

// Contains reports whether node currently has a queue entry.
func (q *Queue) Contains(node uint32) bool {
	_, ok := q.index[node]
	return ok
}

// KeyOf returns node's current key, if queued.
func (q *Queue) KeyOf(node uint32) (key int32, ok bool) {
	it, ok := q.index[node]
	if !ok {
		return 0, false
	}
	return it.key, true
}

// Remove drops node from the queue, e.g. once it has been settled.
func (q *Queue) Remove(node uint32) {
	it, ok := q.index[node]
	if !ok {
		return
	}
	heap.Remove(&q.h, it.index)
	delete(q.index, node)
}
