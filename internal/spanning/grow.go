package spanning

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Grow runs randomized Prim from start on a freshly built tree.
//
// Steps:
//  1. Visit start and push its edges into a min-heap.
//  2. Pop the cheapest edge; skip it if its far end is already visited.
//  3. Otherwise visit the far end, keep the edge, push the new cell's edges.
//  4. Stop once no point is pending.
//
// The grid graph is connected, so the result always has W·H−1 edges.
// Complexity: O(E log E) time, O(E) memory.
func (t *Tree) Grow(start core.Point) ([]Edge, error) {
	if err := t.beginGrowth(start); err != nil {
		return nil, err
	}

	pq := &edgeQueue{}
	heap.Init(pq)
	t.pushEdges(pq, start)

	edges := make([]Edge, 0, len(t.points)-1)
	for pq.Len() > 0 && len(t.pending) > 0 {
		e := heap.Pop(pq).(queuedEdge).edge
		to := e.To()
		if t.IsVisited(to) {
			continue
		}
		if err := t.Visit(to); err != nil {
			return nil, err
		}
		edges = append(edges, e)
		t.pushEdges(pq, to)
	}
	return edges, nil
}

// Walk grows the tree with the local nearest-neighbour step: from the current
// cell it moves over the cheapest edge into an unvisited cell. At a dead end it
// backtracks along its path to the last cell that still has an unvisited
// neighbour. The result has W·H−1 edges.
func (t *Tree) Walk(start core.Point) ([]Edge, error) {
	if err := t.beginGrowth(start); err != nil {
		return nil, err
	}

	path := []core.Point{start}
	edges := make([]Edge, 0, len(t.points)-1)
	for len(path) > 0 && len(t.pending) > 0 {
		cur := path[len(path)-1]
		e, err := t.closestUnvisited(cur)
		if errors.Is(err, ErrStuck) {
			path = path[:len(path)-1]
			continue
		}
		if err != nil {
			return nil, err
		}
		if err := t.Visit(e.To()); err != nil {
			return nil, err
		}
		edges = append(edges, e)
		path = append(path, e.To())
	}
	return edges, nil
}

// beginGrowth checks that the tree is built and untouched, then visits start.
func (t *Tree) beginGrowth(start core.Point) error {
	if _, ok := t.adjacency[start]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPoint, start)
	}
	if len(t.visited) > 0 {
		return ErrAlreadyGrown
	}
	return t.Visit(start)
}

// pushEdges queues every edge from p into a still unvisited cell.
func (t *Tree) pushEdges(pq *edgeQueue, p core.Point) {
	for _, d := range core.Directions() {
		w, ok := t.adjacency[p][d]
		if !ok || t.IsVisited(p.Offset(d)) {
			continue
		}
		heap.Push(pq, queuedEdge{edge: Edge{From: p, Dir: d, Weight: w}, seq: pq.next})
		pq.next++
	}
}

// queuedEdge orders equal weights by push order so growth is deterministic.
type queuedEdge struct {
	edge Edge
	seq  int
}

// edgeQueue implements heap.Interface as a min-heap on edge weight.
type edgeQueue struct {
	items []queuedEdge
	next  int
}

func (pq *edgeQueue) Len() int { return len(pq.items) }

func (pq *edgeQueue) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.edge.Weight != b.edge.Weight {
		return a.edge.Weight < b.edge.Weight
	}
	return a.seq < b.seq
}

func (pq *edgeQueue) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *edgeQueue) Push(x any) { pq.items = append(pq.items, x.(queuedEdge)) }

func (pq *edgeQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	return item
}
