package spanning

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Visit marks p visited, removes it from the pending set and appends each of
// its unvisited neighbours to the frontier. Visiting a point twice records it
// twice in the visit order.
func (t *Tree) Visit(p core.Point) error {
	weights, ok := t.adjacency[p]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPoint, p)
	}

	t.visited = append(t.visited, p)
	t.seen[p] = struct{}{}
	delete(t.pending, p)

	for _, d := range core.Directions() {
		if _, ok := weights[d]; !ok {
			continue
		}
		if n := p.Offset(d); !t.IsVisited(n) {
			t.frontier = append(t.frontier, n)
		}
	}
	return nil
}

// VisitNextClosestUnvisitedNeighbor visits the unvisited neighbour of p
// reached over p's lowest-weight edge and returns it. Only p's own edges are
// compared. Ties go to the first direction in Up, Down, Left, Right order.
// If every neighbour is already visited it returns ErrStuck and changes nothing.
func (t *Tree) VisitNextClosestUnvisitedNeighbor(p core.Point) (core.Point, error) {
	e, err := t.closestUnvisited(p)
	if err != nil {
		return core.Point{}, err
	}
	next := e.To()
	if err := t.Visit(next); err != nil {
		return core.Point{}, err
	}
	return next, nil
}

// closestUnvisited picks the cheapest edge from p into an unvisited cell.
func (t *Tree) closestUnvisited(p core.Point) (Edge, error) {
	weights, ok := t.adjacency[p]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrUnknownPoint, p)
	}

	best := Edge{From: p}
	found := false
	for _, d := range core.Directions() {
		w, ok := weights[d]
		if !ok || t.IsVisited(p.Offset(d)) {
			continue
		}
		if !found || w < best.Weight {
			best.Dir = d
			best.Weight = w
			found = true
		}
	}
	if !found {
		return Edge{}, fmt.Errorf("%w: %s", ErrStuck, p)
	}
	return best, nil
}
