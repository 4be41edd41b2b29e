package spanning

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
)

type growFunc func(*Tree, core.Point) ([]Edge, error)

var growers = map[string]growFunc{
	"prim": (*Tree).Grow,
	"walk": (*Tree).Walk,
}

func TestGrowersProduceSpanningTrees(t *testing.T) {
	for name, grow := range growers {
		for _, dims := range [][2]int{{2, 2}, {5, 5}, {12, 3}, {20, 15}} {
			w, h := dims[0], dims[1]
			t.Run(fmt.Sprintf("%s/%dx%d", name, w, h), func(t *testing.T) {
				tree := built(t, w, h)
				edges, err := grow(tree, core.P(w/2, h/2))
				require.NoError(t, err)

				assert.Len(t, edges, w*h-1)
				assert.True(t, tree.Done())
				assert.Empty(t, tree.PendingPoints())
				assert.Len(t, tree.VisitedPoints(), w*h)
				assertTree(t, tree, edges)
			})
		}
	}
}

func TestGrowPicksGlobalMinimum(t *testing.T) {
	// 2x2 weights: (0,0)-DOWN 1, (0,0)-RIGHT 5, (1,0)-DOWN 3, (0,1)-RIGHT 9.
	// From (0,0): take DOWN (1), then RIGHT (5), then (1,0)-DOWN (3).
	src := &scriptedSource{values: []uint64{1, 5, 3, 9}}
	tree, err := New(WithWeightSource(src)).Build(2, 2)
	require.NoError(t, err)

	edges, err := tree.Grow(core.P(0, 0))
	require.NoError(t, err)

	require.Len(t, edges, 3)
	assert.Equal(t, Edge{From: core.P(0, 0), Dir: core.Down, Weight: 1}, edges[0])
	assert.Equal(t, Edge{From: core.P(0, 0), Dir: core.Right, Weight: 5}, edges[1])
	assert.Equal(t, Edge{From: core.P(1, 0), Dir: core.Down, Weight: 3}, edges[2])
	assert.Equal(t,
		[]core.Point{core.P(0, 0), core.P(0, 1), core.P(1, 0), core.P(1, 1)},
		tree.VisitedPoints())
}

func TestWalkFollowsLocalMinimum(t *testing.T) {
	// Same weights: walk goes (0,0)->(0,1)->(1,1)->(1,0), taking the
	// (0,1)-RIGHT edge that Prim never uses.
	src := &scriptedSource{values: []uint64{1, 5, 3, 9}}
	tree, err := New(WithWeightSource(src)).Build(2, 2)
	require.NoError(t, err)

	edges, err := tree.Walk(core.P(0, 0))
	require.NoError(t, err)

	require.Len(t, edges, 3)
	assert.Equal(t, core.P(1, 1), edges[1].To())
	assert.Equal(t, int64(9), edges[1].Weight)
}

func TestWalkBacktracksFromDeadEnds(t *testing.T) {
	// 3x3 draws in scan order:
	// (0,0)D (0,0)R (1,0)D (1,0)R (2,0)D (0,1)D (0,1)R (1,1)D (1,1)R (2,1)D (0,2)R (1,2)R
	// The walk runs (0,0)->(1,0)->(1,1)->(1,2)->(0,2)->(0,1) into a dead end,
	// backs up to (1,2) and finishes (2,2)->(2,1)->(2,0).
	src := &scriptedSource{values: []uint64{50, 1, 2, 60, 6, 5, 70, 3, 80, 7, 4, 90}}
	tree, err := New(WithWeightSource(src)).Build(3, 3)
	require.NoError(t, err)

	edges, err := tree.Walk(core.P(0, 0))
	require.NoError(t, err)

	require.Len(t, edges, 8)
	assert.Equal(t, Edge{From: core.P(1, 2), Dir: core.Right, Weight: 90}, edges[5])
	assert.Equal(t, []core.Point{
		core.P(0, 0), core.P(1, 0), core.P(1, 1), core.P(1, 2), core.P(0, 2),
		core.P(0, 1), core.P(2, 2), core.P(2, 1), core.P(2, 0),
	}, tree.VisitedPoints())
	assertTree(t, tree, edges)
}

func TestPrimMinimisesTotalWeight(t *testing.T) {
	// Prim's tree can never weigh more than any other spanning tree, e.g. the walk's.
	for seed := int64(1); seed <= 5; seed++ {
		a, err := New(WithSeed(seed)).Build(6, 6)
		require.NoError(t, err)
		b, err := New(WithSeed(seed)).Build(6, 6)
		require.NoError(t, err)

		prim, err := a.Grow(core.P(0, 0))
		require.NoError(t, err)
		walk, err := b.Walk(core.P(0, 0))
		require.NoError(t, err)

		assert.LessOrEqual(t, total(prim).Cmp(total(walk)), 0, "seed %d", seed)
	}
}

func TestGrowRejectsBadStarts(t *testing.T) {
	for name, grow := range growers {
		t.Run(name, func(t *testing.T) {
			tree := built(t, 4, 4)
			_, err := grow(tree, core.P(4, 0))
			assert.ErrorIs(t, err, ErrUnknownPoint)

			require.NoError(t, tree.Visit(core.P(1, 1)))
			_, err = grow(tree, core.P(0, 0))
			assert.ErrorIs(t, err, ErrAlreadyGrown)

			_, err = grow(New(), core.P(0, 0))
			assert.ErrorIs(t, err, ErrUnknownPoint)
		})
	}
}

func TestGrowIsDeterministicForSeed(t *testing.T) {
	run := func() []Edge {
		tree, err := New(WithSeed(99)).Build(10, 7)
		require.NoError(t, err)
		edges, err := tree.Grow(core.P(3, 3))
		require.NoError(t, err)
		return edges
	}
	assert.Equal(t, run(), run())
}

// assertTree checks that edges join adjacent cells, carry the recorded
// weights, and connect every cell without a cycle.
func assertTree(t *testing.T, tree *Tree, edges []Edge) {
	t.Helper()
	parent := make(map[core.Point]core.Point)
	var find func(core.Point) core.Point
	find = func(p core.Point) core.Point {
		q, ok := parent[p]
		if !ok || q == p {
			return p
		}
		root := find(q)
		parent[p] = root
		return root
	}

	for _, e := range edges {
		w, ok := tree.Weight(e.From, e.Dir)
		require.True(t, ok, "edge %s is not in the grid", e)
		assert.Equal(t, w, e.Weight)

		a, b := find(e.From), find(e.To())
		require.NotEqual(t, a, b, "edge %s closes a cycle", e)
		parent[a] = b
	}

	root := find(core.P(0, 0))
	for _, p := range tree.AllPoints() {
		assert.Equal(t, root, find(p), "%s is not connected", p)
	}
}

func total(edges []Edge) *big.Int {
	sum := new(big.Int)
	for _, e := range edges {
		sum.Add(sum, big.NewInt(e.Weight))
	}
	return sum
}
