package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/registry"
	"github.com/vovakirdan/tui-maze/internal/spanning"
)

func TestStrategiesAreRegistered(t *testing.T) {
	ids := make([]string, 0)
	for _, info := range registry.List() {
		ids = append(ids, info.ID)
	}
	assert.Contains(t, ids, PrimID)
	assert.Contains(t, ids, WalkID)
}

func TestRegisteredStrategiesGrowFullTrees(t *testing.T) {
	for _, id := range []string{PrimID, WalkID} {
		t.Run(id, func(t *testing.T) {
			s, err := registry.Create(id)
			require.NoError(t, err)
			assert.Equal(t, id, s.ID())
			assert.NotEmpty(t, s.Title())

			tree, err := spanning.New(spanning.WithSeed(5)).Build(8, 5)
			require.NoError(t, err)

			edges, err := s.Grow(tree, core.P(7, 4))
			require.NoError(t, err)
			assert.Len(t, edges, 8*5-1)
			assert.True(t, tree.Done())
		})
	}
}

func TestStrategiesCoverTheSameGrid(t *testing.T) {
	// Same seed means same weights; both trees span all 100 cells.
	build := func() *spanning.Tree {
		tree, err := spanning.New(spanning.WithSeed(21)).Build(10, 10)
		require.NoError(t, err)
		return tree
	}

	prim, err := Prim{}.Grow(build(), core.P(0, 0))
	require.NoError(t, err)
	walk, err := Walk{}.Grow(build(), core.P(0, 0))
	require.NoError(t, err)

	assert.Len(t, prim, 99)
	assert.Len(t, walk, 99)
}
