package spanning

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed list of weights, cycling when exhausted.
type scriptedSource struct {
	values []uint64
	i      int
}

func (s *scriptedSource) Uint64() uint64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// built returns a seeded tree built to width×height.
func built(t *testing.T, width, height int) *Tree {
	t.Helper()
	tree, err := New(WithSeed(42)).Build(width, height)
	require.NoError(t, err)
	return tree
}
