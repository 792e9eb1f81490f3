package topology_test

import (
	"testing"

	"github.com/katalvlaran/collapse/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCube_CellCountAndRoundTrip(t *testing.T) {
	topo, err := topology.NewCube(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 24, topo.CellCount())
	assert.Equal(t, 6, topo.EdgeCount())

	for i := 0; i < topo.CellCount(); i++ {
		c := topo.Coord(i)
		idx, ok := topo.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestCube_InverseIsInvolution(t *testing.T) {
	topo, err := topology.NewCube(3, 3, 3)
	require.NoError(t, err)

	for d := topology.Direction(0); d < 6; d++ {
		assert.Equal(t, d, topo.Inverse(topo.Inverse(d)))
	}
}
