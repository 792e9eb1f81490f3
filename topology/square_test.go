package topology_test

import (
	"testing"

	"github.com/katalvlaran/collapse/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquare_CellCountAndCoords(t *testing.T) {
	topo, err := topology.NewSquare(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, topo.CellCount())
	assert.Equal(t, 4, topo.EdgeCount())

	coords := topo.Coords()
	require.Len(t, coords, 6)
	for i, c := range coords {
		assert.Equal(t, c, topo.Coord(i))
		idx, ok := topo.Index(c)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}
}

func TestSquare_OutOfBoundsNeighborIsNone(t *testing.T) {
	topo, err := topology.NewSquare(1, 1)
	require.NoError(t, err)

	neighbors := topo.Neighbors(0)
	require.Len(t, neighbors, 4)
	for _, n := range neighbors {
		assert.Equal(t, -1, n.Index)
	}
}

func TestSquare_InverseIsInvolution(t *testing.T) {
	topo, err := topology.NewSquare(3, 3)
	require.NoError(t, err)

	for d := topology.Direction(0); d < 4; d++ {
		assert.Equal(t, d, topo.Inverse(topo.Inverse(d)))
	}
}

func TestSquare_NeighborSymmetry(t *testing.T) {
	topo, err := topology.NewSquare(4, 4)
	require.NoError(t, err)

	for idx := 0; idx < topo.CellCount(); idx++ {
		for _, n := range topo.Neighbors(idx) {
			if n.Index == -1 {
				continue
			}
			back := topo.Neighbors(n.Index)
			found := false
			for _, bn := range back {
				if bn.Direction == topo.Inverse(n.Direction) && bn.Index == idx {
					found = true
				}
			}
			assert.True(t, found, "cell %d direction %v should see %d back via inverse", idx, n.Direction, n.Index)
		}
	}
}

func TestSquare_RejectsBadDimensions(t *testing.T) {
	_, err := topology.NewSquare(0, 1)
	assert.Error(t, err)
}
