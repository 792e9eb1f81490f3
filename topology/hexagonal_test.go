package topology_test

import (
	"testing"

	"github.com/katalvlaran/collapse/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexagonal_InverseIsInvolution(t *testing.T) {
	topo, err := topology.NewHexagonal(3, 3)
	require.NoError(t, err)

	for d := topology.Direction(0); d < 6; d++ {
		assert.Equal(t, d, topo.Inverse(topo.Inverse(d)))
	}
}

func TestHexagonal_NeighborSymmetry(t *testing.T) {
	topo, err := topology.NewHexagonal(5, 5)
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
			assert.True(t, found)
		}
	}
}
