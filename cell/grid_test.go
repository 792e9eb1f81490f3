package cell_test

import (
	"testing"

	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/tile"
	"github.com/katalvlaran/collapse/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkerboardCatalog(t *testing.T) *tile.Catalog {
	t.Helper()
	cat, err := tile.Build([]tile.Descriptor{
		{Name: "W", Adjacencies: []any{"[W>B]", "[W>B]", "[W>B]", "[W>B]"}},
		{Name: "B", Adjacencies: []any{"[B>W]", "[B>W]", "[B>W]", "[B>W]"}},
	}, 4)
	require.NoError(t, err)
	return cat
}

func TestNewGrid_AllCellsFull(t *testing.T) {
	topo, err := topology.NewSquare(2, 3)
	require.NoError(t, err)
	cat := checkerboardCatalog(t)

	g := cell.NewGrid(topo, cat)
	assert.Equal(t, 6, g.Len())
	for i := 0; i < g.Len(); i++ {
		assert.Equal(t, 2, g.Cell(i).Entropy())
	}
	assert.False(t, g.IsComplete())
	assert.False(t, g.HasContradiction())
}

func TestGrid_UncollapsedAndComplete(t *testing.T) {
	topo, err := topology.NewSquare(1, 2)
	require.NoError(t, err)
	cat := checkerboardCatalog(t)
	g := cell.NewGrid(topo, cat)

	assert.Len(t, g.Uncollapsed(), 2)
	require.NoError(t, g.At(0).CollapseTo(0))
	assert.Len(t, g.Uncollapsed(), 1)

	require.NoError(t, g.At(1).CollapseTo(1))
	assert.True(t, g.IsComplete())
}

func TestGrid_CloneAndRestoreAreIndependent(t *testing.T) {
	topo, err := topology.NewSquare(1, 2)
	require.NoError(t, err)
	cat := checkerboardCatalog(t)
	g := cell.NewGrid(topo, cat)

	snapshot := g.Clone()
	require.NoError(t, g.At(0).CollapseTo(0))
	assert.True(t, g.Cell(0).Collapsed)
	assert.False(t, snapshot.Cell(0).Collapsed)

	g.Restore(snapshot.All())
	assert.False(t, g.Cell(0).Collapsed)
}
