package snapshot_test

import (
	"testing"

	"github.com/katalvlaran/collapse/cell"
	"github.com/katalvlaran/collapse/oracle"
	"github.com/katalvlaran/collapse/propagate"
	"github.com/katalvlaran/collapse/snapshot"
	"github.com/katalvlaran/collapse/tile"
	"github.com/katalvlaran/collapse/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*cell.Grid, *oracle.Oracle) {
	t.Helper()
	topo, err := topology.NewSquare(2, 2)
	require.NoError(t, err)
	cat, err := tile.Build([]tile.Descriptor{
		{Name: "W", Adjacencies: []any{"[W>B]", "[W>B]", "[W>B]", "[W>B]"}},
		{Name: "B", Adjacencies: []any{"[B>W]", "[B>W]", "[B>W]", "[B>W]"}},
	}, 4)
	require.NoError(t, err)
	o, err := oracle.Build(cat, topo)
	require.NoError(t, err)
	g := cell.NewGrid(topo, cat)
	return g, o
}

func TestRollback_RestoresGridExactlyExceptForbidden(t *testing.T) {
	g, o := setup(t)
	wIdx, _ := g.Catalog().IndexOf("W")

	before := g.Clone()
	stack := snapshot.NewStack()

	candBefore := g.Cell(0).Candidates.Clone()
	frame := stack.Take(snapshot.Decision{CellIndex: 0, TileIndex: wIdx, CandidatesBefore: candBefore})

	require.NoError(t, g.At(0).CollapseTo(wIdx))
	err := propagate.Run(g, o, []int{0}, frame, propagate.NopCollapsed{})
	require.NoError(t, err)
	stack.Commit()

	assert.True(t, g.Cell(0).Collapsed)
	for i := 1; i < g.Len(); i++ {
		assert.Equal(t, 1, g.Cell(i).Entropy())
	}

	decision, ok := stack.Rollback(g)
	require.True(t, ok)
	assert.Equal(t, 0, decision.CellIndex)
	assert.Equal(t, wIdx, decision.TileIndex)

	for i := 0; i < g.Len(); i++ {
		assert.True(t, g.Cell(i).Candidates.Equal(before.Cell(i).Candidates), "cell %d", i)
		assert.Equal(t, before.Cell(i).Collapsed, g.Cell(i).Collapsed, "cell %d", i)
	}

	g.At(decision.CellIndex).Forbid(decision.TileIndex)
	assert.True(t, g.Cell(0).Forbidden.Has(wIdx))
	assert.False(t, g.Cell(0).Candidates.Has(wIdx))
}

func TestRollback_EmptyStackReturnsFalse(t *testing.T) {
	g, _ := setup(t)
	stack := snapshot.NewStack()
	_, ok := stack.Rollback(g)
	assert.False(t, ok)
}

func TestStack_LenTracksFrames(t *testing.T) {
	stack := snapshot.NewStack()
	assert.Equal(t, 0, stack.Len())
	stack.Take(snapshot.Decision{})
	assert.Equal(t, 1, stack.Len())
}
