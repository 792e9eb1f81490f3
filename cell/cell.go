package cell

// Cell is the mutable state of one grid position: the set of tile
// indices still admissible, whether the cell has settled on exactly one,
// and a forbidden set carved out by backtracking so a failed choice is
// never retried at this cell within the same branch (spec §4, C4).
//
// Restrict and Forbid keep Candidates and Forbidden disjoint and set
// Collapsed once exactly one candidate is left. CollapseTo does not
// consult Forbidden, and a Restrict that empties an already collapsed
// cell (a contradiction) leaves Collapsed set. Callers should not mutate
// Candidates/Forbidden directly.
type Cell struct {
	Candidates Bitset
	Forbidden  Bitset
	Collapsed  bool
}

// New returns an uncollapsed Cell whose candidate set is the full tile
// range [0, numTiles).
func New(numTiles int) Cell {
	return Cell{
		Candidates: FullBitset(numTiles),
		Forbidden:  NewBitset(numTiles),
	}
}

// Entropy returns the number of remaining candidates. A collapsed cell
// has entropy 1; a contradicted cell has entropy 0.
func (c Cell) Entropy() int {
	return c.Candidates.Count()
}

// IsContradiction reports whether the cell has no remaining candidates.
func (c Cell) IsContradiction() bool {
	return c.Candidates.IsEmpty()
}

// Restrict intersects the candidate set with allowed, returning true if
// the set actually shrank. It never touches Forbidden: restriction
// models propagation, not backtracking exclusion.
func (c *Cell) Restrict(allowed Bitset) bool {
	before := c.Candidates.Count()
	c.Candidates.AndInPlace(allowed)
	shrank := c.Candidates.Count() != before
	if c.Candidates.Count() == 1 {
		c.Collapsed = true
	}
	return shrank
}

// Forbid removes tile from the candidate set and records it in Forbidden,
// so a selection drawn from Candidates cannot pick it again in this
// branch.
func (c *Cell) Forbid(tile int) {
	c.Candidates.Clear(tile)
	c.Forbidden.Set(tile)
	if c.Candidates.Count() == 1 {
		c.Collapsed = true
	}
}

// CollapseTo forces the cell to a single tile index, clearing every
// other candidate. Returns ErrAlreadyCollapsed if the cell is already
// settled on a different tile.
func (c *Cell) CollapseTo(tile int) error {
	if c.Collapsed && !(c.Candidates.Count() == 1 && c.Candidates.Has(tile)) {
		return ErrAlreadyCollapsed
	}
	n := c.Candidates.Len()
	c.Candidates = NewBitset(n)
	c.Candidates.Set(tile)
	c.Collapsed = true
	return nil
}

// Clone returns a deep, independent copy of the cell.
func (c Cell) Clone() Cell {
	return Cell{
		Candidates: c.Candidates.Clone(),
		Forbidden:  c.Forbidden.Clone(),
		Collapsed:  c.Collapsed,
	}
}
