package cell

import "errors"

// ErrOutOfRange is returned when a cell index falls outside the grid.
var ErrOutOfRange = errors.New("cell: index out of range")

// ErrAlreadyCollapsed is returned by operations that require an
// uncollapsed cell.
var ErrAlreadyCollapsed = errors.New("cell: already collapsed")

// ErrContradiction is returned when a cell's candidate set becomes empty.
var ErrContradiction = errors.New("cell: contradiction, candidate set is empty")
