package tile

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog construction. Per the module's error policy,
// callers branch with errors.Is; context is attached with %w at the call
// site rather than baked into the sentinel text.
var (
	// ErrEmptyName indicates a descriptor with a blank Name.
	ErrEmptyName = errors.New("tile: name is empty")

	// ErrDuplicateName indicates two descriptors share a Name.
	ErrDuplicateName = errors.New("tile: duplicate name")

	// ErrEdgeCountMismatch indicates a descriptor's Adjacencies length does
	// not equal the topology's per-cell edge count.
	ErrEdgeCountMismatch = errors.New("tile: edge count does not match topology")

	// ErrBadWeight indicates a negative Weight (a zero Weight means
	// DefaultWeight).
	ErrBadWeight = errors.New("tile: weight must be positive")

	// ErrBadAdjacency indicates an Adjacencies entry that is neither a
	// string nor a rule.Rule.
	ErrBadAdjacency = errors.New("tile: adjacency entry must be a string or rule.Rule")
)

// ConfigError wraps a construction-time sentinel with the offending tile
// name and index for diagnostics.
type ConfigError struct {
	TileName string
	Index    int
	Err      error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.TileName == "" {
		return fmt.Sprintf("tile: catalog[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("tile: catalog[%d] (%q): %v", e.Index, e.TileName, e.Err)
}

// Unwrap exposes the wrapped sentinel for errors.Is.
func (e *ConfigError) Unwrap() error { return e.Err }
