package topology

import "errors"

// ErrBadDimensions indicates a topology constructor was given a dimension
// smaller than its minimum (typically 1).
var ErrBadDimensions = errors.New("topology: dimension must be positive")
