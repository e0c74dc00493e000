package polyiamond

import "errors"

// Sentinel errors for shape construction.
var (
	// ErrEmptyShape indicates a shape with no cells.
	ErrEmptyShape = errors.New("polyiamond: shape must contain at least one cell")
	// ErrNotConnected indicates cells that do not form one edge-connected region.
	ErrNotConnected = errors.New("polyiamond: cells must be edge-connected")
)
