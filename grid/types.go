// Package grid defines core types, coordinate helpers, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates a requested grid with non-positive rows or cols.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")

	// ErrCoordOutOfBounds indicates a coordinate outside the rows×cols field.
	ErrCoordOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrProtectedCell indicates an attempt to wall the start or finish cell.
	ErrProtectedCell = errors.New("grid: start and finish cells cannot become walls")

	// ErrEndpointOnWall indicates an attempt to place start/finish on a wall cell.
	ErrEndpointOnWall = errors.New("grid: start and finish must be non-wall cells")

	// ErrEndpointOverlap indicates start and finish landing on the same cell.
	ErrEndpointOverlap = errors.New("grid: start and finish must differ")
)

// Coord addresses a single cell by its zero-based (Row, Col) pair.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Manhattan returns |ΔRow| + |ΔCol| between c and o.
// Complexity: O(1).
func (c Coord) Manhattan(o Coord) int {
	dr := c.Row - o.Row
	if dr < 0 {
		dr = -dr
	}
	dc := c.Col - o.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Adjacent reports whether o lies exactly one orthogonal step from c.
// Complexity: O(1).
func (c Coord) Adjacent(o Coord) bool { return c.Manhattan(o) == 1 }

// Cell holds the static per-cell flags that persist across runs.
// Search working state (distance, visited, predecessor, score) is never
// stored here; each search run keeps its own index-keyed scratch arrays.
type Cell struct {
	// Wall marks the cell impassable; walls are never expanded by a search.
	Wall bool
	// Start marks the unique run origin. Mutually exclusive with Finish.
	Start bool
	// Finish marks the unique run target. Mutually exclusive with Start.
	Finish bool
}

// Grid is a rows×cols rectangular field of cells, row-major, 0-indexed.
// The zero value is unusable; construct via New.
type Grid struct {
	rows, cols int
	cells      []Cell

	start, finish       Coord
	hasStart, hasFinish bool
}
