// Package grid models a uniform-cost rectangular field as the node graph
// shared by every search strategy and maze generator in gridpath.
//
// Cells are addressed by zero-based (Row, Col) pairs, stored row-major.
// Adjacency is strictly orthogonal: the up/down/left/right cells that exist
// in bounds, no diagonals. Wall cells are returned by Neighbors — callers
// filter — so each algorithm keeps its own skip rule.
package grid

import "fmt"

// neighborOffsets lists the four orthogonal steps in canonical
// Up, Down, Left, Right order. The order is load-bearing: it fixes
// tie-break behavior among equal-priority frontier cells.
var neighborOffsets = [4][2]int{
	{-1, 0}, // Up
	{1, 0},  // Down
	{0, -1}, // Left
	{0, 1},  // Right
}

// New constructs an empty rows×cols grid with no walls and no endpoints.
// Returns ErrBadDimensions when rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the rows×cols field.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major slice position. The caller must ensure
// c is in bounds. Complexity: O(1).
func (g *Grid) Index(c Coord) int { return c.Row*g.cols + c.Col }

// CoordOf is the inverse of Index. Complexity: O(1).
func (g *Grid) CoordOf(i int) Coord { return Coord{Row: i / g.cols, Col: i % g.cols} }

// At returns a copy of the cell at c.
// Returns ErrCoordOutOfBounds for positions outside the field.
func (g *Grid) At(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, fmt.Errorf("%w: %v", ErrCoordOutOfBounds, c)
	}

	return g.cells[g.Index(c)], nil
}

// IsWall reports whether c is an in-bounds wall cell.
// Out-of-bounds coordinates are not walls; they simply do not exist.
// Complexity: O(1).
func (g *Grid) IsWall(c Coord) bool {
	return g.InBounds(c) && g.cells[g.Index(c)].Wall
}

// SetWall sets or clears the wall flag at c.
//
// Returns:
//   - ErrCoordOutOfBounds when c lies outside the field.
//   - ErrProtectedCell when walling the current start or finish cell;
//     endpoints persist as non-wall until the caller moves them.
func (g *Grid) SetWall(c Coord, wall bool) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrCoordOutOfBounds, c)
	}
	cell := &g.cells[g.Index(c)]
	if wall && (cell.Start || cell.Finish) {
		return fmt.Errorf("%w: %v", ErrProtectedCell, c)
	}
	cell.Wall = wall

	return nil
}

// SetStart places the unique start marker at c, clearing any previous one.
//
// Validation order:
//  1. c must be in bounds (ErrCoordOutOfBounds).
//  2. c must not be a wall (ErrEndpointOnWall).
//  3. c must differ from the current finish (ErrEndpointOverlap).
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrCoordOutOfBounds, c)
	}
	if g.cells[g.Index(c)].Wall {
		return fmt.Errorf("%w: start at %v", ErrEndpointOnWall, c)
	}
	if g.hasFinish && g.finish == c {
		return fmt.Errorf("%w: %v", ErrEndpointOverlap, c)
	}
	if g.hasStart {
		g.cells[g.Index(g.start)].Start = false
	}
	g.start = c
	g.hasStart = true
	g.cells[g.Index(c)].Start = true

	return nil
}

// SetFinish places the unique finish marker at c, clearing any previous one.
// Validation mirrors SetStart.
func (g *Grid) SetFinish(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrCoordOutOfBounds, c)
	}
	if g.cells[g.Index(c)].Wall {
		return fmt.Errorf("%w: finish at %v", ErrEndpointOnWall, c)
	}
	if g.hasStart && g.start == c {
		return fmt.Errorf("%w: %v", ErrEndpointOverlap, c)
	}
	if g.hasFinish {
		g.cells[g.Index(g.finish)].Finish = false
	}
	g.finish = c
	g.hasFinish = true
	g.cells[g.Index(c)].Finish = true

	return nil
}

// Start returns the start coordinate and whether one has been placed.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// Finish returns the finish coordinate and whether one has been placed.
func (g *Grid) Finish() (Coord, bool) { return g.finish, g.hasFinish }

// Neighbors appends the in-bounds orthogonal neighbors of c to buf in
// canonical Up, Down, Left, Right order and returns the extended slice.
// Wall cells are included; callers filter. Reusing buf across calls keeps
// the hot path allocation-free.
// Complexity: O(1).
func (g *Grid) Neighbors(c Coord, buf []Coord) []Coord {
	var n Coord
	for _, off := range neighborOffsets {
		n = Coord{Row: c.Row + off[0], Col: c.Col + off[1]}
		if g.InBounds(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// ApplyWalls marks every listed coordinate as a wall, silently skipping
// out-of-bounds entries and the protected start/finish cells. This is the
// consumer half of the maze-generator contract: a generated wall set never
// contains the endpoints, but a caller-supplied one might.
// Complexity: O(len(coords)).
func (g *Grid) ApplyWalls(coords []Coord) {
	for _, c := range coords {
		if !g.InBounds(c) {
			continue
		}
		cell := &g.cells[g.Index(c)]
		if cell.Start || cell.Finish {
			continue
		}
		cell.Wall = true
	}
}

// ClearWalls removes every wall flag, leaving endpoints untouched.
// Complexity: O(rows×cols).
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		g.cells[i].Wall = false
	}
}

// Clone returns a deep copy of g. Runs that mutate caller-side state must
// operate on independent clones; the algorithms themselves never mutate
// the grid, so cloning is the caller's isolation boundary.
// Complexity: O(rows×cols).
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)

	return &Grid{
		rows:      g.rows,
		cols:      g.cols,
		cells:     cells,
		start:     g.start,
		finish:    g.finish,
		hasStart:  g.hasStart,
		hasFinish: g.hasFinish,
	}
}
