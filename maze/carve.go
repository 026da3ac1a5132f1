// Package maze - odd-lattice helpers shared by the carving generators.
//
// The backtracker and the frontier-growth generator both carve corridors
// on the odd (row, col) lattice of a fully walled field: maze cells sit at
// odd coordinates, wall lines occupy the even ones, and carving a step
// clears the midpoint between two lattice cells two apart.
package maze

import "github.com/katalvlaran/gridpath/grid"

// carveBounds returns the inclusive carving region: the full field, or the
// interior inside the border ring when addBorder is true.
func carveBounds(rows, cols int, addBorder bool) (top, bottom, left, right int) {
	if addBorder {
		return 1, rows - 2, 1, cols - 2
	}

	return 0, rows - 1, 0, cols - 1
}

// latticeCells lists the odd/odd cells inside the inclusive bounds in
// row-major order.
func latticeCells(top, bottom, left, right int) []grid.Coord {
	var cells []grid.Coord
	r := top
	if r%2 == 0 {
		r++
	}
	for ; r <= bottom; r += 2 {
		c := left
		if c%2 == 0 {
			c++
		}
		for ; c <= right; c += 2 {
			cells = append(cells, grid.Coord{Row: r, Col: c})
		}
	}

	return cells
}

// latticeSteps lists the four two-cell jumps between lattice cells,
// in Up, Down, Left, Right order.
var latticeSteps = [4][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// latticeNeighbors appends c's lattice neighbors two steps away that lie
// inside the inclusive bounds.
func latticeNeighbors(c grid.Coord, top, bottom, left, right int, buf []grid.Coord) []grid.Coord {
	var n grid.Coord
	for _, s := range latticeSteps {
		n = grid.Coord{Row: c.Row + s[0], Col: c.Col + s[1]}
		if n.Row >= top && n.Row <= bottom && n.Col >= left && n.Col <= right {
			buf = append(buf, n)
		}
	}

	return buf
}

// midpoint returns the cell between two lattice cells two apart.
func midpoint(a, b grid.Coord) grid.Coord {
	return grid.Coord{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// finishCarve applies the shared endpoint epilogue of both carving
// generators: clear the start and finish cells, connect each to the
// nearest carved opening with a stepped line (endpoints rarely align with
// the odd lattice), then run the endpoint-opening post-pass.
func finishCarve(ws WallSet, rows, cols int, start, finish grid.Coord) {
	connectEndpoint(ws, rows, cols, start)
	connectEndpoint(ws, rows, cols, finish)
	openEndpoints(ws, rows, cols, start, finish)
}
