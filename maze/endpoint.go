// Package maze - endpoint protection shared by all generators.
package maze

import "github.com/katalvlaran/gridpath/grid"

// openEndpoints clears the protected start/finish cells and, for an
// endpoint sitting on the outer ring, its inward neighbor(s) — one per
// touched border, both for a corner — so a boundary endpoint is never
// sealed behind the border wall.
func openEndpoints(ws WallSet, rows, cols int, start, finish grid.Coord) {
	for _, c := range [2]grid.Coord{start, finish} {
		ws.Remove(c)
		if c.Row == 0 && rows > 1 {
			ws.Remove(grid.Coord{Row: 1, Col: c.Col})
		}
		if c.Row == rows-1 && rows > 1 {
			ws.Remove(grid.Coord{Row: rows - 2, Col: c.Col})
		}
		if c.Col == 0 && cols > 1 {
			ws.Remove(grid.Coord{Row: c.Row, Col: 1})
		}
		if c.Col == cols-1 && cols > 1 {
			ws.Remove(grid.Coord{Row: c.Row, Col: cols - 2})
		}
	}
}

// endpointOffsets lists the four orthogonal steps checked when probing an
// endpoint's surroundings.
var endpointOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// hasOpenNeighbor reports whether ep has at least one in-bounds orthogonal
// non-wall neighbor.
func hasOpenNeighbor(ws WallSet, rows, cols int, ep grid.Coord) bool {
	var n grid.Coord
	for _, off := range endpointOffsets {
		n = grid.Coord{Row: ep.Row + off[0], Col: ep.Col + off[1]}
		if inBounds(rows, cols, n) && !ws.Has(n) {
			return true
		}
	}

	return false
}

// freeSealedEndpoints carves an escape for any endpoint whose orthogonal
// neighbors are all walls. Division wall lines meeting at an even/even
// lattice intersection can enclose an interior endpoint on all four sides,
// so clearing the cell itself is not enough; a stepped line to the nearest
// open cell reconnects it to the carved layout.
func freeSealedEndpoints(ws WallSet, rows, cols int, start, finish grid.Coord) {
	for _, ep := range [2]grid.Coord{start, finish} {
		if !hasOpenNeighbor(ws, rows, cols, ep) {
			connectEndpoint(ws, rows, cols, ep)
		}
	}
}

// connectEndpoint clears ep and carves an axis-aligned stepped line (rows
// first, then columns) from ep to its nearest already-open cell. Carved
// mazes are fully connected, so one stepped line is enough to reach the
// whole layout; when nothing is open yet (degenerate carve area), ep is
// left as a lone opening for the next endpoint to connect to.
func connectEndpoint(ws WallSet, rows, cols int, ep grid.Coord) {
	ws.Remove(ep)

	target, ok := nearestOpen(ws, rows, cols, ep)
	if !ok {
		return
	}

	// Walk rows at ep's column, then columns at the target's row.
	step := func(from, to int) int {
		if from < to {
			return 1
		}

		return -1
	}
	cur := ep
	for cur.Row != target.Row {
		cur.Row += step(cur.Row, target.Row)
		ws.Remove(cur)
	}
	for cur.Col != target.Col {
		cur.Col += step(cur.Col, target.Col)
		ws.Remove(cur)
	}
}

// nearestOpen returns the non-wall cell closest to ep by Manhattan
// distance, scanning row-major so ties resolve deterministically.
// ok is false when every other cell is walled.
func nearestOpen(ws WallSet, rows, cols int, ep grid.Coord) (grid.Coord, bool) {
	var (
		best     grid.Coord
		bestDist = -1
		c        grid.Coord
	)
	for r := 0; r < rows; r++ {
		for col := 0; col < cols; col++ {
			c = grid.Coord{Row: r, Col: col}
			if c == ep || ws.Has(c) {
				continue
			}
			if d := ep.Manhattan(c); bestDist == -1 || d < bestDist {
				best = c
				bestDist = d
			}
		}
	}

	return best, bestDist != -1
}
