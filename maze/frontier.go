// Package maze - randomized frontier growth (Prim's-style) generator.
package maze

import "github.com/katalvlaran/gridpath/grid"

// Frontier generates a maze by growing one carved region from a random
// odd-lattice seed, Prim's style.
//
// The frontier holds the walled lattice cells two steps from the carved
// region. Each round picks a uniformly random frontier cell, clears the
// midpoint between it and one of its already-carved lattice neighbors
// (chosen uniformly when several exist), carves the cell, and adds its
// still-walled lattice neighbors to the frontier. Growth terminates when
// the frontier is empty, having reached every lattice cell of the region.
//
// Endpoint protection and opening match the backtracker: start and finish
// are cleared, connected with stepped lines, and border-opened.
//
// Returns:
//   - empty WallSet for degenerate dimensions (rows or cols < 1);
//   - ErrCoordOutOfBounds / ErrSameEndpoints for invalid endpoints.
//
// Complexity: O(rows×cols) time and memory.
func Frontier(rows, cols int, start, finish grid.Coord, addBorder bool, opts ...Option) (WallSet, error) {
	// 1. Degenerate fields produce no walls at all.
	if rows < 1 || cols < 1 {
		return WallSet{}, nil
	}

	// 2. Validate endpoints.
	if err := validateEndpoints(rows, cols, start, finish); err != nil {
		return nil, err
	}

	// 3. Resolve options; begin fully walled.
	o := buildOptions(opts)
	rng := o.rng()
	ws := fullWalls(rows, cols)

	// 4. Grow the carved region from a random lattice seed.
	top, bottom, left, right := carveBounds(rows, cols, addBorder)
	cells := latticeCells(top, bottom, left, right)
	if len(cells) > 0 {
		carved := make(map[grid.Coord]bool, len(cells))
		inFrontier := make(map[grid.Coord]bool, len(cells))
		buf := make([]grid.Coord, 0, 4)

		seed := cells[rng.Intn(len(cells))]
		ws.Remove(seed)
		carved[seed] = true

		var frontier []grid.Coord
		buf = latticeNeighbors(seed, top, bottom, left, right, buf)
		for _, n := range buf {
			frontier = append(frontier, n)
			inFrontier[n] = true
		}

		var cell grid.Coord
		for len(frontier) > 0 {
			// Uniform pick, removed by swap-with-last.
			i := rng.Intn(len(frontier))
			cell = frontier[i]
			frontier[i] = frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]
			inFrontier[cell] = false

			// Connect to one carved lattice neighbor, chosen uniformly.
			buf = buf[:0]
			buf = latticeNeighbors(cell, top, bottom, left, right, buf)
			carvedNbs := buf[:0]
			for _, n := range buf {
				if carved[n] {
					carvedNbs = append(carvedNbs, n)
				}
			}
			if len(carvedNbs) == 0 {
				continue // cannot happen for a frontier cell; kept as a guard
			}
			ws.Remove(midpoint(cell, carvedNbs[rng.Intn(len(carvedNbs))]))
			ws.Remove(cell)
			carved[cell] = true

			// Extend the frontier with the newly exposed lattice cells.
			buf = buf[:0]
			buf = latticeNeighbors(cell, top, bottom, left, right, buf)
			for _, n := range buf {
				if !carved[n] && !inFrontier[n] {
					frontier = append(frontier, n)
					inFrontier[n] = true
				}
			}
		}
	}

	// 5. Endpoint epilogue: clear, connect, open borders.
	finishCarve(ws, rows, cols, start, finish)

	return ws, nil
}
