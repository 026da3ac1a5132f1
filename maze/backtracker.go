// Package maze - recursive backtracker generator.
package maze

import "github.com/katalvlaran/gridpath/grid"

// Backtracker generates a perfect maze by depth-first carving on the odd
// lattice of a fully walled field.
//
// A random lattice cell is carved and pushed on a stack. While the stack
// is non-empty, the top cell's uncarved lattice neighbors two steps away
// are collected; if any exist, one is chosen uniformly at random, the wall
// at the midpoint and the neighbor itself are cleared, and the neighbor is
// pushed — otherwise the top is popped (classic backtracking DFS). The
// carved corridors form a perfect maze: exactly one path between any two
// carved cells.
//
// The start and finish cells are then cleared and connected to the carved
// layout with stepped lines, and the endpoint-opening post-pass runs, so
// endpoints are reachable even when their coordinates miss the odd lattice.
//
// Returns:
//   - empty WallSet for degenerate dimensions (rows or cols < 1);
//   - ErrCoordOutOfBounds / ErrSameEndpoints for invalid endpoints.
//
// Complexity: O(rows×cols) time and memory.
func Backtracker(rows, cols int, start, finish grid.Coord, addBorder bool, opts ...Option) (WallSet, error) {
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

	// 4. Carve the odd lattice inside the working region, if it has one.
	top, bottom, left, right := carveBounds(rows, cols, addBorder)
	cells := latticeCells(top, bottom, left, right)
	if len(cells) > 0 {
		carved := make(map[grid.Coord]bool, len(cells))
		buf := make([]grid.Coord, 0, 4)

		seed := cells[rng.Intn(len(cells))]
		ws.Remove(seed)
		carved[seed] = true
		stack := []grid.Coord{seed}

		var cur, next grid.Coord
		for len(stack) > 0 {
			cur = stack[len(stack)-1]

			// Unvisited lattice neighbors two steps away.
			buf = buf[:0]
			buf = latticeNeighbors(cur, top, bottom, left, right, buf)
			unvisited := buf[:0]
			for _, n := range buf {
				if !carved[n] {
					unvisited = append(unvisited, n)
				}
			}

			if len(unvisited) == 0 {
				stack = stack[:len(stack)-1] // dead end: backtrack
				continue
			}

			next = unvisited[rng.Intn(len(unvisited))]
			ws.Remove(midpoint(cur, next))
			ws.Remove(next)
			carved[next] = true
			stack = append(stack, next)
		}
	}

	// 5. Endpoint epilogue: clear, connect, open borders.
	finishCarve(ws, rows, cols, start, finish)

	return ws, nil
}
