// Package search - breadth-first search.
//
// BFS explores the grid in frontier layers of increasing distance from the
// start, so the first time the finish is dequeued its back-link chain is a
// shortest path. Edge cost is uniform, which makes BFS optimal here.
package search

import "github.com/katalvlaran/gridpath/grid"

// BFS runs breadth-first search from start to finish.
//
// Frontier discipline: FIFO queue; neighbors enqueued in the canonical
// Up, Down, Left, Right order, which fixes the tie-break among cells of
// equal depth. A cell is marked seen when enqueued, expanded when dequeued.
// The run stops as soon as the finish is dequeued for expansion; if the
// queue empties first, the finish is unreachable (Found=false, no error).
//
// Guarantee: shortest path on the unweighted grid.
//
// Complexity: O(rows×cols) time and memory.
func BFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate inputs (nil grid, bounds, distinct non-wall endpoints).
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	// 2. Prepare per-run scratch state and seed the queue with the start.
	w := newWalker(g, start, finish, opts)
	seen := make([]bool, g.Rows()*g.Cols())
	queue := make([]int, 0, len(seen))
	seen[w.start] = true
	w.res.dist[w.start] = 0
	queue = append(queue, w.start)

	// 3. Process the queue until the finish is expanded or the frontier empties.
	var cur int
	for len(queue) > 0 {
		cur = queue[0]
		queue = queue[1:]
		w.expand(cur)
		if cur == w.finish {
			w.res.Found = true
			break
		}
		for _, nc := range w.neighbors(cur) {
			if g.IsWall(nc) {
				continue // walls are checked and skipped, never visited
			}
			ni := g.Index(nc)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			w.res.dist[ni] = w.res.dist[cur] + 1
			w.res.prev[ni] = int32(cur)
			queue = append(queue, ni)
		}
	}

	return w.res, nil
}
