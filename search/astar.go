// Package search - A* with the Manhattan heuristic.
package search

import "github.com/katalvlaran/gridpath/grid"

// AStar runs A* search from start to finish.
//
// Frontier discipline: min-heap keyed by f = g + h, where g is the best
// known cost-from-start and h the Manhattan distance to the finish. The
// heuristic is admissible and consistent on a unit-cost 4-connected grid,
// so the first expansion of the finish is optimal. A neighbor is relaxed
// only when its tentative g strictly improves; a cell already in the open
// set is never re-added — its priority is lowered in place instead.
//
// Guarantee: shortest path.
//
// Complexity: O(rows×cols × log(rows×cols)) time, O(rows×cols) memory.
func AStar(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	// 2. Prepare scratch state and the indexed open set.
	w := newWalker(g, start, finish, opts)
	n := g.Rows() * g.Cols()
	closed := make([]bool, n)
	open := newFrontier(n)
	w.res.dist[w.start] = 0
	open.push(w.start, start.Manhattan(finish))

	// 3. Expand the open set in increasing f until the finish is reached.
	var cur, ng, f int
	for open.Len() > 0 {
		cur, _ = open.popMin()
		closed[cur] = true
		w.expand(cur)
		if cur == w.finish {
			w.res.Found = true
			break
		}
		for _, nc := range w.neighbors(cur) {
			if g.IsWall(nc) {
				continue
			}
			ni := g.Index(nc)
			if closed[ni] {
				continue
			}
			ng = w.res.dist[cur] + 1
			if w.res.dist[ni] != -1 && ng >= w.res.dist[ni] {
				continue
			}
			w.res.dist[ni] = ng
			w.res.prev[ni] = int32(cur)
			f = ng + nc.Manhattan(finish)
			if open.has(ni) {
				open.update(ni, f) // decrease-key in place, no duplicate entry
			} else {
				open.push(ni, f)
			}
		}
	}

	return w.res, nil
}
