// Package search - Dijkstra's algorithm on the unit-cost grid.
//
// With every step costing 1, Dijkstra degenerates to a best-first BFS, but
// it is kept as its own strategy because its frontier discipline differs:
// a global minimum-distance extraction with relaxation, not a FIFO layer
// sweep. The heap holds only discovered cells, so an empty heap is exactly
// the "minimum remaining distance is infinite" stop condition — the
// remaining cells are unreachable.
package search

import "github.com/katalvlaran/gridpath/grid"

// Dijkstra runs Dijkstra's shortest-path search from start to finish.
//
// Frontier discipline: min-heap keyed by distance with the lazy
// decrease-key pattern — relaxing a cell pushes a fresh heap entry and
// stale entries are skipped on pop (cheaper than in-heap updates and
// order-equivalent). A neighbor is relaxed only when the candidate
// distance is strictly smaller than its best known one. Equal-priority
// ties resolve by insertion sequence, so expansion order is deterministic.
//
// Guarantee: shortest path (all edge weights are 1).
//
// Complexity: O(rows×cols × log(rows×cols)) time, O(rows×cols) memory.
func Dijkstra(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	// 2. Prepare scratch state; dist == -1 plays the role of +∞.
	w := newWalker(g, start, finish, opts)
	n := g.Rows() * g.Cols()
	done := make([]bool, n)
	pq := newFrontier(n)
	w.res.dist[w.start] = 0
	pq.push(w.start, 0)

	// 3. Repeatedly extract the global minimum and relax its neighbors.
	var cur, nd int
	for pq.Len() > 0 {
		cur, _ = pq.popMin()
		if done[cur] {
			continue // stale lazy-decrease-key entry
		}
		done[cur] = true
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
			if done[ni] {
				continue
			}
			nd = w.res.dist[cur] + 1
			if w.res.dist[ni] != -1 && nd >= w.res.dist[ni] {
				continue // relax only on a strictly smaller candidate
			}
			w.res.dist[ni] = nd
			w.res.prev[ni] = int32(cur)
			pq.push(ni, nd)
		}
	}

	return w.res, nil
}
