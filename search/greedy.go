// Package search - greedy best-first search.
package search

import "github.com/katalvlaran/gridpath/grid"

// Greedy runs greedy best-first search from start to finish.
//
// Frontier discipline: min-heap keyed by the Manhattan distance to the
// finish alone — no cost-from-start term. Each cell is inserted into the
// open set at most once, when first discovered; its predecessor is set at
// that moment and never updated, and later encounters skip re-insertion.
// That keeps the strategy fast and single-minded, at the price of any
// optimality guarantee.
//
// Guarantee: finds a path when one exists; the path may be longer than
// the shortest one.
//
// Complexity: O(rows×cols × log(rows×cols)) time, O(rows×cols) memory.
func Greedy(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	// 2. Prepare scratch state; seen guards one-shot open-set insertion.
	w := newWalker(g, start, finish, opts)
	n := g.Rows() * g.Cols()
	seen := make([]bool, n)
	open := newFrontier(n)
	seen[w.start] = true
	w.res.dist[w.start] = 0
	open.push(w.start, start.Manhattan(finish))

	// 3. Always chase the cell that looks closest to the finish.
	var cur int
	for open.Len() > 0 {
		cur, _ = open.popMin()
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
			if seen[ni] {
				continue // first discovery wins; no re-insertion, no updates
			}
			seen[ni] = true
			w.res.dist[ni] = w.res.dist[cur] + 1
			w.res.prev[ni] = int32(cur)
			open.push(ni, nc.Manhattan(finish))
		}
	}

	return w.res, nil
}
