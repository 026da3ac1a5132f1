// Package search - depth-first search.
package search

import "github.com/katalvlaran/gridpath/grid"

// dfsPushOffsets lists the four orthogonal steps in the order they are
// pushed: Left, Down, Right, Up. LIFO popping then explores neighbors in
// Up, Right, Down, Left order.
var dfsPushOffsets = [4][2]int{
	{0, -1}, // Left
	{1, 0},  // Down
	{0, 1},  // Right
	{-1, 0}, // Up
}

// DFS runs depth-first search from start to finish.
//
// Frontier discipline: LIFO stack; neighbors are pushed in reverse of the
// Up, Right, Down, Left exploration order, so popping yields that order.
// A cell is marked seen at push time, which prevents revisits but also
// means the first branch to reach a cell claims it for good.
//
// Guarantee: finds a path when one exists, with no shortest-path promise;
// the recorded distance of a cell is its depth along the DFS tree.
//
// Complexity: O(rows×cols) time and memory.
func DFS(g *grid.Grid, start, finish grid.Coord, opts ...Option) (*Result, error) {
	// 1. Validate inputs.
	if err := validate(g, start, finish); err != nil {
		return nil, err
	}

	// 2. Prepare scratch state and seed the stack with the start.
	w := newWalker(g, start, finish, opts)
	seen := make([]bool, g.Rows()*g.Cols())
	stack := make([]int, 0, len(seen))
	seen[w.start] = true
	w.res.dist[w.start] = 0
	stack = append(stack, w.start)

	// 3. Pop until the finish is expanded or the stack empties.
	var cur int
	var nc grid.Coord
	for len(stack) > 0 {
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.expand(cur)
		if cur == w.finish {
			w.res.Found = true
			break
		}
		cc := g.CoordOf(cur)
		for _, off := range dfsPushOffsets {
			nc = grid.Coord{Row: cc.Row + off[0], Col: cc.Col + off[1]}
			if !g.InBounds(nc) || g.IsWall(nc) {
				continue
			}
			ni := g.Index(nc)
			if seen[ni] {
				continue
			}
			seen[ni] = true
			w.res.dist[ni] = w.res.dist[cur] + 1
			w.res.prev[ni] = int32(cur)
			stack = append(stack, ni)
		}
	}

	return w.res, nil
}
