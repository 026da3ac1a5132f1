// Package gridpath is an in-memory core for exploring uniform-cost
// rectangular grids: five search strategies and three maze generators
// over one shared grid model.
//
// 🚀 What is gridpath?
//
//	A small, deterministic, pure-computation library that brings together:
//		• Grid model: rows×cols cell field, orthogonal adjacency, walls & endpoints
//		• Traversals: BFS, DFS
//		• Shortest paths: Dijkstra, A* (Manhattan heuristic)
//		• Heuristic-only search: greedy best-first
//		• Maze generation: recursive division, recursive backtracker,
//		  randomized frontier growth (Prim's style)
//		• Path reconstruction from per-run back-link tables
//
// ✨ Why choose gridpath?
//
//   - Deterministic – fixed neighbor orders, stable priority tie-breaks,
//     seedable maze randomness: every run is reproducible
//   - Pure Go – no cgo, no hidden deps, no rendering, no scheduling
//   - Side-effect-free – searches never write to the grid; working state
//     lives in per-run scratch tables
//   - Visualization-ready – visit order and reconstructed paths are plain
//     ordered slices for any UI to pace as it likes
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/   — Grid, Cell, Coord: the node graph everything operates on
//	search/ — BFS, DFS, Dijkstra, AStar, Greedy + Result.Path
//	maze/   — Division, Backtracker, Frontier wall-set generators
//
// Quick example — build a grid, apply a generated wall set, run a search,
// reconstruct the path:
//
//	g, _ := grid.New(21, 41)
//	start := grid.Coord{Row: 1, Col: 1}
//	finish := grid.Coord{Row: 19, Col: 39}
//	ws, _ := maze.Division(21, 41, start, finish, true, maze.WithSeed(7))
//	g.ApplyWalls(ws.Coords())
//	res, _ := search.BFS(g, start, finish)
//	path, _ := res.Path()
//
//	go get github.com/katalvlaran/gridpath
package gridpath
