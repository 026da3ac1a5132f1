// Package search implements five traversal strategies over a gridpath
// grid — BFS, DFS, Dijkstra, A*, and greedy best-first — behind one shared
// contract, plus path reconstruction from the recorded back-links.
//
// What:
//
//   - BFS(g, start, finish):      FIFO frontier, shortest path guaranteed.
//   - DFS(g, start, finish):      LIFO frontier, Up/Right/Down/Left order,
//     no shortest-path promise.
//   - Dijkstra(g, start, finish): global min-distance extraction with
//     strict relaxation, shortest path guaranteed.
//   - AStar(g, start, finish):    f = g + Manhattan(finish), in-place
//     open-set priority updates, shortest path guaranteed.
//   - Greedy(g, start, finish):   Manhattan(finish) alone, first-discovery
//     predecessors, fast but suboptimal.
//   - Result.Path():              back-link walk from the finish.
//
// Why:
//
//   - Visualization: Result.Visited (or the OnVisit hook) is the exact
//     expansion order, ready to drive display timing.
//   - Comparison: all five mutate nothing on the grid and share one
//     Result shape, so runs are directly comparable.
//
// Determinism:
//
//   - Neighbor order is fixed per strategy and priority ties resolve by
//     insertion sequence, so two runs over clones of the same grid yield
//     identical Visited and Path sequences.
//
// Concurrency:
//
//   - A run is fully synchronous and owns all of its working state;
//     nothing is written to the grid. Callers running searches in
//     parallel still clone the grid per run, because callers mutate
//     grids between runs.
//
// Errors:
//
//   - ErrNilGrid:          nil grid pointer.
//   - ErrCoordOutOfBounds: start or finish outside the grid.
//   - ErrSameEndpoints:    start == finish.
//   - ErrEndpointWall:     start or finish on a wall cell.
//   - ErrNoPath:           Result.Path on a run that never reached the finish.
//
// Complexity:
//
//   - BFS, DFS: O(N) time; Dijkstra, A*, Greedy: O(N log N) time;
//     all O(N) memory, N = rows×cols.
package search
