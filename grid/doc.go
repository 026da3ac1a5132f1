// Package grid models a rectangular, uniform-cost, 4-connected field of
// cells — the node graph every search strategy and maze generator in
// gridpath operates on.
//
// What:
//
//   - Grid wraps a rows×cols row-major cell array with bounds checking.
//   - Cell carries the static flags (Wall, Start, Finish) that persist
//     across runs; search working state lives in per-run scratch arrays
//     owned by the search package, never on cells.
//   - Neighbors yields the up/down/left/right cells that exist in bounds,
//     in a fixed canonical order that pins tie-break behavior.
//   - ApplyWalls / Clone implement the caller contract: apply a generated
//     wall set, snapshot a grid per run.
//
// Why:
//
//   - Pathfinding visualization: one grid, five strategies, comparable runs.
//   - Maze construction: generators emit wall sets against the same model.
//   - Determinism: fixed neighbor order makes visit sequences reproducible.
//
// Complexity:
//
//   - New, Clone, ClearWalls: O(rows×cols) time and memory.
//   - InBounds, Index, Neighbors, SetWall, endpoint moves: O(1).
//
// Errors:
//
//   - ErrBadDimensions: rows or cols < 1.
//   - ErrCoordOutOfBounds: coordinate outside the field.
//   - ErrProtectedCell: walling the current start or finish cell.
//   - ErrEndpointOnWall: placing an endpoint on a wall cell.
//   - ErrEndpointOverlap: start and finish on the same cell.
package grid
