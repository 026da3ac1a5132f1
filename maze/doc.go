// Package maze provides three wall-layout generators for gridpath grids:
// recursive division, recursive backtracking, and randomized frontier
// growth (Prim's style).
//
// What:
//
//   - Division(rows, cols, start, finish, addBorder): region splitting on
//     an even/odd parity lattice; corridors stay wide, walls are straight.
//   - Backtracker(...): perfect maze carved by depth-first backtracking on
//     the odd lattice; long winding corridors, no loops among carved cells.
//   - Frontier(...): Prim's-style growth from a random seed; short twisty
//     corridors, uniformly textured.
//
// All three return a WallSet — the coordinates to be marked as walls — and
// uphold the same guarantees:
//
//   - Protected cells: the start and finish coordinates are never members.
//   - Endpoint opening: an endpoint on the outer border gets one inward
//     neighbor cleared per touched border, so it is never sealed off.
//   - Reachability: for addBorder layouts on non-degenerate fields (≥5×5),
//     start and finish stay mutually reachable through non-wall cells.
//
// Why:
//
//   - Visualization: pre-populate a grid before a search run, then apply
//     the set via grid.ApplyWalls and watch the strategies compete.
//   - Testing: seeded generation reproduces layouts bit for bit.
//
// Randomness:
//
//   - Always explicit and seedable (WithSeed / WithRand); no ambient
//     global source. Seed 0 maps to a fixed default seed.
//
// Errors:
//
//   - ErrCoordOutOfBounds: start or finish outside the requested field.
//   - ErrSameEndpoints: start == finish.
//   - Degenerate dimensions (rows or cols < 1) yield an empty WallSet and
//     no error; the carving rules already short-circuit on nothing.
//
// Complexity: O(rows×cols) time and memory for every generator.
package maze
