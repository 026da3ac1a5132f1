// Package search - path reconstruction from back-links.
package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Path reconstructs the start→finish path from the run's back-links.
//
// It walks predecessor links from the finish to the cell with no
// predecessor (the start), then reverses. Returns ErrNoPath when the
// finish was never dequeued for expansion; an unreachable finish is a
// well-defined outcome of the run itself, but asking for its path is a
// typed failure rather than a one-element pseudo-path the caller would
// have to second-guess.
//
// Complexity: O(len(path)).
func (r *Result) Path() ([]grid.Coord, error) {
	if !r.Found {
		return nil, fmt.Errorf("%w: finish %v was not reached", ErrNoPath, r.finish)
	}

	// Collect finish→start, then reverse in place.
	path := make([]grid.Coord, 0, r.dist[r.finish.Row*r.cols+r.finish.Col]+1)
	for i := r.finish.Row*r.cols + r.finish.Col; i >= 0; i = int(r.prev[i]) {
		path = append(path, grid.Coord{Row: i / r.cols, Col: i % r.cols})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
