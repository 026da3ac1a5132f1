// Package search provides tunable options, sentinel errors, and the shared
// result type for the five grid search strategies of gridpath.
package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrCoordOutOfBounds is returned when start or finish lies outside the grid.
	ErrCoordOutOfBounds = errors.New("search: endpoint out of bounds")

	// ErrSameEndpoints is returned when start and finish address the same cell.
	ErrSameEndpoints = errors.New("search: start and finish must differ")

	// ErrEndpointWall is returned when start or finish is a wall cell.
	ErrEndpointWall = errors.New("search: endpoint is a wall cell")

	// ErrNoPath is returned by Result.Path when the finish was never expanded.
	ErrNoPath = errors.New("search: no path to finish")
)

// Option configures search behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize search execution. All five
// strategies accept the same options.
type Options struct {
	// OnVisit is called when a cell is dequeued for expansion, in visit
	// order, with its best known cost-from-start at that moment. Consumers
	// that animate a run step by step hook here instead of replaying
	// Result.Visited.
	OnVisit func(c grid.Coord, dist int)
}

// DefaultOptions returns Options with a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(grid.Coord, int) {},
	}
}

// WithOnVisit registers a callback fired at each expansion.
func WithOnVisit(fn func(c grid.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one search run:
//   - Visited: cells in expansion order, up to and including the finish
//     when it was reached.
//   - Found: whether the finish was dequeued for expansion.
//
// Predecessor links and distances are kept in index-based side tables,
// allocated fresh per run, so nothing leaks between runs and the grid
// itself stays untouched.
type Result struct {
	Visited []grid.Coord
	Found   bool

	rows, cols int
	start      grid.Coord
	finish     grid.Coord
	prev       []int32 // index-based back-links; -1 = none
	dist       []int   // best known cost-from-start; -1 = undiscovered
}

// Dist returns the best known cost-from-start of c and whether c was ever
// discovered during the run. Complexity: O(1).
func (r *Result) Dist(c grid.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= r.rows || c.Col < 0 || c.Col >= r.cols {
		return 0, false
	}
	d := r.dist[c.Row*r.cols+c.Col]
	if d < 0 {
		return 0, false
	}

	return d, true
}

// validate checks the shared preconditions of all five strategies.
//
// Order:
//  1. g must be non-nil (ErrNilGrid).
//  2. start and finish must be in bounds (ErrCoordOutOfBounds).
//  3. start must differ from finish (ErrSameEndpoints).
//  4. neither endpoint may be a wall (ErrEndpointWall).
func validate(g *grid.Grid, start, finish grid.Coord) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v", ErrCoordOutOfBounds, start)
	}
	if !g.InBounds(finish) {
		return fmt.Errorf("%w: finish %v", ErrCoordOutOfBounds, finish)
	}
	if start == finish {
		return fmt.Errorf("%w: both at %v", ErrSameEndpoints, start)
	}
	if g.IsWall(start) {
		return fmt.Errorf("%w: start %v", ErrEndpointWall, start)
	}
	if g.IsWall(finish) {
		return fmt.Errorf("%w: finish %v", ErrEndpointWall, finish)
	}

	return nil
}

// walker encapsulates the mutable per-run state shared by all strategies:
// the grid under search, resolved options, index-keyed scratch tables, and
// the result under construction.
type walker struct {
	g      *grid.Grid
	opts   Options
	start  int
	finish int
	res    *Result
	buf    []grid.Coord // reusable neighbor buffer
}

// newWalker builds a walker with fresh scratch tables. The caller has
// already validated g, start, and finish.
func newWalker(g *grid.Grid, start, finish grid.Coord, opts []Option) *walker {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := g.Rows() * g.Cols()
	prev := make([]int32, n)
	dist := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = -1
		dist[i] = -1
	}

	return &walker{
		g:      g,
		opts:   o,
		start:  g.Index(start),
		finish: g.Index(finish),
		buf:    make([]grid.Coord, 0, 4),
		res: &Result{
			Visited: make([]grid.Coord, 0, n),
			rows:    g.Rows(),
			cols:    g.Cols(),
			start:   start,
			finish:  finish,
			prev:    prev,
			dist:    dist,
		},
	}
}

// expand records cell i in Visited and fires the OnVisit hook.
func (w *walker) expand(i int) {
	c := w.g.CoordOf(i)
	w.res.Visited = append(w.res.Visited, c)
	w.opts.OnVisit(c, w.res.dist[i])
}

// neighbors returns the in-bounds orthogonal neighbors of cell i in the
// canonical Up, Down, Left, Right order, reusing the walker's buffer.
func (w *walker) neighbors(i int) []grid.Coord {
	w.buf = w.buf[:0]
	w.buf = w.g.Neighbors(w.g.CoordOf(i), w.buf)

	return w.buf
}
