// Package maze defines the wall-set output type, tunable options, and
// sentinel errors shared by the three maze generators of gridpath.
package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrCoordOutOfBounds is returned when start or finish lies outside
	// the requested rows×cols field.
	ErrCoordOutOfBounds = errors.New("maze: endpoint out of bounds")

	// ErrSameEndpoints is returned when start and finish address the same cell.
	ErrSameEndpoints = errors.New("maze: start and finish must differ")
)

// WallSet is the output of a generator: the coordinates to be marked as
// walls. The protected start/finish cells are never members.
type WallSet map[grid.Coord]struct{}

// Has reports membership. Complexity: O(1).
func (ws WallSet) Has(c grid.Coord) bool {
	_, ok := ws[c]

	return ok
}

// Add inserts c. Complexity: O(1).
func (ws WallSet) Add(c grid.Coord) { ws[c] = struct{}{} }

// Remove deletes c if present. Complexity: O(1).
func (ws WallSet) Remove(c grid.Coord) { delete(ws, c) }

// Len returns the number of walls. Complexity: O(1).
func (ws WallSet) Len() int { return len(ws) }

// Coords returns the walls in row-major order, ready for Grid.ApplyWalls
// and for deterministic comparison in tests.
// Complexity: O(n log n).
func (ws WallSet) Coords() []grid.Coord {
	out := make([]grid.Coord, 0, len(ws))
	for c := range ws {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}

		return out[i].Col < out[j].Col
	})

	return out
}

// Option configures generation via functional arguments.
type Option func(*Options)

// Options holds the random source configuration shared by all generators.
// Randomness is always explicit and seedable; there is no ambient global
// source, so every layout is reproducible.
type Options struct {
	// Seed drives the default deterministic source. Seed==0 selects the
	// fixed default seed, keeping zero-value runs reproducible too.
	Seed int64

	// Rand, when non-nil, overrides Seed with a caller-owned source.
	Rand *rand.Rand
}

// DefaultOptions returns Options using the default deterministic seed policy.
func DefaultOptions() Options { return Options{} }

// WithSeed sets the seed for the generator's private random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies a caller-owned random source, taking precedence over
// WithSeed. The source must not be shared with concurrent generations.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// rng resolves the configured random source.
func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// buildOptions applies functional options over defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// inBounds reports whether c lies within a rows×cols field.
func inBounds(rows, cols int, c grid.Coord) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

// validateEndpoints checks the shared generator preconditions. Degenerate
// dimensions are handled by each generator before this point.
func validateEndpoints(rows, cols int, start, finish grid.Coord) error {
	if !inBounds(rows, cols, start) {
		return fmt.Errorf("%w: start %v in %d×%d", ErrCoordOutOfBounds, start, rows, cols)
	}
	if !inBounds(rows, cols, finish) {
		return fmt.Errorf("%w: finish %v in %d×%d", ErrCoordOutOfBounds, finish, rows, cols)
	}
	if start == finish {
		return fmt.Errorf("%w: both at %v", ErrSameEndpoints, start)
	}

	return nil
}

// fullWalls returns a WallSet covering every cell of a rows×cols field.
func fullWalls(rows, cols int) WallSet {
	ws := make(WallSet, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			ws.Add(grid.Coord{Row: r, Col: c})
		}
	}

	return ws
}

// addRing walls the outer border of a rows×cols field.
func addRing(ws WallSet, rows, cols int) {
	for c := 0; c < cols; c++ {
		ws.Add(grid.Coord{Row: 0, Col: c})
		ws.Add(grid.Coord{Row: rows - 1, Col: c})
	}
	for r := 0; r < rows; r++ {
		ws.Add(grid.Coord{Row: r, Col: 0})
		ws.Add(grid.Coord{Row: r, Col: cols - 1})
	}
}
