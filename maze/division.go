// Package maze - recursive division generator.
package maze

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// Division generates a maze by classic recursive region splitting.
//
// Starting from the full field (or the interior inside the border ring when
// addBorder is true), each region is split by a wall line on an even
// absolute coordinate with a single passage on an odd absolute coordinate.
// Keeping walls and passages on opposite parities of one global lattice
// guarantees passages of nested walls never line up against a blocked
// cell, so every region stays connected through its passage. Orientation
// is horizontal for tall regions, vertical for wide ones, and alternates
// (first choice by coin flip) for square ones. Recursion stops when a
// region's width or height drops below 3.
//
// The endpoint-opening post-pass clears the start/finish cells and one
// inward neighbor per touched border, so boundary endpoints are never
// sealed off. An interior endpoint left with all four neighbors walled
// (crossing wall lines around an even/even intersection) gets a stepped
// escape line carved to the nearest open cell.
//
// Returns:
//   - empty WallSet for degenerate dimensions (rows or cols < 1);
//   - ErrCoordOutOfBounds / ErrSameEndpoints for invalid endpoints.
//
// Complexity: O(rows×cols) time and memory.
func Division(rows, cols int, start, finish grid.Coord, addBorder bool, opts ...Option) (WallSet, error) {
	// 1. Degenerate fields produce no walls at all.
	if rows < 1 || cols < 1 {
		return WallSet{}, nil
	}

	// 2. Validate endpoints.
	if err := validateEndpoints(rows, cols, start, finish); err != nil {
		return nil, err
	}

	// 3. Resolve options and the deterministic random source.
	o := buildOptions(opts)
	d := &divider{ws: make(WallSet), rng: o.rng()}

	// 4. Optionally wall the outer ring and shrink the working region.
	top, bottom, left, right := 0, rows-1, 0, cols-1
	if addBorder {
		addRing(d.ws, rows, cols)
		top, bottom, left, right = 1, rows-2, 1, cols-2
	}

	// 5. Split recursively; the first square-region orientation is a coin flip.
	d.divide(top, bottom, left, right, d.rng.Intn(2) == 0)

	// 6. Endpoint opening: protected cells plus inward border neighbors.
	openEndpoints(d.ws, rows, cols, start, finish)

	// 7. Wall lines can box in an endpoint at an even/even intersection;
	// carve an escape to the nearest open cell when that happens.
	freeSealedEndpoints(d.ws, rows, cols, start, finish)

	return d.ws, nil
}

// divider carries the mutable state of one Division run.
type divider struct {
	ws  WallSet
	rng *rand.Rand
}

// divide splits the inclusive region [top..bottom]×[left..right] and
// recurses into both halves with the other orientation preferred.
func (d *divider) divide(top, bottom, left, right int, preferHorizontal bool) {
	height := bottom - top + 1
	width := right - left + 1
	if height < 3 || width < 3 {
		return
	}

	// Taller regions split horizontally, wider ones vertically; square
	// regions follow the alternating preference.
	horizontal := preferHorizontal
	if height > width {
		horizontal = true
	} else if width > height {
		horizontal = false
	}

	if horizontal {
		wallRow, ok := d.pickParity(top+1, bottom-1, 0)
		if !ok {
			return // no even lattice row strictly inside the region
		}
		passCol, _ := d.pickParity(left, right, 1) // width ≥ 3 guarantees an odd col
		for col := left; col <= right; col++ {
			if col != passCol {
				d.ws.Add(grid.Coord{Row: wallRow, Col: col})
			}
		}
		d.divide(top, wallRow-1, left, right, false)
		d.divide(wallRow+1, bottom, left, right, false)

		return
	}

	wallCol, ok := d.pickParity(left+1, right-1, 0)
	if !ok {
		return
	}
	passRow, _ := d.pickParity(top, bottom, 1)
	for row := top; row <= bottom; row++ {
		if row != passRow {
			d.ws.Add(grid.Coord{Row: row, Col: wallCol})
		}
	}
	d.divide(top, bottom, left, wallCol-1, true)
	d.divide(top, bottom, wallCol+1, right, true)
}

// pickParity returns a uniformly random value in [lo, hi] whose absolute
// parity equals want (0 even, 1 odd). ok is false when none exists.
func (d *divider) pickParity(lo, hi, want int) (int, bool) {
	first := lo
	if first%2 != want {
		first++
	}
	if first > hi {
		return 0, false
	}
	n := (hi-first)/2 + 1

	return first + 2*d.rng.Intn(n), true
}
