package search_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/search"
)

// benchGrid builds a bordered backtracker maze of the given size.
func benchGrid(b *testing.B, rows, cols int) (*grid.Grid, grid.Coord, grid.Coord) {
	b.Helper()
	start := grid.Coord{Row: 1, Col: 1}
	finish := grid.Coord{Row: rows - 2, Col: cols - 2}
	ws, err := maze.Backtracker(rows, cols, start, finish, true, maze.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, err := grid.New(rows, cols)
	if err != nil {
		b.Fatal(err)
	}
	g.ApplyWalls(ws.Coords())

	return g, start, finish
}

// BenchmarkBFS_OpenField measures the FIFO sweep of a wall-free 60×120 grid.
func BenchmarkBFS_OpenField(b *testing.B) {
	g, err := grid.New(60, 120)
	if err != nil {
		b.Fatal(err)
	}
	start := grid.Coord{Row: 0, Col: 0}
	finish := grid.Coord{Row: 59, Col: 119}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.BFS(g, start, finish)
	}
}

// BenchmarkDijkstra_Maze measures heap-driven search through a carved maze.
func BenchmarkDijkstra_Maze(b *testing.B) {
	g, start, finish := benchGrid(b, 61, 121)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.Dijkstra(g, start, finish)
	}
}

// BenchmarkAStar_Maze measures the guided variant on the same maze shape.
func BenchmarkAStar_Maze(b *testing.B) {
	g, start, finish := benchGrid(b, 61, 121)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = search.AStar(g, start, finish)
	}
}
