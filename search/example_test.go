package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ExampleBFS walks an empty 3×3 grid corner to corner. With the canonical
// Up,Down,Left,Right neighbor order the shortest path hugs the left edge
// before turning along the bottom row.
func ExampleBFS() {
	g, err := grid.New(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.BFS(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.Path()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [(0,0) (1,0) (2,0) (2,1) (2,2)]
}

// ExampleDFS shows the depth-first trail on the same grid: the walker
// pops Up,Right,Down,Left, so it sweeps the top row first and then dives
// down the right edge — and that trail is the returned path.
func ExampleDFS() {
	g, err := grid.New(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.DFS(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 2, Col: 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.Path()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleAStar reports the optimal length across an empty 5×5 grid:
// 9 cells for 8 unit moves, the Manhattan distance between the corners.
func ExampleAStar() {
	g, err := grid.New(5, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := search.AStar(g, grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 4, Col: 4})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	path, err := res.Path()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cells:", len(path), "found:", res.Found)
	// Output:
	// cells: 9 found: true
}
