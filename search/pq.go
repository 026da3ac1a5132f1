package search

import "container/heap"

// frontierItem is one priority-queue entry: a cell index, its priority,
// a monotonically increasing insertion sequence, and its current heap
// position (maintained by frontier.Swap for in-place updates).
type frontierItem struct {
	cell     int
	priority int
	seq      int
	pos      int
}

// frontier is an indexed binary min-heap of cells ordered by
// (priority, insertion sequence). The sequence tie-break keeps the order
// of equal-priority cells stable and deterministic, which pins visit
// sequences for testing: on an empty grid, Dijkstra expands exactly the
// breadth-first frontier layers.
//
// Two usage patterns coexist:
//   - lazy decrease-key (Dijkstra): push duplicates, skip stale pops;
//   - in-place update (A*): has/update keep one entry per cell and
//     re-heapify via heap.Fix.
type frontier struct {
	items  []*frontierItem
	byCell []*frontierItem // latest live entry per cell; nil when absent
	seq    int
}

// newFrontier returns an empty frontier for a grid of n cells.
func newFrontier(n int) *frontier {
	return &frontier{
		items:  make([]*frontierItem, 0, n),
		byCell: make([]*frontierItem, n),
	}
}

// Len, Less, Swap, Push, Pop implement container/heap.Interface.

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.items[i].pos = i
	f.items[j].pos = j
}

func (f *frontier) Push(x any) {
	it := x.(*frontierItem)
	it.pos = len(f.items)
	f.items = append(f.items, it)
}

func (f *frontier) Pop() any {
	old := f.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]

	return it
}

// push inserts cell with the given priority, stamping the next sequence
// number. Any previous entry for the cell is superseded but left in the
// heap (lazy pattern); callers relying on has/update get the live entry.
func (f *frontier) push(cell, priority int) {
	it := &frontierItem{cell: cell, priority: priority, seq: f.seq}
	f.seq++
	f.byCell[cell] = it
	heap.Push(f, it)
}

// popMin removes and returns the minimum entry's cell and priority.
func (f *frontier) popMin() (cell, priority int) {
	it := heap.Pop(f).(*frontierItem)
	if f.byCell[it.cell] == it {
		f.byCell[it.cell] = nil
	}

	return it.cell, it.priority
}

// has reports whether cell currently has a live entry in the frontier.
func (f *frontier) has(cell int) bool { return f.byCell[cell] != nil }

// update lowers the priority of cell's live entry in place and restores
// the heap invariant. The entry keeps its original sequence stamp so
// deterministic tie ordering is preserved across updates.
func (f *frontier) update(cell, priority int) {
	it := f.byCell[cell]
	it.priority = priority
	heap.Fix(f, it.pos)
}
