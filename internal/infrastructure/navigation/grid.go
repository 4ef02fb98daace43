// Package navigation computes walking routes across the level floor plan.
package navigation

import "github.com/younwookim/protozombie/internal/domain/entity"

// Direction vectors on the X/Z grid: N, NE, E, SE, S, SW, W, NW
var dirVectors = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1},
	{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// Weighted edge costs: cardinal = 10, diagonal = 14 (≈10√2)
const (
	costCardinal    = 10
	costDiagonal    = 14
	costUnreachable = 1<<30 - 1
)

var dirCosts = [8]int{
	costCardinal, costDiagonal, costCardinal, costDiagonal,
	costCardinal, costDiagonal, costCardinal, costDiagonal,
}

type heapEntry struct {
	idx  int // flat grid index (z*width + x)
	cost int // g + heuristic
}

type minHeap []heapEntry

func (h *minHeap) push(e heapEntry) {
	*h = append(*h, e)
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if (*h)[parent].cost <= (*h)[i].cost {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *minHeap) pop() heapEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && (*h)[right].cost < (*h)[left].cost {
			smallest = right
		}
		if (*h)[i].cost <= (*h)[smallest].cost {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// GridPathFinder runs A* over the solid tiles of a stage.
// Buffers are reused across calls; it is not safe for concurrent use.
type GridPathFinder struct {
	stage *entity.Stage

	dist   []int
	parent []int
	heap   minHeap
}

// NewGridPathFinder creates a path finder for the stage
func NewGridPathFinder(stage *entity.Stage) *GridPathFinder {
	size := stage.Width * stage.Depth
	return &GridPathFinder{
		stage:  stage,
		dist:   make([]int, size),
		parent: make([]int, size),
		heap:   make(minHeap, 0, size/4),
	}
}

func (g *GridPathFinder) blocked(x, z int) bool {
	return g.stage.GetTile(x, z).Solid
}

// octile distance, admissible for the 10/14 costs
func heuristic(x, z, tx, tz int) int {
	dx, dz := x-tx, z-tz
	if dx < 0 {
		dx = -dx
	}
	if dz < 0 {
		dz = -dz
	}
	if dx < dz {
		dx, dz = dz, dx
	}
	return costCardinal*(dx-dz) + costDiagonal*dz
}

// FindPath returns waypoints from the cell after from up to to itself.
// The last waypoint is the exact target position. An unreachable target
// yields nil; a target in the same cell yields just the target.
func (g *GridPathFinder) FindPath(from, to entity.Vec3) []entity.Vec3 {
	sx, sz := g.stage.TileAt(from)
	tx, tz := g.stage.TileAt(to)
	w := g.stage.Width

	if tx < 0 || tz < 0 || tx >= w || tz >= g.stage.Depth || g.blocked(tx, tz) {
		return nil
	}
	if sx < 0 || sz < 0 || sx >= w || sz >= g.stage.Depth {
		return nil
	}
	if sx == tx && sz == tz {
		return []entity.Vec3{to}
	}

	for i := range g.dist {
		g.dist[i] = costUnreachable
		g.parent[i] = -1
	}

	startIdx := sz*w + sx
	targetIdx := tz*w + tx
	g.dist[startIdx] = 0
	g.heap = g.heap[:0]
	g.heap.push(heapEntry{idx: startIdx, cost: heuristic(sx, sz, tx, tz)})

	for len(g.heap) > 0 {
		entry := g.heap.pop()
		if entry.idx == targetIdx {
			break
		}

		cx := entry.idx % w
		cz := entry.idx / w
		if entry.cost-heuristic(cx, cz, tx, tz) > g.dist[entry.idx] {
			continue // stale entry
		}

		for d := range dirVectors {
			nx := cx + dirVectors[d][0]
			nz := cz + dirVectors[d][1]
			if nx < 0 || nz < 0 || nx >= w || nz >= g.stage.Depth || g.blocked(nx, nz) {
				continue
			}

			// No corner cutting on diagonals
			if dirVectors[d][0] != 0 && dirVectors[d][1] != 0 {
				if g.blocked(cx+dirVectors[d][0], cz) || g.blocked(cx, cz+dirVectors[d][1]) {
					continue
				}
			}

			nIdx := nz*w + nx
			newDist := g.dist[entry.idx] + dirCosts[d]
			if newDist < g.dist[nIdx] {
				g.dist[nIdx] = newDist
				g.parent[nIdx] = entry.idx
				g.heap.push(heapEntry{idx: nIdx, cost: newDist + heuristic(nx, nz, tx, tz)})
			}
		}
	}

	if g.dist[targetIdx] >= costUnreachable {
		return nil
	}

	// Walk back from the target, then reverse
	cells := make([]int, 0, 16)
	for idx := g.parent[targetIdx]; idx != -1 && idx != startIdx; idx = g.parent[idx] {
		cells = append(cells, idx)
	}

	path := make([]entity.Vec3, 0, len(cells)+1)
	for i := len(cells) - 1; i >= 0; i-- {
		c := g.stage.CellCenter(cells[i]%w, cells[i]/w)
		c.Y = to.Y
		path = append(path, c)
	}
	return append(path, to)
}
