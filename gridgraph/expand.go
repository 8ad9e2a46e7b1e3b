package gridgraph

import (
	"container/list"
	"fmt"
)

// ExpandIsland finds a path from component srcComp to component dstComp,
// as numbered by ConnectedComponents, that clears the fewest obstacle
// cells. Stepping onto an open cell costs 0, onto an obstacle cell 1.
// Returns the cell indices of the path, including its open endpoints, and
// the number of obstacle cells on it.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from every srcComp cell: cost-0 moves go to the
//     front of the deque, cost-1 moves to the back.
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct the path from predecessors.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, fmt.Errorf("ExpandIsland(%d, %d) of %d: %w", srcComp, dstComp, len(comps), ErrComponentIndex)
	}
	isDst := make([]bool, len(gg.open))
	for _, i := range comps[dstComp] {
		isDst[i] = true
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, len(gg.open))
	prev := make([]int, len(gg.open))
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[i] = 0
		dq.PushFront(i)
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if isDst[u] {
			target = u
			break
		}
		ur, uc := gg.Coordinate(u)
		for _, d := range gg.offsets {
			vr, vc := ur+d[0], uc+d[1]
			if !gg.InBounds(vr, vc) {
				continue
			}
			v := gg.index(vr, vc)
			step := 0
			if !gg.open[v] {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, fmt.Errorf("ExpandIsland(%d, %d): %w", srcComp, dstComp, ErrNoPath)
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[target], nil
}
