package gridgraph

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn. Components are ordered by their first cell in row-major
// order; cells within a component are in BFS order.
//
// Time:   O(R·C·d), where d = 4 or 8.
// Memory: O(R·C) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.open))
	var comps [][]int

	for i0, ok := range gg.open {
		if !ok || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ur, uc := gg.Coordinate(queue[qi])
			for _, d := range gg.offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !gg.InBounds(vr, vc) {
					continue
				}
				vi := gg.index(vr, vc)
				if gg.open[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Summarize counts open and obstacle cells and the connected regions of
// open cells. Unlike ConnectedComponents it keeps no per-region index
// lists: region sizes are counted during the BFS and only the live
// frontier is held, compacted as it drains.
//
// Memory: one visited byte per cell plus O(frontier) int32 indices.
func (gg *GridGraph) Summarize() Summary {
	var s Summary
	seen := make([]bool, len(gg.open))
	var queue []int32

	for i0, ok := range gg.open {
		if !ok {
			s.Obstacles++
			continue
		}
		s.Open++
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue = append(queue[:0], int32(i0))
		size := 0
		for head := 0; head < len(queue); {
			u := int(queue[head])
			head++
			size++
			if head >= 1024 && head*2 >= len(queue) {
				queue = queue[:copy(queue, queue[head:])]
				head = 0
			}
			ur, uc := gg.Coordinate(u)
			for _, d := range gg.offsets {
				vr, vc := ur+d[0], uc+d[1]
				if !gg.InBounds(vr, vc) {
					continue
				}
				vi := gg.index(vr, vc)
				if gg.open[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, int32(vi))
				}
			}
		}
		s.Components++
		s.Largest = max(s.Largest, size)
	}
	return s
}
