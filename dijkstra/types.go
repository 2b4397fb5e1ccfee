package dijkstra

import (
	"errors"

	"github.com/katalvlaran/waytour/weight"
)

// Sentinel errors returned by the shortest-path functions.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that start or end is absent from the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrSameVertex indicates start == end; no path of positive length is defined.
	ErrSameVertex = errors.New("dijkstra: start equals end")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates the target cannot be reached from the start.
	ErrNoPath = errors.New("dijkstra: no path")
)

// nodeItem is a heap entry: a vertex index and its tentative distance.
type nodeItem[W any] struct {
	idx  int
	dist W
}

// nodePQ is a min-heap ordered by distance, then vertex index.
// Stale entries stay in the heap and are skipped when popped.
type nodePQ[W weight.Number] []nodeItem[W]

func (pq nodePQ[W]) Len() int { return len(pq) }

func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].idx < pq[j].idx
}

func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(nodeItem[W])) }

func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
