package algorithms

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidK is returned when a non-positive k is requested.
var ErrInvalidK = errors.New("k must be positive")

// RankedNode holds a node with its centrality score.
type RankedNode struct {
	ID    int64   `json:"id"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode by score.
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	// On tied scores the larger ID is the weaker entry, so it must sit
	// nearer the heap root to be evicted first.
	return h[i].ID > h[j].ID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopK returns the k highest-scoring nodes in descending score order.
// Tied scores preserve ascending node-ID order. When k exceeds the number
// of scored nodes, the result is clamped to all of them.
func TopK(scores map[int64]float64, k int) ([]RankedNode, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrInvalidK, k)
	}
	if k > len(scores) {
		k = len(scores)
	}

	h := make(rankedNodeHeap, 0, k)
	heap.Init(&h)

	for id, score := range scores {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < k {
			heap.Push(&h, rn)
		} else if score > h[0].Score || (score == h[0].Score && id < h[0].ID) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	// Score descending, then node ID ascending for determinism
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result, nil
}
