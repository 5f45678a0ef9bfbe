// Package utils provides vector math shared by the embedding and ranking packages.
package utils

import (
	"container/heap"
	"math"
	"slices"
)

// NormEpsilon replaces a zero similarity denominator so that degenerate (all-zero)
// embeddings score near zero instead of producing NaN or Inf.
const NormEpsilon = 1e-8

// CosineSimilarity calculates dot(a, b) / (‖a‖·‖b‖).
// A zero denominator is floored to NormEpsilon. Vectors of different lengths are
// compared over their shared prefix; an empty vector scores 0.
func CosineSimilarity(a, b []float32) float64 {
	denom := Magnitude(a) * Magnitude(b)
	if denom == 0 {
		denom = NormEpsilon
	}
	return DotProduct(a, b) / denom
}

// DotProduct calculates the dot product of two float32 vectors over their shared prefix.
func DotProduct(a, b []float32) float64 {
	n := min(len(a), len(b))

	var result float64
	for i := 0; i < n; i++ {
		result += float64(a[i]) * float64(b[i])
	}
	return result
}

// Magnitude calculates the Euclidean magnitude (L2 norm) of a float32 vector.
func Magnitude(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}

// ScoredItem represents an item with a score for top-K selection.
type ScoredItem[T any] struct {
	Item  T
	Score float64
}

// rankedItem remembers the input position so ties resolve to the earlier item.
type rankedItem[T any] struct {
	ScoredItem[T]
	pos int
}

// worse reports whether a ranks below b: lower score, or equal score and later position.
func worse[T any](a, b rankedItem[T]) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	return a.pos > b.pos
}

// minHeap keeps the worst retained item at the root, so deciding whether a new
// item displaces it is O(1).
type minHeap[T any] []rankedItem[T]

func (h minHeap[T]) Len() int           { return len(h) }
func (h minHeap[T]) Less(i, j int) bool { return worse(h[i], h[j]) }
func (h minHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *minHeap[T]) Push(x any) {
	*h = append(*h, x.(rankedItem[T]))
}

func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopKByScore returns the top K items with the highest scores, in descending
// score order. Equal scores keep their input order.
// This is O(n log k), cheaper than a full sort when k << n.
func TopKByScore[T any](items []ScoredItem[T], k int) []ScoredItem[T] {
	if k <= 0 || len(items) == 0 {
		return nil
	}

	if k >= len(items) {
		result := make([]ScoredItem[T], len(items))
		copy(result, items)
		slices.SortStableFunc(result, func(a, b ScoredItem[T]) int {
			switch {
			case a.Score > b.Score:
				return -1
			case a.Score < b.Score:
				return 1
			default:
				return 0
			}
		})
		return result
	}

	h := make(minHeap[T], 0, k)
	heap.Init(&h)

	for pos, item := range items {
		candidate := rankedItem[T]{ScoredItem: item, pos: pos}
		if h.Len() < k {
			heap.Push(&h, candidate)
		} else if worse(h[0], candidate) {
			heap.Pop(&h)
			heap.Push(&h, candidate)
		}
	}

	// Pop worst-first and fill from the back to get descending order.
	result := make([]ScoredItem[T], h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(rankedItem[T]).ScoredItem
	}

	return result
}

// TopKIndicesByScore returns the indices of the top K scores in descending order.
// Ties resolve to the lower index.
func TopKIndicesByScore(scores []float64, k int) []int {
	if k <= 0 || len(scores) == 0 {
		return nil
	}

	items := make([]ScoredItem[int], len(scores))
	for i, score := range scores {
		items[i] = ScoredItem[int]{Item: i, Score: score}
	}

	topK := TopKByScore(items, k)
	indices := make([]int, len(topK))
	for i, item := range topK {
		indices[i] = item.Item
	}
	return indices
}
