package search

import (
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/utils"
)

// Scores returns the cosine similarity between query and each candidate.
// Zero-norm vectors score near zero rather than NaN.
func Scores(query []float32, candidates [][]float32) []float64 {
	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		scores[i] = utils.CosineSimilarity(c, query)
	}
	return scores
}

// Rank returns the indices of the k candidates most similar to query, in
// descending similarity order with ties resolved to the lower index. When k
// exceeds the candidate count every index is returned; an empty candidate set
// yields an empty, non-nil selection.
func Rank(query []float32, candidates [][]float32, k int) []int {
	indices := utils.TopKIndicesByScore(Scores(query, candidates), k)
	if indices == nil {
		return []int{}
	}
	return indices
}

// SelectTriples returns triples[i] for every index, in index order.
func SelectTriples(triples []types.Triple, indices []int) []types.Triple {
	selected := make([]types.Triple, 0, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(triples) {
			selected = append(selected, triples[i])
		}
	}
	return selected
}
