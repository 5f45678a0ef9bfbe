package search

import (
	"errors"
	"fmt"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// ErrMisalignedEmbeddings is returned when a fact slice and its embedding batch
// differ in length.
var ErrMisalignedEmbeddings = errors.New("triples and embeddings are not index-aligned")

// EntityNames returns the distinct subjects and objects of the triples in
// first-seen order (subject before object within a triple).
func EntityNames(triples []types.Triple) []string {
	seen := make(map[string]struct{}, len(triples)*2)
	names := make([]string, 0, len(triples)*2)
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	for _, t := range triples {
		add(t.Subject)
		add(t.Object)
	}
	return names
}

// FilterByEntity keeps the triples whose subject or object is entity, together
// with their embeddings. If no triple mentions the entity the inputs are
// returned unchanged. The outputs always have equal length.
func FilterByEntity(triples []types.Triple, embeddings [][]float32, entity string) ([]types.Triple, [][]float32, error) {
	if len(triples) != len(embeddings) {
		return nil, nil, fmt.Errorf("%w: %d triples, %d embeddings", ErrMisalignedEmbeddings, len(triples), len(embeddings))
	}
	if entity == "" {
		return triples, embeddings, nil
	}

	keptTriples := make([]types.Triple, 0, len(triples))
	keptEmbeddings := make([][]float32, 0, len(embeddings))
	for i, t := range triples {
		if t.Mentions(entity) {
			keptTriples = append(keptTriples, t)
			keptEmbeddings = append(keptEmbeddings, embeddings[i])
		}
	}

	if len(keptTriples) == 0 {
		return triples, embeddings, nil
	}
	return keptTriples, keptEmbeddings, nil
}
