package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// FactEmbedder embeds a batch of fact texts, one vector per text in order.
type FactEmbedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// QueryEmbedder embeds a single question.
type QueryEmbedder interface {
	EmbedSingle(ctx context.Context, text string) ([]float32, error)
}

// Embedder is the embedding capability retrieval needs.
type Embedder interface {
	FactEmbedder
	QueryEmbedder
}

// Retrieval is the outcome of one retrieval pass.
type Retrieval struct {
	// Triples are the selected facts in descending similarity order.
	Triples []types.Triple
	// Scores holds the cosine similarity of each selected fact.
	Scores []float64
	// Entity is the matched entity, empty when the question named none.
	Entity string
	// Candidates is the number of facts ranked after entity filtering.
	Candidates int
}

// Retriever selects the facts most relevant to a question.
type Retriever struct {
	embedder Embedder
	matcher  *EntityMatcher
	logger   *slog.Logger
}

// NewRetriever creates a Retriever. A nil matcher uses DefaultMatchThreshold
// and a nil logger uses slog.Default.
func NewRetriever(embedder Embedder, matcher *EntityMatcher, logger *slog.Logger) *Retriever {
	if matcher == nil {
		matcher = NewEntityMatcher(DefaultMatchThreshold)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		embedder: embedder,
		matcher:  matcher,
		logger:   logger,
	}
}

// Retrieve ranks triples against question and returns at most topK of them.
// The full fact batch is embedded before entity filtering so that repeated
// queries over the same facts reuse one cached batch. An empty triple set
// returns an empty Retrieval without calling the embedder.
func (r *Retriever) Retrieve(ctx context.Context, triples []types.Triple, question string, topK int) (*Retrieval, error) {
	if len(triples) == 0 {
		return &Retrieval{Triples: []types.Triple{}, Scores: []float64{}}, nil
	}

	embeddings, err := r.embedder.Embed(ctx, types.FactTexts(triples))
	if err != nil {
		return nil, fmt.Errorf("failed to embed facts: %w", err)
	}

	entity, _ := r.matcher.Match(question, EntityNames(triples))
	candidates, candidateEmbeddings, err := FilterByEntity(triples, embeddings, entity)
	if err != nil {
		return nil, err
	}
	if entity != "" {
		r.logger.Debug("question matched entity",
			"entity", entity,
			"facts", len(triples),
			"candidates", len(candidates))
	}

	query, err := r.embedder.EmbedSingle(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	scores := Scores(query, candidateEmbeddings)
	indices := Rank(query, candidateEmbeddings, topK)

	selectedScores := make([]float64, 0, len(indices))
	for _, i := range indices {
		selectedScores = append(selectedScores, scores[i])
	}

	return &Retrieval{
		Triples:    SelectTriples(candidates, indices),
		Scores:     selectedScores,
		Entity:     entity,
		Candidates: len(candidates),
	}, nil
}
