package kgagent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/factstore"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/nlp"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/prompts"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/search"
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// NoFactsResponse is the answer given when the graph holds no facts.
const NoFactsResponse = "No facts available to answer your question"

// DefaultTopK is the number of facts used to ground an answer.
const DefaultTopK = 5

// Generator is the generation capability answering needs.
type Generator interface {
	Generate(ctx context.Context, prompt string, params *nlp.GenerateParams) (*types.Response, error)
}

// Answer answers question from the facts carried by elements. Node elements
// and incomplete edges are ignored. When no facts remain the fixed
// NoFactsResponse is returned without calling either backend. A topK <= 0
// selects DefaultTopK.
func Answer(ctx context.Context, elements []types.Element, question string, gen Generator, emb search.Embedder, topK int) (*types.Answer, error) {
	triples, _ := factstore.ExtractTriples(elements)
	retriever := search.NewRetriever(emb, nil, nil)
	return answerTriples(ctx, triples, question, gen, retriever, topK, slog.Default())
}

func answerTriples(ctx context.Context, triples []types.Triple, question string, gen Generator, retriever *search.Retriever, topK int, logger *slog.Logger) (*types.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, types.ErrEmptyQuestion
	}
	if len(triples) == 0 {
		return &types.Answer{Text: NoFactsResponse, Facts: []types.Triple{}}, nil
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	retrieval, err := retriever.Retrieve(ctx, triples, question, topK)
	if err != nil {
		return nil, err
	}

	bullets := prompts.BulletList(retrieval.Triples)
	resp, err := gen.Generate(ctx, prompts.QAPrompt(question, bullets), nlp.QAParams())
	if err != nil {
		return nil, fmt.Errorf("failed to generate answer: %w", err)
	}

	logger.Debug("answered question",
		"facts", len(triples),
		"candidates", retrieval.Candidates,
		"selected", len(retrieval.Triples),
		"entity", retrieval.Entity)

	return &types.Answer{
		Text:    strings.TrimSpace(resp.Content),
		Context: bullets,
		Facts:   retrieval.Triples,
		Entity:  retrieval.Entity,
	}, nil
}
