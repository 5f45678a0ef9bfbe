package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultMatchThreshold is the similarity a question token must strictly exceed
// for an entity to count as mentioned.
const DefaultMatchThreshold = 0.6

// EntityMatcher resolves the entity a question is about by fuzzy string matching.
type EntityMatcher struct {
	// Threshold is the exclusive lower bound on the similarity ratio.
	Threshold float64
}

// NewEntityMatcher creates a matcher. A threshold outside (0, 1) falls back to
// DefaultMatchThreshold.
func NewEntityMatcher(threshold float64) *EntityMatcher {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultMatchThreshold
	}
	return &EntityMatcher{Threshold: threshold}
}

// EntityMatch is the best (token, candidate) pair found for a question.
type EntityMatch struct {
	Entity string
	Token  string
	Score  float64
}

// Match returns the candidate best matching any question token, if its score
// exceeds the threshold.
func (m *EntityMatcher) Match(question string, candidates []string) (string, bool) {
	match, ok := m.BestMatch(question, candidates)
	if !ok {
		return "", false
	}
	return match.Entity, true
}

// BestMatch scans the full tokens × candidates cross-product and keeps the
// highest-scoring pair. Later pairs replace the current best only with a
// strictly higher score, so the earliest candidate wins ties.
func (m *EntityMatcher) BestMatch(question string, candidates []string) (EntityMatch, bool) {
	threshold := m.Threshold
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}

	tokens := Tokenize(question)
	if len(tokens) == 0 || len(candidates) == 0 {
		return EntityMatch{}, false
	}

	lowered := make([][]string, len(candidates))
	for i, c := range candidates {
		lowered[i] = runeSeq(strings.ToLower(c))
	}

	var best EntityMatch
	for _, token := range tokens {
		tokenSeq := runeSeq(strings.ToLower(token))
		for i, candidate := range candidates {
			score := difflib.NewMatcher(tokenSeq, lowered[i]).Ratio()
			if score > best.Score {
				best = EntityMatch{Entity: candidate, Token: token, Score: score}
			}
		}
	}

	if best.Score > threshold {
		return best, true
	}
	return EntityMatch{}, false
}

// Similarity returns the case-insensitive similarity ratio of two strings in [0, 1].
func Similarity(a, b string) float64 {
	return difflib.NewMatcher(runeSeq(strings.ToLower(a)), runeSeq(strings.ToLower(b))).Ratio()
}

// Tokenize strips question marks and splits the question on whitespace.
func Tokenize(question string) []string {
	return strings.Fields(strings.ReplaceAll(question, "?", ""))
}

// runeSeq splits s into one element per character for sequence matching.
func runeSeq(s string) []string {
	seq := make([]string, 0, len(s))
	for _, r := range s {
		seq = append(seq, string(r))
	}
	return seq
}
