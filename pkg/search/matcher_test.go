package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityMatcherMatch(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		candidates []string
		want       string
		wantOK     bool
	}{
		{
			name:       "exact token",
			question:   "Who wrote Hamlet?",
			candidates: []string{"Hamlet", "Shakespeare"},
			want:       "Hamlet",
			wantOK:     true,
		},
		{
			name:       "typo still matches",
			question:   "Who wrote Hamlett?",
			candidates: []string{"Hamlet"},
			want:       "Hamlet",
			wantOK:     true,
		},
		{
			name:       "unrelated token",
			question:   "xyz?",
			candidates: []string{"Hamlet"},
			wantOK:     false,
		},
		{
			name:       "case insensitive",
			question:   "what is crispr used for",
			candidates: []string{"CRISPR", "gene editing"},
			want:       "CRISPR",
			wantOK:     true,
		},
		{
			name:       "multi word entity from single token",
			question:   "When did Apollo 11 launch?",
			candidates: []string{"Apollo 11", "July 16, 1969", "Napoleon Bonaparte", "August 15, 1769"},
			want:       "Apollo 11",
			wantOK:     true,
		},
		{
			name:       "no candidates",
			question:   "Who wrote Hamlet?",
			candidates: nil,
			wantOK:     false,
		},
		{
			name:       "question of only question marks",
			question:   "???",
			candidates: []string{"Hamlet"},
			wantOK:     false,
		},
	}

	m := NewEntityMatcher(DefaultMatchThreshold)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Match(tt.question, tt.candidates)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEntityMatcherTiesKeepFirstCandidate(t *testing.T) {
	m := NewEntityMatcher(DefaultMatchThreshold)

	got, ok := m.Match("beatles", []string{"Beatles", "beatles"})
	assert.True(t, ok)
	assert.Equal(t, "Beatles", got)

	got, ok = m.Match("beatles", []string{"beatles", "Beatles"})
	assert.True(t, ok)
	assert.Equal(t, "beatles", got)
}

func TestEntityMatcherThresholdIsExclusive(t *testing.T) {
	// "ab" vs "abcd": 2*2/6 = 0.666...
	score := Similarity("ab", "abcd")
	assert.InDelta(t, 2.0/3.0, score, 1e-9)

	m := &EntityMatcher{Threshold: score}
	_, ok := m.Match("ab", []string{"abcd"})
	assert.False(t, ok)

	m.Threshold = score - 0.01
	got, ok := m.Match("ab", []string{"abcd"})
	assert.True(t, ok)
	assert.Equal(t, "abcd", got)
}

func TestBestMatchReportsToken(t *testing.T) {
	m := NewEntityMatcher(0)
	match, ok := m.BestMatch("Who wrote Hamlett?", []string{"Shakespeare", "Hamlet"})
	assert.True(t, ok)
	assert.Equal(t, "Hamlet", match.Entity)
	assert.Equal(t, "Hamlett", match.Token)
	assert.InDelta(t, 12.0/13.0, match.Score, 1e-9)
}

func TestNewEntityMatcherDefaults(t *testing.T) {
	assert.Equal(t, DefaultMatchThreshold, NewEntityMatcher(0).Threshold)
	assert.Equal(t, DefaultMatchThreshold, NewEntityMatcher(1.5).Threshold)
	assert.Equal(t, 0.8, NewEntityMatcher(0.8).Threshold)
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"Who", "wrote", "Hamlet"}, Tokenize("Who wrote Hamlet?"))
	assert.Equal(t, []string{"Is", "it", "true"}, Tokenize("  Is it?   true??"))
	assert.Empty(t, Tokenize("?"))
}

func TestSimilarityUnicode(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("Ångström", "ångström"))
	assert.Equal(t, 0.0, Similarity("", "x"))
}
