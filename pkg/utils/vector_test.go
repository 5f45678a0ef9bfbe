package utils

import (
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "identical vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{1, 0, 0},
			expected: 1.0,
		},
		{
			name:     "opposite vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{-1, 0, 0},
			expected: -1.0,
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{0, 1, 0},
			expected: 0.0,
		},
		{
			name:     "scaled vectors",
			a:        []float32{1, 2, 3},
			b:        []float32{2, 4, 6},
			expected: 1.0,
		},
		{
			name:     "zero vector a",
			a:        []float32{0, 0, 0},
			b:        []float32{1, 2, 3},
			expected: 0.0,
		},
		{
			name:     "both zero",
			a:        []float32{0, 0},
			b:        []float32{0, 0},
			expected: 0.0,
		},
		{
			name:     "empty vectors",
			a:        []float32{},
			b:        []float32{},
			expected: 0.0,
		},
		{
			name:     "nil vectors",
			a:        nil,
			b:        nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CosineSimilarity(tt.a, tt.b)
			if math.IsNaN(result) || math.IsInf(result, 0) {
				t.Fatalf("CosineSimilarity(%v, %v) = %v, expected a finite value", tt.a, tt.b, result)
			}
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("CosineSimilarity(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestCosineSimilarityTinyNorm(t *testing.T) {
	t.Parallel()
	// A tiny but non-zero denominator is used as-is; only exact zero is floored.
	a := []float32{1e-5, 0}
	b := []float32{1e-5, 0}
	result := CosineSimilarity(a, b)
	if math.Abs(result-1.0) > 1e-3 {
		t.Errorf("expected ~1.0 for tiny parallel vectors, got %v", result)
	}
}

func TestDotProduct(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a        []float32
		b        []float32
		expected float64
	}{
		{
			name:     "simple dot product",
			a:        []float32{1, 2, 3},
			b:        []float32{4, 5, 6},
			expected: 32.0, // 1*4 + 2*5 + 3*6
		},
		{
			name:     "orthogonal vectors",
			a:        []float32{1, 0, 0},
			b:        []float32{0, 1, 0},
			expected: 0.0,
		},
		{
			name:     "different lengths use shared prefix",
			a:        []float32{1, 2, 3},
			b:        []float32{1, 2},
			expected: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DotProduct(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("DotProduct(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		v        []float32
		expected float64
	}{
		{name: "unit vector x", v: []float32{1, 0, 0}, expected: 1.0},
		{name: "3-4-5 triangle", v: []float32{3, 4}, expected: 5.0},
		{name: "zero vector", v: []float32{0, 0, 0}, expected: 0.0},
		{name: "empty vector", v: []float32{}, expected: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Magnitude(tt.v)
			if math.Abs(result-tt.expected) > 1e-6 {
				t.Errorf("Magnitude(%v) = %v, expected %v", tt.v, result, tt.expected)
			}
		})
	}
}

func BenchmarkCosineSimilarity(b *testing.B) {
	// all-MiniLM-L6-v2 produces 384-dimensional vectors
	a := make([]float32, 384)
	bVec := make([]float32, 384)
	for i := range a {
		a[i] = float32(i) / 384.0
		bVec[i] = float32(384-i) / 384.0
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		CosineSimilarity(a, bVec)
	}
}

func TestTopKByScore(t *testing.T) {
	t.Parallel()
	t.Run("basic top k", func(t *testing.T) {
		items := []ScoredItem[string]{
			{Item: "a", Score: 0.5},
			{Item: "b", Score: 0.9},
			{Item: "c", Score: 0.3},
			{Item: "d", Score: 0.7},
			{Item: "e", Score: 0.1},
		}

		result := TopKByScore(items, 3)
		if len(result) != 3 {
			t.Fatalf("expected 3 items, got %d", len(result))
		}

		if result[0].Item != "b" || result[1].Item != "d" || result[2].Item != "a" {
			t.Errorf("expected [b d a], got %v", result)
		}
	})

	t.Run("k greater than length", func(t *testing.T) {
		items := []ScoredItem[int]{
			{Item: 1, Score: 0.5},
			{Item: 2, Score: 0.9},
		}

		result := TopKByScore(items, 10)
		if len(result) != 2 {
			t.Fatalf("expected 2 items, got %d", len(result))
		}
		if result[0].Item != 2 || result[1].Item != 1 {
			t.Errorf("expected [2 1], got %v", result)
		}
	})

	t.Run("ties keep input order in heap path", func(t *testing.T) {
		items := []ScoredItem[string]{
			{Item: "first", Score: 0.5},
			{Item: "second", Score: 0.5},
			{Item: "third", Score: 0.5},
			{Item: "low", Score: 0.1},
		}

		result := TopKByScore(items, 2)
		if len(result) != 2 {
			t.Fatalf("expected 2 items, got %d", len(result))
		}
		if result[0].Item != "first" || result[1].Item != "second" {
			t.Errorf("expected [first second], got %v", result)
		}
	})

	t.Run("ties keep input order in sort path", func(t *testing.T) {
		items := []ScoredItem[string]{
			{Item: "x", Score: 0.2},
			{Item: "y", Score: 0.8},
			{Item: "z", Score: 0.2},
		}

		result := TopKByScore(items, 3)
		if result[0].Item != "y" || result[1].Item != "x" || result[2].Item != "z" {
			t.Errorf("expected [y x z], got %v", result)
		}
	})

	t.Run("zero k", func(t *testing.T) {
		if result := TopKByScore([]ScoredItem[int]{{Item: 1, Score: 1}}, 0); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if result := TopKByScore([]ScoredItem[int]{}, 3); result != nil {
			t.Errorf("expected nil, got %v", result)
		}
	})
}

func TestTopKIndicesByScore(t *testing.T) {
	t.Parallel()
	scores := []float64{0.1, 0.9, 0.5, 0.9, -0.3}

	indices := TopKIndicesByScore(scores, 3)
	expected := []int{1, 3, 2}
	if len(indices) != len(expected) {
		t.Fatalf("expected %d indices, got %d", len(expected), len(indices))
	}
	for i := range expected {
		if indices[i] != expected[i] {
			t.Errorf("index %d: expected %d, got %d", i, expected[i], indices[i])
		}
	}

	if got := TopKIndicesByScore(nil, 3); got != nil {
		t.Errorf("expected nil for empty scores, got %v", got)
	}
}
