// Package utils provides vector math shared by retrieval and panic recovery
// for worker goroutines.
//
// CosineSimilarity floors the norm product at NormEpsilon so zero vectors
// score 0 instead of NaN. TopKIndicesByScore selects the k best indices with
// ties broken by ascending index.
package utils
