// Package extract turns free-text passages into subject | predicate | object
// triples with a generation model.
//
// Each passage is sent with a fixed few-shot prompt and greedy decoding. The
// completion is read one triple per line; lines that do not split into exactly
// three non-empty parts are dropped. Models that answer with a JSON array of
// {"subject", "predicate", "object"} objects are accepted as well, after the
// JSON has been repaired.
package extract
