// Package types defines the core data types for the knowledge-graph agent.
//
// This package contains the fundamental types shared by every other package:
//   - Triple: A (subject, predicate, object) fact
//   - Element: A graph element, either a NodeElement (entity) or an EdgeElement (relation)
//   - Response: Output of a text-generation backend
//   - Answer: Result of a grounded question-answering query
//
// # Elements
//
// Elements are a tagged variant. Loose records coming from upstream extraction
// (Cytoscape-style maps with a "data" object) are resolved into a NodeElement or
// an EdgeElement exactly once, by ElementFromRecord:
//
//	el, ok := types.ElementFromRecord(map[string]any{
//	    "data": map[string]any{"source": "Apollo 11", "label": "launched on", "target": "July 16, 1969"},
//	})
//
// Downstream code switches on Element.Kind and never re-inspects optional fields.
//
// # JSON Serialization
//
// Elements marshal to and from the Cytoscape form {"data": {...}} so that graphs
// produced by this module can be rendered by any Cytoscape-compatible viewer.
package types
