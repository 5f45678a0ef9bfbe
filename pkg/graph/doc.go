// Package graph assembles triples into Cytoscape-style graph elements.
//
// Build produces one node per distinct entity followed by one edge per triple.
// The element list round-trips through factstore.ExtractTriples, so a graph
// built here can be handed straight to the retrieval pipeline.
package graph
