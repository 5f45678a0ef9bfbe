package factstore

import (
	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// ExtractTriples returns one triple per complete edge element, in input order,
// together with the fact text of each triple. Node elements and edges missing
// a source, label or target are skipped.
func ExtractTriples(elements []types.Element) ([]types.Triple, []string) {
	triples := make([]types.Triple, 0, len(elements))
	texts := make([]string, 0, len(elements))
	for _, element := range elements {
		if !element.IsEdge() || !element.Edge.Complete() {
			continue
		}
		t := element.Edge.Triple()
		triples = append(triples, t)
		texts = append(texts, t.Text())
	}
	return triples, texts
}

// ExtractTriplesFromRecords resolves loosely typed element records, such as
// decoded JSON, and extracts their triples. Records without a data object or
// with non-string fields contribute nothing.
func ExtractTriplesFromRecords(records []map[string]any) ([]types.Triple, []string) {
	return ExtractTriples(types.ElementsFromRecords(records))
}
