package graph

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// tripleFile is the wrapped layout of a triples file.
type tripleFile struct {
	Triples []types.Triple `yaml:"triples"`
}

// LoadTriplesFile reads triples from a YAML or JSON file.
func LoadTriplesFile(path string) ([]types.Triple, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open triples file: %w", err)
	}
	defer f.Close()

	triples, err := DecodeTriples(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return triples, nil
}

// DecodeTriples reads either a bare list of {subject, predicate, object}
// mappings or a mapping with a "triples" list. JSON is accepted as YAML.
// Entries with an empty field are rejected.
func DecodeTriples(r io.Reader) ([]types.Triple, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read triples: %w", err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse triples: %w", err)
	}
	if len(root.Content) == 0 {
		return []types.Triple{}, nil
	}

	var triples []types.Triple
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		err = root.Content[0].Decode(&triples)
	case yaml.MappingNode:
		var wrapped tripleFile
		err = root.Content[0].Decode(&wrapped)
		triples = wrapped.Triples
	default:
		return nil, fmt.Errorf("triples must be a list or a mapping with a triples key")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode triples: %w", err)
	}

	for i, t := range triples {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}
	if triples == nil {
		triples = []types.Triple{}
	}
	return triples, nil
}
