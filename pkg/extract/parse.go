package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

var thinkTags = regexp.MustCompile(`(?s)<think>.*?</think>`)

// ParseTriples reads triples from a model completion.
func ParseTriples(raw string) []types.Triple {
	raw = strings.TrimSpace(thinkTags.ReplaceAllString(raw, ""))
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		if triples, ok := parseJSONTriples(raw); ok {
			return triples
		}
	}

	return parseLines(raw)
}

func parseLines(raw string) []types.Triple {
	var triples []types.Triple
	for _, line := range strings.Split(raw, "\n") {
		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			continue
		}
		t := types.NewTriple(
			strings.TrimSpace(parts[0]),
			strings.TrimSpace(parts[1]),
			strings.TrimSpace(parts[2]),
		)
		if t.Validate() != nil {
			continue
		}
		triples = append(triples, t)
	}
	return triples
}

// tripleList is the wrapped form some models produce.
type tripleList struct {
	Triples []types.Triple `json:"triples"`
}

func parseJSONTriples(raw string) ([]types.Triple, bool) {
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return nil, false
	}

	var list []types.Triple
	if err := json.Unmarshal([]byte(repaired), &list); err != nil {
		var wrapped tripleList
		if err := json.Unmarshal([]byte(repaired), &wrapped); err != nil {
			return nil, false
		}
		list = wrapped.Triples
	}

	triples := make([]types.Triple, 0, len(list))
	for _, t := range list {
		t = types.NewTriple(strings.TrimSpace(t.Subject), strings.TrimSpace(t.Predicate), strings.TrimSpace(t.Object))
		if t.Validate() != nil {
			continue
		}
		triples = append(triples, t)
	}
	return triples, true
}
