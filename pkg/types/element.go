package types

import (
	"encoding/json"
	"fmt"
)

// ElementKind distinguishes graph nodes from graph edges.
type ElementKind string

const (
	// NodeKind marks an entity element.
	NodeKind ElementKind = "node"
	// EdgeKind marks a relation element.
	EdgeKind ElementKind = "edge"
)

// DefaultEntityType is assigned to every entity until typed extraction exists.
const DefaultEntityType = "Unknown"

// NodeElement is an entity in the graph.
type NodeElement struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
}

// EdgeElement is a directed, labelled relation between two entities.
// Fields may be empty when the element came from a noisy upstream source.
type EdgeElement struct {
	ID           string `json:"id,omitempty"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	Label        string `json:"label"`
	RelationType string `json:"relation_type,omitempty"`
}

// Complete reports whether source, label and target are all present.
func (e *EdgeElement) Complete() bool {
	return e != nil && e.Source != "" && e.Label != "" && e.Target != ""
}

// Triple returns the fact carried by the edge.
func (e *EdgeElement) Triple() Triple {
	return Triple{Subject: e.Source, Predicate: e.Label, Object: e.Target}
}

// Element is a graph element: exactly one of Node or Edge is set, as named by Kind.
type Element struct {
	Kind ElementKind
	Node *NodeElement
	Edge *EdgeElement
}

// NewNodeElement wraps a node.
func NewNodeElement(node NodeElement) Element {
	return Element{Kind: NodeKind, Node: &node}
}

// NewEdgeElement wraps an edge.
func NewEdgeElement(edge EdgeElement) Element {
	return Element{Kind: EdgeKind, Edge: &edge}
}

// IsEdge reports whether the element is a relation.
func (e Element) IsEdge() bool {
	return e.Kind == EdgeKind && e.Edge != nil
}

// ElementFromRecord resolves a loose Cytoscape-style record into an Element.
// A record carrying any of source, target or label is an edge; a record with an
// id and no edge fields is a node. Anything else is rejected with ok=false.
func ElementFromRecord(record map[string]any) (Element, bool) {
	if record == nil {
		return Element{}, false
	}
	data, ok := record["data"].(map[string]any)
	if !ok {
		return Element{}, false
	}

	source := stringField(data, "source")
	target := stringField(data, "target")
	label := stringField(data, "label")
	_, hasSource := data["source"]
	_, hasTarget := data["target"]

	if hasSource || hasTarget {
		return NewEdgeElement(EdgeElement{
			ID:           stringField(data, "id"),
			Source:       source,
			Target:       target,
			Label:        label,
			RelationType: stringField(data, "relation_type"),
		}), true
	}

	id := stringField(data, "id")
	if id == "" {
		return Element{}, false
	}
	if label == "" {
		label = id
	}
	return NewNodeElement(NodeElement{
		ID:    id,
		Label: label,
		Type:  stringField(data, "type"),
	}), true
}

// ElementsFromRecords resolves every record, dropping the ones that are neither
// a node nor an edge.
func ElementsFromRecords(records []map[string]any) []Element {
	elements := make([]Element, 0, len(records))
	for _, r := range records {
		if el, ok := ElementFromRecord(r); ok {
			elements = append(elements, el)
		}
	}
	return elements
}

func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

type elementJSON struct {
	Data map[string]any `json:"data"`
}

// MarshalJSON writes the element in Cytoscape form.
func (e Element) MarshalJSON() ([]byte, error) {
	data := map[string]any{}
	switch {
	case e.Kind == NodeKind && e.Node != nil:
		data["id"] = e.Node.ID
		data["label"] = e.Node.Label
		if e.Node.Type != "" {
			data["type"] = e.Node.Type
		}
	case e.Kind == EdgeKind && e.Edge != nil:
		if e.Edge.ID != "" {
			data["id"] = e.Edge.ID
		}
		data["source"] = e.Edge.Source
		data["target"] = e.Edge.Target
		data["label"] = e.Edge.Label
		if e.Edge.RelationType != "" {
			data["relation_type"] = e.Edge.RelationType
		}
	default:
		return nil, fmt.Errorf("cannot marshal element of kind %q", e.Kind)
	}
	return json.Marshal(elementJSON{Data: data})
}

// UnmarshalJSON reads an element in Cytoscape form.
func (e *Element) UnmarshalJSON(b []byte) error {
	var record map[string]any
	if err := json.Unmarshal(b, &record); err != nil {
		return err
	}
	el, ok := ElementFromRecord(record)
	if !ok {
		return fmt.Errorf("record is neither a node nor an edge")
	}
	*e = el
	return nil
}
