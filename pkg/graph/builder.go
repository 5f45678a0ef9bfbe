package graph

import (
	"github.com/google/uuid"

	"github.com/LaurenzPoll/knowledge-graph-agent/pkg/types"
)

// Build converts triples into graph elements. Entities appear once, in the
// order they are first seen as subject or object, and carry the default
// entity type. Edges follow in triple order; duplicate triples become
// parallel edges.
func Build(triples []types.Triple) []types.Element {
	seen := make(map[string]struct{}, len(triples)*2)
	nodes := make([]types.Element, 0, len(triples)*2)
	addNode := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		nodes = append(nodes, types.NewNodeElement(types.NodeElement{
			ID:    name,
			Label: name,
			Type:  types.DefaultEntityType,
		}))
	}

	edges := make([]types.Element, 0, len(triples))
	for _, t := range triples {
		if t.Validate() != nil {
			continue
		}
		addNode(t.Subject)
		addNode(t.Object)
		edges = append(edges, types.NewEdgeElement(types.EdgeElement{
			ID:           uuid.New().String(),
			Source:       t.Subject,
			Target:       t.Object,
			Label:        t.Predicate,
			RelationType: t.Predicate,
		}))
	}

	return append(nodes, edges...)
}

// Neighborhood is the set of entities one hop away from an entity.
type Neighborhood struct {
	Entity       string              `json:"entity"`
	Predecessors []string            `json:"predecessors"`
	Successors   []string            `json:"successors"`
	Edges        []types.EdgeElement `json:"edges"`
}

// Neighbors returns the entities linked to entity by an incoming or outgoing
// edge, each listed once in edge order, together with those edges. Entity
// names compare exactly.
func Neighbors(elements []types.Element, entity string) Neighborhood {
	n := Neighborhood{
		Entity:       entity,
		Predecessors: []string{},
		Successors:   []string{},
		Edges:        []types.EdgeElement{},
	}
	preds := map[string]struct{}{}
	succs := map[string]struct{}{}

	for _, el := range elements {
		if !el.IsEdge() || !el.Edge.Complete() {
			continue
		}
		e := el.Edge
		switch {
		case e.Target == entity:
			if _, ok := preds[e.Source]; !ok {
				preds[e.Source] = struct{}{}
				n.Predecessors = append(n.Predecessors, e.Source)
			}
		case e.Source == entity:
			if _, ok := succs[e.Target]; !ok {
				succs[e.Target] = struct{}{}
				n.Successors = append(n.Successors, e.Target)
			}
		default:
			continue
		}
		n.Edges = append(n.Edges, *e)
	}
	return n
}
