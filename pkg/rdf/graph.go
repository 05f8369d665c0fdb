package rdf

import (
	"strings"
)

// Graph is a mutable set of triples, deduplicated by N-Triples form
type Graph struct {
	triples map[string]*Triple
	order   []string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		triples: make(map[string]*Triple),
	}
}

// Add inserts a triple into the graph (no-op if already present)
func (g *Graph) Add(t *Triple) {
	key := t.String()
	if _, ok := g.triples[key]; ok {
		return
	}
	g.triples[key] = t
	g.order = append(g.order, key)
}

// Remove deletes a triple from the graph (no-op if absent)
func (g *Graph) Remove(t *Triple) {
	key := t.String()
	if _, ok := g.triples[key]; !ok {
		return
	}
	delete(g.triples, key)
	for i, k := range g.order {
		if k == key {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether the graph holds the triple
func (g *Graph) Contains(t *Triple) bool {
	_, ok := g.triples[t.String()]
	return ok
}

// Len returns the number of triples in the graph
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order
func (g *Graph) Triples() []*Triple {
	result := make([]*Triple, 0, len(g.order))
	for _, key := range g.order {
		result = append(result, g.triples[key])
	}
	return result
}

// Objects returns the object terms of all triples matching subject and predicate,
// in insertion order
func (g *Graph) Objects(subject, predicate Term) []Term {
	var result []Term
	for _, key := range g.order {
		t := g.triples[key]
		if t.Subject.Equals(subject) && t.Predicate.Equals(predicate) {
			result = append(result, t.Object)
		}
	}
	return result
}

// SerializeNTriples serializes the graph to N-Triples text, one statement per line
// Input order is preserved; an empty graph serializes to the empty string
func (g *Graph) SerializeNTriples() string {
	if len(g.order) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, key := range g.order {
		builder.WriteString(key)
		builder.WriteString("\n")
	}

	return builder.String()
}
