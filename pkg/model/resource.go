package model

import (
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Resource is a repository-addressed entity with a live view of its
// current property values, materialized from a fetched graph
type Resource struct {
	URI        *rdf.NamedNode
	properties map[string]*Property
}

// NewResource creates a resource with no properties
func NewResource(uri *rdf.NamedNode) *Resource {
	return &Resource{
		URI:        uri,
		properties: make(map[string]*Property),
	}
}

// Property returns the named property, if present
func (r *Resource) Property(name string) (*Property, bool) {
	p, ok := r.properties[name]
	return p, ok
}

// AddProperty attaches a property to the resource
func (r *Resource) AddProperty(p *Property) {
	r.properties[p.Name] = p
}

// Property is a named, URI-identified edge type on a resource
// It holds the current value terms and, for object properties, the
// embedded sub-resources reachable through them
type Property struct {
	Name      string
	Predicate *rdf.NamedNode
	Codec     Codec

	terms   []rdf.Term
	objects map[string]*Resource // keyed by the member term's N-Triples form
}

// NewProperty creates a property with the given terms
func NewProperty(name string, predicate *rdf.NamedNode, codec Codec, terms []rdf.Term) *Property {
	return &Property{
		Name:      name,
		Predicate: predicate,
		Codec:     codec,
		terms:     terms,
	}
}

// Terms returns the current value terms in order
func (p *Property) Terms() []rdf.Term {
	return p.terms
}

// Values returns the canonical string forms of the current terms
func (p *Property) Values() []string {
	values := make([]string, len(p.terms))
	for i, t := range p.terms {
		values[i] = p.Codec.ToValue(t)
	}
	return values
}

// SetValues replaces the current terms with terms converted from values,
// preserving input order
func (p *Property) SetValues(values []string) error {
	terms := make([]rdf.Term, len(values))
	for i, v := range values {
		t, err := p.Codec.ToTerm(v)
		if err != nil {
			return err
		}
		terms[i] = t
	}
	p.terms = terms
	return nil
}

// SetTerms replaces the current terms directly, preserving input order
func (p *Property) SetTerms(terms []rdf.Term) {
	p.terms = terms
}

// Object resolves an embedded sub-resource by its member term
func (p *Property) Object(term rdf.Term) (*Resource, bool) {
	if p.objects == nil {
		return nil, false
	}
	obj, ok := p.objects[term.String()]
	return obj, ok
}

// AddObject registers an embedded sub-resource under its member term
func (p *Property) AddObject(term rdf.Term, obj *Resource) {
	if p.objects == nil {
		p.objects = make(map[string]*Resource)
	}
	p.objects[term.String()] = obj
}
