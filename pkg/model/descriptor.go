package model

import (
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// PathRef is an explicit attribute path: a direct property of the resource
// (Inner empty) or a property of an embedded sub-resource (Outer.Inner).
// Deeper nesting is not supported.
type PathRef struct {
	Outer string
	Inner string
}

// Embedded reports whether the path addresses an embedded sub-resource property
func (p PathRef) Embedded() bool {
	return p.Inner != ""
}

func (p PathRef) String() string {
	if p.Inner == "" {
		return p.Outer
	}
	return p.Outer + "." + p.Inner
}

// FieldSpec maps one tabular column to one resource property
type FieldSpec struct {
	Header    string
	Path      PathRef
	Predicate *rdf.NamedNode
	Codec     Codec
}

// ObjectSpec declares an object property whose values are embedded
// sub-resources, linked from the parent by Predicate
type ObjectSpec struct {
	Name      string
	Predicate *rdf.NamedNode
}

// Descriptor is the statically-typed description of one model: its mapped
// columns and its embedded object properties
type Descriptor struct {
	Name    string
	Fields  []FieldSpec
	Objects []ObjectSpec
}

// Field returns the spec for a header, if mapped
func (d *Descriptor) Field(header string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Header == header {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// FromGraph materializes a typed resource view over a fetched graph.
// Direct fields become properties holding the graph's current objects for
// their predicate. Object specs become properties whose member terms resolve
// to embedded sub-resources carrying their own inner properties.
func (d *Descriptor) FromGraph(g *rdf.Graph, uri *rdf.NamedNode) *Resource {
	resource := NewResource(uri)

	for _, f := range d.Fields {
		if f.Path.Embedded() {
			continue
		}
		terms := g.Objects(uri, f.Predicate)
		resource.AddProperty(NewProperty(f.Path.Outer, f.Predicate, f.Codec, terms))
	}

	for _, spec := range d.Objects {
		memberTerms := g.Objects(uri, spec.Predicate)
		prop := NewProperty(spec.Name, spec.Predicate, &ReferenceCodec{}, memberTerms)

		for _, member := range memberTerms {
			memberURI, ok := member.(*rdf.NamedNode)
			if !ok {
				continue
			}
			embedded := NewResource(memberURI)
			for _, f := range d.Fields {
				if !f.Path.Embedded() || f.Path.Outer != spec.Name {
					continue
				}
				terms := g.Objects(memberURI, f.Predicate)
				embedded.AddProperty(NewProperty(f.Path.Inner, f.Predicate, f.Codec, terms))
			}
			prop.AddObject(member, embedded)
		}

		resource.AddProperty(prop)
	}

	return resource
}
