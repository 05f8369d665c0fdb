package sync

import (
	"fmt"
	"strings"

	"github.com/metadata-tools/rdfsync/pkg/model"
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Differ computes the triple-level delta between a resource's current
// property values and one row's edited values. In-memory mutations are
// staged on a Plan and applied only after the row resolves successfully.
type Differ struct {
	resource *model.Resource
	index    Index
	delta    *Delta
	plan     *Plan
}

// NewDiffer creates a differ for one resource and its embedded-object index
func NewDiffer(resource *model.Resource, index Index) *Differ {
	return &Differ{
		resource: resource,
		index:    index,
		delta:    NewDelta(),
		plan:     NewPlan(),
	}
}

// Delta returns the accumulated delta
func (d *Differ) Delta() *Delta {
	return d.delta
}

// Plan returns the staged in-memory mutations
func (d *Differ) Plan() *Plan {
	return d.plan
}

// DiffField diffs one mapped column's cell against the resource
func (d *Differ) DiffField(field model.FieldSpec, cell string) error {
	newValues := SplitValues(cell)

	if field.Path.Embedded() {
		return d.diffEmbedded(field, newValues)
	}
	return d.diffDirect(field, newValues)
}

// diffDirect handles single-segment paths: the subject is the resource itself
// and membership, not order, drives the delta
func (d *Differ) diffDirect(field model.FieldSpec, newValues []string) error {
	prop, ok := d.resource.Property(field.Path.Outer)
	if !ok {
		return fmt.Errorf("resource has no property %q", field.Path.Outer)
	}

	// Convert every new value up front so a bad cell aborts the row before
	// any triple is emitted
	newTerms := make(map[string]rdf.Term, len(newValues))
	orderedTerms := make([]rdf.Term, 0, len(newValues))
	for _, v := range newValues {
		if _, seen := newTerms[v]; seen {
			orderedTerms = append(orderedTerms, newTerms[v])
			continue
		}
		t, err := prop.Codec.ToTerm(v)
		if err != nil {
			return err
		}
		newTerms[v] = t
		orderedTerms = append(orderedTerms, t)
	}

	oldSet := make(map[string]bool)
	for _, v := range prop.Values() {
		oldSet[v] = true
	}
	newSet := make(map[string]bool)
	for _, v := range newValues {
		newSet[v] = true
	}

	for _, oldValue := range prop.Values() {
		if newSet[oldValue] {
			continue
		}
		t, err := prop.Codec.ToTerm(oldValue)
		if err != nil {
			return err
		}
		d.delta.Deletes.Add(rdf.NewTriple(d.resource.URI, prop.Predicate, t))
	}

	for _, newValue := range newValues {
		if oldSet[newValue] {
			continue
		}
		d.delta.Inserts.Add(rdf.NewTriple(d.resource.URI, prop.Predicate, newTerms[newValue]))
	}

	// Replace the in-memory value set with the row's ordered list
	d.plan.Stage(func() {
		prop.SetTerms(orderedTerms)
	})

	return nil
}

// diffEmbedded handles two-segment paths: each new value is correlated
// positionally with an indexed embedded object, and changed values are
// scoped to the embedded object's own URI
func (d *Differ) diffEmbedded(field model.FieldSpec, newValues []string) error {
	positions, ok := d.index[field.Path.Outer]
	if !ok {
		// No indexed objects for this attribute in this row
		return nil
	}

	for i, newValue := range newValues {
		obj, ok := positions[i]
		if !ok {
			return &PositionError{Attr: field.Path.Outer, Position: i}
		}

		prop, ok := obj.Property(field.Path.Inner)
		if !ok {
			return fmt.Errorf("embedded object %s has no property %q", obj.URI.IRI, field.Path.Inner)
		}

		values := prop.Values()
		if len(values) == 0 {
			return &LookupError{Attr: field.Path.String(), Ref: obj.URI.IRI}
		}
		oldValue := values[0]
		if newValue == oldValue {
			continue
		}

		oldTerm, err := prop.Codec.ToTerm(oldValue)
		if err != nil {
			return err
		}
		newTerm, err := prop.Codec.ToTerm(newValue)
		if err != nil {
			return err
		}

		d.delta.Deletes.Add(rdf.NewTriple(obj.URI, prop.Predicate, oldTerm))
		d.delta.Inserts.Add(rdf.NewTriple(obj.URI, prop.Predicate, newTerm))

		d.plan.Stage(func() {
			prop.SetTerms([]rdf.Term{newTerm})
		})
	}

	return nil
}

// SplitValues splits a raw cell on '|' and drops empty or whitespace-only
// entries
func SplitValues(cell string) []string {
	var values []string
	for _, v := range strings.Split(cell, "|") {
		if strings.TrimSpace(v) == "" {
			continue
		}
		values = append(values, v)
	}
	return values
}

// Plan buffers in-memory mutations until the row's update has been accepted,
// so a failure later in the same row leaves the resource untouched
type Plan struct {
	mutations []func()
}

// NewPlan creates an empty plan
func NewPlan() *Plan {
	return &Plan{}
}

// Stage appends a mutation
func (p *Plan) Stage(m func()) {
	p.mutations = append(p.mutations, m)
}

// Apply runs all staged mutations in order
func (p *Plan) Apply() {
	for _, m := range p.mutations {
		m()
	}
}
