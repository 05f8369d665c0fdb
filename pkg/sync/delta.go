package sync

import (
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Delta accumulates a row's deletion and insertion triples
type Delta struct {
	Deletes *rdf.Graph
	Inserts *rdf.Graph
}

// NewDelta creates an empty delta
func NewDelta() *Delta {
	return &Delta{
		Deletes: rdf.NewGraph(),
		Inserts: rdf.NewGraph(),
	}
}

// Cancel removes every triple present in both sets. After cancellation the
// two sets are disjoint; a triple deleted and re-inserted is a no-op edit.
func (d *Delta) Cancel() {
	for _, t := range d.Deletes.Triples() {
		if d.Inserts.Contains(t) {
			d.Deletes.Remove(t)
			d.Inserts.Remove(t)
		}
	}
}

// Empty reports whether the delta carries no effective change
func (d *Delta) Empty() bool {
	return d.Deletes.Len() == 0 && d.Inserts.Len() == 0
}
