package sync

import (
	"fmt"
	"strings"
)

// BuildUpdate renders a delta as a single SPARQL update expression:
// DELETE { ... } INSERT { ... } WHERE {}
// An empty set serializes to an empty block; callers decide whether an
// all-empty delta is worth submitting at all.
func BuildUpdate(delta *Delta) string {
	deletes := strings.TrimSpace(delta.Deletes.SerializeNTriples())
	inserts := strings.TrimSpace(delta.Inserts.SerializeNTriples())
	return fmt.Sprintf("DELETE { %s } INSERT { %s } WHERE {}", deletes, inserts)
}
