package sync

import (
	"fmt"
)

// IndexParseError signals a malformed index descriptor entry
type IndexParseError struct {
	Entry  string
	Reason string
}

func (e *IndexParseError) Error() string {
	return fmt.Sprintf("malformed index entry %q: %s", e.Entry, e.Reason)
}

// LookupError signals an index entry that does not resolve to an embedded
// object held by the parent resource
type LookupError struct {
	Attr string
	Ref  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("no embedded object for %s at %s", e.Attr, e.Ref)
}

// PositionError signals a row with more new values than indexed embedded
// object positions
type PositionError struct {
	Attr     string
	Position int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("no indexed position %d for %s", e.Position, e.Attr)
}
