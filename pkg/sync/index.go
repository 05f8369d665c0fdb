package sync

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/metadata-tools/rdfsync/pkg/model"
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Index maps (attribute name, position) to the embedded sub-resource held by
// the parent at that position, letting embedded-mode diffs address the
// correct nested subject
type Index map[string]map[int]*model.Resource

var indexKeyPattern = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)

// BuildIndex parses an index descriptor string against a parent resource.
// The descriptor is a semicolon-separated list of key=value entries where the
// key matches name[position] and the value is a reference relative to the
// parent's URI. An empty descriptor yields an empty index.
func BuildIndex(descriptor string, parent *model.Resource) (Index, error) {
	index := make(Index)

	if strings.TrimSpace(descriptor) == "" {
		return index, nil
	}

	for _, entry := range strings.Split(descriptor, ";") {
		key, relref, found := strings.Cut(entry, "=")
		if !found {
			return nil, &IndexParseError{Entry: entry, Reason: "missing '='"}
		}

		m := indexKeyPattern.FindStringSubmatch(key)
		if m == nil {
			return nil, &IndexParseError{Entry: entry, Reason: "key does not match name[position]"}
		}
		attr := m[1]
		position, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, &IndexParseError{Entry: entry, Reason: "invalid position"}
		}

		prop, ok := parent.Property(attr)
		if !ok {
			return nil, &LookupError{Attr: attr, Ref: relref}
		}

		member := rdf.NewNamedNode(parent.URI.IRI + relref)
		obj, ok := prop.Object(member)
		if !ok {
			return nil, &LookupError{Attr: attr, Ref: member.IRI}
		}

		if index[attr] == nil {
			index[attr] = make(map[int]*model.Resource)
		}
		index[attr][position] = obj
	}

	return index, nil
}
