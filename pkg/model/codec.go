package model

import (
	"fmt"
	"strings"

	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Codec converts between plain cell values and RDF terms for one property
// Implementations must be deterministic and side-effect-free
type Codec interface {
	// ToTerm converts a plain string value to the RDF term this property requires
	ToTerm(value string) (rdf.Term, error)

	// ToValue returns the canonical string form of a term for comparison
	ToValue(term rdf.Term) string
}

// ConversionError signals a value that cannot be coerced to a property's term shape
type ConversionError struct {
	Value  string
	Reason string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q: %s", e.Value, e.Reason)
}

// LiteralCodec produces literals, optionally typed or language-tagged
type LiteralCodec struct {
	Datatype *rdf.NamedNode
	Language string
}

func (c *LiteralCodec) ToTerm(value string) (rdf.Term, error) {
	if c.Language != "" {
		return rdf.NewLiteralWithLanguage(value, c.Language), nil
	}
	if c.Datatype != nil {
		return rdf.NewLiteralWithDatatype(value, c.Datatype), nil
	}
	return rdf.NewLiteral(value), nil
}

func (c *LiteralCodec) ToValue(term rdf.Term) string {
	if lit, ok := term.(*rdf.Literal); ok {
		return lit.Value
	}
	return term.String()
}

// ReferenceCodec produces resource references; values must be absolute URIs
type ReferenceCodec struct{}

func (c *ReferenceCodec) ToTerm(value string) (rdf.Term, error) {
	if !isAbsoluteURI(value) {
		return nil, &ConversionError{Value: value, Reason: "reference property requires an absolute URI"}
	}
	return rdf.NewNamedNode(value), nil
}

func (c *ReferenceCodec) ToValue(term rdf.Term) string {
	if node, ok := term.(*rdf.NamedNode); ok {
		return node.IRI
	}
	return term.String()
}

// isAbsoluteURI checks for a scheme followed by ':'
func isAbsoluteURI(s string) bool {
	idx := strings.Index(s, ":")
	if idx <= 0 {
		return false
	}
	for i := 0; i < idx; i++ {
		ch := s[i]
		valid := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(i > 0 && ((ch >= '0' && ch <= '9') || ch == '+' || ch == '-' || ch == '.'))
		if !valid {
			return false
		}
	}
	return true
}
