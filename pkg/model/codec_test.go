package model

import (
	"errors"
	"testing"

	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// ===== LiteralCodec Tests =====

func TestLiteralCodec_ToTerm(t *testing.T) {
	tests := []struct {
		name     string
		codec    *LiteralCodec
		value    string
		expected string
	}{
		{
			name:     "plain literal",
			codec:    &LiteralCodec{},
			value:    "hello",
			expected: `"hello"`,
		},
		{
			name:     "typed literal",
			codec:    &LiteralCodec{Datatype: rdf.XSDDate},
			value:    "1912-04-15",
			expected: `"1912-04-15"^^<http://www.w3.org/2001/XMLSchema#date>`,
		},
		{
			name:     "language-tagged literal",
			codec:    &LiteralCodec{Language: "en"},
			value:    "hello",
			expected: `"hello"@en`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, err := tt.codec.ToTerm(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if term.String() != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, term.String())
			}
		})
	}
}

func TestLiteralCodec_ToValue(t *testing.T) {
	codec := &LiteralCodec{}
	term, _ := codec.ToTerm("value")
	if codec.ToValue(term) != "value" {
		t.Errorf("expected round-trip value, got %q", codec.ToValue(term))
	}
}

func TestLiteralCodec_Deterministic(t *testing.T) {
	codec := &LiteralCodec{Language: "en"}
	t1, _ := codec.ToTerm("same")
	t2, _ := codec.ToTerm("same")
	if !t1.Equals(t2) {
		t.Error("expected identical conversions to be equal")
	}
}

// ===== ReferenceCodec Tests =====

func TestReferenceCodec_ToTerm(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"absolute http URI", "http://example.org/resource", false},
		{"absolute https URI", "https://example.org/resource", false},
		{"urn", "urn:uuid:1234", false},
		{"relative reference", "/path/only", true},
		{"plain text", "not a uri", true},
		{"empty", "", true},
		{"leading digit scheme", "1http://example.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := &ReferenceCodec{}
			term, err := codec.ToTerm(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got none")
					return
				}
				var convErr *ConversionError
				if !errors.As(err, &convErr) {
					t.Errorf("expected ConversionError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			node, ok := term.(*rdf.NamedNode)
			if !ok {
				t.Fatalf("expected NamedNode, got %T", term)
			}
			if node.IRI != tt.value {
				t.Errorf("expected IRI %q, got %q", tt.value, node.IRI)
			}
		})
	}
}

func TestReferenceCodec_ToValue(t *testing.T) {
	codec := &ReferenceCodec{}
	term, _ := codec.ToTerm("http://example.org/r")
	if codec.ToValue(term) != "http://example.org/r" {
		t.Errorf("expected IRI string, got %q", codec.ToValue(term))
	}
}
