// Package models registers the built-in model descriptors.
// Importing it for side effects populates the model registry.
package models

import (
	"github.com/metadata-tools/rdfsync/pkg/model"
	"github.com/metadata-tools/rdfsync/pkg/rdf"
)

// Vocabulary namespaces
const (
	dcterms = "http://purl.org/dc/terms/"
	bibo    = "http://purl.org/ontology/bibo/"
	pcdm    = "http://pcdm.org/models#"
	edm     = "http://www.europeana.eu/schemas/edm/"
)

func init() {
	model.Register(&model.Descriptor{
		Name: "Issue",
		Fields: []model.FieldSpec{
			{
				Header:    "Title",
				Path:      model.PathRef{Outer: "title"},
				Predicate: rdf.NewNamedNode(dcterms + "title"),
				Codec:     &model.LiteralCodec{},
			},
			{
				Header:    "Date",
				Path:      model.PathRef{Outer: "date"},
				Predicate: rdf.NewNamedNode(dcterms + "date"),
				Codec:     &model.LiteralCodec{Datatype: rdf.XSDDate},
			},
			{
				Header:    "Volume",
				Path:      model.PathRef{Outer: "volume"},
				Predicate: rdf.NewNamedNode(bibo + "volume"),
				Codec:     &model.LiteralCodec{Datatype: rdf.XSDInteger},
			},
			{
				Header:    "Issue",
				Path:      model.PathRef{Outer: "issue"},
				Predicate: rdf.NewNamedNode(bibo + "issue"),
				Codec:     &model.LiteralCodec{Datatype: rdf.XSDInteger},
			},
			{
				Header:    "Edition",
				Path:      model.PathRef{Outer: "edition"},
				Predicate: rdf.NewNamedNode(bibo + "edition"),
				Codec:     &model.LiteralCodec{},
			},
			{
				Header:    "Part Label",
				Path:      model.PathRef{Outer: "part", Inner: "label"},
				Predicate: rdf.NewNamedNode(dcterms + "title"),
				Codec:     &model.LiteralCodec{},
			},
		},
		Objects: []model.ObjectSpec{
			{
				Name:      "part",
				Predicate: rdf.NewNamedNode(pcdm + "hasMember"),
			},
		},
	})

	model.Register(&model.Descriptor{
		Name: "Letter",
		Fields: []model.FieldSpec{
			{
				Header:    "Title",
				Path:      model.PathRef{Outer: "title"},
				Predicate: rdf.NewNamedNode(dcterms + "title"),
				Codec:     &model.LiteralCodec{},
			},
			{
				Header:    "Author",
				Path:      model.PathRef{Outer: "author"},
				Predicate: rdf.NewNamedNode(dcterms + "creator"),
				Codec:     &model.LiteralCodec{},
			},
			{
				Header:    "Recipient",
				Path:      model.PathRef{Outer: "recipient"},
				Predicate: rdf.NewNamedNode(bibo + "recipient"),
				Codec:     &model.LiteralCodec{},
			},
			{
				Header:    "Date",
				Path:      model.PathRef{Outer: "date"},
				Predicate: rdf.NewNamedNode(dcterms + "date"),
				Codec:     &model.LiteralCodec{Datatype: rdf.XSDDate},
			},
			{
				Header:    "Description",
				Path:      model.PathRef{Outer: "description"},
				Predicate: rdf.NewNamedNode(dcterms + "description"),
				Codec:     &model.LiteralCodec{Language: "en"},
			},
			{
				Header:    "Rights",
				Path:      model.PathRef{Outer: "rights"},
				Predicate: rdf.NewNamedNode(edm + "rights"),
				Codec:     &model.ReferenceCodec{},
			},
		},
	})
}
