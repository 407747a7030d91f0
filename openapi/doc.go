// Package openapi holds the OpenAPI v3 document model produced by routedoc,
// a helper for building object schemas from flat property definitions, and
// in-memory JSON/YAML encoding of documents.
//
// See: https://spec.openapis.org/oas/v3.1.0
//
// # Schema Builder
//
// BuildSchema turns an ordered list of fields into an object schema. The
// required list follows the definition order:
//
//	item := openapi.BuildSchema("Item", openapi.Definition{
//	    {Name: "id", Property: openapi.Property{Type: openapi.PropertyInteger, Required: true}},
//	    {Name: "name", Property: openapi.Property{Type: openapi.PropertyString, Example: "widget"}},
//	})
//	// {"type": "object",
//	//  "properties": {"id": {"type": "integer"}, "name": {"type": "string", "example": "widget"}},
//	//  "required": ["id"]}
//
// The schema name is not embedded in the result. Register the schema under
// that name yourself, for example through route.DocumentOptions.Schemas.
//
// No validation takes place: a declared type is never checked against its
// example.
//
// # Encoding
//
// Documents are plain values. JSON and YAML return encoded bytes; writing
// them anywhere is up to the caller:
//
//	data, err := doc.YAML()
package openapi
