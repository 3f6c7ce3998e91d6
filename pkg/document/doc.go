// Package document reads and writes schema documents: the JSON and TOML
// interchange form of string-labelled trees and relationship graphs.
//
// # Overview
//
// The library's core types are generic over the caller's label type and
// carry no serialization. This package fixes the label type to string and
// provides the canonical document shapes used by the CLI and by callers that
// load schema descriptions from files:
//
//	// users.toml
//	[[nodes]]
//	type = "users"
//	  [[nodes.targets]]
//	  type = "orders"
//	  rel = "one_to_many"
//
//	// hierarchy.json
//	{"value": "schema", "children": [{"value": "users"}]}
//
// The format is chosen by file extension (.json, .toml). Round trips are
// faithful: decode → encode produces an equivalent document, including
// targets that point at undeclared types.
//
// # Errors
//
// Malformed input surfaces as structured errors from
// [github.com/schemakit/schemakit/pkg/errors]: INVALID_DOCUMENT for shape
// violations, INVALID_RELATIONSHIP for unknown cardinality names,
// INVALID_FORMAT for unsupported extensions. Dangling targets are not an
// error; referential integrity is deliberately not checked anywhere.
package document
