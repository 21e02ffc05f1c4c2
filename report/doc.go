// Package report renders analysis results for people and for machines.
//
// A Report bundles one input's ent.Result with the input's name, size and xxHash64
// fingerprint, plus the optional compression probe results. Four formats are
// supported:
//
//   - FormatText: the classic ent prose report
//   - FormatTerse: the classic ent -t CSV rows
//   - FormatJSON: an indented JSON document
//   - FormatYAML: the same document as YAML
//
// Statistics that are undefined for the input (NaN, or the serial correlation
// sentinel) are printed as "undefined" in the text formats and encoded as null in
// JSON and YAML.
package report
