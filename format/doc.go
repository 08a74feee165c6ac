// Package format names the encodings go-cxr reads and writes and the
// file extension configuration used by directory scans.
//
//   - CXRFormat: the line-oriented #section / key: value text grammar
//   - JSONFormat: the packed two-parallel-array object shape
//   - YAMLFormat: the packed shape rendered as YAML
//
// # Related Packages
//
//   - github.com/cxr-format/go-cxr/parse - parse text to the node model
//   - github.com/cxr-format/go-cxr/encode - encode the node model to text
package format
