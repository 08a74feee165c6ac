// Package encode serializes the node model.
//
// CXR text output is the inverse of package parse: groups become
// "#tag" sections, entries become "tag: value" lines, documents join
// their groups with blank lines, and collections prefix each child
// with a "/ tag" header. Values are written verbatim; the grammar has
// no escaping, so values containing ':', '#', or newlines will not
// round-trip. That is a documented format limitation.
//
// Packed output is the JSON/YAML-compatible two-parallel-array shape:
//
//	{"G": [["a","b"], ["1","2"]]}
//
// Color output for terminals is available through EncodeColors.
package encode
