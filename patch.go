package cxr

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

// MergePatch applies an RFC 7386 JSON merge patch to the packed form
// of doc and reparses the result. The input document is not mutated;
// the result carries the same persistence settings.
func MergePatch(doc *node.Document, patch []byte) (*node.Document, error) {
	d, err := encode.MarshalPacked(doc, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, err
	}
	return reparse(doc, out)
}

// ApplyPatch applies an RFC 6902 JSON patch to the packed form of doc
// and reparses the result.
func ApplyPatch(doc *node.Document, patch []byte) (*node.Document, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := encode.MarshalPacked(doc, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return reparse(doc, out)
}

func reparse(doc *node.Document, packed []byte) (*node.Document, error) {
	res, err := parse.ParsePacked(packed, doc.Tag())
	if err != nil {
		return nil, err
	}
	res.SetSource(doc.Source())
	res.SetPath(doc.Path())
	res.SetMode(doc.Mode())
	return res, nil
}
