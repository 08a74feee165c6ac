// Package cxr is the toplevel convenience API for the CXR data
// model: parse and encode shorthands, document diffing, and packed
// form patching. The real work lives in the node, parse, encode,
// dirstore, and query packages.
package cxr

import (
	"bytes"

	"github.com/cxr-format/go-cxr/dirstore"
	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

// ParseDocument decodes CXR text into a document with the given tag.
func ParseDocument(d []byte, tag string) (*node.Document, error) {
	return parse.Parse(d, tag)
}

// ParseString is ParseDocument over a string.
func ParseString(s, tag string) (*node.Document, error) {
	return parse.Parse([]byte(s), tag)
}

// ParseFile loads path as a document, selecting the codec by file
// extension. The document's tag is the file base name.
func ParseFile(path string) (*node.Document, error) {
	return dirstore.OpenDocument(path)
}

// EncodeToString renders v with the given encode options.
func EncodeToString(v node.Item, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
