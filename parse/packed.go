package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/cxr-format/go-cxr/node"
)

// ParsePacked decodes the packed form of a document: an object
// mapping each group tag to a two-element list of equal-length string
// arrays, the first holding entry tags and the second entry values.
// JSON and YAML input are both accepted; group order is preserved.
func ParsePacked(d []byte, tag string) (*node.Document, error) {
	var ms yaml.MapSlice
	if err := yaml.Unmarshal(d, &ms); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return Unpack(ms, tag)
}

// Unpack validates the packed shape strictly and builds a document
// from it. Any arity, type, or length mismatch fails with an error
// naming the violated invariant.
func Unpack(ms yaml.MapSlice, tag string) (*node.Document, error) {
	doc := node.NewDocument(tag)
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: group key %v is not a string", ErrParse, item.Key)
		}
		pair, ok := item.Value.([]any)
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("%w: group %q is not a two-element tag/value list", ErrParse, key)
		}
		tags, err := stringList(pair[0])
		if err != nil {
			return nil, fmt.Errorf("%w: group %q tags: %w", ErrParse, key, err)
		}
		vals, err := stringList(pair[1])
		if err != nil {
			return nil, fmt.Errorf("%w: group %q values: %w", ErrParse, key, err)
		}
		if len(tags) != len(vals) {
			return nil, fmt.Errorf("%w: group %q has %d tags but %d values",
				ErrParse, key, len(tags), len(vals))
		}
		g := node.NewGroup(key)
		for i := range tags {
			g.Append(node.NewEntry(tags[i], vals[i]))
		}
		doc.Append(g)
	}
	return doc, nil
}

func stringList(v any) ([]string, error) {
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("not a list")
	}
	res := make([]string, len(list))
	for i, e := range list {
		s, ok := e.(string)
		if !ok {
			return nil, fmt.Errorf("element %d is not a string", i)
		}
		res[i] = s
	}
	return res, nil
}
