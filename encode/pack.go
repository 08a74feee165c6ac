package encode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
)

// PackDocument converts a document to its packed form: an ordered
// object mapping each group tag to two parallel arrays, the group's
// entry tags and entry values. The two-array shape is the wire
// contract; do not replace it with an array of pairs.
func PackDocument(d *node.Document) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, d.Len())
	for _, g := range d.Groups() {
		ms = append(ms, yaml.MapItem{
			Key:   g.Tag(),
			Value: []any{anyStrings(g.Tags()), anyStrings(g.Values())},
		})
	}
	return ms
}

// PackCollection converts a collection to its packed form. Only the
// outer two-parallel-array shape is produced, mirroring the behavior
// the format has always had: the value array holds each child's own
// packed form, but no nested "Collection"/"Document" maps are
// reconstructed. See DESIGN.md before changing this.
func PackCollection(c *node.Collection) yaml.MapSlice {
	tags := make([]any, 0, c.Len())
	vals := make([]any, 0, c.Len())
	for _, m := range c.Members() {
		tags = append(tags, m.Tag())
		switch x := m.(type) {
		case *node.Document:
			vals = append(vals, PackDocument(x))
		case *node.Collection:
			vals = append(vals, PackCollection(x))
		}
	}
	return yaml.MapSlice{{Key: c.Tag(), Value: []any{tags, vals}}}
}

// MarshalPacked renders a document's packed form as JSON or YAML.
func MarshalPacked(d *node.Document, f format.Format) ([]byte, error) {
	return marshalMapSlice(PackDocument(d), f)
}

// MarshalPackedCollection renders a collection's packed form as JSON
// or YAML.
func MarshalPackedCollection(c *node.Collection, f format.Format) ([]byte, error) {
	return marshalMapSlice(PackCollection(c), f)
}

func marshalMapSlice(ms yaml.MapSlice, f format.Format) ([]byte, error) {
	switch f {
	case format.JSONFormat:
		buf := bytes.NewBuffer(nil)
		if err := writeJSON(buf, ms); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case format.YAMLFormat:
		return yaml.Marshal(ms)
	default:
		return nil, fmt.Errorf("%w: packed form has no %s rendering", ErrEncoding, f)
	}
}

// writeJSON renders a MapSlice as a JSON object preserving key order,
// which encoding/json's maps cannot do.
func writeJSON(buf *bytes.Buffer, v any) error {
	switch x := v.(type) {
	case yaml.MapSlice:
		buf.WriteByte('{')
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(fmt.Sprintf("%v", item.Key))
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, item.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(d)
		return nil
	}
}

func anyStrings(ss []string) []any {
	res := make([]any, len(ss))
	for i, s := range ss {
		res[i] = s
	}
	return res
}
