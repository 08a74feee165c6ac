package encode

import (
	"fmt"
	"io"

	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
)

type EncState struct {
	format format.Format

	Color func(node.Kind, ColorAttr, string) string
}

// Encode writes v in CXR text form, or in a packed form when the
// format option selects JSON or YAML. v may be an Entry, Group,
// Document, or Collection.
//
// In CXR form a group is "#tag" followed by one line per entry; a
// document is its groups each followed by a blank line; a collection
// emits a "/ tag" header line and a blank line before each child's
// own serialization, recursively.
func Encode(v node.Item, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.format.IsCXR() {
		return encodePacked(v, w, es)
	}
	switch x := v.(type) {
	case *node.Entry:
		return writeString(w, entryLine(x, es)+"\n")
	case *node.Group:
		return encodeGroup(x, w, es)
	case *node.Document:
		return encodeDocument(x, w, es)
	case *node.Collection:
		return encodeCollection(x, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %T", ErrEncoding, v)
	}
}

func encodeGroup(g *node.Group, w io.Writer, es *EncState) error {
	header := "#" + g.Tag()
	if es.Color != nil {
		header = es.Color(node.GroupKind, HeaderColor, header)
	}
	if err := writeString(w, header+"\n"); err != nil {
		return err
	}
	for _, e := range g.Entries() {
		if err := writeString(w, entryLine(e, es)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeDocument(d *node.Document, w io.Writer, es *EncState) error {
	for _, g := range d.Groups() {
		if err := encodeGroup(g, w, es); err != nil {
			return err
		}
		// blank line closes the group for the parser
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func encodeCollection(c *node.Collection, w io.Writer, es *EncState) error {
	for _, m := range c.Members() {
		header := "/ " + m.Tag()
		if es.Color != nil {
			header = es.Color(node.CollectionKind, HeaderColor, header)
		}
		if err := writeString(w, header+"\n\n"); err != nil {
			return err
		}
		var err error
		switch x := m.(type) {
		case *node.Document:
			err = encodeDocument(x, w, es)
		case *node.Collection:
			err = encodeCollection(x, w, es)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func encodePacked(v node.Item, w io.Writer, es *EncState) error {
	switch x := v.(type) {
	case *node.Document:
		d, err := MarshalPacked(x, es.format)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case *node.Collection:
		d, err := MarshalPackedCollection(x, es.format)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: cannot encode %T in %s", ErrEncoding, v, es.format)
	}
}

func entryLine(e *node.Entry, es *EncState) string {
	if es.Color == nil {
		return e.String()
	}
	tag := es.Color(node.EntryKind, TagColor, e.Tag())
	if e.Value() == "" {
		return tag
	}
	return tag + es.Color(node.EntryKind, SepColor, ": ") +
		es.Color(node.EntryKind, ValueColor, e.Value())
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}
