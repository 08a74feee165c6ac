// Package dirstore maps the node model to the filesystem: a
// collection is a directory, a document is a file with a recognized
// extension.
package dirstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxr-format/go-cxr/debug"
	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

// Open loads path into the node model. A directory becomes a
// collection tagged with its base name, recursing into subdirectories
// that carry a collection extension and parsing recognized files as
// documents. Entries that cannot be loaded are skipped with a warning
// so a partially unreadable tree still loads. A file becomes a
// document, parsed by the format its extension selects; parse errors
// on a directly opened file are fatal.
func Open(path string, opts ...Option) (node.Member, error) {
	o := mkOpts(opts)
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	if st.IsDir() {
		c, err := openCollection(path, o)
		if err != nil {
			return nil, err
		}
		c.SetSource(path)
		return c, nil
	}
	if !format.IsFile(path) {
		return nil, fmt.Errorf("%w: %q", format.ErrBadFormat, path)
	}
	return OpenDocument(path)
}

// OpenDocument loads a single file as a document. The tag is the file
// base name, extension included, so path resolution round-trips.
func OpenDocument(path string) (*node.Document, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	tag := filepath.Base(path)
	var doc *node.Document
	if f.IsCXR() {
		doc, err = parse.Parse(d, tag)
	} else {
		doc, err = parse.ParsePacked(d, tag)
	}
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	doc.SetMode(f)
	doc.SetSource(path)
	return doc, nil
}

func openCollection(path string, o *openOpts) (*node.Collection, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("could not scan %q: %w", path, err)
	}
	c := node.NewCollection(filepath.Base(path))
	for _, de := range entries {
		name := de.Name()
		full := filepath.Join(path, name)
		if de.IsDir() {
			if !format.IsDir(name) {
				o.warn(full, fmt.Errorf("not a collection directory"))
				continue
			}
			sub, err := openCollection(full, o)
			if err != nil {
				o.warn(full, err)
				continue
			}
			// children carry base names so resolution
			// composes through ancestors
			sub.SetSource(name)
			c.Append(sub)
			continue
		}
		if !format.IsFile(name) {
			o.warn(full, fmt.Errorf("unrecognized extension"))
			continue
		}
		doc, err := OpenDocument(full)
		if err != nil {
			o.warn(full, err)
			continue
		}
		doc.SetSource(name)
		c.Append(doc)
	}
	if debug.Open() {
		debug.Logf("opened %q: %d members\n", path, c.Len())
	}
	return c, nil
}
