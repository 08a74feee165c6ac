package dirstore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cxr-format/go-cxr/debug"
	"github.com/cxr-format/go-cxr/encode"
	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
)

// Save writes m to its resolved path: a document becomes a file in
// the format its path extension (or mode) selects, a collection
// becomes a directory with each member saved inside it.
func Save(m node.Member) error {
	switch x := m.(type) {
	case *node.Document:
		return SaveDocument(x)
	case *node.Collection:
		return SaveCollection(x)
	default:
		return fmt.Errorf("cannot save %T", m)
	}
}

func SaveDocument(d *node.Document) error {
	p := d.ResolvePath()
	if p == "" {
		return fmt.Errorf("%w: document %q", node.ErrNoPath, d.Tag())
	}
	f, err := format.FromPath(p)
	if err != nil {
		f = d.Mode()
	}
	if dir := filepath.Dir(p); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	out, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(out)
	if err := encode.Encode(d, bw, encode.EncodeFormat(f)); err != nil {
		out.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return err
	}
	if debug.Save() {
		debug.Logf("saved document %q to %s\n", d.Tag(), p)
	}
	return out.Close()
}

func SaveCollection(c *node.Collection) error {
	p := c.ResolvePath()
	if p == "" {
		return fmt.Errorf("%w: collection %q", node.ErrNoPath, c.Tag())
	}
	st, err := os.Stat(p)
	switch {
	case err == nil && !st.IsDir():
		return fmt.Errorf("%s exists but is not a directory", p)
	case err != nil && !os.IsNotExist(err):
		return err
	default:
		if err := os.MkdirAll(p, 0755); err != nil {
			return err
		}
	}
	for _, m := range c.Members() {
		if err := Save(m); err != nil {
			return err
		}
	}
	if debug.Save() {
		debug.Logf("saved collection %q to %s\n", c.Tag(), p)
	}
	return nil
}
