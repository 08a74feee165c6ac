package node

import (
	"errors"
	"slices"
	"testing"
)

func mkDoc(tag string, groups ...*Group) *Document {
	return NewDocument(tag, groups...)
}

func TestDocumentAppendCopiesOwned(t *testing.T) {
	g := mkGroup("a", "1")
	d1 := mkDoc("d1", g)
	d2 := mkDoc("d2", g)
	g1, _ := d1.At(0)
	g2, _ := d2.At(0)
	if g1 == g2 {
		t.Fatal("two documents share one group")
	}
	e, _ := g2.Get("a")
	e.SetValue("9")
	e1, _ := g1.Get("a")
	if e1.Value() != "1" {
		t.Error("mutation leaked across owners")
	}
}

func TestDocumentGetAll(t *testing.T) {
	d := mkDoc("d",
		NewGroup("g", NewEntry("a", "1")),
		NewGroup("h", NewEntry("b", "2")),
		NewGroup("g", NewEntry("c", "3")))
	g, err := d.Get("g")
	if err != nil {
		t.Fatal(err)
	}
	if !g.ContainsTag("a") {
		t.Error("Get returned the wrong group")
	}
	all := d.All("g")
	if all.Len() != 2 {
		t.Fatalf("All(g) has %d groups, want 2", all.Len())
	}
	g0, _ := all.At(0)
	g0.Append(NewEntry("extra", ""))
	orig, _ := d.Get("g")
	if orig.ContainsTag("extra") {
		t.Error("All leaked references into the source document")
	}
}

func TestDocumentEqualIgnoresOrder(t *testing.T) {
	a := mkDoc("d", mkGroup("x", "1"), NewGroup("h", NewEntry("y", "2")))
	b := mkDoc("d", NewGroup("h", NewEntry("y", "2")), mkGroup("x", "1"))
	if !a.Equal(b) {
		t.Error("reordered documents not equal")
	}
	c := mkDoc("other", mkGroup("x", "1"), NewGroup("h", NewEntry("y", "2")))
	if a.Equal(c) {
		t.Error("documents with different tags reported equal")
	}
}

func TestDocumentCombineSubtract(t *testing.T) {
	a := mkDoc("d", mkGroup("x", "1"))
	b := mkDoc("d", mkGroup("x", "1"), mkGroup("y", "2"))
	c := a.Combine(b)
	if c.Len() != 3 {
		t.Fatalf("Combine len = %d, want 3", c.Len())
	}
	if c.Count("g") != 3 {
		t.Errorf("Count(g) = %d, want 3", c.Count("g"))
	}
	s := c.Subtract(b)
	if !s.Equal(a) {
		t.Error("Combine then Subtract did not restore the original")
	}
	// empty group is a delete-by-tag marker
	s2 := b.Subtract(mkDoc("d", NewGroup("g")))
	if s2.Len() != 1 {
		t.Errorf("delete-by-tag left %d groups, want 1", s2.Len())
	}
}

func TestDocumentValues(t *testing.T) {
	d := mkDoc("d",
		NewGroup("g", NewEntry("a", "1"), NewEntry("b", "2")),
		NewGroup("h", NewEntry("c", "3")))
	vals := d.Values()
	if len(vals) != 2 {
		t.Fatalf("Values len = %d", len(vals))
	}
	if !slices.Equal(vals[0], []string{"1", "2"}) || !slices.Equal(vals[1], []string{"3"}) {
		t.Errorf("Values = %v", vals)
	}
}

func TestDocumentParent(t *testing.T) {
	d := NewDocument("d.cxr")
	if _, err := d.Parent(); !errors.Is(err, ErrNoParent) {
		t.Errorf("root Parent() = %v, want ErrNoParent", err)
	}
	c := NewCollection("c", d)
	child, _ := c.Get("d.cxr")
	p, err := child.(*Document).Parent()
	if err != nil {
		t.Fatal(err)
	}
	if p != c {
		t.Error("parent is not the containing collection")
	}
}

func TestDocumentClonePersistence(t *testing.T) {
	d := NewDocument("d")
	d.SetSource("src.cxr")
	d.SetPath("/tmp/override.cxr")
	c := d.Clone()
	if c.Source() != "src.cxr" || c.Path() != "/tmp/override.cxr" {
		t.Error("clone dropped persistence settings")
	}
}
