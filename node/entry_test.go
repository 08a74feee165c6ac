package node

import "testing"

func TestEntryString(t *testing.T) {
	tests := []struct {
		tag, value, want string
	}{
		{"key", "value", "key: value"},
		{"flag", "", "flag"},
		{"a", "1", "a: 1"},
	}
	for _, tt := range tests {
		e := NewEntry(tt.tag, tt.value)
		if got := e.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEntrySet(t *testing.T) {
	e := NewEntry("a", "1")
	e.Set("b", "")
	if e.Tag() != "b" || e.Value() != "1" {
		t.Errorf("Set(b, \"\") = %q/%q, want b/1", e.Tag(), e.Value())
	}
	e.Set("", "2")
	if e.Tag() != "b" || e.Value() != "2" {
		t.Errorf("Set(\"\", 2) = %q/%q, want b/2", e.Tag(), e.Value())
	}
}

func TestEntryEqual(t *testing.T) {
	a := NewEntry("k", "v")
	if !a.Equal(NewEntry("k", "v")) {
		t.Error("identical entries not equal")
	}
	if a.Equal(NewEntry("k", "w")) {
		t.Error("different values reported equal")
	}
	if a.Equal(NewEntry("j", "v")) {
		t.Error("different tags reported equal")
	}
	if a.Equal(nil) {
		t.Error("nil reported equal")
	}
}

func TestEntryParent(t *testing.T) {
	e := NewEntry("k", "v")
	if _, err := e.Parent(); err == nil {
		t.Error("detached entry has a parent")
	}
	g := NewGroup("g", e)
	got, err := g.Get("k")
	if err != nil {
		t.Fatal(err)
	}
	p, err := got.Parent()
	if err != nil {
		t.Fatal(err)
	}
	if p != g {
		t.Error("parent is not the containing group")
	}
}

func TestEntryCloneDetaches(t *testing.T) {
	g := NewGroup("g", NewEntry("k", "v"))
	e, _ := g.Get("k")
	c := e.Clone()
	if _, err := c.Parent(); err == nil {
		t.Error("clone kept the parent")
	}
	if !c.Equal(e) {
		t.Error("clone not equal to original")
	}
}
