package cxr

import (
	"slices"
	"testing"
)

func TestMergePatch(t *testing.T) {
	doc, _ := ParseString("#g\na: 1\n\n#h\nx: y\n\n", "t")
	patched, err := MergePatch(doc, []byte(`{"g": [["a"], ["2"]]}`))
	if err != nil {
		t.Fatal(err)
	}
	g, err := patched.Get("g")
	if err != nil {
		t.Fatal(err)
	}
	e, _ := g.Get("a")
	if e.Value() != "2" {
		t.Errorf("a = %q, want 2", e.Value())
	}
	if !patched.ContainsTag("h") {
		t.Error("merge patch dropped an untouched group")
	}
	// input untouched
	og, _ := doc.Get("g")
	oe, _ := og.Get("a")
	if oe.Value() != "1" {
		t.Error("MergePatch mutated its input")
	}
}

func TestMergePatchRemovesGroup(t *testing.T) {
	doc, _ := ParseString("#g\na: 1\n\n#h\nx: y\n\n", "t")
	patched, err := MergePatch(doc, []byte(`{"h": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if patched.ContainsTag("h") {
		t.Error("null merge patch did not remove the group")
	}
	if !patched.ContainsTag("g") {
		t.Error("sibling group removed")
	}
}

func TestApplyPatch(t *testing.T) {
	doc, _ := ParseString("#g\na: 1\nb: 2\n\n", "t")
	patch := []byte(`[
		{"op": "replace", "path": "/g/1/1", "value": "9"},
		{"op": "add", "path": "/g/0/-", "value": "c"},
		{"op": "add", "path": "/g/1/-", "value": "3"}
	]`)
	patched, err := ApplyPatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	g, err := patched.Get("g")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(g.Tags(), []string{"a", "b", "c"}) {
		t.Errorf("tags = %v", g.Tags())
	}
	if !slices.Equal(g.Values(), []string{"1", "9", "3"}) {
		t.Errorf("values = %v", g.Values())
	}
}

func TestApplyPatchBad(t *testing.T) {
	doc, _ := ParseString("#g\na: 1\n\n", "t")
	if _, err := ApplyPatch(doc, []byte(`[{"op": "replace", "path": "/missing/0/0", "value": "x"}]`)); err == nil {
		t.Error("patching a missing path did not fail")
	}
}

func TestPatchKeepsPersistence(t *testing.T) {
	doc, _ := ParseString("#g\na: 1\n\n", "notes.cxr")
	doc.SetSource("/data/notes.cxr")
	patched, err := MergePatch(doc, []byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if patched.Tag() != "notes.cxr" || patched.Source() != "/data/notes.cxr" {
		t.Errorf("persistence lost: tag=%q source=%q", patched.Tag(), patched.Source())
	}
}
