package encode

import (
	"testing"

	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

func TestPackDocumentShape(t *testing.T) {
	d := node.NewDocument("t",
		node.NewGroup("G", node.NewEntry("a", "1"), node.NewEntry("b", "2")))
	ms := PackDocument(d)
	if len(ms) != 1 {
		t.Fatalf("packed %d groups", len(ms))
	}
	if ms[0].Key != "G" {
		t.Errorf("key = %v", ms[0].Key)
	}
	pair := ms[0].Value.([]any)
	if len(pair) != 2 {
		t.Fatalf("pair len = %d", len(pair))
	}
	tags := pair[0].([]any)
	vals := pair[1].([]any)
	if len(tags) != 2 || tags[0] != "a" || tags[1] != "b" {
		t.Errorf("tags = %v", tags)
	}
	if vals[0] != "1" || vals[1] != "2" {
		t.Errorf("vals = %v", vals)
	}
}

func TestMarshalPackedRoundTrip(t *testing.T) {
	d := node.NewDocument("t",
		node.NewGroup("G", node.NewEntry("a", "1"), node.NewEntry("a", "2")),
		node.NewGroup("H"))
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		out, err := MarshalPacked(d, f)
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		back, err := parse.ParsePacked(out, "t")
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if !back.Equal(d) {
			t.Errorf("%s: round trip changed the document", f)
		}
	}
}

func TestMarshalPackedCXRFails(t *testing.T) {
	d := node.NewDocument("t")
	if _, err := MarshalPacked(d, format.CXRFormat); err == nil {
		t.Error("CXR has no packed rendering but MarshalPacked succeeded")
	}
}

func TestPackCollectionOuterShape(t *testing.T) {
	c := node.NewCollection("root",
		node.NewDocument("d", node.NewGroup("g", node.NewEntry("a", "1"))),
		node.NewCollection("sub"))
	ms := PackCollection(c)
	if len(ms) != 1 || ms[0].Key != "root" {
		t.Fatalf("outer shape = %v", ms)
	}
	pair := ms[0].Value.([]any)
	tags := pair[0].([]any)
	if len(tags) != 2 || tags[0] != "d" || tags[1] != "sub" {
		t.Errorf("member tags = %v", tags)
	}
	vals := pair[1].([]any)
	if len(vals) != 2 {
		t.Fatalf("member vals len = %d", len(vals))
	}
}

func TestMarshalPackedCollectionJSON(t *testing.T) {
	c := node.NewCollection("root",
		node.NewDocument("d", node.NewGroup("g", node.NewEntry("a", "1"))))
	out, err := MarshalPackedCollection(c, format.JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"root":[["d"],[{"g":[["a"],["1"]]}]]}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}
