package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/cxr-format/go-cxr/format"
	"github.com/cxr-format/go-cxr/node"
	"github.com/cxr-format/go-cxr/parse"
)

func testDoc() *node.Document {
	return node.NewDocument("t",
		node.NewGroup("Header",
			node.NewEntry("key", "value"),
			node.NewEntry("flag", "")),
		node.NewGroup("Second",
			node.NewEntry("a", "1")))
}

func TestEncodeEntry(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(node.NewEntry("k", "v"), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "k: v\n" {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	if err := Encode(node.NewEntry("flag", ""), &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "flag\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeGroup(t *testing.T) {
	g := node.NewGroup("g", node.NewEntry("a", "1"), node.NewEntry("b", ""))
	var buf bytes.Buffer
	if err := Encode(g, &buf); err != nil {
		t.Fatal(err)
	}
	want := "#g\na: 1\nb\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(testDoc(), &buf); err != nil {
		t.Fatal(err)
	}
	want := "#Header\nkey: value\nflag\n\n#Second\na: 1\n\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	d := testDoc()
	var buf bytes.Buffer
	if err := Encode(d, &buf); err != nil {
		t.Fatal(err)
	}
	back, err := parse.Parse(buf.Bytes(), "t")
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed the document:\n%s", buf.String())
	}
}

func TestEncodeCollection(t *testing.T) {
	c := node.NewCollection("root",
		node.NewDocument("a.cxr", node.NewGroup("g", node.NewEntry("k", "v"))),
		node.NewCollection("sub"))
	var buf bytes.Buffer
	if err := Encode(c, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "/ a.cxr\n") {
		t.Errorf("missing document header in %q", out)
	}
	if !strings.Contains(out, "/ sub\n") {
		t.Errorf("missing collection header in %q", out)
	}
	if !strings.Contains(out, "#g\nk: v\n") {
		t.Errorf("missing group body in %q", out)
	}
}

func TestEncodeJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(testDoc(), &buf, EncodeFormat(format.JSONFormat))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"Header":[["key","flag"],["value",""]],"Second":[["a"],["1"]]}`
	if buf.String() != want {
		t.Errorf("got %s, want %s", buf.String(), want)
	}
}

func TestEncodePackedEntryFails(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(node.NewEntry("k", "v"), &buf, EncodeFormat(format.JSONFormat))
	if err == nil {
		t.Error("packing a bare entry did not fail")
	}
}

func TestEncodeWithColors(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	var buf bytes.Buffer
	err := Encode(testDoc(), &buf, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("color encoding produced no escape sequences")
	}
	if !strings.Contains(out, "value") {
		t.Error("colored output lost the value text")
	}
}
