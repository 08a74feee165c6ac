package cxr

import (
	"strings"
	"testing"
)

func TestDiffEqual(t *testing.T) {
	a, _ := ParseString("#g\na: 1\n\n", "t")
	b, _ := ParseString("#g\na: 1\n\n", "t")
	res, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if res != "" {
		t.Errorf("diff of equal documents = %q", res)
	}
}

func TestDiffChangedValue(t *testing.T) {
	a, _ := ParseString("#g\na: 1\nb: 2\n\n", "t")
	b, _ := ParseString("#g\na: 1\nb: 3\n\n", "t")
	res, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res, "- b: 2\n") {
		t.Errorf("missing removal in:\n%s", res)
	}
	if !strings.Contains(res, "+ b: 3\n") {
		t.Errorf("missing addition in:\n%s", res)
	}
	if !strings.Contains(res, "  a: 1\n") {
		t.Errorf("missing common line in:\n%s", res)
	}
}

func TestDiffAddedGroup(t *testing.T) {
	a, _ := ParseString("#g\na: 1\n\n", "t")
	b, _ := ParseString("#g\na: 1\n\n#h\nx: y\n\n", "t")
	res, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(res, "+ #h\n") || !strings.Contains(res, "+ x: y\n") {
		t.Errorf("missing added group in:\n%s", res)
	}
	if strings.Contains(res, "- ") {
		t.Errorf("pure addition produced removals:\n%s", res)
	}
}
