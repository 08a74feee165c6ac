package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"c", CXRFormat},
		{"cxr", CXRFormat},
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("ParseFormat(xml) = %v, want ErrBadFormat", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Format
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != f {
			t.Errorf("text round trip %s -> %s", f, back)
		}
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.cxr", CXRFormat},
		{"a.txt", CXRFormat},
		{"a.JSON", JSONFormat},
		{"dir/a.yaml", YAMLFormat},
		{"a.yml", YAMLFormat},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if err != nil {
			t.Errorf("FromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
	if _, err := FromPath("a.go"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("FromPath(a.go) = %v, want ErrBadFormat", err)
	}
}

func TestIsFileIsDir(t *testing.T) {
	if !IsFile("notes.cxr") || !IsFile("x.yml") || IsFile("x.go") || IsFile("plain") {
		t.Error("IsFile wrong")
	}
	if !IsDir("sub.cxr") || IsDir("sub.json") || IsDir("sub") {
		t.Error("IsDir wrong")
	}
}

func TestSuffix(t *testing.T) {
	if CXRFormat.Suffix() != ".cxr" || JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Error("Suffix wrong")
	}
}
