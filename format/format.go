package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	CXRFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

// DefaultExtension is appended to tags lacking a recognized
// extension when computing a save path.
const DefaultExtension = ".cxr"

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":    CXRFormat,
		"cxr":  CXRFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case CXRFormat:
		return []byte("cxr"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsCXR() bool  { return f == CXRFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case CXRFormat:
		return ".cxr"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{CXRFormat, JSONFormat, YAMLFormat}
}

// FileExtensions lists the extensions recognized as document files.
// The set is configuration, not grammar: adding an extension here is
// all it takes for directory scans to pick the files up.
func FileExtensions() []string {
	return []string{".cxr", ".txt", ".json", ".yaml", ".yml"}
}

// DirExtensions lists the extensions recognized as collection
// directories during a recursive directory scan.
func DirExtensions() []string {
	return []string{".cxr"}
}

// IsFile reports whether path has a recognized document extension.
func IsFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FileExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// IsDir reports whether name has a recognized collection directory extension.
func IsDir(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range DirExtensions() {
		if ext == e {
			return true
		}
	}
	return false
}

// FromPath selects the format for a file by its extension.
func FromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cxr", ".txt":
		return CXRFormat, nil
	case ".json":
		return JSONFormat, nil
	case ".yaml", ".yml":
		return YAMLFormat, nil
	default:
		return 0, fmt.Errorf("%w: unrecognized extension in %q", ErrBadFormat, path)
	}
}
