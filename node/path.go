package node

import (
	"path/filepath"
	"slices"

	"github.com/cxr-format/go-cxr/format"
)

func pathPriority(override, source, tag string) string {
	if override != "" {
		return override
	}
	if source != "" {
		return source
	}
	if tag == "" {
		return ""
	}
	if format.IsFile(tag) {
		return tag
	}
	return tag + format.DefaultExtension
}

// resolvePath joins the parent chain's path priorities root-first.
// The walk is iterative so deep trees cannot overflow the stack, and
// nothing is mutated.
func resolvePath(own string, parent *Collection) string {
	parts := []string{own}
	for c := parent; c != nil; c = c.parent {
		parts = append(parts, c.PathPriority())
	}
	slices.Reverse(parts)
	return filepath.Join(parts...)
}
