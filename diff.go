package cxr

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cxr-format/go-cxr/node"
)

// Diff returns a line diff between the CXR encodings of two
// documents: removed lines prefixed "- ", added lines "+ ", common
// lines "  ". An empty result means the encodings are identical.
func Diff(from, to *node.Document) (string, error) {
	a, err := EncodeToString(from)
	if err != nil {
		return "", err
	}
	b, err := EncodeToString(to)
	if err != nil {
		return "", err
	}
	if a == b {
		return "", nil
	}
	dmp := diffpatch.New()
	fromRunes, toRunes, lines := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffMainRunes(fromRunes, toRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(ln)
			if !strings.HasSuffix(ln, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}
