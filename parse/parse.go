// Package parse provides CXR parsing support.
package parse

import (
	"strings"

	"github.com/cxr-format/go-cxr/node"
)

// Parse decodes CXR text into a document with the given tag.
//
// The grammar is a two-state line machine. Outside a group, a line
// starting with '#' opens a group tagged with the rest of the line;
// every other non-group line is ignored. Inside a group, a blank line
// closes it, a line starting with '/' is a comment, and any other
// line is an entry: text up to the first ':' is the tag, the rest is
// the value, both trimmed. Comment lines are only honored inside an
// open group; between groups they fall under the ignore-everything
// rule. A group still open at end of input is kept, not dropped.
//
// The grammar is permissive: Parse does not fail on any input. The
// error return exists for interface symmetry with ParsePacked.
func Parse(d []byte, tag string) (*node.Document, error) {
	return ParseLines(splitLines(d), tag), nil
}

// ParseLines runs the line machine over pre-split input.
func ParseLines(lines []string, tag string) *node.Document {
	doc := node.NewDocument(tag)
	var open *node.Group
	for _, line := range lines {
		if open == nil {
			if line == "" {
				continue
			}
			if line[0] == '#' {
				open = node.NewGroup(line[1:])
			}
			// anything else outside a group is ignored,
			// comment lines included
			continue
		}
		switch {
		case line == "":
			doc.Append(open)
			open = nil
		case line[0] == '/':
			// comment
		default:
			tag, val, found := strings.Cut(line, ":")
			if !found {
				val = ""
			}
			open.Append(node.NewEntry(strings.TrimSpace(tag), strings.TrimSpace(val)))
		}
	}
	if open != nil {
		// no trailing blank line: the last section still counts
		doc.Append(open)
	}
	return doc
}

func splitLines(d []byte) []string {
	lines := strings.Split(string(d), "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSuffix(ln, "\r")
	}
	return lines
}
