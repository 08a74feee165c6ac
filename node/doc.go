// Package node provides the data model for CXR documents: a
// four-level tree of ordered, tag-keyed containers.
//
// # Levels
//
//   - Entry: leaf tag/value pair
//   - Group: ordered tag-keyed collection of entries
//   - Document: ordered tag-keyed collection of groups; one file
//   - Collection: ordered tag-keyed collection of documents and
//     nested collections; one directory
//
// A Collection's children are modeled by the closed Member interface,
// implemented only by *Document and *Collection, so kind mismatches
// are compile-time errors rather than runtime checks.
//
// # Ownership
//
// Every node has at most one owner. Appending or inserting a node
// that already has an owner deep-copies it first; an unowned node is
// attached directly and re-parented. No subtree is ever aliased by
// two live containers.
//
// # Order and equality
//
// Child order is significant for serialization and positional access
// but not for equality. Two containers are equal iff they carry the
// same tag and their children match one-to-one as multisets: each
// child matched at most once, counts included.
//
// # Combination
//
// Combine/Merge are purely additive. Subtract/Discard are best-effort
// set difference: an element carrying no value removes the first
// child with its tag, any other element removes the first structural
// match, and absent targets are silently skipped.
//
// # Paths
//
// Documents and collections remember where they were loaded from and
// may carry a save-path override. PathPriority picks override, then
// source, then tag plus the default extension; ResolvePath composes
// path priorities through the parent chain.
package node
