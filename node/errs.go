package node

import "errors"

var (
	// ErrLookup reports a tag or structural match that was not found.
	ErrLookup = errors.New("lookup error")

	// ErrIndex reports an out-of-range positional access.
	ErrIndex = errors.New("index out of range")

	// ErrNoParent reports a parent access on a root node.
	ErrNoParent = errors.New("no parent")

	// ErrNoPath reports a path resolution with nothing to resolve to.
	ErrNoPath = errors.New("no path")
)
