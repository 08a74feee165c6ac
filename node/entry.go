package node

import "fmt"

// Entry is the leaf node: a tag/value pair.
type Entry struct {
	tag    string
	value  string
	parent *Group
}

func NewEntry(tag, value string) *Entry {
	return &Entry{tag: tag, value: value}
}

func (e *Entry) Kind() Kind        { return EntryKind }
func (e *Entry) Tag() string       { return e.tag }
func (e *Entry) SetTag(tag string) { e.tag = tag }
func (e *Entry) Value() string     { return e.value }
func (e *Entry) SetValue(v string) { e.value = v }

// Set updates tag and value together; empty arguments leave the
// corresponding field unchanged.
func (e *Entry) Set(tag, value string) {
	if tag != "" {
		e.tag = tag
	}
	if value != "" {
		e.value = value
	}
}

func (e *Entry) Parent() (*Group, error) {
	if e.parent == nil {
		return nil, fmt.Errorf("%w: entry %q", ErrNoParent, e.tag)
	}
	return e.parent, nil
}

func (e *Entry) Clone() *Entry {
	return &Entry{tag: e.tag, value: e.value}
}

func (e *Entry) Equal(other *Entry) bool {
	if other == nil {
		return false
	}
	return e.tag == other.tag && e.value == other.value
}

func (e *Entry) String() string {
	if e.value == "" {
		return e.tag
	}
	return e.tag + ": " + e.value
}

func (e *Entry) eq(other *Entry) bool { return e.Equal(other) }
func (e *Entry) cp() *Entry           { return e.Clone() }
func (e *Entry) owned() bool          { return e.parent != nil }
func (e *Entry) attach(owner Item)    { e.parent = owner.(*Group) }
func (e *Entry) detach()              { e.parent = nil }
func (e *Entry) zero() bool           { return e.value == "" }
