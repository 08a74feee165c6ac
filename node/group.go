package node

import (
	"fmt"
	"slices"
)

// Group is an ordered, tag-keyed collection of entries. Tags need not
// be unique: lookups return the first match unless all matches are
// requested.
type Group struct {
	tag    string
	parent *Document
	list   list[*Entry]
}

func NewGroup(tag string, entries ...*Entry) *Group {
	g := &Group{tag: tag}
	g.list.owner = g
	g.Append(entries...)
	return g
}

func (g *Group) Kind() Kind        { return GroupKind }
func (g *Group) Tag() string       { return g.tag }
func (g *Group) SetTag(tag string) { g.tag = tag }
func (g *Group) Len() int          { return len(g.list.elems) }

func (g *Group) Parent() (*Document, error) {
	if g.parent == nil {
		return nil, fmt.Errorf("%w: group %q", ErrNoParent, g.tag)
	}
	return g.parent, nil
}

// Entries returns the children in order. The slice is a copy; the
// entries are live.
func (g *Group) Entries() []*Entry {
	return slices.Clone(g.list.elems)
}

// Append attaches each entry, deep-copying any that already have an
// owner.
func (g *Group) Append(entries ...*Entry) {
	for _, e := range entries {
		g.list.add(e)
	}
}

func (g *Group) At(i int) (*Entry, error) { return g.list.at(i) }

// Get returns the first entry with the given tag.
func (g *Group) Get(tag string) (*Entry, error) { return g.list.first(tag) }

// All returns a new group, same tag, holding copies of every entry
// matching tag in encounter order.
func (g *Group) All(tag string) *Group {
	out := NewGroup(g.tag)
	for _, e := range g.list.all(tag) {
		out.Append(e)
	}
	return out
}

func (g *Group) Insert(i int, e *Entry) error { return g.list.insertAt(i, e) }

// InsertAll splices copies of other's entries at position i.
func (g *Group) InsertAll(i int, other *Group) error {
	return g.list.insertAt(i, slices.Clone(other.list.elems)...)
}

func (g *Group) RemoveAt(i int) (*Entry, error)        { return g.list.removeAt(i) }
func (g *Group) RemoveTag(tag string) (*Entry, error)  { return g.list.removeTag(tag) }
func (g *Group) Remove(e *Entry) (*Entry, error)       { return g.list.removeMatch(e) }
func (g *Group) Pop() (*Entry, error)                  { return g.list.pop() }
func (g *Group) IndexOf(e *Entry) (int, error)         { return g.list.indexOf(e) }
func (g *Group) IndexOfTag(tag string) (int, error)    { return g.list.indexOfTag(tag) }
func (g *Group) Contains(e *Entry) bool                { return g.list.contains(e) }
func (g *Group) ContainsTag(tag string) bool           { return g.list.containsTag(tag) }
func (g *Group) Count(tag string) int                  { return g.list.count(tag) }
func (g *Group) Tags() []string                        { return g.list.tags() }

// Values returns every entry value in order, empty string for
// valueless entries.
func (g *Group) Values() []string {
	res := make([]string, len(g.list.elems))
	for i, e := range g.list.elems {
		res[i] = e.Value()
	}
	return res
}

// Combine returns a new group holding g's entries followed by copies
// of other's. Neither operand is mutated.
func (g *Group) Combine(other *Group) *Group {
	out := g.Clone()
	out.Merge(other)
	return out
}

// Merge appends copies of other's entries in place.
func (g *Group) Merge(other *Group) {
	g.list.combineFrom(&other.list)
}

// Subtract returns a copy of g with other's entries removed
// best-effort: valueless entries delete by tag, the rest by
// structural match, and absent targets are ignored.
func (g *Group) Subtract(other *Group) *Group {
	out := g.Clone()
	out.Discard(other)
	return out
}

// Discard is the in-place form of Subtract.
func (g *Group) Discard(other *Group) {
	g.list.subtract(&other.list)
}

func (g *Group) Sort(ignoreCase bool) { g.list.sortByTag(ignoreCase) }
func (g *Group) Reverse()             { g.list.reverse() }

// Equal reports multiset equality: same tag, same entries matched
// one-to-one, order ignored.
func (g *Group) Equal(other *Group) bool {
	if other == nil {
		return false
	}
	return g.tag == other.tag && g.list.equalMultiset(&other.list)
}

// Clone returns a detached deep copy.
func (g *Group) Clone() *Group {
	out := NewGroup(g.tag)
	for _, e := range g.list.elems {
		out.list.add(e.Clone())
	}
	return out
}

func (g *Group) eq(other *Group) bool { return g.Equal(other) }
func (g *Group) cp() *Group           { return g.Clone() }
func (g *Group) owned() bool          { return g.parent != nil }
func (g *Group) attach(owner Item)    { g.parent = owner.(*Document) }
func (g *Group) detach()              { g.parent = nil }
func (g *Group) zero() bool           { return len(g.list.elems) == 0 }
