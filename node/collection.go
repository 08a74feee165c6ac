package node

import (
	"fmt"
	"slices"
)

// Collection is an ordered, tag-keyed collection of documents and
// nested collections. It is the unit of directory persistence.
type Collection struct {
	tag    string
	parent *Collection
	list   list[Member]

	source       string
	pathOverride string
}

func NewCollection(tag string, members ...Member) *Collection {
	c := &Collection{tag: tag}
	c.list.owner = c
	c.Append(members...)
	return c
}

func (c *Collection) Kind() Kind        { return CollectionKind }
func (c *Collection) Tag() string       { return c.tag }
func (c *Collection) SetTag(tag string) { c.tag = tag }
func (c *Collection) Len() int          { return len(c.list.elems) }

func (c *Collection) Parent() (*Collection, error) {
	if c.parent == nil {
		return nil, fmt.Errorf("%w: collection %q", ErrNoParent, c.tag)
	}
	return c.parent, nil
}

func (c *Collection) Source() string     { return c.source }
func (c *Collection) SetSource(p string) { c.source = p }
func (c *Collection) Path() string       { return c.pathOverride }
func (c *Collection) SetPath(p string)   { c.pathOverride = p }

// Members returns the children in order. The slice is a copy; the
// members are live.
func (c *Collection) Members() []Member {
	return slices.Clone(c.list.elems)
}

// Documents returns the document children in order.
func (c *Collection) Documents() []*Document {
	var res []*Document
	for _, m := range c.list.elems {
		if d, ok := m.(*Document); ok {
			res = append(res, d)
		}
	}
	return res
}

// Collections returns the nested collection children in order.
func (c *Collection) Collections() []*Collection {
	var res []*Collection
	for _, m := range c.list.elems {
		if sub, ok := m.(*Collection); ok {
			res = append(res, sub)
		}
	}
	return res
}

func (c *Collection) Append(members ...Member) {
	for _, m := range members {
		c.list.add(m)
	}
}

func (c *Collection) At(i int) (Member, error)       { return c.list.at(i) }
func (c *Collection) Get(tag string) (Member, error) { return c.list.first(tag) }

// All returns a new collection, same tag, holding copies of every
// member matching tag in encounter order.
func (c *Collection) All(tag string) *Collection {
	out := NewCollection(c.tag)
	for _, m := range c.list.all(tag) {
		out.Append(m)
	}
	return out
}

func (c *Collection) Insert(i int, m Member) error { return c.list.insertAt(i, m) }

func (c *Collection) InsertAll(i int, other *Collection) error {
	return c.list.insertAt(i, slices.Clone(other.list.elems)...)
}

func (c *Collection) RemoveAt(i int) (Member, error)       { return c.list.removeAt(i) }
func (c *Collection) RemoveTag(tag string) (Member, error) { return c.list.removeTag(tag) }
func (c *Collection) Remove(m Member) (Member, error)      { return c.list.removeMatch(m) }
func (c *Collection) Pop() (Member, error)                 { return c.list.pop() }
func (c *Collection) IndexOf(m Member) (int, error)        { return c.list.indexOf(m) }
func (c *Collection) IndexOfTag(tag string) (int, error)   { return c.list.indexOfTag(tag) }
func (c *Collection) Contains(m Member) bool               { return c.list.contains(m) }
func (c *Collection) ContainsTag(tag string) bool          { return c.list.containsTag(tag) }
func (c *Collection) Count(tag string) int                 { return c.list.count(tag) }
func (c *Collection) Tags() []string                       { return c.list.tags() }

// Values returns the members in order; a collection child's value is
// the child itself.
func (c *Collection) Values() []Member { return c.Members() }

func (c *Collection) Combine(other *Collection) *Collection {
	out := c.Clone()
	out.Merge(other)
	return out
}

func (c *Collection) Merge(other *Collection) {
	c.list.combineFrom(&other.list)
}

func (c *Collection) Subtract(other *Collection) *Collection {
	out := c.Clone()
	out.Discard(other)
	return out
}

func (c *Collection) Discard(other *Collection) {
	c.list.subtract(&other.list)
}

func (c *Collection) Sort(ignoreCase bool) { c.list.sortByTag(ignoreCase) }
func (c *Collection) Reverse()             { c.list.reverse() }

func (c *Collection) Equal(other *Collection) bool {
	if other == nil {
		return false
	}
	return c.tag == other.tag && c.list.equalMultiset(&other.list)
}

// Clone returns a detached deep copy carrying the same persistence
// settings.
func (c *Collection) Clone() *Collection {
	out := NewCollection(c.tag)
	for _, m := range c.list.elems {
		out.list.add(m.cp())
	}
	out.source = c.source
	out.pathOverride = c.pathOverride
	return out
}

// PathPriority prefers the explicit override, then the source path,
// then the tag with the default extension appended when the tag does
// not already carry a recognized one.
func (c *Collection) PathPriority() string {
	return pathPriority(c.pathOverride, c.source, c.tag)
}

// ResolvePath composes PathPriority through the parent chain. A root
// collection resolves to its own PathPriority.
func (c *Collection) ResolvePath() string {
	return resolvePath(c.PathPriority(), c.parent)
}

func (c *Collection) eq(m Member) bool {
	other, ok := m.(*Collection)
	if !ok {
		return false
	}
	return c.Equal(other)
}

func (c *Collection) cp() Member        { return c.Clone() }
func (c *Collection) owned() bool       { return c.parent != nil }
func (c *Collection) attach(owner Item) { c.parent = owner.(*Collection) }
func (c *Collection) detach()           { c.parent = nil }
func (c *Collection) zero() bool        { return len(c.list.elems) == 0 }
func (c *Collection) member()           {}
