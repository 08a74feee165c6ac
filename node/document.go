package node

import (
	"fmt"
	"slices"

	"github.com/cxr-format/go-cxr/format"
)

// Document is an ordered, tag-keyed collection of groups. It is the
// unit of file persistence: it remembers where it was loaded from,
// where it should be saved, and in which format.
type Document struct {
	tag    string
	parent *Collection
	list   list[*Group]

	source       string
	pathOverride string
	mode         format.Format
}

func NewDocument(tag string, groups ...*Group) *Document {
	d := &Document{tag: tag}
	d.list.owner = d
	d.Append(groups...)
	return d
}

func (d *Document) Kind() Kind        { return DocumentKind }
func (d *Document) Tag() string       { return d.tag }
func (d *Document) SetTag(tag string) { d.tag = tag }
func (d *Document) Len() int          { return len(d.list.elems) }

func (d *Document) Parent() (*Collection, error) {
	if d.parent == nil {
		return nil, fmt.Errorf("%w: document %q", ErrNoParent, d.tag)
	}
	return d.parent, nil
}

func (d *Document) Source() string        { return d.source }
func (d *Document) SetSource(p string)    { d.source = p }
func (d *Document) Path() string          { return d.pathOverride }
func (d *Document) SetPath(p string)      { d.pathOverride = p }
func (d *Document) Mode() format.Format   { return d.mode }
func (d *Document) SetMode(f format.Format) { d.mode = f }

// Groups returns the children in order. The slice is a copy; the
// groups are live.
func (d *Document) Groups() []*Group {
	return slices.Clone(d.list.elems)
}

func (d *Document) Append(groups ...*Group) {
	for _, g := range groups {
		d.list.add(g)
	}
}

func (d *Document) At(i int) (*Group, error)      { return d.list.at(i) }
func (d *Document) Get(tag string) (*Group, error) { return d.list.first(tag) }

// All returns a new document, same tag, holding copies of every group
// matching tag in encounter order.
func (d *Document) All(tag string) *Document {
	out := NewDocument(d.tag)
	for _, g := range d.list.all(tag) {
		out.Append(g)
	}
	return out
}

func (d *Document) Insert(i int, g *Group) error { return d.list.insertAt(i, g) }

func (d *Document) InsertAll(i int, other *Document) error {
	return d.list.insertAt(i, slices.Clone(other.list.elems)...)
}

func (d *Document) RemoveAt(i int) (*Group, error)       { return d.list.removeAt(i) }
func (d *Document) RemoveTag(tag string) (*Group, error) { return d.list.removeTag(tag) }
func (d *Document) Remove(g *Group) (*Group, error)      { return d.list.removeMatch(g) }
func (d *Document) Pop() (*Group, error)                 { return d.list.pop() }
func (d *Document) IndexOf(g *Group) (int, error)        { return d.list.indexOf(g) }
func (d *Document) IndexOfTag(tag string) (int, error)   { return d.list.indexOfTag(tag) }
func (d *Document) Contains(g *Group) bool               { return d.list.contains(g) }
func (d *Document) ContainsTag(tag string) bool          { return d.list.containsTag(tag) }
func (d *Document) Count(tag string) int                 { return d.list.count(tag) }
func (d *Document) Tags() []string                       { return d.list.tags() }

// Values returns, per group in order, that group's entry values.
func (d *Document) Values() [][]string {
	res := make([][]string, len(d.list.elems))
	for i, g := range d.list.elems {
		res[i] = g.Values()
	}
	return res
}

func (d *Document) Combine(other *Document) *Document {
	out := d.Clone()
	out.Merge(other)
	return out
}

func (d *Document) Merge(other *Document) {
	d.list.combineFrom(&other.list)
}

func (d *Document) Subtract(other *Document) *Document {
	out := d.Clone()
	out.Discard(other)
	return out
}

func (d *Document) Discard(other *Document) {
	d.list.subtract(&other.list)
}

func (d *Document) Sort(ignoreCase bool) { d.list.sortByTag(ignoreCase) }
func (d *Document) Reverse()             { d.list.reverse() }

func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return false
	}
	return d.tag == other.tag && d.list.equalMultiset(&other.list)
}

// Clone returns a detached deep copy carrying the same persistence
// settings.
func (d *Document) Clone() *Document {
	out := NewDocument(d.tag)
	for _, g := range d.list.elems {
		out.list.add(g.Clone())
	}
	out.source = d.source
	out.pathOverride = d.pathOverride
	out.mode = d.mode
	return out
}

// PathPriority prefers the explicit override, then the source path,
// then the tag with the default extension appended when the tag does
// not already carry a recognized one.
func (d *Document) PathPriority() string {
	return pathPriority(d.pathOverride, d.source, d.tag)
}

// ResolvePath composes PathPriority through the parent chain. A root
// document resolves to its own PathPriority.
func (d *Document) ResolvePath() string {
	return resolvePath(d.PathPriority(), d.parent)
}

func (d *Document) eq(m Member) bool {
	other, ok := m.(*Document)
	if !ok {
		return false
	}
	return d.Equal(other)
}

func (d *Document) cp() Member        { return d.Clone() }
func (d *Document) owned() bool       { return d.parent != nil }
func (d *Document) attach(owner Item) { d.parent = owner.(*Collection) }
func (d *Document) detach()           { d.parent = nil }
func (d *Document) zero() bool        { return len(d.list.elems) == 0 }
func (d *Document) member()           {}
