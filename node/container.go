package node

import (
	"fmt"
	"slices"
	"strings"
)

// elem is the constraint shared by every node that can live in a
// container: entries in groups, groups in documents, members in
// collections.
type elem[E any] interface {
	Tag() string

	eq(E) bool
	cp() E
	owned() bool
	attach(Item)
	detach()

	// zero reports whether the element carries no value, which makes
	// subtraction treat it as a delete-by-tag marker.
	zero() bool
}

// list is the ordered, tag-keyed container core shared by Group,
// Document and Collection. The exported containers are thin typed
// wrappers over it.
type list[E elem[E]] struct {
	owner Item
	elems []E
}

// add attaches e, deep-copying first when e already has an owner.
// Exclusive parentage: no element is ever referenced by two live
// containers.
func (l *list[E]) add(e E) {
	if e.owned() {
		e = e.cp()
	}
	e.attach(l.owner)
	l.elems = append(l.elems, e)
}

func (l *list[E]) at(i int) (E, error) {
	var zero E
	if i < 0 || i >= len(l.elems) {
		return zero, fmt.Errorf("%w: %d", ErrIndex, i)
	}
	return l.elems[i], nil
}

func (l *list[E]) first(tag string) (E, error) {
	var zero E
	for _, e := range l.elems {
		if e.Tag() == tag {
			return e, nil
		}
	}
	return zero, fmt.Errorf("%w: %q", ErrLookup, tag)
}

func (l *list[E]) all(tag string) []E {
	var res []E
	for _, e := range l.elems {
		if e.Tag() == tag {
			res = append(res, e)
		}
	}
	return res
}

func (l *list[E]) insertAt(i int, es ...E) error {
	if i < 0 || i > len(l.elems) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	cps := make([]E, len(es))
	for j, e := range es {
		if e.owned() {
			e = e.cp()
		}
		e.attach(l.owner)
		cps[j] = e
	}
	l.elems = slices.Insert(l.elems, i, cps...)
	return nil
}

func (l *list[E]) removeAt(i int) (E, error) {
	var zero E
	if i < 0 || i >= len(l.elems) {
		return zero, fmt.Errorf("%w: %d", ErrIndex, i)
	}
	e := l.elems[i]
	l.elems = slices.Delete(l.elems, i, i+1)
	e.detach()
	return e, nil
}

func (l *list[E]) removeTag(tag string) (E, error) {
	for i, e := range l.elems {
		if e.Tag() == tag {
			return l.removeAt(i)
		}
	}
	var zero E
	return zero, fmt.Errorf("%w: %q", ErrLookup, tag)
}

func (l *list[E]) removeMatch(m E) (E, error) {
	for i, e := range l.elems {
		if e.eq(m) {
			return l.removeAt(i)
		}
	}
	var zero E
	return zero, fmt.Errorf("%w: %q", ErrLookup, m.Tag())
}

func (l *list[E]) pop() (E, error) {
	return l.removeAt(len(l.elems) - 1)
}

func (l *list[E]) indexOfTag(tag string) (int, error) {
	for i, e := range l.elems {
		if e.Tag() == tag {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrLookup, tag)
}

func (l *list[E]) indexOf(m E) (int, error) {
	for i, e := range l.elems {
		if e.eq(m) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrLookup, m.Tag())
}

func (l *list[E]) containsTag(tag string) bool {
	_, err := l.indexOfTag(tag)
	return err == nil
}

func (l *list[E]) contains(m E) bool {
	_, err := l.indexOf(m)
	return err == nil
}

func (l *list[E]) count(tag string) int {
	n := 0
	for _, e := range l.elems {
		if e.Tag() == tag {
			n++
		}
	}
	return n
}

func (l *list[E]) tags() []string {
	res := make([]string, len(l.elems))
	for i, e := range l.elems {
		res[i] = e.Tag()
	}
	return res
}

// combineFrom appends a copy of each element of other, in order.
// Always additive: existing elements are never overwritten.
func (l *list[E]) combineFrom(other *list[E]) {
	es := slices.Clone(other.elems)
	for _, e := range es {
		l.add(e)
	}
}

// subtract removes, for each element of other, the first tag match
// (when the element carries no value) or the first structural match.
// Missing targets are skipped: subtraction is best-effort.
func (l *list[E]) subtract(other *list[E]) {
	es := slices.Clone(other.elems)
	for _, e := range es {
		if e.zero() {
			l.removeTag(e.Tag())
			continue
		}
		l.removeMatch(e)
	}
}

func (l *list[E]) sortByTag(ignoreCase bool) {
	slices.SortStableFunc(l.elems, func(a, b E) int {
		ta, tb := a.Tag(), b.Tag()
		if ignoreCase {
			ta, tb = strings.ToLower(ta), strings.ToLower(tb)
		}
		return strings.Compare(ta, tb)
	})
}

func (l *list[E]) reverse() {
	slices.Reverse(l.elems)
}

// equalMultiset reports multiset equality: every element of l matches
// a distinct element of other, counts included. Order never matters.
func (l *list[E]) equalMultiset(other *list[E]) bool {
	if len(l.elems) != len(other.elems) {
		return false
	}
	used := make([]bool, len(other.elems))
	for _, a := range l.elems {
		found := false
		for j, b := range other.elems {
			if used[j] {
				continue
			}
			if a.eq(b) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
