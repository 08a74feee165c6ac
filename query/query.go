// Package query filters the node model with expr-lang expressions.
//
// Entry predicates see {tag, value, index}; group predicates see
// {tag, size, index}:
//
//	q, _ := query.Compile(`tag == "name" && value != ""`)
//	kept, _ := query.FilterGroup(g, q)
package query

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/cxr-format/go-cxr/debug"
	"github.com/cxr-format/go-cxr/node"
)

// Predicate is a compiled boolean expression over entries or groups.
type Predicate struct {
	src  string
	prog *vm.Program
}

func Compile(expression string) (*Predicate, error) {
	prog, err := expr.Compile(expression, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", expression, err)
	}
	return &Predicate{src: expression, prog: prog}, nil
}

func (p *Predicate) String() string { return p.src }

func (p *Predicate) MatchEntry(e *node.Entry, index int) (bool, error) {
	return p.run(map[string]any{
		"tag":   e.Tag(),
		"value": e.Value(),
		"index": index,
	})
}

func (p *Predicate) MatchGroup(g *node.Group, index int) (bool, error) {
	return p.run(map[string]any{
		"tag":   g.Tag(),
		"size":  g.Len(),
		"index": index,
	})
}

func (p *Predicate) run(env map[string]any) (bool, error) {
	out, err := vm.Run(p.prog, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", p.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%q did not evaluate to a bool", p.src)
	}
	if debug.Query() {
		debug.Logf("query %q on %v gave %v\n", p.src, env, b)
	}
	return b, nil
}

// FilterGroup returns a new group, same tag, holding copies of the
// entries the predicate accepts, in order.
func FilterGroup(g *node.Group, p *Predicate) (*node.Group, error) {
	out := node.NewGroup(g.Tag())
	for i, e := range g.Entries() {
		ok, err := p.MatchEntry(e, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Append(e)
		}
	}
	return out, nil
}

// FilterDocument applies an entry predicate inside every group and
// returns a new document keeping the groups that retain at least one
// entry.
func FilterDocument(d *node.Document, p *Predicate) (*node.Document, error) {
	out := node.NewDocument(d.Tag())
	for _, g := range d.Groups() {
		kept, err := FilterGroup(g, p)
		if err != nil {
			return nil, err
		}
		if kept.Len() > 0 {
			out.Append(kept)
		}
	}
	return out, nil
}

// SelectGroups returns a new document holding copies of the groups a
// group predicate accepts, in order.
func SelectGroups(d *node.Document, p *Predicate) (*node.Document, error) {
	out := node.NewDocument(d.Tag())
	for i, g := range d.Groups() {
		ok, err := p.MatchGroup(g, i)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Append(g)
		}
	}
	return out, nil
}
