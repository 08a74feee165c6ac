package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/cxr-format/go-cxr/node"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	HeaderColor ColorAttr = iota
	TagColor
	SepColor
	ValueColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	colors.Map[Colorable{Kind: node.GroupKind, Attr: HeaderColor}] = color.RGB(74, 92, 138).SprintfFunc()
	colors.Map[Colorable{Kind: node.CollectionKind, Attr: HeaderColor}] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[Colorable{Kind: node.EntryKind, Attr: TagColor}] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[Colorable{Kind: node.EntryKind, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[Colorable{Kind: node.EntryKind, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k node.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k node.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
