package node

// Kind discriminates the four node levels.
type Kind int

const (
	EntryKind Kind = iota
	GroupKind
	DocumentKind
	CollectionKind
)

func (k Kind) String() string {
	switch k {
	case EntryKind:
		return "Entry"
	case GroupKind:
		return "Group"
	case DocumentKind:
		return "Document"
	case CollectionKind:
		return "Collection"
	default:
		return "<unknown kind>"
	}
}

func Kinds() []Kind {
	return []Kind{EntryKind, GroupKind, DocumentKind, CollectionKind}
}

// Item is the method set common to every node level.
type Item interface {
	Kind() Kind
	Tag() string
	SetTag(string)
}

// Member is the closed union of nodes a Collection can hold:
// *Document and *Collection, nothing else.
type Member interface {
	Item

	// PathPriority returns the preferred save location for this
	// member alone: the explicit override, else the source it was
	// loaded from, else its tag with the default extension.
	PathPriority() string

	// ResolvePath composes PathPriority through the parent chain.
	ResolvePath() string

	Source() string
	SetSource(string)
	SetPath(string)

	eq(Member) bool
	cp() Member
	owned() bool
	attach(Item)
	detach()
	zero() bool

	member()
}
