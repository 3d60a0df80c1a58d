package tree

// EntryKind distinguishes what a child slot holds.
type EntryKind uint8

const (
	// ValueEntry is a payload value.
	ValueEntry EntryKind = iota
	// BranchEntry is a branch owned by the slot's node.
	BranchEntry
	// AliasEntry is a node owned elsewhere.
	AliasEntry
)

func (k EntryKind) String() string {
	switch k {
	case ValueEntry:
		return "value"
	case BranchEntry:
		return "branch"
	case AliasEntry:
		return "alias"
	}
	return "unknown"
}

// Entry is the content of a child slot: a value, or a node.
type Entry struct {
	Kind  EntryKind
	Value any
	Node  *Node
}

// IsNode reports whether e holds a node.
func (e Entry) IsNode() bool {
	return e.Kind != ValueEntry
}

// Any returns the value, or the node for branch and alias entries.
func (e Entry) Any() any {
	if e.IsNode() {
		return e.Node
	}
	return e.Value
}
