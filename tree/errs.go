package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeAccess is wrapped by every *AttributeAccessError.
	ErrAttributeAccess = errors.New("attribute access error")
	// ErrFrozen is returned for mutations within a frozen subtree.
	ErrFrozen = errors.New("frozen state error")
	// ErrNotFound is returned by read-only lookups of paths with no
	// committed content.
	ErrNotFound = errors.New("not found")
	// ErrNotBranch is returned when a path descends through a value.
	ErrNotBranch = errors.New("not a branch")
)

// AttributeAccessError reports a terminal operation on a dangling node.
// Segment names the root-most dangling segment of the chain, which is where
// the missing content actually starts.
type AttributeAccessError struct {
	Segment string
	Path    string
	Err     error
}

func (e *AttributeAccessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: cannot descend through %q (accessing %s): %v", ErrAttributeAccess, e.Segment, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %q is not set (accessing %s)", ErrAttributeAccess, e.Segment, e.Path)
}

func (e *AttributeAccessError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrAttributeAccess, e.Err}
	}
	return []error{ErrAttributeAccess}
}

func frozenError(n *Node) error {
	return fmt.Errorf("%w: %s is frozen", ErrFrozen, n.BranchName(true, true))
}
