// Package parsetree defines the minimal cursor contract the traversal
// driver needs from an external parser, and a depth-tracking leaf iterator
// built on top of it. The parser itself, and its concrete syntax tree, stay
// behind this contract: callers never touch the underlying tree directly.
package parsetree

// Node is the subset of a concrete-syntax-tree node this package needs:
// child count, a short ASCII type name, and the source byte span.
type Node interface {
	ChildCount() int
	Type() string
	StartByte() uint32
	EndByte() uint32
}

// Cursor is the tree-walking contract implementations provide: descend to
// first child, move to next sibling, ascend to parent, and read the
// current node. Implementations need not support re-entrant use; a single
// traversal is expected to consume the cursor start to finish. A cursor is
// finite and non-restartable.
type Cursor interface {
	Current() Node
	GotoFirstChild() bool
	GotoNextSibling() bool
	GotoParent() bool
}

// Leaf is one zero-child node encountered during a walk, paired with its
// nesting depth. Only nodes with zero children are considered leaves.
type Leaf struct {
	Type  string
	Start uint32
	End   uint32
	Depth int
}

// Leaves walks cursor in source order and returns every leaf it visits,
// depth-first, exactly once. It models the cursor walk as a finite
// sequence rather than a restartable iterator; callers that want lazy
// iteration can wrap this in a channel or have it call back per leaf via
// WalkFunc instead.
func Leaves(c Cursor) []Leaf {
	var out []Leaf
	WalkFunc(c, func(l Leaf) {
		out = append(out, l)
	})
	return out
}

// WalkFunc drives cursor: descend on first child, otherwise move to next
// sibling, otherwise ascend until a next sibling exists or the walk is
// exhausted. depth increments on descent and decrements on ascent; fn is
// called once per zero-child node whose end byte is past its start byte,
// with its depth already folded modulo 8. Zero-length leaves are skipped.
func WalkFunc(c Cursor, fn func(Leaf)) {
	depth := 0
	for {
		node := c.Current()
		if node.ChildCount() == 0 {
			start, end := node.StartByte(), node.EndByte()
			if end > start {
				fn(Leaf{Type: node.Type(), Start: start, End: end, Depth: depth % 8})
			}
		}

		if c.GotoFirstChild() {
			depth++
			continue
		}
		if c.GotoNextSibling() {
			continue
		}
		for {
			if !c.GotoParent() {
				return
			}
			depth--
			if c.GotoNextSibling() {
				break
			}
		}
	}
}
