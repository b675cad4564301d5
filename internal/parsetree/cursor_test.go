package parsetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeNode/fakeTree build a tiny in-memory tree so WalkFunc can be tested
// without a real tree-sitter grammar.
type fakeNode struct {
	typ      string
	start    uint32
	end      uint32
	children []*fakeNode
}

func (n *fakeNode) ChildCount() int   { return len(n.children) }
func (n *fakeNode) Type() string      { return n.typ }
func (n *fakeNode) StartByte() uint32 { return n.start }
func (n *fakeNode) EndByte() uint32   { return n.end }

type fakeCursor struct {
	stack []*fakeNode // path from root to current
	idx   []int       // sibling index at each stack level except root
}

func newFakeCursor(root *fakeNode) *fakeCursor {
	return &fakeCursor{stack: []*fakeNode{root}}
}

func (c *fakeCursor) Current() Node {
	return c.stack[len(c.stack)-1]
}

func (c *fakeCursor) GotoFirstChild() bool {
	cur := c.stack[len(c.stack)-1]
	if len(cur.children) == 0 {
		return false
	}
	c.stack = append(c.stack, cur.children[0])
	c.idx = append(c.idx, 0)
	return true
}

func (c *fakeCursor) GotoNextSibling() bool {
	if len(c.idx) == 0 {
		return false
	}
	parent := c.stack[len(c.stack)-2]
	next := c.idx[len(c.idx)-1] + 1
	if next >= len(parent.children) {
		return false
	}
	c.idx[len(c.idx)-1] = next
	c.stack[len(c.stack)-1] = parent.children[next]
	return true
}

func (c *fakeCursor) GotoParent() bool {
	if len(c.stack) <= 1 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	c.idx = c.idx[:len(c.idx)-1]
	return true
}

func TestWalkFuncVisitsLeavesInSourceOrderWithDepth(t *testing.T) {
	// root
	//   ident "int"   [0,3)   depth 1
	//   ident "x"     [4,5)   depth 1
	root := &fakeNode{
		typ:   "translation_unit",
		start: 0, end: 6,
		children: []*fakeNode{
			{typ: "identifier", start: 0, end: 3},
			{typ: "identifier", start: 4, end: 5},
		},
	}

	var got []Leaf
	WalkFunc(newFakeCursor(root), func(l Leaf) { got = append(got, l) })

	assert.Equal(t, []Leaf{
		{Type: "identifier", Start: 0, End: 3, Depth: 1},
		{Type: "identifier", Start: 4, End: 5, Depth: 1},
	}, got)
}

func TestWalkFuncSkipsZeroLengthLeaves(t *testing.T) {
	root := &fakeNode{
		typ:   "translation_unit",
		start: 0, end: 3,
		children: []*fakeNode{
			{typ: "MISSING", start: 3, end: 3},
			{typ: "identifier", start: 0, end: 3},
		},
	}

	var got []Leaf
	WalkFunc(newFakeCursor(root), func(l Leaf) { got = append(got, l) })

	assert.Len(t, got, 1)
	assert.Equal(t, "identifier", got[0].Type)
}

func TestWalkFuncTracksDepthAcrossNestedDescent(t *testing.T) {
	leaf := &fakeNode{typ: "identifier", start: 2, end: 3}
	inner := &fakeNode{typ: "block", start: 1, end: 4, children: []*fakeNode{leaf}}
	root := &fakeNode{typ: "function", start: 0, end: 5, children: []*fakeNode{inner}}

	var got []Leaf
	WalkFunc(newFakeCursor(root), func(l Leaf) { got = append(got, l) })

	require := assert.New(t)
	require.Len(got, 1)
	require.Equal(2, got[0].Depth)
}
