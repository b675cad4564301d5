package parsetree

import (
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// sitterNode adapts *sitter.Node to Node.
type sitterNode struct{ n *sitter.Node }

func (s sitterNode) ChildCount() int    { return int(s.n.ChildCount()) }
func (s sitterNode) Type() string       { return s.n.Type() }
func (s sitterNode) StartByte() uint32  { return s.n.StartByte() }
func (s sitterNode) EndByte() uint32    { return s.n.EndByte() }

// sitterCursor adapts *sitter.TreeCursor to Cursor.
type sitterCursor struct{ c *sitter.TreeCursor }

func (s sitterCursor) Current() Node          { return sitterNode{s.c.CurrentNode()} }
func (s sitterCursor) GotoFirstChild() bool   { return s.c.GoToFirstChild() }
func (s sitterCursor) GotoNextSibling() bool  { return s.c.GoToNextSibling() }
func (s sitterCursor) GotoParent() bool       { return s.c.GoToParent() }

// ParsedTree owns a parsed tree and the cursor walking it; Close releases
// the cursor's native resources.
type ParsedTree struct {
	tree   *sitter.Tree
	cursor *sitter.TreeCursor
}

// Parse parses src with lang (e.g. CLanguage()) and returns a ParsedTree
// ready for Cursor.
func Parse(src []byte, lang *sitter.Language) (*ParsedTree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, err
	}
	return &ParsedTree{tree: tree, cursor: sitter.NewTreeCursor(tree.RootNode())}, nil
}

// Cursor returns the Cursor contract over the parsed tree's root node.
func (p *ParsedTree) Cursor() Cursor {
	return sitterCursor{p.cursor}
}

// Close releases the tree-sitter cursor and tree.
func (p *ParsedTree) Close() {
	if p.cursor != nil {
		p.cursor.Close()
	}
	if p.tree != nil {
		p.tree.Close()
	}
}
