package parsetree

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// CLanguage returns the C grammar the CLI parses with. The grammar is
// supplied externally by the tree-sitter binding; this is the one grammar
// wired in by default.
func CLanguage() *sitter.Language {
	return c.GetLanguage()
}
