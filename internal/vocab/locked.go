// Package vocab implements the locked vocabulary: a small, sorted,
// case-insensitive set of reserved words that short-circuit identifier
// segmentation.
package vocab

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// maxLockedWordLen is the bounded stack buffer size for case-folding a
// membership query; any input of length >= this is rejected outright
// before it ever touches the set.
const maxLockedWordLen = 64

// defaultWords is the curated list of C keywords, standard library names,
// and common domain nouns that never trigger identifier segmentation.
var defaultWords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if", "int",
	"long", "register", "return", "short", "signed", "sizeof", "static", "struct",
	"switch", "typedef", "union", "unsigned", "void", "volatile", "while",
	"define", "include", "ifdef", "ifndef", "endif",
	"printf", "malloc", "free", "size_t", "uint32_t", "uint8_t", "uint16_t",
	"null", "true", "false", "bool", "file", "path", "buffer", "length",
	"count", "offset", "data", "node", "tree", "parser", "cursor", "root",
}

// Set is the locked vocabulary: a sorted, case-insensitive membership test.
type Set struct {
	tree *treeset.Set
}

// New builds a Set from defaultWords plus any caller-supplied extra words
// (config.Config.ExtraLockedWords). All words are stored case-folded since
// lookups are always case-folded first.
func New(extra ...string) *Set {
	tree := treeset.NewWith(utils.StringComparator)
	for _, w := range defaultWords {
		tree.Add(w)
	}
	for _, w := range extra {
		tree.Add(foldWord(w))
	}
	return &Set{tree: tree}
}

func foldWord(s string) string {
	buf := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	return string(buf)
}

// IsLocked reports whether id, case-folded, is in the locked vocabulary.
// Lengths >= maxLockedWordLen are rejected without folding, matching the
// bounded-buffer behavior of the original C implementation.
func (s *Set) IsLocked(id []byte) bool {
	if len(id) >= maxLockedWordLen {
		return false
	}
	var buf [maxLockedWordLen]byte
	for i, c := range id {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	return s.tree.Contains(string(buf[:len(id)]))
}

// Words returns the full sorted word list, for diagnostics.
func (s *Set) Words() []string {
	values := s.tree.Values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.(string)
	}
	return out
}
