// Package traverse implements the traversal driver: walking leaf nodes in
// source order, classifying each by node type, and dispatching to the
// identifier segmenter, the blob fragmenter, or a default single token.
package traverse

import (
	"strings"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/hashid"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/parsetree"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/segment"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
)

// blobLengthGuard is the default leaf-length threshold above which a
// non-locked leaf is treated as a macro blob. Callers can override this
// via Driver.BlobLen.
const blobLengthGuard = 32

// Locked is the subset of vocab.Set the driver needs for the macro-blob
// length-guard check.
type Locked interface {
	IsLocked(id []byte) bool
}

// Driver dispatches classified leaves to token emission.
type Driver struct {
	Segmenter *segment.Segmenter
	Locked    Locked
	Absorber  token.Absorber

	// BlobLen overrides blobLengthGuard when non-zero.
	BlobLen int

	// OnRegistryError, if set, is called for every soft registry error
	// encountered while pushing a token. Registry errors are reported, not
	// fatal: tokenization of the current file continues regardless.
	OnRegistryError func(error)
}

func (d *Driver) blobLen() int {
	if d.BlobLen > 0 {
		return d.BlobLen
	}
	return blobLengthGuard
}

// Run walks every leaf cursor yields against src, emitting into and
// returning a freshly allocated *token.Arena sized to len(src).
func (d *Driver) Run(src []byte, cursor parsetree.Cursor) *token.Arena {
	arena := token.NewArena(len(src))
	parsetree.WalkFunc(cursor, func(leaf parsetree.Leaf) {
		d.dispatch(arena, src, leaf)
	})
	return arena
}

func (d *Driver) push(arena *token.Arena, src []byte, t token.Token) {
	_, err := arena.Push(t, src, d.Absorber)
	if err != nil && d.OnRegistryError != nil {
		d.OnRegistryError(err)
	}
}

func (d *Driver) dispatch(arena *token.Arena, src []byte, leaf parsetree.Leaf) {
	start, end := int(leaf.Start), int(leaf.End)
	if end <= start || end > len(src) {
		return
	}

	// Symbol-eater skip: if the previously pushed token's metadata already
	// absorbs this leaf's first byte, the leaf is dropped entirely.
	if arena.AbsorbsFirstByte(src, start) {
		return
	}

	preSpace := start > 0 && isSpaceNotNewline(src[start-1])
	preBreak := start > 0 && src[start-1] == '\n'

	isPreproc := strings.HasPrefix(leaf.Type, "preproc")
	isStringOrComment := leaf.Type == "comment" || leaf.Type == "string_literal"
	length := end - start
	isMacroBlob := length > d.blobLen() && !d.Locked.IsLocked(src[start:end])

	switch {
	case strings.Contains(leaf.Type, "identifier"):
		for _, t := range d.Segmenter.Segment(src[start:end], leaf.Start, uint8(leaf.Depth), preSpace) {
			d.push(arena, src, t)
		}

	case isStringOrComment || isPreproc || isMacroBlob:
		d.pushBlobFragments(arena, src, start, end, uint8(leaf.Depth))

	default:
		typ := token.TypeWord
		if src[start] >= '0' && src[start] <= '9' {
			typ = token.TypeNumber
		}
		d.push(arena, src, token.Token{
			RootID:   hashid.Hash(src[start:end]),
			Offset:   leaf.Start,
			Length:   uint16(length),
			Type:     typ,
			Casing:   hashid.Casing(src[start:end]),
			PreSpace: preSpace,
			PreBreak: preBreak,
			Depth:    uint8(leaf.Depth),
		})
	}
}

// pushBlobFragments splits [start,end) on whitespace and punctuation bytes,
// emitting each non-empty fragment as a type=blob token. Consecutive
// separator bytes never produce an empty fragment between them.
func (d *Driver) pushBlobFragments(arena *token.Arena, src []byte, start, end int, depth uint8) {
	subStart := start
	for i := start; i < end; i++ {
		c := src[i]
		if isSpaceByte(c) || isPunct(c) {
			if i > subStart {
				d.push(arena, src, blobToken(src, subStart, i, depth))
			}
			subStart = i + 1
		}
	}
	if subStart < end {
		d.push(arena, src, blobToken(src, subStart, end, depth))
	}
}

func blobToken(src []byte, start, end int, depth uint8) token.Token {
	frag := src[start:end]
	return token.Token{
		RootID: hashid.Hash(frag),
		Offset: uint32(start),
		Length: uint16(end - start),
		Type:   token.TypeBlob,
		Depth:  depth,
	}
}

func isSpaceNotNewline(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	default:
		return false
	}
}

func isPunct(b byte) bool {
	switch {
	case b >= '!' && b <= '/':
		return true
	case b >= ':' && b <= '@':
		return true
	case b >= '[' && b <= '`':
		return true
	case b >= '{' && b <= '~':
		return true
	default:
		return false
	}
}
