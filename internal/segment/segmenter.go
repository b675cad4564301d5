// Package segment implements the identifier segmenter: emitting one or
// more tokens from a single identifier span using the locked-vocabulary
// short-circuit, the underscore hard boundary, and the camel-case /
// entropy soft boundary.
package segment

import (
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/entropy"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/hashid"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/vocab"
)

// DefaultEntropyThreshold is the fixed surprise threshold above which a
// soft split is considered (subject to the minimum-length guard).
const DefaultEntropyThreshold = 5.0

// minLeftGuard and minRightGuard are the minimum fragment lengths required
// before an entropy-driven split is accepted, unless the left fragment is
// itself a locked word.
const (
	minLeftGuard  = 4
	minRightGuard = 3
)

// Locked is the subset of vocab.Set the segmenter needs.
type Locked interface {
	IsLocked(id []byte) bool
}

// Entropy is the subset of entropy.Model the segmenter needs.
type Entropy interface {
	Train(text []byte)
	Surprise(a, b byte) float64
}

var (
	_ Locked  = (*vocab.Set)(nil)
	_ Entropy = (*entropy.Model)(nil)
)

// Segmenter applies the split policy to one identifier span at a time.
type Segmenter struct {
	Model     Entropy
	Locked    Locked
	Threshold float64
}

// New returns a Segmenter using DefaultEntropyThreshold.
func New(model Entropy, locked Locked) *Segmenter {
	return &Segmenter{Model: model, Locked: locked, Threshold: DefaultEntropyThreshold}
}

func isLowerASCII(b byte) bool { return b >= 'a' && b <= 'z' }
func isUpperASCII(b byte) bool { return b >= 'A' && b <= 'Z' }

// Segment emits one or more word-type tokens covering the identifier id
// (offset..offset+len(id)), honoring pre_space/depth on the emitted tokens.
func (s *Segmenter) Segment(id []byte, offset uint32, depth uint8, preSpace bool) []token.Token {
	if len(id) == 0 {
		return nil
	}

	// 1. Locked-word short-circuit: one token, canonical casing=lower.
	if s.Locked.IsLocked(id) {
		s.Model.Train(id)
		return []token.Token{{
			RootID:   hashid.Hash(id),
			Offset:   offset,
			Length:   uint16(len(id)),
			Type:     token.TypeWord,
			Casing:   token.CasingLower,
			PreSpace: preSpace,
			Depth:    depth,
		}}
	}

	// 2. Train then segment.
	s.Model.Train(id)

	var out []token.Token
	start := 0
	emit := func(from, to int) {
		frag := id[from:to]
		out = append(out, token.Token{
			RootID:   hashid.Hash(frag),
			Offset:   offset + uint32(from),
			Length:   uint16(to - from),
			Type:     token.TypeWord,
			Casing:   hashid.Casing(frag),
			PreSpace: len(out) == 0 && preSpace,
			Depth:    depth,
		})
	}

	threshold := s.Threshold
	if threshold == 0 {
		threshold = DefaultEntropyThreshold
	}

	for i := 0; i < len(id); i++ {
		cur := id[i]

		if cur == '_' {
			if i > start {
				emit(start, i)
			}
			if len(out) > 0 {
				out[len(out)-1].HasJoiner = true
			}
			start = i + 1
			continue
		}

		if i < len(id)-1 {
			next := id[i+1]
			split := false

			if isLowerASCII(cur) && isUpperASCII(next) {
				split = true
			} else if s.Model.Surprise(cur, next) > threshold {
				leftLen := (i + 1) - start
				rightLen := len(id) - (i + 1)
				if s.Locked.IsLocked(id[start : i+1]) {
					split = true
				} else if leftLen >= minLeftGuard && rightLen >= minRightGuard {
					split = true
				}
			}

			if split {
				emit(start, i+1)
				start = i + 1
			}
		}
	}

	if start < len(id) {
		emit(start, len(id))
	}

	return out
}
