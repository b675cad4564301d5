// Package hashid implements the stable 32-bit token hash and the ASCII
// casing classifier used to derive a token's root id and casing metadata.
package hashid

import "github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"

const (
	fnvOffsetBasis uint32 = 0x811c9dc5
	fnvPrime       uint32 = 0x01000193
)

// CaseFold lowercases ASCII uppercase letters; every other byte, including
// non-ASCII bytes, passes through unchanged.
func CaseFold(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Hash computes the stable 32-bit FNV-1a hash of the case-folded bytes.
// The xor-then-multiply order (pre-xor, post-multiply) matches canonical
// FNV-1a, not FNV-1.
func Hash(b []byte) uint32 {
	h := fnvOffsetBasis
	for _, c := range b {
		h ^= uint32(CaseFold(c))
		h *= fnvPrime
	}
	return h
}

func isUpperASCII(b byte) bool { return b >= 'A' && b <= 'Z' }

// Casing classifies the case pattern of a non-empty ASCII-range byte
// slice: all-lower, all-upper, capitalized (one leading uppercase letter),
// or mixed.
func Casing(b []byte) token.Casing {
	caps := 0
	for _, c := range b {
		if isUpperASCII(c) {
			caps++
		}
	}
	switch {
	case caps == 0:
		return token.CasingLower
	case caps == len(b):
		return token.CasingUpper
	case caps == 1 && isUpperASCII(b[0]):
		return token.CasingCapitalized
	default:
		return token.CasingMixed
	}
}
