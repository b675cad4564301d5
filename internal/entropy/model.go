// Package entropy implements the online bigram character-transition model
// used to score "surprise" at candidate identifier split points.
package entropy

import "math"

// minEvidence is the totals[a] floor below which surprise is reported as
// zero: too little evidence has been seen for byte a to call any
// transition from it surprising.
const minEvidence = 5

// smoothingNumerator and smoothingDenominator are the additive-smoothing
// constants in `p = (counts[a][b] + 0.1) / (totals[a] + 1.0)`.
const (
	smoothingNumerator   = 0.1
	smoothingDenominator = 1.0
)

// Model is a 256x256 matrix of byte-bigram transition counts plus the
// per-first-byte totals, mutated in place by Train and read by Surprise.
// Invariant: for every a, sum(counts[a][:]) == totals[a].
type Model struct {
	counts [256][256]uint32
	totals [256]uint32
}

// New returns an empty, untrained model.
func New() *Model {
	return &Model{}
}

// Train increments counts[a][b] and totals[a] for every adjacent byte pair
// in text. Inputs shorter than 2 bytes are a no-op.
func (m *Model) Train(text []byte) {
	if len(text) < 2 {
		return
	}
	for i := 0; i < len(text)-1; i++ {
		a, b := text[i], text[i+1]
		m.counts[a][b]++
		m.totals[a]++
	}
}

// Surprise returns the smoothed -log2 conditional probability of byte b
// following byte a. If fewer than minEvidence transitions have been
// observed from a, it returns 0: there isn't enough evidence yet to call
// any transition surprising.
//
// This is plain Shannon self-information, not Rényi-2 entropy, despite the
// package name; conformance is to the formula below.
func (m *Model) Surprise(a, b byte) float64 {
	total := m.totals[a]
	if total < minEvidence {
		return 0.0
	}
	p := (float64(m.counts[a][b]) + smoothingNumerator) / (float64(total) + smoothingDenominator)
	return -math.Log2(p)
}

// Pretrain runs 20 passes over the concatenation of vocab words, seeding
// "normal" transitions so the first real identifier in a file does not
// trigger spurious entropy splits.
func (m *Model) Pretrain(vocab []string) {
	const passes = 20
	var corpus []byte
	for _, word := range vocab {
		corpus = append(corpus, word...)
	}
	for i := 0; i < passes; i++ {
		m.Train(corpus)
	}
}
