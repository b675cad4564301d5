package segment

import (
	"testing"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/entropy"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPretrained() (*entropy.Model, *vocab.Set) {
	locked := vocab.New()
	model := entropy.New()
	model.Pretrain(locked.Words())
	return model, locked
}

func textsOf(toks []token.Token, src []byte) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = string(t.Text(src))
	}
	return out
}

func TestLockedWordShortCircuits(t *testing.T) {
	model, locked := newPretrained()
	s := New(model, locked)

	src := []byte("int")
	toks := s.Segment(src, 0, 2, false)
	require.Len(t, toks, 1)
	assert.Equal(t, "int", string(toks[0].Text(src)))
	assert.Equal(t, token.CasingLower, toks[0].Casing)
}

func TestCamelCaseSplit(t *testing.T) {
	model, locked := newPretrained()
	s := New(model, locked)

	src := []byte("myVariableName")
	toks := s.Segment(src, 0, 0, true)
	assert.Equal(t, []string{"my", "Variable", "Name"}, textsOf(toks, src))
	assert.True(t, toks[0].PreSpace)
	assert.False(t, toks[1].PreSpace)
	assert.False(t, toks[2].PreSpace)
	for _, tok := range toks {
		assert.False(t, tok.HasJoiner)
	}
}

func TestUnderscoreSplitSetsJoiner(t *testing.T) {
	model, locked := newPretrained()
	s := New(model, locked)

	src := []byte("my_var_name")
	toks := s.Segment(src, 0, 0, false)
	assert.Equal(t, []string{"my", "var", "name"}, textsOf(toks, src))
	assert.True(t, toks[0].HasJoiner)
	assert.True(t, toks[1].HasJoiner)
	assert.False(t, toks[2].HasJoiner)
}

func TestNoTokenSpanContainsUnderscore(t *testing.T) {
	model, locked := newPretrained()
	s := New(model, locked)

	src := []byte("alpha_beta_gamma_delta")
	toks := s.Segment(src, 0, 0, false)
	for _, tok := range toks {
		assert.NotContains(t, string(tok.Text(src)), "_")
	}
}

func TestEntropySplitRequiresLengthGuard(t *testing.T) {
	model := entropy.New()
	locked := vocab.New()
	// Train heavily so that 't' -> 'q' is maximally surprising relative to
	// 't' -> 'e'/'t', without ever training short filler words that would
	// satisfy the length guard on their own.
	for i := 0; i < 60; i++ {
		model.Train([]byte("texttexttext"))
	}
	s := New(model, locked)

	// "atqz": candidate split at t|q would leave a left fragment of length
	// 2 ("at") and right fragment of length 2 ("qz") — both below the
	// guard, so even a high surprise score must not split here.
	src := []byte("atqz")
	toks := s.Segment(src, 0, 0, false)
	assert.Equal(t, []string{"atqz"}, textsOf(toks, src))
}

func TestEntropySplitAcceptedWithSufficientLengths(t *testing.T) {
	model := entropy.New()
	locked := vocab.New()
	for i := 0; i < 60; i++ {
		model.Train([]byte("texttexttexttext"))
	}
	s := New(model, locked)

	src := []byte("contextqzzz")
	toks := s.Segment(src, 0, 0, false)
	// "t" -> "q" should be far more surprising than "t" -> "e"/"t" once
	// trained exclusively on "text", and both fragments clear the 4/3 guard.
	assert.Equal(t, []string{"context", "qzzz"}, textsOf(toks, src))
	if len(toks) > 1 {
		for _, tok := range toks {
			assert.NotContains(t, string(tok.Text(src)), "_")
		}
	}
}
