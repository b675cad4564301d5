package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLockedWordsAreRecognizedCaseInsensitively(t *testing.T) {
	s := New()
	assert.True(t, s.IsLocked([]byte("int")))
	assert.True(t, s.IsLocked([]byte("INT")))
	assert.True(t, s.IsLocked([]byte("Int")))
	assert.True(t, s.IsLocked([]byte("parser")))
}

func TestUnlockedWordIsNotRecognized(t *testing.T) {
	s := New()
	assert.False(t, s.IsLocked([]byte("myVariableName")))
}

func TestOverlongInputIsRejected(t *testing.T) {
	s := New()
	long := strings.Repeat("a", 64)
	assert.False(t, s.IsLocked([]byte(long)))
}

func TestExtraWordsAreFoldedAndAdded(t *testing.T) {
	s := New("Tokenizer")
	assert.True(t, s.IsLocked([]byte("tokenizer")))
	assert.True(t, s.IsLocked([]byte("TOKENIZER")))
}
