// Package tokenizer wires the entropy model, locked vocabulary, registry
// and traversal driver into a single owned value a caller drives one
// source file at a time, with an explicit New/Close lifecycle.
package tokenizer

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/exp/mmap"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/entropy"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/parsetree"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/registry"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/segment"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/traverse"
	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/vocab"
)

// Options configures a Tokenizer at construction. Zero values fall back to
// the package defaults (DefaultEntropyThreshold, the built-in blob length
// guard).
type Options struct {
	RegistryPath     string
	ExtraLockedWords []string
	EntropyThreshold float64
	BlobLengthGuard  int
	OnRegistryError  func(error)
}

// Tokenizer owns the entropy model, locked vocabulary and persistent
// registry for a single process lifetime, and runs the traversal driver
// once per source file via TokenizeFile.
type Tokenizer struct {
	model    *entropy.Model
	locked   *vocab.Set
	registry *registry.Registry
	driver   *traverse.Driver
}

// New builds a Tokenizer: a fresh entropy model pretrained on the locked
// vocabulary, and a registry opened (and, if present, loaded) from
// opts.RegistryPath.
func New(opts Options) (*Tokenizer, error) {
	locked := vocab.New(opts.ExtraLockedWords...)

	model := entropy.New()
	model.Pretrain(locked.Words())

	reg, err := registry.Open(opts.RegistryPath)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: %w", err)
	}

	seg := segment.New(model, locked)
	if opts.EntropyThreshold > 0 {
		seg.Threshold = opts.EntropyThreshold
	}

	driver := &traverse.Driver{
		Segmenter:       seg,
		Locked:          locked,
		Absorber:        reg,
		BlobLen:         opts.BlobLengthGuard,
		OnRegistryError: opts.OnRegistryError,
	}

	return &Tokenizer{model: model, locked: locked, registry: reg, driver: driver}, nil
}

// TokenizeFile memory-maps path, parses it with lang, and runs the
// traversal driver over the resulting tree, returning the arena of atomic
// tokens produced. The mapping is closed before returning.
func (t *Tokenizer) TokenizeFile(path string, lang *sitter.Language) (*token.Arena, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: open %s: %w", path, err)
	}
	defer r.Close()

	src := make([]byte, r.Len())
	if _, err := r.ReadAt(src, 0); err != nil {
		return nil, fmt.Errorf("tokenizer: read %s: %w", path, err)
	}

	return t.TokenizeBytes(src, lang)
}

// TokenizeBytes runs the traversal driver directly over an in-memory
// buffer, parsing it with lang first. Exposed separately from TokenizeFile
// so callers (and tests) that already hold source bytes skip the mmap step.
func (t *Tokenizer) TokenizeBytes(src []byte, lang *sitter.Language) (*token.Arena, error) {
	tree, err := parsetree.Parse(src, lang)
	if err != nil {
		return nil, fmt.Errorf("tokenizer: parse: %w", err)
	}
	defer tree.Close()

	return t.driver.Run(src, tree.Cursor()), nil
}

// Stats returns the registry's running (hits, misses) counters for this
// run.
func (t *Tokenizer) Stats() (hits, misses int) {
	return t.registry.Stats()
}

// Close flushes and closes the persistent registry log.
func (t *Tokenizer) Close() error {
	return t.registry.Close()
}
