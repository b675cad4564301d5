// Package export serializes a tokenized arena to formats other tools can
// consume, starting with CBOR, so the fixed-width packed form isn't the
// only portable representation.
package export

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/Cetin-Furkan/NSET-Neural-Symbolic-Entropy-Tokenizer/internal/token"
)

// cborToken is the CBOR wire shape for one atomic token: the same fields
// Pack/Unpack carry, named instead of bit-packed so external tooling can
// read them without knowing the metadata layout.
type cborToken struct {
	RootID    uint32 `cbor:"root_id"`
	Offset    uint32 `cbor:"offset"`
	Length    uint16 `cbor:"length"`
	Type      string `cbor:"type"`
	Casing    string `cbor:"casing"`
	PreSpace  bool   `cbor:"pre_space"`
	PreBreak  bool   `cbor:"pre_break"`
	HasJoiner bool   `cbor:"has_joiner"`
	Depth     uint8  `cbor:"depth"`
	HasSemi   bool   `cbor:"has_semi"`
	HasComma  bool   `cbor:"has_comma"`
	HasParen  bool   `cbor:"has_paren"`
	HasStar   bool   `cbor:"has_star"`
	HasClose  bool   `cbor:"has_close"`
}

// WriteCBOR encodes every token in arena as a CBOR array and writes it to w.
func WriteCBOR(w io.Writer, arena *token.Arena) error {
	toks := arena.Tokens()
	out := make([]cborToken, len(toks))
	for i, t := range toks {
		out[i] = cborToken{
			RootID:    t.RootID,
			Offset:    t.Offset,
			Length:    t.Length,
			Type:      t.Type.String(),
			Casing:    t.Casing.String(),
			PreSpace:  t.PreSpace,
			PreBreak:  t.PreBreak,
			HasJoiner: t.HasJoiner,
			Depth:     t.Depth,
			HasSemi:   t.HasSemi,
			HasComma:  t.HasComma,
			HasParen:  t.HasParen,
			HasStar:   t.HasStar,
			HasClose:  t.HasClose,
		}
	}

	enc, err := cbor.CTAP2EncOptions().EncMode()
	if err != nil {
		return fmt.Errorf("export: build cbor encoder: %w", err)
	}
	if err := enc.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("export: encode cbor: %w", err)
	}
	return nil
}
