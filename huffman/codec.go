package huffman

import (
	"cmp"
	"maps"
)

// Codec binds a tree to its derived code table. It is immutable once
// returned by NewCodec and may be shared by concurrent callers.
type Codec[S cmp.Ordered] struct {
	freqs FrequencyTable[S]
	root  Node[S]
	codes CodeTable[S]
}

// NewCodec builds the tree for freqs and derives its codes.
func NewCodec[S cmp.Ordered](freqs FrequencyTable[S]) (*Codec[S], error) {
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	return &Codec[S]{
		freqs: maps.Clone(freqs),
		root:  root,
		codes: DeriveCodes(root),
	}, nil
}

// Compress counts, builds, derives and encodes in one pass over symbols.
func Compress[S cmp.Ordered](symbols []S) (*Codec[S], Bits, error) {
	c, err := NewCodec(CountFrequencies(symbols))
	if err != nil {
		return nil, Bits{}, err
	}
	encoded, err := c.Encode(symbols)
	if err != nil {
		return nil, Bits{}, err
	}
	return c, encoded, nil
}

func (c *Codec[S]) Root() Node[S] { return c.root }

// Frequencies returns a copy of the table the codec was built from.
func (c *Codec[S]) Frequencies() FrequencyTable[S] { return maps.Clone(c.freqs) }

// Codes returns a deep copy of the code table. Appending to a returned code
// does not affect the codec.
func (c *Codec[S]) Codes() CodeTable[S] {
	out := make(CodeTable[S], len(c.codes))
	for sym, code := range c.codes {
		out[sym] = code.Clone()
	}
	return out
}

// Code returns a copy of the code for sym.
func (c *Codec[S]) Code(sym S) (Bits, bool) {
	code, ok := c.codes[sym]
	if !ok {
		return Bits{}, false
	}
	return code.Clone(), true
}

func (c *Codec[S]) Encode(symbols []S) (Bits, error) { return Encode(symbols, c.codes) }

func (c *Codec[S]) Decode(stream Bits) ([]S, error) { return Decode(stream, c.root) }

// EncodedLen is the bit length of encoding the input the codec was built from.
func (c *Codec[S]) EncodedLen() uint64 { return EncodedLen(c.freqs, c.codes) }

func (c *Codec[S]) WeightedPathLength() uint64 { return WeightedPathLength(c.root) }
