package huffman

import (
	"cmp"
	"errors"
)

var (
	ErrEmptyInput         = errors.New("huffman: empty input")
	ErrZeroFrequency      = errors.New("huffman: symbol frequency must be non-zero")
	ErrWeightOverflow     = errors.New("huffman: total weight overflows uint64")
	ErrUnknownSymbol      = errors.New("huffman: unknown symbol")
	ErrMalformedBitstream = errors.New("huffman: malformed bitstream")

	ErrInvalidBit     = errors.New("huffman: invalid bit digit")
	ErrBitsOutOfRange = errors.New("huffman: bit count exceeds buffer")
)

// Node is a Huffman tree node. The only implementations are *Leaf and
// *Internal.
type Node[S cmp.Ordered] interface {
	Weight() uint64
	node()
}

// Leaf holds a symbol and its frequency.
type Leaf[S cmp.Ordered] struct {
	Symbol S
	Freq   uint64
}

// Internal exclusively owns its two children. Freq is Left.Weight() + Right.Weight().
type Internal[S cmp.Ordered] struct {
	Left  Node[S]
	Right Node[S]
	Freq  uint64
}

func (l *Leaf[S]) Weight() uint64     { return l.Freq }
func (n *Internal[S]) Weight() uint64 { return n.Freq }

func (*Leaf[S]) node()     {}
func (*Internal[S]) node() {}

// CodeTable maps each symbol to its root-to-leaf path, left=0 right=1.
type CodeTable[S cmp.Ordered] map[S]Bits
