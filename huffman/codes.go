package huffman

import (
	"cmp"
	"fmt"
)

// DeriveCodes walks the tree depth first and returns the code of every leaf.
// A bare leaf root gets the one bit code "0". A nil root yields an empty table.
func DeriveCodes[S cmp.Ordered](root Node[S]) CodeTable[S] {
	codes := make(CodeTable[S])
	if isNil(root) {
		return codes
	}
	if leaf, ok := root.(*Leaf[S]); ok {
		codes[leaf.Symbol] = Bits{}.with(0)
		return codes
	}

	var walk func(n Node[S], prefix Bits)
	walk = func(n Node[S], prefix Bits) {
		switch n := n.(type) {
		case *Leaf[S]:
			if n != nil {
				codes[n.Symbol] = prefix
			}
		case *Internal[S]:
			if n == nil {
				return
			}
			walk(n.Left, prefix.with(0))
			walk(n.Right, prefix.with(1))
		}
	}
	walk(root, Bits{})
	return codes
}

// Encode concatenates the code of each symbol in input order.
func Encode[S cmp.Ordered](symbols []S, codes CodeTable[S]) (Bits, error) {
	var out Bits
	for i, sym := range symbols {
		code, ok := codes[sym]
		if !ok {
			return Bits{}, fmt.Errorf("%w: %v at position %d", ErrUnknownSymbol, sym, i)
		}
		out.AppendBits(code)
	}
	return out, nil
}

// Decode walks the tree from the root for each bit, emitting a symbol and
// returning to the root every time a leaf is reached.
//
// If the stream ends part way down a path the dangling bits are discarded and
// the fully decoded symbols are returned with an error wrapping
// ErrMalformedBitstream.
func Decode[S cmp.Ordered](stream Bits, root Node[S]) ([]S, error) {
	var out []S

	if isNil(root) {
		return nil, ErrEmptyInput
	}
	if r, ok := root.(*Leaf[S]); ok {
		// Each bit is one occurrence of the only symbol.
		out = make([]S, stream.Len())
		for i := range out {
			out[i] = r.Symbol
		}
		return out, nil
	}

	cur := root
	pending := 0
	for i := 0; i < stream.Len(); i++ {
		in := cur.(*Internal[S])
		if stream.At(i) == 0 {
			cur = in.Left
		} else {
			cur = in.Right
		}
		pending++
		if isNil(cur) {
			return out, fmt.Errorf(
				"%w: bit %d leads to a missing child after %d symbols", ErrMalformedBitstream, i, len(out))
		}

		if leaf, ok := cur.(*Leaf[S]); ok {
			out = append(out, leaf.Symbol)
			cur = root
			pending = 0
		}
	}
	if pending != 0 {
		return out, fmt.Errorf(
			"%w: %d dangling bits after %d symbols", ErrMalformedBitstream, pending, len(out))
	}
	return out, nil
}

// isNil reports whether n is nil, including a typed nil variant.
func isNil[S cmp.Ordered](n Node[S]) bool {
	switch n := n.(type) {
	case nil:
		return true
	case *Leaf[S]:
		return n == nil
	case *Internal[S]:
		return n == nil
	}
	return false
}
