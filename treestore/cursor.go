package treestore

import "cmp"

// Cursor decodes a bitstream one bit at a time against a Store. A Cursor is
// not safe for concurrent use; create one per stream.
type Cursor[S cmp.Ordered] struct {
	s       *Store[S]
	at      Ref
	pending int
}

func (s *Store[S]) NewCursor() *Cursor[S] {
	return &Cursor[S]{s: s, at: s.Root()}
}

// Step consumes one bit. When it completes a path it returns the leaf symbol
// with emitted=true and resets to the root. A single leaf store emits on
// every bit regardless of its value.
func (c *Cursor[S]) Step(bit uint8) (sym S, emitted bool) {
	root := c.s.Root()
	if c.s.Kind(root) == KindLeaf {
		return c.s.Symbol(root)
	}

	if bit == 0 {
		c.at = c.s.Left(c.at)
	} else {
		c.at = c.s.Right(c.at)
	}
	c.pending++

	if sym, ok := c.s.Symbol(c.at); ok {
		c.at = root
		c.pending = 0
		return sym, true
	}
	return sym, false
}

// Pending returns the number of bits consumed since the last emitted symbol.
func (c *Cursor[S]) Pending() int { return c.pending }

// Reset returns the cursor to the root, discarding any partial path.
func (c *Cursor[S]) Reset() {
	c.at = c.s.Root()
	c.pending = 0
}
