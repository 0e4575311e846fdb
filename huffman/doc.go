package huffman

/*

# Huffman primitives

This package builds a prefix-free binary code from symbol frequencies,
encodes symbol sequences into a packed bit-string, and decodes them again
by walking the tree.

It follows the same "functional primitives" style as the rest of the module:

- small, composable functions
- explicit data layouts
- a burden of knowledge on the caller for hot paths

The pipeline is strictly forward:

	CountFrequencies -> BuildTree -> DeriveCodes -> Encode
	                       |
	                       +---------------------> Decode

Decode needs the tree, not just the code table.

## Tree shape

A tree is a sum type with exactly two variants, *Leaf and *Internal. Every
Internal node has exactly two children and a weight equal to the sum of its
children's weights. A table with a single distinct symbol produces a bare
*Leaf root with no Internal ancestor.

## Tie-break rule

The greedy merge is ambiguous when several nodes share the minimum weight.
BuildTree resolves it with a fixed order so that equal frequency tables
always produce identical trees, and hence identical codes:

 1. lower weight first
 2. then lower sequence number

Leaves are numbered 0..n-1 in ascending symbol order. Each merged node takes
the next number after every number already issued. The first node removed
from the queue becomes the left child and the second becomes the right child.

## Bit numbering

Codes assign 0 to a left branch and 1 to a right branch. Bits packs bit i
into byte i/8 at position 7-(i%8), so the first bit of a stream is the MSB of
byte 0.

## Degenerate single-symbol trees

A bare *Leaf root has no branch to label, so its symbol gets the one bit code
"0". The decoder emits one symbol per bit consumed for such a tree.

## Malformed streams

If a stream ends part way down a root-to-leaf path, Decode discards the
dangling bits and returns every fully decoded symbol together with an error
wrapping ErrMalformedBitstream.

*/
