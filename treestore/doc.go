package treestore

/*

# Flattened Huffman trees

This package stores a Huffman tree as a contiguous arena of fixed-width node
records in postorder, plus a separate symbol slice for the leaves. There are
no pointers: children are found by index arithmetic.

## Navigation

Every internal record stores `rightSpan`, the node count of its right
subtree. For an internal node at record index i:

	right = i - 1
	left  = i - 1 - rightSpan

The root is always the last record.

## Record layout (NodeRecordBytes = 32, big endian)

	[0]      kind (KindLeaf or KindInternal)
	[1:4]    zero
	[4:8]    rightSpan   (internal only)
	[8:12]   subtreeSize (node count including this node)
	[12:16]  leafOrdinal (leaf only, index into the symbol slice)
	[16:24]  weight
	[24:32]  zero

Leaf ordinals are assigned left to right, so the symbol slice lists the
leaves in the same order as `huffman.Leaves`.

## Decoding

`Cursor` walks the arena one bit at a time. `Store.Decode` follows the same
policy as `huffman.Decode`: a stream that ends part way down a path returns
the symbols decoded so far with an error wrapping
`huffman.ErrMalformedBitstream`.

*/
