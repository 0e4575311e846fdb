package treestore

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/forestrie/go-huffman/huffman"
)

// Store is a flattened, read-only Huffman tree. It is safe for concurrent
// use once returned by Flatten or DecodeRecords.
type Store[S cmp.Ordered] struct {
	nodeStore []byte
	symbols   []S
}

// Flatten writes root into a new postorder arena.
func Flatten[S cmp.Ordered](root huffman.Node[S]) (*Store[S], error) {
	if root == nil {
		return nil, ErrEmptyStore
	}
	leaves := huffman.Leaves(root)
	nodeCount := NodeCountMax(uint64(len(leaves)))
	if nodeCount > uint64(NoRef) {
		return nil, ErrTooManyNodes
	}

	s := &Store[S]{
		nodeStore: make([]byte, NodeStoreBytes(uint64(len(leaves)))),
		symbols:   make([]S, 0, len(leaves)),
	}

	var next Ref
	var emit func(n huffman.Node[S]) uint32
	emit = func(n huffman.Node[S]) uint32 {
		switch n := n.(type) {
		case *huffman.Leaf[S]:
			NodeWriteLeaf(s.nodeStore, next, uint32(len(s.symbols)), n.Freq)
			s.symbols = append(s.symbols, n.Symbol)
			next++
			return 1
		case *huffman.Internal[S]:
			leftSize := emit(n.Left)
			rightSize := emit(n.Right)
			size := leftSize + rightSize + 1
			NodeWriteInternal(s.nodeStore, next, rightSize, size, n.Freq)
			next++
			return size
		}
		return 0
	}
	emit(root)
	return s, nil
}

// DecodeRecords validates records and returns a store over a copy of them.
// symbols lists the leaf symbols by ordinal.
func DecodeRecords[S cmp.Ordered](records []byte, symbols []S) (*Store[S], error) {
	if len(records)%NodeRecordBytes != 0 {
		return nil, ErrNodeStoreBadSize
	}
	count := uint64(len(records) / NodeRecordBytes)
	if count == 0 {
		return nil, ErrEmptyStore
	}
	if count > uint64(NoRef) {
		return nil, ErrTooManyNodes
	}
	if count != NodeCountMax(uint64(len(symbols))) {
		return nil, fmt.Errorf(
			"%w: %d records for %d symbols", ErrNodeStoreBadSize, count, len(symbols))
	}

	var nextLeaf uint32
	for i := Ref(0); uint64(i) < count; i++ {
		switch NodeKindAt(records, i) {
		case KindLeaf:
			if NodeSubtreeSize(records, i) != 1 || NodeRightSpan(records, i) != 0 {
				return nil, fmt.Errorf("%w: leaf at %d", ErrInvalidSubtreeSize, i)
			}
			if int(nextLeaf) >= len(symbols) || NodeLeafOrdinal(records, i) != nextLeaf {
				return nil, fmt.Errorf("%w: leaf at %d has ordinal %d, want %d",
					ErrInvalidLeafOrdinal, i, NodeLeafOrdinal(records, i), nextLeaf)
			}
			nextLeaf++
		case KindInternal:
			if err := checkInternal(records, i); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: %d at %d", ErrInvalidNodeKind, NodeKindAt(records, i), i)
		}
	}
	if uint64(NodeSubtreeSize(records, Ref(count-1))) != count {
		return nil, fmt.Errorf("%w: root does not span the store", ErrInvalidSubtreeSize)
	}

	return &Store[S]{
		nodeStore: slices.Clone(records),
		symbols:   slices.Clone(symbols),
	}, nil
}

func checkInternal(records []byte, i Ref) error {
	rightSpan := NodeRightSpan(records, i)
	if rightSpan == 0 || uint64(rightSpan) >= uint64(i) {
		return fmt.Errorf("%w: %d at %d", ErrInvalidRightSpan, rightSpan, i)
	}
	left, right := LeftRight(records, i)
	if NodeSubtreeSize(records, right) != rightSpan {
		return fmt.Errorf("%w: right span %d disagrees with right subtree at %d",
			ErrInvalidRightSpan, rightSpan, i)
	}
	leftSize := NodeSubtreeSize(records, left)
	if leftSize == 0 || uint64(leftSize) > uint64(left)+1 {
		return fmt.Errorf("%w: left subtree at %d", ErrInvalidSubtreeSize, left)
	}
	if uint64(NodeSubtreeSize(records, i)) != uint64(leftSize)+uint64(rightSpan)+1 {
		return fmt.Errorf("%w: at %d", ErrInvalidSubtreeSize, i)
	}
	lw, rw := NodeWeight(records, left), NodeWeight(records, right)
	if lw+rw < lw || NodeWeight(records, i) != lw+rw {
		return fmt.Errorf("%w: at %d", ErrWeightMismatch, i)
	}
	return nil
}

// EncodeRecords returns a copy of the raw node records.
func (s *Store[S]) EncodeRecords() []byte { return slices.Clone(s.nodeStore) }

// Symbols returns the leaf symbols by ordinal.
func (s *Store[S]) Symbols() []S { return slices.Clone(s.symbols) }

// Len returns the number of node records.
func (s *Store[S]) Len() int { return len(s.nodeStore) / NodeRecordBytes }

// Root returns the ref of the root record, always the last.
func (s *Store[S]) Root() Ref { return Ref(s.Len() - 1) }

func (s *Store[S]) Kind(ref Ref) NodeKind { return NodeKindAt(s.nodeStore, ref) }

func (s *Store[S]) Weight(ref Ref) uint64 { return NodeWeight(s.nodeStore, ref) }

// Left returns the left child of an internal node, NoRef for a leaf.
func (s *Store[S]) Left(ref Ref) Ref {
	if s.Kind(ref) != KindInternal {
		return NoRef
	}
	left, _ := LeftRight(s.nodeStore, ref)
	return left
}

// Right returns the right child of an internal node, NoRef for a leaf.
func (s *Store[S]) Right(ref Ref) Ref {
	if s.Kind(ref) != KindInternal {
		return NoRef
	}
	return ref - 1
}

// Symbol returns the symbol of a leaf. ok=false for an internal node.
func (s *Store[S]) Symbol(ref Ref) (sym S, ok bool) {
	if s.Kind(ref) != KindLeaf {
		return sym, false
	}
	return s.symbols[NodeLeafOrdinal(s.nodeStore, ref)], true
}

// Tree rebuilds the pointer tree.
func (s *Store[S]) Tree() huffman.Node[S] {
	var build func(ref Ref) huffman.Node[S]
	build = func(ref Ref) huffman.Node[S] {
		if sym, ok := s.Symbol(ref); ok {
			return &huffman.Leaf[S]{Symbol: sym, Freq: s.Weight(ref)}
		}
		return &huffman.Internal[S]{
			Left:  build(s.Left(ref)),
			Right: build(s.Right(ref)),
			Freq:  s.Weight(ref),
		}
	}
	return build(s.Root())
}

// Decode decodes stream against the arena. See huffman.Decode for the
// handling of a truncated stream.
func (s *Store[S]) Decode(stream huffman.Bits) ([]S, error) {
	c := s.NewCursor()
	var out []S
	for i := 0; i < stream.Len(); i++ {
		if sym, ok := c.Step(stream.At(i)); ok {
			out = append(out, sym)
		}
	}
	if c.Pending() != 0 {
		return out, fmt.Errorf("%w: %d dangling bits after %d symbols",
			huffman.ErrMalformedBitstream, c.Pending(), len(out))
	}
	return out, nil
}
