package treestore

// NodeRecordOffset returns the byte offset of ref in nodeStore.
func NodeRecordOffset(ref Ref) uint64 {
	return uint64(ref) * NodeRecordBytes
}

func nodeRec(nodeStore []byte, ref Ref) []byte {
	off := NodeRecordOffset(ref)
	return nodeStore[off : off+NodeRecordBytes]
}

// NodeKindAt returns the kind field for a node record.
func NodeKindAt(nodeStore []byte, ref Ref) NodeKind {
	return NodeKind(nodeRec(nodeStore, ref)[0])
}

// NodeRightSpan returns the node-count of the right subtree (only meaningful for KindInternal).
func NodeRightSpan(nodeStore []byte, ref Ref) uint32 {
	return readU32BE(nodeRec(nodeStore, ref)[4:8])
}

// NodeSubtreeSize returns the node-count of this subtree (incl this node).
func NodeSubtreeSize(nodeStore []byte, ref Ref) uint32 {
	return readU32BE(nodeRec(nodeStore, ref)[8:12])
}

// NodeLeafOrdinal returns leafOrdinal (only meaningful for KindLeaf).
func NodeLeafOrdinal(nodeStore []byte, ref Ref) uint32 {
	return readU32BE(nodeRec(nodeStore, ref)[12:16])
}

// NodeWeight returns the stored weight.
func NodeWeight(nodeStore []byte, ref Ref) uint64 {
	return readU64BE(nodeRec(nodeStore, ref)[16:24])
}

// NodeWriteLeaf writes a leaf record in-place.
func NodeWriteLeaf(nodeStore []byte, ref Ref, leafOrdinal uint32, weight uint64) {
	rec := nodeRec(nodeStore, ref)
	clear(rec)
	rec[0] = byte(KindLeaf)
	writeU32BE(rec[4:8], 0)  // rightSpan
	writeU32BE(rec[8:12], 1) // subtreeSize
	writeU32BE(rec[12:16], leafOrdinal)
	writeU64BE(rec[16:24], weight)
}

// NodeWriteInternal writes an internal record in-place.
func NodeWriteInternal(nodeStore []byte, ref Ref, rightSpan uint32, subtreeSize uint32, weight uint64) {
	rec := nodeRec(nodeStore, ref)
	clear(rec)
	rec[0] = byte(KindInternal)
	writeU32BE(rec[4:8], rightSpan)
	writeU32BE(rec[8:12], subtreeSize)
	writeU32BE(rec[12:16], 0)
	writeU64BE(rec[16:24], weight)
}

// LeftRight returns the child refs of the internal node at ref.
func LeftRight(nodeStore []byte, ref Ref) (left Ref, right Ref) {
	right = ref - 1
	left = right - Ref(NodeRightSpan(nodeStore, ref))
	return left, right
}
