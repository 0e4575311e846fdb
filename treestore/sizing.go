package treestore

// NodeCountMax returns the node count of a Huffman tree with leafCount leaves.
// Every internal node has exactly two children so the count is exactly 2N-1.
func NodeCountMax(leafCount uint64) uint64 {
	if leafCount == 0 {
		return 0
	}
	return 2*leafCount - 1
}

// NodeStoreBytes returns the node store bytes for leafCount leaves.
func NodeStoreBytes(leafCount uint64) uint64 {
	return NodeCountMax(leafCount) * NodeRecordBytes
}
