package huffman

import "cmp"

// WeightedPathLength returns the sum over leaves of frequency * depth.
//
// A bare leaf root is counted at depth 1, matching its one bit code, so the
// result always equals the encoded bit length of the input the tree was
// built from.
func WeightedPathLength[S cmp.Ordered](root Node[S]) uint64 {
	if leaf, ok := root.(*Leaf[S]); ok {
		return leaf.Freq
	}
	var total uint64
	var walk func(n Node[S], depth uint64)
	walk = func(n Node[S], depth uint64) {
		switch n := n.(type) {
		case *Leaf[S]:
			total += n.Freq * depth
		case *Internal[S]:
			walk(n.Left, depth+1)
			walk(n.Right, depth+1)
		}
	}
	walk(root, 0)
	return total
}

// Depth returns the length of the longest root-to-leaf path. A bare leaf root
// has depth 0.
func Depth[S cmp.Ordered](root Node[S]) int {
	in, ok := root.(*Internal[S])
	if !ok {
		return 0
	}
	return 1 + max(Depth(in.Left), Depth(in.Right))
}

// Leaves returns the leaves in left to right order.
func Leaves[S cmp.Ordered](root Node[S]) []*Leaf[S] {
	var out []*Leaf[S]
	var walk func(n Node[S])
	walk = func(n Node[S]) {
		switch n := n.(type) {
		case *Leaf[S]:
			out = append(out, n)
		case *Internal[S]:
			walk(n.Left)
			walk(n.Right)
		}
	}
	walk(root)
	return out
}

// EncodedLen returns sum(freq * len(code)). Symbols missing from codes are
// not counted.
func EncodedLen[S cmp.Ordered](freqs FrequencyTable[S], codes CodeTable[S]) uint64 {
	var total uint64
	for sym, f := range freqs {
		total += f * uint64(codes[sym].Len())
	}
	return total
}
