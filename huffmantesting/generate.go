package huffmantesting

import (
	"math/rand"
	"slices"
	"strings"
)

const (
	HelloHuffman  = "hello huffman"
	LowerAlphabet = "abcdefghijklmnopqrstuvwxyz "
)

// GenerateText returns n characters drawn uniformly from alphabet.
func GenerateText(rng *rand.Rand, n int, alphabet string) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
	}
	return sb.String()
}

// GenerateSkewedBytes returns n bytes with a roughly geometric distribution:
// byte k is about twice as likely as byte k+1.
func GenerateSkewedBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		var b byte
		for b < 255 && rng.Intn(2) == 0 {
			b++
		}
		out[i] = b
	}
	return out
}

// GenerateBytes returns n uniformly random bytes.
func GenerateBytes(rng *rand.Rand, n int) []byte {
	out := make([]byte, n)
	_, _ = rng.Read(out)
	return out
}

// FibonacciWeights returns the first n Fibonacci numbers starting 1, 1. These
// produce the deepest possible Huffman tree for n symbols.
func FibonacciWeights(n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		if i < 2 {
			out[i] = 1
			continue
		}
		out[i] = out[i-1] + out[i-2]
	}
	return out
}

// OptimalCost returns the minimum weighted path length over all binary prefix
// trees for weights, using the two-queue method over sorted weights. It is
// deliberately independent of any heap based builder.
//
// A single weight is costed at depth 1 to match a one bit code.
func OptimalCost(weights []uint64) uint64 {
	switch len(weights) {
	case 0:
		return 0
	case 1:
		return weights[0]
	}

	leaves := slices.Clone(weights)
	slices.Sort(leaves)
	var merged []uint64

	pop := func() uint64 {
		if len(merged) == 0 || (len(leaves) > 0 && leaves[0] <= merged[0]) {
			w := leaves[0]
			leaves = leaves[1:]
			return w
		}
		w := merged[0]
		merged = merged[1:]
		return w
	}

	// Every merge adds its weight once per level it sits below the root.
	var cost uint64
	for len(leaves)+len(merged) > 1 {
		w := pop() + pop()
		cost += w
		merged = append(merged, w)
	}
	return cost
}

// IsPrefixFree reports whether no code in codes is a prefix of another.
func IsPrefixFree(codes []string) bool {
	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	for i := 1; i < len(sorted); i++ {
		if strings.HasPrefix(sorted[i], sorted[i-1]) {
			return false
		}
	}
	return true
}
