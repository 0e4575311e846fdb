package huffman

import (
	"cmp"
	"container/heap"
	"fmt"
	"math/bits"
)

type heapEntry[S cmp.Ordered] struct {
	node Node[S]
	seq  uint64
}

// nodeHeap orders by (weight, seq). seq is unique so the order is total.
type nodeHeap[S cmp.Ordered] []heapEntry[S]

func (h nodeHeap[S]) Len() int { return len(h) }
func (h nodeHeap[S]) Less(i, j int) bool {
	wi, wj := h[i].node.Weight(), h[j].node.Weight()
	if wi != wj {
		return wi < wj
	}
	return h[i].seq < h[j].seq
}
func (h nodeHeap[S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap[S]) Push(x any)   { *h = append(*h, x.(heapEntry[S])) }
func (h *nodeHeap[S]) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}

// BuildTree returns the root of the Huffman tree for freqs.
//
// Equal weights are broken by sequence number: leaves are numbered in
// ascending symbol order, merged nodes in order of creation. See the package
// documentation for the full rule.
func BuildTree[S cmp.Ordered](freqs FrequencyTable[S]) (Node[S], error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := freqs.Symbols()
	h := make(nodeHeap[S], 0, len(symbols))
	for i, sym := range symbols {
		f := freqs[sym]
		if f == 0 {
			return nil, fmt.Errorf("%w: symbol %v", ErrZeroFrequency, sym)
		}
		h = append(h, heapEntry[S]{node: &Leaf[S]{Symbol: sym, Freq: f}, seq: uint64(i)})
	}
	heap.Init(&h)

	next := uint64(len(h))
	for h.Len() > 1 {
		left := heap.Pop(&h).(heapEntry[S])
		right := heap.Pop(&h).(heapEntry[S])

		w, carry := bits.Add64(left.node.Weight(), right.node.Weight(), 0)
		if carry != 0 {
			return nil, ErrWeightOverflow
		}
		heap.Push(&h, heapEntry[S]{
			node: &Internal[S]{Left: left.node, Right: right.node, Freq: w},
			seq:  next,
		})
		next++
	}
	return h[0].node, nil
}
