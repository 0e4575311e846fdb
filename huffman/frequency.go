package huffman

import (
	"cmp"
	"maps"
	"slices"
)

// FrequencyTable maps each distinct symbol to its occurrence count.
type FrequencyTable[S cmp.Ordered] map[S]uint64

// CountFrequencies counts the occurrences of each symbol. Empty input yields
// an empty table.
func CountFrequencies[S cmp.Ordered](symbols []S) FrequencyTable[S] {
	freqs := make(FrequencyTable[S])
	for _, s := range symbols {
		freqs[s]++
	}
	return freqs
}

// CountBytes counts byte frequencies.
func CountBytes(data []byte) FrequencyTable[byte] {
	var counts [256]uint64
	for _, b := range data {
		counts[b]++
	}
	freqs := make(FrequencyTable[byte])
	for i, c := range counts {
		if c != 0 {
			freqs[byte(i)] = c
		}
	}
	return freqs
}

// CountRunes counts the runes of s.
func CountRunes(s string) FrequencyTable[rune] {
	freqs := make(FrequencyTable[rune])
	for _, r := range s {
		freqs[r]++
	}
	return freqs
}

// Symbols returns the keys in ascending order.
func (f FrequencyTable[S]) Symbols() []S {
	return slices.Sorted(maps.Keys(f))
}

// Total returns the sum of all counts, i.e. the length of the input.
func (f FrequencyTable[S]) Total() uint64 {
	var total uint64
	for _, c := range f {
		total += c
	}
	return total
}
