package archive

import (
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-huffman/huffman"
)

// frequencyTable is the persisted form of a byte frequency table. Symbols
// are strictly ascending and Counts[i] is the count of Symbols[i].
type frequencyTable struct {
	Symbols []byte   `cbor:"1,keyasint"`
	Counts  []uint64 `cbor:"2,keyasint"`
}

func encodeTable(codec dtcbor.CBORCodec, freqs huffman.FrequencyTable[byte]) ([]byte, error) {
	t := frequencyTable{
		Symbols: freqs.Symbols(),
	}
	t.Counts = make([]uint64, len(t.Symbols))
	for i, sym := range t.Symbols {
		t.Counts[i] = freqs[sym]
	}
	data, err := codec.MarshalCBOR(t)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxTableBytes {
		return nil, ErrTableTooLarge
	}
	return data, nil
}

func decodeTable(codec dtcbor.CBORCodec, data []byte) (huffman.FrequencyTable[byte], error) {
	var t frequencyTable
	if err := codec.UnmarshalInto(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	if len(t.Symbols) != len(t.Counts) {
		return nil, fmt.Errorf("%w: %d symbols, %d counts", ErrBadTable, len(t.Symbols), len(t.Counts))
	}

	freqs := make(huffman.FrequencyTable[byte], len(t.Symbols))
	for i, sym := range t.Symbols {
		if i > 0 && sym <= t.Symbols[i-1] {
			return nil, fmt.Errorf("%w: symbols not ascending at %d", ErrBadTable, i)
		}
		if t.Counts[i] == 0 {
			return nil, fmt.Errorf("%w: %w: symbol %d", ErrBadTable, huffman.ErrZeroFrequency, sym)
		}
		freqs[sym] = t.Counts[i]
	}
	return freqs, nil
}
