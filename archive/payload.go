package archive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/forestrie/go-huffman/huffman"
	"github.com/forestrie/go-huffman/treestore"
	"github.com/icza/bitio"
)

// checkEvery is the number of symbols, or payload bits on decode, between
// context checks.
const checkEvery = 64 * 1024

// packedCode caches a code in the form the bit writer wants.
type packedCode struct {
	code huffman.Bits
	v    uint64
	n    uint8
	fits bool
}

func newPackedCode(code huffman.Bits) packedCode {
	v, ok := code.Uint64()
	return packedCode{code: code, v: v, n: uint8(code.Len()), fits: ok}
}

func (p packedCode) write(w *bitio.Writer) error {
	if p.fits {
		return w.WriteBits(p.v, p.n)
	}
	for i := 0; i < p.code.Len(); i++ {
		if err := w.WriteBool(p.code.At(i) == 1); err != nil {
			return err
		}
	}
	return nil
}

func writePayload(ctx context.Context, w io.Writer, data []byte, codes huffman.CodeTable[byte]) error {
	var packed [256]packedCode
	for sym, code := range codes {
		packed[sym] = newPackedCode(code)
	}

	bw := bitio.NewWriter(w)
	for i, b := range data {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if packed[b].n == 0 {
			return fmt.Errorf("%w: %d at position %d", huffman.ErrUnknownSymbol, b, i)
		}
		if err := packed[b].write(bw); err != nil {
			return err
		}
	}
	// Close pads the final byte with zeros; it does not close w.
	return bw.Close()
}

// readPayload decodes exactly symbolCount symbols from r into w. Symbols
// decoded before a truncation are written to w before the error is returned.
func readPayload(
	ctx context.Context, r io.Reader, w io.Writer, store *treestore.Store[byte], symbolCount uint64,
) error {
	br := bitio.NewReader(r)
	out := bufio.NewWriter(w)
	cur := store.NewCursor()

	var emitted, consumed uint64
	for emitted < symbolCount {
		if consumed%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		bit, err := br.ReadBool()
		if err != nil {
			if ferr := out.Flush(); ferr != nil {
				return ferr
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return fmt.Errorf("%w: %w: %d of %d symbols, %d dangling bits",
					ErrTruncatedPayload, huffman.ErrMalformedBitstream, emitted, symbolCount, cur.Pending())
			}
			return err
		}
		consumed++

		var b uint8
		if bit {
			b = 1
		}
		sym, ok := cur.Step(b)
		if !ok {
			continue
		}
		if err := out.WriteByte(sym); err != nil {
			return err
		}
		emitted++
	}
	return out.Flush()
}
