package archive

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/forestrie/go-huffman/huffman"
	"github.com/forestrie/go-huffman/treestore"
)

// Encode compresses all of r and writes the archive to w.
func Encode(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (HeaderV1, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return HeaderV1{}, err
	}
	o, err := newOptions(opts...)
	if err != nil {
		return HeaderV1{}, err
	}
	return encode(ctx, data, w, o)
}

// EncodeBytes compresses data and returns the archive bytes.
func EncodeBytes(ctx context.Context, data []byte, opts ...Option) ([]byte, HeaderV1, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, HeaderV1{}, err
	}
	var buf bytes.Buffer
	h, err := encode(ctx, data, &buf, o)
	if err != nil {
		return nil, HeaderV1{}, err
	}
	return buf.Bytes(), h, nil
}

func encode(ctx context.Context, data []byte, w io.Writer, o *Options) (HeaderV1, error) {
	freqs := huffman.CountBytes(data)
	h := HeaderV1{
		BitOrder:    BitOrderMSB0,
		SymbolCount: uint64(len(data)),
		Checksum:    xxhash.Sum64(data),
	}

	var codec *huffman.Codec[byte]
	if len(data) != 0 {
		var err error
		if codec, err = o.codec(freqs); err != nil {
			return HeaderV1{}, err
		}
		h.PayloadBits = codec.EncodedLen()
		if len(freqs) == 1 {
			h.Flags |= FlagSingleSymbol
		}
	}

	table, err := encodeTable(*o.cborCodec, freqs)
	if err != nil {
		return HeaderV1{}, err
	}

	bw := bufio.NewWriter(w)
	prefix := make([]byte, HeaderBytesV1+TableLenBytes)
	if err := EncodeHeaderV1(prefix, h); err != nil {
		return HeaderV1{}, err
	}
	writeU32BE(prefix[HeaderBytesV1:], uint32(len(table)))
	if _, err := bw.Write(prefix); err != nil {
		return HeaderV1{}, err
	}
	if _, err := bw.Write(table); err != nil {
		return HeaderV1{}, err
	}

	if codec != nil {
		if err := writePayload(ctx, bw, data, codec.Codes()); err != nil {
			return HeaderV1{}, err
		}
	}
	if err := bw.Flush(); err != nil {
		return HeaderV1{}, err
	}

	o.debugf("archive encode: symbols=%d distinct=%d payloadBits=%d tableBytes=%d",
		h.SymbolCount, len(freqs), h.PayloadBits, len(table))
	return h, nil
}

// Decode reads an archive from r and writes the plaintext to w. r is read
// to EOF and any bytes after the payload are rejected with ErrTrailingData.
//
// If the payload is truncated the symbols decoded so far have already been
// written to w when the error, wrapping ErrTruncatedPayload and
// huffman.ErrMalformedBitstream, is returned.
func Decode(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) (HeaderV1, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return HeaderV1{}, err
	}
	return decode(ctx, r, w, o)
}

// DecodeBytes decodes an archive held in memory. On a truncated payload the
// partial plaintext is returned with the error.
func DecodeBytes(ctx context.Context, data []byte, opts ...Option) ([]byte, HeaderV1, error) {
	o, err := newOptions(opts...)
	if err != nil {
		return nil, HeaderV1{}, err
	}
	var buf bytes.Buffer
	h, err := decode(ctx, bytes.NewReader(data), &buf, o)
	return buf.Bytes(), h, err
}

func decode(ctx context.Context, r io.Reader, w io.Writer, o *Options) (HeaderV1, error) {
	br := bufio.NewReader(r)

	prefix := make([]byte, HeaderBytesV1+TableLenBytes)
	if _, err := io.ReadFull(br, prefix); err != nil {
		return HeaderV1{}, fmt.Errorf("%w: %w", ErrBadRegionSize, err)
	}
	h, ok, err := DecodeHeaderV1(prefix)
	if err != nil {
		return HeaderV1{}, err
	}
	if !ok {
		return HeaderV1{}, ErrNotInitialized
	}

	tableLen := readU32BE(prefix[HeaderBytesV1:])
	if tableLen > MaxTableBytes {
		return HeaderV1{}, fmt.Errorf("%w: %d bytes", ErrTableTooLarge, tableLen)
	}
	table := make([]byte, tableLen)
	if _, err := io.ReadFull(br, table); err != nil {
		return HeaderV1{}, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	freqs, err := decodeTable(*o.cborCodec, table)
	if err != nil {
		return HeaderV1{}, err
	}
	if freqs.Total() != h.SymbolCount {
		return HeaderV1{}, fmt.Errorf("%w: header %d, table %d",
			ErrSymbolCountMismatch, h.SymbolCount, freqs.Total())
	}
	if (h.Flags&FlagSingleSymbol != 0) != (len(freqs) == 1) {
		return HeaderV1{}, ErrBadFlags
	}

	digest := xxhash.New()
	out := io.MultiWriter(w, digest)

	if h.SymbolCount != 0 {
		codec, err := o.codec(freqs)
		if err != nil {
			return HeaderV1{}, err
		}
		if codec.EncodedLen() != h.PayloadBits {
			return HeaderV1{}, fmt.Errorf("%w: header %d, table %d",
				ErrPayloadBitsMismatch, h.PayloadBits, codec.EncodedLen())
		}
		store, err := treestore.Flatten(codec.Root())
		if err != nil {
			return HeaderV1{}, err
		}
		if err := readPayload(ctx, br, out, store, h.SymbolCount); err != nil {
			return h, err
		}
	} else if h.PayloadBits != 0 {
		return HeaderV1{}, fmt.Errorf("%w: %d bits for an empty table", ErrPayloadBitsMismatch, h.PayloadBits)
	}

	// r must end with the payload's final byte.
	if n, _ := io.Copy(io.Discard, br); n != 0 {
		return h, fmt.Errorf("%w: %d bytes", ErrTrailingData, n)
	}

	if o.verifyChecksum && digest.Sum64() != h.Checksum {
		return h, fmt.Errorf("%w: header %016x, plaintext %016x", ErrChecksumMismatch, h.Checksum, digest.Sum64())
	}

	o.debugf("archive decode: symbols=%d distinct=%d payloadBits=%d", h.SymbolCount, len(freqs), h.PayloadBits)
	return h, nil
}
