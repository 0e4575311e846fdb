package archive

import (
	"bytes"
	"context"
	"testing"

	"github.com/forestrie/go-huffman/codebook"
	"github.com/forestrie/go-huffman/huffman"
	"github.com/forestrie/go-huffman/huffmantesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRoundTrip(t *testing.T) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{
		Seed: 2024, TestLabelPrefix: "TestArchiveRoundTrip"})

	tests := []struct {
		name       string
		data       []byte
		wantFlags  uint8
		wantBitLen uint64
	}{
		{name: "empty", data: []byte{}},
		{name: "single symbol", data: []byte("aaaa"), wantFlags: FlagSingleSymbol, wantBitLen: 4},
		{name: "hello huffman", data: []byte(huffmantesting.HelloHuffman)},
		{name: "text", data: []byte(huffmantesting.GenerateText(tc.Rand(), 10000, huffmantesting.LowerAlphabet))},
		{name: "skewed", data: huffmantesting.GenerateSkewedBytes(tc.Rand(), 10000)},
		{name: "uniform", data: huffmantesting.GenerateBytes(tc.Rand(), 10000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			encoded, h, err := EncodeBytes(ctx, tt.data, WithLogger(tc.GetLog()))
			require.NoError(t, err)
			assert.Equal(t, uint64(len(tt.data)), h.SymbolCount)
			assert.Equal(t, tt.wantFlags, h.Flags)
			if tt.wantBitLen != 0 {
				assert.Equal(t, tt.wantBitLen, h.PayloadBits)
			}

			decoded, h2, err := DecodeBytes(ctx, encoded, WithLogger(tc.GetLog()))
			require.NoError(t, err)
			assert.Equal(t, h, h2)
			assert.Equal(t, len(tt.data), len(decoded))
			assert.True(t, bytes.Equal(tt.data, decoded))
		})
	}
}

func TestArchivePayloadMatchesCoreEncoding(t *testing.T) {
	data := []byte(huffmantesting.HelloHuffman)
	encoded, h, err := EncodeBytes(context.Background(), data)
	require.NoError(t, err)

	c, bits, err := huffman.Compress(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(bits.Len()), h.PayloadBits)
	assert.Equal(t, c.EncodedLen(), h.PayloadBits)

	payload := encoded[len(encoded)-int(h.PayloadBytes()):]
	assert.Equal(t, bits.Bytes(), payload)
}

func TestArchiveStreamingAPI(t *testing.T) {
	data := []byte("stream me through io.Reader and io.Writer")
	var archived bytes.Buffer
	h, err := Encode(context.Background(), bytes.NewReader(data), &archived)
	require.NoError(t, err)

	var plain bytes.Buffer
	h2, err := Decode(context.Background(), &archived, &plain)
	require.NoError(t, err)
	assert.Equal(t, h, h2)
	assert.Equal(t, data, plain.Bytes())
}

func TestArchiveWithCodebook(t *testing.T) {
	cache, err := codebook.New(codebook.DefaultSize)
	require.NoError(t, err)

	data := []byte(huffmantesting.HelloHuffman)
	encoded, _, err := EncodeBytes(context.Background(), data, WithCodebook(cache))
	require.NoError(t, err)
	decoded, _, err := DecodeBytes(context.Background(), encoded, WithCodebook(cache))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)

	hits, misses := cache.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestArchiveTruncatedPayload(t *testing.T) {
	data := []byte(huffmantesting.HelloHuffman)
	encoded, h, err := EncodeBytes(context.Background(), data)
	require.NoError(t, err)
	require.Greater(t, h.PayloadBytes(), uint64(1))

	decoded, _, err := DecodeBytes(context.Background(), encoded[:len(encoded)-1])
	require.ErrorIs(t, err, ErrTruncatedPayload)
	require.ErrorIs(t, err, huffman.ErrMalformedBitstream)
	assert.Less(t, len(decoded), len(data))
	assert.Equal(t, data[:len(decoded)], decoded)
}

func TestArchiveCorruption(t *testing.T) {
	data := []byte(huffmantesting.HelloHuffman)
	good, h, err := EncodeBytes(context.Background(), data)
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(b []byte) []byte
		wantErr error
	}{
		{"short header", func(b []byte) []byte { return b[:10] }, ErrBadRegionSize},
		{"zero header", func(b []byte) []byte { clear(b[:HeaderBytesV1]); return b }, ErrNotInitialized},
		{"magic", func(b []byte) []byte { b[1] = 'X'; return b }, ErrBadMagic},
		{"version", func(b []byte) []byte { b[4] = 9; return b }, ErrBadVersion},
		{"table too large", func(b []byte) []byte {
			writeU32BE(b[HeaderBytesV1:], MaxTableBytes+1)
			return b
		}, ErrTableTooLarge},
		{"table garbage", func(b []byte) []byte {
			b[HeaderBytesV1+TableLenBytes] = 0xff
			return b
		}, ErrBadTable},
		{"symbol count", func(b []byte) []byte {
			writeU64BE(b[8:16], h.SymbolCount+1)
			return b
		}, ErrSymbolCountMismatch},
		{"payload bits", func(b []byte) []byte {
			writeU64BE(b[16:24], h.PayloadBits+1)
			return b
		}, ErrPayloadBitsMismatch},
		{"checksum", func(b []byte) []byte {
			writeU64BE(b[24:32], h.Checksum^1)
			return b
		}, ErrChecksumMismatch},
		{"single symbol flag", func(b []byte) []byte { b[6] = FlagSingleSymbol; return b }, ErrBadFlags},
		{"trailing byte", func(b []byte) []byte { return append(b, 0) }, ErrTrailingData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corrupt := tt.mutate(append([]byte(nil), good...))
			_, _, err := DecodeBytes(context.Background(), corrupt)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestArchiveRejectsTrailingData(t *testing.T) {
	for _, data := range [][]byte{{}, []byte("aaaa"), []byte(huffmantesting.HelloHuffman)} {
		encoded, _, err := EncodeBytes(context.Background(), data)
		require.NoError(t, err)

		decoded, _, err := DecodeBytes(context.Background(), append(encoded, "extra"...))
		require.ErrorIs(t, err, ErrTrailingData)
		assert.Contains(t, err.Error(), "5 bytes")
		// The payload itself decoded in full.
		assert.Equal(t, data, decoded)
	}
}

func TestArchiveChecksumCanBeSkipped(t *testing.T) {
	data := []byte(huffmantesting.HelloHuffman)
	encoded, h, err := EncodeBytes(context.Background(), data)
	require.NoError(t, err)
	writeU64BE(encoded[24:32], h.Checksum^1)

	decoded, _, err := DecodeBytes(context.Background(), encoded, WithVerifyChecksum(false))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestArchiveHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := EncodeBytes(ctx, []byte("cancelled before start"))
	require.ErrorIs(t, err, context.Canceled)

	encoded, _, err := EncodeBytes(context.Background(), []byte("cancelled before start"))
	require.NoError(t, err)
	_, _, err = DecodeBytes(ctx, encoded)
	require.ErrorIs(t, err, context.Canceled)
}

func TestTableRejectsBadEntries(t *testing.T) {
	codec, err := NewCBORCodec()
	require.NoError(t, err)

	tests := []struct {
		name  string
		table frequencyTable
	}{
		{"length mismatch", frequencyTable{Symbols: []byte{'a', 'b'}, Counts: []uint64{1}}},
		{"not ascending", frequencyTable{Symbols: []byte{'b', 'a'}, Counts: []uint64{1, 1}}},
		{"duplicate", frequencyTable{Symbols: []byte{'a', 'a'}, Counts: []uint64{1, 1}}},
		{"zero count", frequencyTable{Symbols: []byte{'a'}, Counts: []uint64{0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := codec.MarshalCBOR(tt.table)
			require.NoError(t, err)
			_, err = decodeTable(codec, data)
			require.ErrorIs(t, err, ErrBadTable)
		})
	}
}
