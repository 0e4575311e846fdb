package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderV1RoundTrip(t *testing.T) {
	region := make([]byte, HeaderBytesV1)
	want := HeaderV1{
		BitOrder:    BitOrderMSB0,
		Flags:       FlagSingleSymbol,
		SymbolCount: 13,
		PayloadBits: 41,
		Checksum:    0x0123456789abcdef,
	}
	require.NoError(t, EncodeHeaderV1(region, want))
	assert.Equal(t, MagicV1, string(region[0:4]))
	assert.Equal(t, uint64(6), want.PayloadBytes())

	got, ok, err := DecodeHeaderV1(region)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestDecodeHeaderV1ZeroRegion(t *testing.T) {
	_, ok, err := DecodeHeaderV1(make([]byte, HeaderBytesV1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecodeHeaderV1Errors(t *testing.T) {
	valid := make([]byte, HeaderBytesV1)
	require.NoError(t, EncodeHeaderV1(valid, HeaderV1{SymbolCount: 1, PayloadBits: 1}))

	tests := []struct {
		name    string
		mutate  func(b []byte) []byte
		wantErr error
	}{
		{"short", func(b []byte) []byte { return b[:HeaderBytesV1-1] }, ErrBadRegionSize},
		{"magic", func(b []byte) []byte { b[0] = 'X'; return b }, ErrBadMagic},
		{"version", func(b []byte) []byte { b[4] = 2; return b }, ErrBadVersion},
		{"bit order", func(b []byte) []byte { b[5] = 1; return b }, ErrBadBitOrder},
		{"unknown flag", func(b []byte) []byte { b[6] = 0x80; return b }, ErrBadFlags},
		{"reserved byte", func(b []byte) []byte { b[7] = 1; return b }, ErrBadFlags},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := tt.mutate(append([]byte(nil), valid...))
			_, _, err := DecodeHeaderV1(region)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEncodeHeaderV1Errors(t *testing.T) {
	require.ErrorIs(t, EncodeHeaderV1(make([]byte, 8), HeaderV1{}), ErrBadRegionSize)
	require.ErrorIs(t, EncodeHeaderV1(make([]byte, HeaderBytesV1), HeaderV1{BitOrder: 1}), ErrBadBitOrder)
	require.ErrorIs(t, EncodeHeaderV1(make([]byte, HeaderBytesV1), HeaderV1{Flags: 2}), ErrBadFlags)
}
