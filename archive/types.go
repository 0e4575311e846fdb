package archive

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "HUF1"
	VersionV1 uint8 = 1

	// BitOrderMSB0 means bit 0 is the most-significant bit of byte 0.
	BitOrderMSB0 uint8 = 0

	// FlagSingleSymbol is set when the table holds exactly one symbol, so
	// every payload bit decodes to that symbol.
	FlagSingleSymbol uint8 = 1 << 0

	flagsKnown = FlagSingleSymbol

	// TableLenBytes is the width of the table length prefix.
	TableLenBytes = 4

	// MaxTableBytes bounds the encoded table. 256 symbols need far less.
	MaxTableBytes = 16 * 1024
)

var (
	ErrBadRegionSize  = errors.New("archive: region buffer too small")
	ErrNotInitialized = errors.New("archive: header not initialized")

	ErrBadMagic    = errors.New("archive: header magic invalid")
	ErrBadVersion  = errors.New("archive: header version invalid")
	ErrBadBitOrder = errors.New("archive: header bitOrder unsupported")
	ErrBadFlags    = errors.New("archive: header flags invalid")

	ErrTableTooLarge       = errors.New("archive: frequency table too large")
	ErrBadTable            = errors.New("archive: frequency table invalid")
	ErrSymbolCountMismatch = errors.New("archive: symbol count disagrees with table")
	ErrPayloadBitsMismatch = errors.New("archive: payload bit count disagrees with table")
	ErrTruncatedPayload    = errors.New("archive: payload truncated")
	ErrTrailingData        = errors.New("archive: data after payload")
	ErrChecksumMismatch    = errors.New("archive: checksum mismatch")
)

type HeaderV1 struct {
	BitOrder    uint8
	Flags       uint8
	SymbolCount uint64
	PayloadBits uint64
	Checksum    uint64
}

// PayloadBytes returns the byte length of the packed payload.
func (h HeaderV1) PayloadBytes() uint64 {
	return (h.PayloadBits + 7) / 8
}
