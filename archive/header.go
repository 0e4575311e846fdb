package archive

import "bytes"

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}

	if bytes.Equal(region[0:4], []byte{0, 0, 0, 0}) {
		return HeaderV1{}, false, nil
	}

	if string(region[0:4]) != MagicV1 {
		return HeaderV1{}, false, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return HeaderV1{}, false, ErrBadVersion
	}

	h.BitOrder = region[5]
	h.Flags = region[6]
	h.SymbolCount = readU64BE(region[8:16])
	h.PayloadBits = readU64BE(region[16:24])
	h.Checksum = readU64BE(region[24:32])

	if h.BitOrder != BitOrderMSB0 {
		return HeaderV1{}, false, ErrBadBitOrder
	}
	if h.Flags&^flagsKnown != 0 || region[7] != 0 {
		return HeaderV1{}, false, ErrBadFlags
	}

	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if h.BitOrder != BitOrderMSB0 {
		return ErrBadBitOrder
	}
	if h.Flags&^flagsKnown != 0 {
		return ErrBadFlags
	}

	copy(region[0:4], []byte(MagicV1))
	region[4] = VersionV1
	region[5] = h.BitOrder
	region[6] = h.Flags
	region[7] = 0
	writeU64BE(region[8:16], h.SymbolCount)
	writeU64BE(region[16:24], h.PayloadBits)
	writeU64BE(region[24:32], h.Checksum)
	return nil
}
