package huffman

import (
	"bytes"
	"fmt"
	"strings"
)

// Bits is a packed bit-string. Bit i is stored in byte i/8 at position
// 7-(i%8). Bits past Len() in the final byte are always zero.
//
// The zero value is an empty bit-string. Values returned by this package
// must not be appended to once shared; use Clone first.
type Bits struct {
	buf []byte
	n   int
}

// ParseBits parses a string of '0' and '1' digits.
func ParseBits(s string) (Bits, error) {
	var b Bits
	b.buf = make([]byte, 0, (len(s)+7)/8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b.AppendBit(0)
		case '1':
			b.AppendBit(1)
		default:
			return Bits{}, fmt.Errorf("%w: %q at %d", ErrInvalidBit, s[i], i)
		}
	}
	return b, nil
}

// BitsFromBytes returns the first n bits of data, MSB first. data is copied.
func BitsFromBytes(data []byte, n int) (Bits, error) {
	if n < 0 || n > len(data)*8 {
		return Bits{}, ErrBitsOutOfRange
	}
	nbytes := (n + 7) / 8
	b := Bits{buf: make([]byte, nbytes), n: n}
	copy(b.buf, data[:nbytes])
	b.clearTail()
	return b, nil
}

// Len returns the number of bits.
func (b Bits) Len() int { return b.n }

// At returns bit i (0 or 1). It panics if i is out of range.
func (b Bits) At(i int) uint8 {
	if i < 0 || i >= b.n {
		panic(fmt.Sprintf("huffman: bit index %d out of range [0,%d)", i, b.n))
	}
	return (b.buf[i>>3] >> (7 - uint(i&7))) & 1
}

// AppendBit appends a single bit. Any non-zero value appends a 1.
func (b *Bits) AppendBit(bit uint8) {
	if b.n&7 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit != 0 {
		b.buf[b.n>>3] |= 0x80 >> uint(b.n&7)
	}
	b.n++
}

// AppendBits appends every bit of o.
func (b *Bits) AppendBits(o Bits) {
	if b.n&7 == 0 {
		// byte aligned, copy whole bytes and clear anything past o.n
		b.buf = append(b.buf, o.buf[:(o.n+7)/8]...)
		b.n += o.n
		b.clearTail()
		return
	}
	for i := 0; i < o.n; i++ {
		b.AppendBit(o.At(i))
	}
}

// Prefix returns a copy of the first n bits. n is clamped to [0, Len()].
func (b Bits) Prefix(n int) Bits {
	n = max(0, min(n, b.n))
	p, _ := BitsFromBytes(b.buf, n)
	return p
}

// Clone returns a deep copy.
func (b Bits) Clone() Bits {
	return b.Prefix(b.n)
}

// Equal reports whether b and o hold the same bits.
func (b Bits) Equal(o Bits) bool {
	return b.n == o.n && bytes.Equal(b.buf[:(b.n+7)/8], o.buf[:(o.n+7)/8])
}

// Bytes returns a copy of the packed bytes, zero padded to a whole byte.
func (b Bits) Bytes() []byte {
	out := make([]byte, (b.n+7)/8)
	copy(out, b.buf)
	return out
}

// Uint64 returns the bits as an integer, first bit most significant.
// ok=false when Len() > 64.
func (b Bits) Uint64() (v uint64, ok bool) {
	if b.n > 64 {
		return 0, false
	}
	for i := 0; i < b.n; i++ {
		v = v<<1 | uint64(b.At(i))
	}
	return v, true
}

// String renders the bits as '0' and '1' digits.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		sb.WriteByte('0' + b.At(i))
	}
	return sb.String()
}

// with returns a copy of b with bit appended.
func (b Bits) with(bit uint8) Bits {
	c := Bits{buf: make([]byte, len(b.buf), len(b.buf)+1), n: b.n}
	copy(c.buf, b.buf)
	c.AppendBit(bit)
	return c
}

func (b *Bits) clearTail() {
	if r := b.n & 7; r != 0 {
		b.buf[len(b.buf)-1] &= ^byte(0xff >> uint(r))
	}
}
