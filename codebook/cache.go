// Package codebook caches built Huffman codecs by frequency table, so that
// archives sharing a table skip the tree build.
package codebook

import (
	"encoding/binary"
	"errors"
	"maps"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/forestrie/go-huffman/huffman"
	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultSize = 64

var ErrBadSize = errors.New("codebook: cache size must be positive")

// Cache is safe for concurrent use.
type Cache struct {
	lru    *lru.Cache[uint64, *huffman.Codec[byte]]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func New(size int) (*Cache, error) {
	if size <= 0 {
		return nil, ErrBadSize
	}
	l, err := lru.New[uint64, *huffman.Codec[byte]](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Fingerprint hashes the (symbol, count) pairs in ascending symbol order.
// Equal tables always have equal fingerprints.
func Fingerprint(freqs huffman.FrequencyTable[byte]) uint64 {
	d := xxhash.New()
	var rec [9]byte
	for _, sym := range freqs.Symbols() {
		rec[0] = sym
		binary.BigEndian.PutUint64(rec[1:], freqs[sym])
		_, _ = d.Write(rec[:])
	}
	return d.Sum64()
}

// Get returns the codec for freqs, building and caching it on a miss.
func (c *Cache) Get(freqs huffman.FrequencyTable[byte]) (*huffman.Codec[byte], error) {
	fp := Fingerprint(freqs)
	if codec, ok := c.lru.Get(fp); ok && maps.Equal(codec.Frequencies(), freqs) {
		c.hits.Add(1)
		return codec, nil
	}
	c.misses.Add(1)

	codec, err := huffman.NewCodec(freqs)
	if err != nil {
		return nil, err
	}
	c.lru.Add(fp, codec)
	return codec, nil
}

func (c *Cache) Len() int { return c.lru.Len() }

func (c *Cache) Purge() { c.lru.Purge() }

// Stats returns the hit and miss counts since the cache was created.
func (c *Cache) Stats() (hits uint64, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
