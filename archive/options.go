package archive

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-huffman/codebook"
	"github.com/forestrie/go-huffman/huffman"
)

type Options struct {
	log            logger.Logger
	codebook       *codebook.Cache
	cborCodec      *dtcbor.CBORCodec
	verifyChecksum bool
}

type Option func(*Options)

func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithCodebook shares built codecs between archives with equal tables.
func WithCodebook(cache *codebook.Cache) Option {
	return func(o *Options) {
		o.codebook = cache
	}
}

func WithCBORCodec(codec *dtcbor.CBORCodec) Option {
	return func(o *Options) {
		o.cborCodec = codec
	}
}

// WithVerifyChecksum controls whether Decode compares the plaintext
// checksum with the header. It defaults to true.
func WithVerifyChecksum(verify bool) Option {
	return func(o *Options) {
		o.verifyChecksum = verify
	}
}

func newOptions(opts ...Option) (*Options, error) {
	o := &Options{verifyChecksum: true}
	for _, opt := range opts {
		opt(o)
	}
	if o.cborCodec == nil {
		codec, err := NewCBORCodec()
		if err != nil {
			return nil, err
		}
		o.cborCodec = &codec
	}
	return o, nil
}

func (o *Options) debugf(format string, args ...any) {
	if o.log != nil {
		o.log.Debugf(format, args...)
	}
}

func (o *Options) codec(freqs huffman.FrequencyTable[byte]) (*huffman.Codec[byte], error) {
	if o.codebook != nil {
		return o.codebook.Get(freqs)
	}
	return huffman.NewCodec(freqs)
}
