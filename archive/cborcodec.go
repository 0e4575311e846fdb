package archive

import (
	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
)

// NewCBORCodec returns the deterministic codec used for archive tables and
// seal manifests.
func NewCBORCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}
