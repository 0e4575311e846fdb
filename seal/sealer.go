// Package seal signs archive manifests with COSE Sign1.
package seal

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-huffman/archive"
	"github.com/forestrie/go-huffman/archivestore"
	"github.com/veraison/go-cose"
)

// Manifest is the signed commitment to a stored archive.
type Manifest struct {
	ArchiveID   []byte `cbor:"1,keyasint"`
	SymbolCount uint64 `cbor:"2,keyasint"`
	PayloadBits uint64 `cbor:"3,keyasint"`
	// Checksum is the xxhash64 of the plaintext, as carried in the header.
	Checksum uint64 `cbor:"4,keyasint"`
	// Digest is the sha256 of the complete archive bytes. It is removed from
	// the published seal and must be recomputed from the archive to verify.
	Digest []byte `cbor:"5,keyasint"`
	// Timestamp is the unix time (milliseconds) at which the seal was made.
	Timestamp int64 `cbor:"6,keyasint"`
}

// NewManifest derives the manifest for the archive bytes stored under id.
func NewManifest(id archivestore.ArchiveID, data []byte, timestamp int64) (Manifest, error) {
	h, ok, err := archive.DecodeHeaderV1(data)
	if err != nil {
		return Manifest{}, err
	}
	if !ok {
		return Manifest{}, archive.ErrNotInitialized
	}
	return Manifest{
		ArchiveID:   id[:],
		SymbolCount: h.SymbolCount,
		PayloadBits: h.PayloadBits,
		Checksum:    h.Checksum,
		Digest:      DigestArchive(data),
		Timestamp:   timestamp,
	}, nil
}

// DigestArchive returns the sha256 of the archive bytes.
func DigestArchive(data []byte) []byte {
	d := sha256.Sum256(data)
	return d[:]
}

// Sealer produces signatures over archive manifests. Its codec must encode
// deterministically; archive.NewCBORCodec returns a suitable one.
type Sealer struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSealer(issuer string, cborCodec dtcbor.CBORCodec) Sealer {
	return Sealer{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// Seal signs the manifest and returns the encoded COSE Sign1 message. The
// subject is typically the archive storage path.
func (s Sealer) Seal(
	coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey,
	subject string, manifest Manifest, external []byte,
) ([]byte, error) {
	if len(manifest.Digest) != sha256.Size {
		return nil, fmt.Errorf("%w: digest is %d bytes", ErrBadManifest, len(manifest.Digest))
	}
	payload, err := s.cborCodec.MarshalCBOR(manifest)
	if err != nil {
		return nil, err
	}

	coseHeaders := cose.Headers{
		Protected: cose.ProtectedHeader{
			dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
				s.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
		},
	}

	msg := cose.Sign1Message{
		Headers: coseHeaders,
		Payload: payload,
	}
	if err := msg.Sign(rand.Reader, external, coseSigner); err != nil {
		return nil, err
	}

	// The digest is detached so that verifiers must read the archive.
	manifest.Digest = nil
	payload, err = s.cborCodec.MarshalCBOR(manifest)
	if err != nil {
		return nil, err
	}
	msg.Payload = payload

	return msg.MarshalCBOR()
}

func newDecOptions() []dtcose.SignOption {
	return []dtcose.SignOption{dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts())}
}
