package seal

import (
	"bytes"
	"crypto"
	"errors"
	"fmt"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/forestrie/go-huffman/archivestore"
	"github.com/veraison/go-cose"
)

var (
	ErrBadManifest      = errors.New("seal: manifest invalid")
	ErrManifestMismatch = errors.New("seal: manifest does not describe the archive")
)

type publicKeyProvider interface {
	PublicKey() (crypto.PublicKey, cose.Algorithm, error)
}

// DecodeSeal decodes the manifest from a seal. The returned manifest has no
// Digest and will not verify until one is restored.
func DecodeSeal(codec dtcbor.CBORCodec, msg []byte) (*dtcose.CoseSign1Message, Manifest, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, newDecOptions()...)
	if err != nil {
		return nil, Manifest{}, err
	}

	var unverified Manifest
	if err := codec.UnmarshalInto(signed.Payload, &unverified); err != nil {
		return nil, Manifest{}, err
	}
	return signed, unverified, nil
}

// VerifySeal applies manifest to the signed message and verifies it.
//
// Verification of a seal is a 3 step process:
//  1. Use DecodeSeal to obtain the manifest. It will not verify as the digest
//     was removed after signing.
//  2. Read the archive named by Manifest.ArchiveID and set Manifest.Digest
//     to DigestArchive of its bytes.
//  3. Call this function with the completed manifest.
//
// VerifyArchive performs steps 2 and 3.
func VerifySeal(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, manifest Manifest, external []byte,
) error {
	var err error
	signed.Payload, err = codec.MarshalCBOR(manifest)
	if err != nil {
		return err
	}
	return signed.VerifyWithProvider(keyProvider, external)
}

// VerifyArchive checks that data is the archive the manifest describes and
// that the seal covers it.
func VerifyArchive(
	codec dtcbor.CBORCodec, keyProvider publicKeyProvider,
	signed *dtcose.CoseSign1Message, unverified Manifest, data []byte, external []byte,
) error {
	id, err := archivestore.ParseArchiveIDBytes(unverified.ArchiveID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBadManifest, err)
	}
	derived, err := NewManifest(id, data, unverified.Timestamp)
	if err != nil {
		return err
	}
	if derived.SymbolCount != unverified.SymbolCount ||
		derived.PayloadBits != unverified.PayloadBits ||
		derived.Checksum != unverified.Checksum {
		return ErrManifestMismatch
	}
	if unverified.Digest != nil && !bytes.Equal(unverified.Digest, derived.Digest) {
		return ErrManifestMismatch
	}
	return VerifySeal(codec, keyProvider, signed, derived, external)
}
