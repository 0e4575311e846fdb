package archivestore

import (
	"context"

	"github.com/forestrie/go-huffman/archive"
)

// PutArchive compresses plaintext and stores the archive under a new id.
func PutArchive(
	ctx context.Context, w ObjectWriter, plaintext []byte, opts ...archive.Option,
) (ArchiveID, archive.HeaderV1, error) {
	data, h, err := archive.EncodeBytes(ctx, plaintext, opts...)
	if err != nil {
		return ArchiveID{}, archive.HeaderV1{}, err
	}
	id := NewArchiveID()
	if err := w.Put(ctx, id, data, true); err != nil {
		return ArchiveID{}, archive.HeaderV1{}, err
	}
	return id, h, nil
}

// GetArchive reads the archive stored under id and returns its plaintext.
func GetArchive(
	ctx context.Context, r ObjectReader, id ArchiveID, opts ...archive.Option,
) ([]byte, archive.HeaderV1, error) {
	data, err := r.Read(ctx, id)
	if err != nil {
		return nil, archive.HeaderV1{}, err
	}
	return archive.DecodeBytes(ctx, data, opts...)
}
