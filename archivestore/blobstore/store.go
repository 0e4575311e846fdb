// Package blobstore keeps archives in Azure blob storage.
package blobstore

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-huffman/archive"
	"github.com/forestrie/go-huffman/archivestore"
)

const (
	TagSymbolCount = "huffmanSymbolCount"
	TagPayloadBits = "huffmanPayloadBits"
	TagChecksum    = "huffmanChecksum"
)

// Storer is the subset of *azblob.Storer the store needs.
type Storer interface {
	Put(
		ctx context.Context,
		identity string,
		source io.ReadSeekCloser,
		opts ...azblob.Option,
	) (*azblob.WriteResponse, error)

	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

type Store struct {
	log   logger.Logger
	store Storer
}

func New(log logger.Logger, store Storer) *Store {
	return &Store{log: log, store: store}
}

func (s *Store) Read(ctx context.Context, id archivestore.ArchiveID) ([]byte, error) {
	blobPath := archivestore.ArchivePath(id)
	rr, err := s.store.Reader(ctx, blobPath)
	if IsBlobNotFound(err) {
		return nil, fmt.Errorf("%w: %s", archivestore.ErrNotFound, blobPath)
	}
	if err != nil {
		return nil, err
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return nil, err
	}
	s.log.Debugf("read blob %s: %d bytes", blobPath, len(data))
	return data, nil
}

// Put uploads data tagged with the archive header fields. failIfExists adds
// an If-None-Match: * condition so the create is atomic.
func (s *Store) Put(ctx context.Context, id archivestore.ArchiveID, data []byte, failIfExists bool) error {
	blobPath := archivestore.ArchivePath(id)

	opts := []azblob.Option{azblob.WithTags(archiveTags(data))}
	if failIfExists {
		opts = append(opts, azblob.WithEtagNoneMatch("*"))
	}

	_, err := s.store.Put(ctx, blobPath, azblob.NewBytesReaderCloser(data), opts...)
	if IsBlobExists(err) {
		return fmt.Errorf("%w: %s", archivestore.ErrExists, blobPath)
	}
	if err != nil {
		return err
	}
	s.log.Debugf("put blob %s: %d bytes", blobPath, len(data))
	return nil
}

// archiveTags indexes the blob by its header. Data that does not start with
// a valid header is stored untagged.
func archiveTags(data []byte) map[string]string {
	h, ok, err := archive.DecodeHeaderV1(data)
	if err != nil || !ok {
		return map[string]string{}
	}
	return map[string]string{
		TagSymbolCount: strconv.FormatUint(h.SymbolCount, 10),
		TagPayloadBits: strconv.FormatUint(h.PayloadBits, 10),
		TagChecksum:    fmt.Sprintf("%016x", h.Checksum),
	}
}
