package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	azStorageBlob "github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/forestrie/go-huffman/archive"
	"github.com/forestrie/go-huffman/archivestore"
	"github.com/forestrie/go-huffman/huffmantesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorer keeps blobs in memory and answers with the azure error codes
// the real service uses. It cannot inspect azblob options, so a put with more
// than the tags option is treated as conditional on the blob not existing.
type fakeStorer struct {
	mu    sync.Mutex
	blobs map[string][]byte
	puts  []int
}

func newFakeStorer() *fakeStorer {
	return &fakeStorer{blobs: map[string][]byte{}}
}

func (f *fakeStorer) Put(
	_ context.Context, identity string, source io.ReadSeekCloser, opts ...azblob.Option,
) (*azblob.WriteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts = append(f.puts, len(opts))

	if _, ok := f.blobs[identity]; ok && len(opts) > 1 {
		return nil, &azStorageBlob.StorageError{ErrorCode: azblobConditionNotMet}
	}
	data, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	f.blobs[identity] = data
	return &azblob.WriteResponse{}, nil
}

func (f *fakeStorer) Reader(
	_ context.Context, identity string, _ ...azblob.Option,
) (*azblob.ReaderResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.blobs[identity]
	if !ok {
		return nil, &azStorageBlob.StorageError{ErrorCode: azblobBlobNotFound}
	}
	return &azblob.ReaderResponse{Reader: io.NopCloser(bytes.NewReader(data))}, nil
}

func newTestStore(t *testing.T) (*Store, *fakeStorer) {
	tc := huffmantesting.NewTestContext(t, huffmantesting.TestConfig{TestLabelPrefix: t.Name()})
	fake := newFakeStorer()
	return New(tc.GetLog(), fake), fake
}

func TestBlobStorePutRead(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	id := archivestore.NewArchiveID()
	require.NoError(t, s.Put(ctx, id, []byte("payload"), false))
	assert.Contains(t, fake.blobs, archivestore.ArchivePath(id))
	assert.Equal(t, []int{1}, fake.puts)

	got, err := s.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}

func TestBlobStoreFailIfExists(t *testing.T) {
	s, fake := newTestStore(t)
	ctx := context.Background()

	id := archivestore.NewArchiveID()
	require.NoError(t, s.Put(ctx, id, []byte("first"), true))
	err := s.Put(ctx, id, []byte("second"), true)
	require.ErrorIs(t, err, archivestore.ErrExists)
	assert.Equal(t, []int{2, 2}, fake.puts)

	got, err := s.Read(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), got)
}

func TestBlobStoreReadNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.Read(context.Background(), archivestore.NewArchiveID())
	require.ErrorIs(t, err, archivestore.ErrNotFound)
}

func TestStorageErrorClassification(t *testing.T) {
	assert.True(t, IsBlobNotFound(&azStorageBlob.StorageError{ErrorCode: azblobBlobNotFound}))
	assert.False(t, IsBlobNotFound(&azStorageBlob.StorageError{ErrorCode: azblobConditionNotMet}))
	assert.True(t, IsBlobExists(&azStorageBlob.StorageError{ErrorCode: azblobConditionNotMet}))
	assert.True(t, IsBlobExists(&azStorageBlob.StorageError{ErrorCode: azblobBlobAlreadyExists}))
	assert.False(t, IsBlobExists(errors.New("network down")))
	assert.False(t, IsBlobNotFound(nil))
}

func TestArchiveTags(t *testing.T) {
	data, h, err := archive.EncodeBytes(context.Background(), []byte(huffmantesting.HelloHuffman))
	require.NoError(t, err)

	tags := archiveTags(data)
	assert.Equal(t, "13", tags[TagSymbolCount])
	assert.Len(t, tags[TagChecksum], 16)
	assert.NotEmpty(t, tags[TagPayloadBits])
	assert.Equal(t, uint64(13), h.SymbolCount)

	assert.Empty(t, archiveTags([]byte("not an archive")))
}

func TestBlobStorePutGetArchive(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	plaintext := []byte(huffmantesting.HelloHuffman)
	id, _, err := archivestore.PutArchive(ctx, s, plaintext)
	require.NoError(t, err)

	got, _, err := archivestore.GetArchive(ctx, s, id)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}
