package archivestore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// ArchivePrefix is the storage prefix under which every archive lives.
	ArchivePrefix = "v1/huffman/archives/"
	Extension     = ".huf"

	// LenUUIDString is the length of the UUID string representation, per
	// https://www.rfc-editor.org/rfc/rfc9562.html#name-uuid-format
	LenUUIDString = 36
)

type ArchiveID uuid.UUID

func NewArchiveID() ArchiveID { return ArchiveID(uuid.New()) }

func (id ArchiveID) String() string { return uuid.UUID(id).String() }

// ArchivePath returns the storage path for id, e.g.
// v1/huffman/archives/9f0c...e1.huf
func ArchivePath(id ArchiveID) string {
	return ArchivePrefix + id.String() + Extension
}

// ParseArchiveID accepts a bare uuid, a file name or a full storage path.
func ParseArchiveID(storagePath string) (ArchiveID, error) {
	s := storagePath
	if i := strings.LastIndex(s, "/"); i != -1 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(s, Extension)
	if len(s) != LenUUIDString {
		return ArchiveID{}, fmt.Errorf("%w: %s", ErrBadArchiveID, storagePath)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return ArchiveID{}, fmt.Errorf("%w: %w", ErrBadArchiveID, err)
	}
	return ArchiveID(id), nil
}

// ParseArchiveIDBytes accepts the 16 byte binary form of an id.
func ParseArchiveIDBytes(b []byte) (ArchiveID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return ArchiveID{}, fmt.Errorf("%w: %w", ErrBadArchiveID, err)
	}
	return ArchiveID(id), nil
}
