// Package archivestore persists HUF1 archives as objects named by uuid.
package archivestore

import (
	"context"
)

type ObjectReader interface {
	// Read returns the complete object. A missing object is reported with an
	// error wrapping ErrNotFound.
	Read(ctx context.Context, id ArchiveID) ([]byte, error)
}

type ObjectWriter interface {
	// Put stores data under id. When failIfExists is set and the object is
	// already present the error wraps ErrExists and nothing is written.
	Put(ctx context.Context, id ArchiveID, data []byte, failIfExists bool) error
}

type ObjectLister interface {
	// List returns the ids of all stored archives in ascending order.
	List(ctx context.Context) ([]ArchiveID, error)
}

type ObjectReaderWriter interface {
	ObjectReader
	ObjectWriter
}
