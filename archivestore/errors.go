package archivestore

import "errors"

var (
	ErrNotFound     = errors.New("archivestore: archive not found")
	ErrExists       = errors.New("archivestore: archive already exists")
	ErrBadArchiveID = errors.New("archivestore: storage path does not name an archive")
)
