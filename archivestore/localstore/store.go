// Package localstore keeps archives as files under a root directory, using
// the same relative paths as the blob store.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-huffman/archivestore"
)

const (
	DefaultDirMode  fs.FileMode = 0755
	DefaultFileMode fs.FileMode = 0644
)

type Store struct {
	log      logger.Logger
	root     string
	dirMode  fs.FileMode
	fileMode fs.FileMode

	createTemp func(dir, pattern string) (*os.File, error)
}

type Option func(*Store)

func WithFileMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.fileMode = mode
	}
}

func WithDirMode(mode fs.FileMode) Option {
	return func(s *Store) {
		s.dirMode = mode
	}
}

// New returns a store rooted at root, creating the archive directory if
// needed.
func New(log logger.Logger, root string, opts ...Option) (*Store, error) {
	s := &Store{
		log:      log,
		root:     root,
		dirMode:  DefaultDirMode,
		fileMode: DefaultFileMode,

		createTemp: os.CreateTemp,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(s.archiveDir(), s.dirMode); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) archiveDir() string {
	return filepath.Join(s.root, filepath.FromSlash(archivestore.ArchivePrefix))
}

// Path returns the file path for id.
func (s *Store) Path(id archivestore.ArchiveID) string {
	return filepath.Join(s.root, filepath.FromSlash(archivestore.ArchivePath(id)))
}

func (s *Store) Read(ctx context.Context, id archivestore.ArchiveID) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", archivestore.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	s.log.Debugf("read archive %s: %d bytes", id, len(data))
	return data, nil
}

// Put writes data to a temporary file and moves it into place, so a reader
// never sees a partial archive. With failIfExists the final name is claimed
// with a hard link, which fails if the name is already taken. Nothing is left
// at the final path when Put fails.
func (s *Store) Put(ctx context.Context, id archivestore.ArchiveID, data []byte, failIfExists bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.Path(id)

	tmp, err := s.createTemp(filepath.Dir(path), ".put-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(s.fileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if failIfExists {
		err = os.Link(tmp.Name(), path)
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", archivestore.ErrExists, id)
		}
	} else {
		err = os.Rename(tmp.Name(), path)
	}
	if err != nil {
		return err
	}
	s.log.Debugf("put archive %s: %d bytes", id, len(data))
	return nil
}

// List returns the ids of the archives in the directory. Files that are not
// named by an archive id are ignored.
func (s *Store) List(ctx context.Context) ([]archivestore.ArchiveID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.archiveDir())
	if err != nil {
		return nil, err
	}
	var ids []archivestore.ArchiveID
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), archivestore.Extension) {
			continue
		}
		id, err := archivestore.ParseArchiveID(e.Name())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b archivestore.ArchiveID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids, nil
}
