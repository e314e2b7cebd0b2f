// Package store persists the bookmark tree as an XML document on
// disk. The on-disk shape is exactly the manager's markup tree: the
// root element tagged "bookmarks" with nested node elements.
package store

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/marks/pkg/errors"
	"github.com/arthur-debert/marks/pkg/logging"
	"github.com/arthur-debert/marks/pkg/manager"
)

// DefaultFileName is the store file name under the XDG data directory
const DefaultFileName = "bookmarks.xml"

// Store reads and writes the bookmark tree at a fixed path
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates a store for the given file path
func New(path string) *Store {
	return &Store{
		path:   path,
		logger: logging.GetLogger("store"),
	}
}

// DefaultPath returns the XDG data location for the store file,
// creating parent directories as needed
func DefaultPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join("marks", DefaultFileName))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrStoreWrite, "failed to resolve data directory")
	}
	return path, nil
}

// Path returns the store file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the store file and merges its content into the manager.
// A missing file is an empty tree, not an error.
func (s *Store) Load(m *manager.Manager) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(s.path); err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("store file absent, starting empty")
			return nil
		}
		return errors.Wrapf(err, errors.ErrStoreParse, "failed to read store %s", s.path)
	}

	root := doc.Root()
	if root == nil {
		return nil
	}
	m.LoadState(root)
	s.logger.Debug().Str("path", s.path).Msg("store loaded")
	return nil
}

// Save serializes the manager's state to the store file. The write is
// atomic: a sibling temp file is written and renamed over the target.
func (s *Store) Save(m *manager.Manager) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(m.State())
	doc.Indent(2)

	data, err := doc.WriteToBytes()
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to serialize bookmark tree")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to create store directory for %s", s.path)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), DefaultFileName+".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrStoreWrite, "failed to create temp store file")
	}
	tmpName := tmp.Name()
	defer func() {
		// Best effort cleanup when the rename never happened
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to chmod %s", tmpName)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to replace %s", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("bytes", len(data)).Msg("store saved")
	return nil
}
