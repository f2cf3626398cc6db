package storage

import (
	"io"
	"os"
	"path/filepath"
)

// DirStore keeps savefiles as plain files inside a single directory.
type DirStore struct {
	dir string
}

// NewDirStore returns a DirStore rooted at dir, creating the directory if
// it does not exist yet.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DirStore{dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *DirStore) Dir() string {
	return s.dir
}

func (s *DirStore) OpenForLoading(name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, name))
}

func (s *DirStore) OpenForSaving(name string) (io.WriteCloser, error) {
	return os.Create(filepath.Join(s.dir, name))
}

func (s *DirStore) ListSavefiles(pattern string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() && Match(pattern, entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

func (s *DirStore) RemoveSavefile(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
