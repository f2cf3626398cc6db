package storage

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// MemStore keeps savefiles in memory. It backs deterministic tests and
// hosts that have no filesystem of their own.
type MemStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{files: make(map[string][]byte)}
}

func (s *MemStore) OpenForLoading(name string) (io.ReadCloser, error) {
	s.mu.Lock()
	data, ok := s.files[name]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("savefile %q does not exist", name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *MemStore) OpenForSaving(name string) (io.WriteCloser, error) {
	return &memWriter{store: s, name: name}, nil
}

func (s *MemStore) ListSavefiles(pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := []string{}
	for name := range s.files {
		if Match(pattern, name) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (s *MemStore) RemoveSavefile(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.files, name)
	return nil
}

// Put stores a savefile verbatim. Handy for seeding test fixtures.
func (s *MemStore) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.files[name] = append([]byte(nil), data...)
}

// memWriter buffers writes and commits the savefile on Close.
type memWriter struct {
	store *MemStore
	name  string
	buf   bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

func (w *memWriter) Close() error {
	w.store.Put(w.name, w.buf.Bytes())
	return nil
}
