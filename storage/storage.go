package storage

import "io"

// Store is the savefile backend consumed by the slot directory. All calls
// are synchronous; implementations serialize conflicting writes themselves.
type Store interface {
	// OpenForLoading opens the named savefile for reading.
	OpenForLoading(name string) (io.ReadCloser, error)

	// OpenForSaving opens the named savefile for writing, replacing any
	// previous contents. The save is durable once Close returns nil.
	OpenForSaving(name string) (io.WriteCloser, error)

	// ListSavefiles returns the names of savefiles matching pattern,
	// in no particular order.
	ListSavefiles(pattern string) ([]string, error)

	// RemoveSavefile deletes the named savefile. Removing a file that
	// does not exist is a no-op.
	RemoveSavefile(name string) error
}

// Match reports whether name matches pattern. Pattern characters are
// literal except '#', which matches exactly one decimal digit, and '?',
// which matches any single character.
func Match(pattern, name string) bool {
	if len(pattern) != len(name) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			if name[i] < '0' || name[i] > '9' {
				return false
			}
		case '?':
		default:
			if pattern[i] != name[i] {
				return false
			}
		}
	}
	return true
}
