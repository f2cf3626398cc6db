package savebank

import "github.com/avelhart/go-savebank/storage"

type Option func(*Bank)

// WithStore replaces the directory-backed store, e.g. with a MemStore.
func WithStore(store storage.Store) Option {
	return func(b *Bank) {
		b.bank.Store = store
	}
}

// WithWarnf redirects the diagnostics emitted for skipped save files.
func WithWarnf(warnf func(format string, args ...any)) Option {
	return func(b *Bank) {
		b.bank.Warnf = warnf
	}
}
