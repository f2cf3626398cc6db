package savebank

import (
	"io"

	"github.com/avelhart/go-savebank/core"
	"github.com/avelhart/go-savebank/header"
	"github.com/avelhart/go-savebank/storage"
)

// SaveMeta is re-exported so callers only need this package.
type SaveMeta = core.SaveMeta

// MaxSaveSlot is the highest usable slot number.
const MaxSaveSlot = core.MaxSaveSlot

// Bank wraps the slot directory with a ready-made directory store.
type Bank struct {
	bank *core.SaveBank
}

// Open returns a Bank over the savefiles in dir, creating the directory if
// needed. Options may swap the store or the diagnostics sink.
func Open(dir string, opts ...Option) (*Bank, error) {
	store, err := storage.NewDirStore(dir)
	if err != nil {
		return nil, err
	}

	b := &Bank{bank: core.New(store)}

	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

func (b *Bank) ListSaves(target string) ([]SaveMeta, error) {
	return b.bank.ListSaves(target)
}

func (b *Bank) QuerySaveMeta(target string, slot int) (*SaveMeta, bool) {
	return b.bank.QuerySaveMeta(target, slot)
}

func (b *Bank) WriteSave(target string, slot int, hdr *header.SaveHeader, payload io.Reader) error {
	return b.bank.WriteSave(target, slot, hdr, payload)
}

func (b *Bank) RemoveSave(target string, slot int) error {
	return b.bank.RemoveSave(target, slot)
}

func (b *Bank) SaveDigest(target string, slot int) (uint64, error) {
	return b.bank.SaveDigest(target, slot)
}
