package core

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/avelhart/go-savebank/header"
	"github.com/avelhart/go-savebank/storage"
	"github.com/avelhart/go-savebank/thumb"
)

// SaveMeta describes one save slot: its number plus the metadata decoded
// from the savefile header. The bulk listing path fills only Slot and Name;
// QuerySaveMeta fills everything.
type SaveMeta struct {
	Slot      int
	Name      string
	Year      int
	Month     int
	Day       int
	Hour      int
	Minute    int
	PlayTime  uint32
	Thumbnail *thumb.Image
}

// SaveBank catalogs the numbered save slots of a target namespace on top of
// a savefile store. Each call is independent; the bank holds no state
// between operations.
type SaveBank struct {
	Store storage.Store

	// Warnf receives a diagnostic whenever a file is skipped during
	// listing. Defaults to printing on stdout.
	Warnf func(format string, args ...any)
}

func New(store storage.Store) *SaveBank {
	return &SaveBank{
		Store: store,
		Warnf: func(format string, args ...any) {
			fmt.Printf(format+"\n", args...)
		},
	}
}

// ListSaves catalogs every readable save belonging to target, sorted
// ascending by slot number. A file that cannot be opened or carries a bad
// header is reported through Warnf and skipped; one corrupt save never
// hides the rest. Only the name is decoded in this path.
func (b *SaveBank) ListSaves(target string) ([]SaveMeta, error) {
	files, err := b.Store.ListSavefiles(target + slotPattern)
	if err != nil {
		return nil, fmt.Errorf("list savefiles for %q: %w", target, err)
	}

	saves := []SaveMeta{}

	for _, fileName := range files {
		name, err := b.readSaveName(fileName)
		if err != nil {
			b.Warnf("skipping save file '%s': %v", fileName, err)
			continue
		}

		// The glob already guaranteed two trailing digits.
		slot, _ := strconv.Atoi(fileName[len(fileName)-2:])
		saves = append(saves, SaveMeta{Slot: slot, Name: name})
	}

	sort.Slice(saves, func(i, j int) bool {
		return saves[i].Slot < saves[j].Slot
	})

	return saves, nil
}

func (b *SaveBank) readSaveName(fileName string) (string, error) {
	f, err := b.Store.OpenForLoading(fileName)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return header.DecodeName(f)
}

// QuerySaveMeta returns the full metadata of one slot, including date, time,
// play time and thumbnail. A missing file and an unreadable header both
// report absence; callers only need a yes or no plus the data.
func (b *SaveBank) QuerySaveMeta(target string, slot int) (*SaveMeta, bool) {
	f, err := b.Store.OpenForLoading(SaveFileName(target, slot))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	h, err := header.Decode(f)
	if err != nil {
		return nil, false
	}

	return &SaveMeta{
		Slot:      slot,
		Name:      h.Name,
		Year:      h.Year,
		Month:     h.Month,
		Day:       h.Day,
		Hour:      h.Hour,
		Minute:    h.Minute,
		PlayTime:  h.PlayTime,
		Thumbnail: h.Thumbnail,
	}, true
}

// WriteSave encodes hdr into the slot's savefile, followed by the opaque
// game-state payload when one is given.
func (b *SaveBank) WriteSave(target string, slot int, hdr *header.SaveHeader, payload io.Reader) error {
	fileName := SaveFileName(target, slot)

	f, err := b.Store.OpenForSaving(fileName)
	if err != nil {
		return fmt.Errorf("open savefile '%s': %w", fileName, err)
	}

	if err := hdr.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("write savefile '%s': %w", fileName, err)
	}

	if payload != nil {
		if _, err := io.Copy(f, payload); err != nil {
			f.Close()
			return fmt.Errorf("write savefile '%s': %w", fileName, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close savefile '%s': %w", fileName, err)
	}
	return nil
}

// RemoveSave deletes the slot's savefile. Removing a slot that was never
// saved is a no-op; only storage-layer failures are reported.
func (b *SaveBank) RemoveSave(target string, slot int) error {
	fileName := SaveFileName(target, slot)
	if err := b.Store.RemoveSavefile(fileName); err != nil {
		return fmt.Errorf("remove savefile '%s': %w", fileName, err)
	}
	return nil
}

// SaveDigest returns the xxhash64 digest of the slot's savefile contents,
// for spotting silently diverging copies of the same save.
func (b *SaveBank) SaveDigest(target string, slot int) (uint64, error) {
	fileName := SaveFileName(target, slot)

	f, err := b.Store.OpenForLoading(fileName)
	if err != nil {
		return 0, fmt.Errorf("open savefile '%s': %w", fileName, err)
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, fmt.Errorf("read savefile '%s': %w", fileName, err)
	}

	return h.Sum64(), nil
}
