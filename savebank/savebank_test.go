package savebank_test

import (
	"fmt"
	"testing"

	"github.com/avelhart/go-savebank/header"
	"github.com/avelhart/go-savebank/savebank"
	"github.com/avelhart/go-savebank/storage"
)

func TestOpenAndListSaves(t *testing.T) {
	bank, err := savebank.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	h := &header.SaveHeader{Name: "HALLWAY", Year: 2024, Month: 2, Day: 20, PlayTime: 90}
	if err := bank.WriteSave("mystery", 8, h, nil); err != nil {
		t.Fatal(err)
	}

	saves, err := bank.ListSaves("mystery")
	if err != nil {
		t.Fatal(err)
	}

	if len(saves) != 1 || saves[0].Slot != 8 || saves[0].Name != "HALLWAY" {
		t.Fatalf("unexpected listing %v", saves)
	}
}

func TestOptions(t *testing.T) {
	store := storage.NewMemStore()
	store.Put("mystery.s01", []byte("garbage"))

	warnings := []string{}

	bank, err := savebank.Open(t.TempDir(),
		savebank.WithStore(store),
		savebank.WithWarnf(func(format string, args ...any) {
			warnings = append(warnings, fmt.Sprintf(format, args...))
		}),
	)
	if err != nil {
		t.Fatal(err)
	}

	saves, err := bank.ListSaves("mystery")
	if err != nil {
		t.Fatal(err)
	}

	if len(saves) != 0 {
		t.Fatalf("expected no readable saves, got %v", saves)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one diagnostic, got %v", warnings)
	}
}

func TestRemoveThroughFacade(t *testing.T) {
	bank, err := savebank.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	h := &header.SaveHeader{Name: "BYE", Year: 2024, Month: 1, Day: 1}
	if err := bank.WriteSave("mystery", 0, h, nil); err != nil {
		t.Fatal(err)
	}
	if err := bank.RemoveSave("mystery", 0); err != nil {
		t.Fatal(err)
	}

	if _, ok := bank.QuerySaveMeta("mystery", 0); ok {
		t.Fatal("expected the save to be gone")
	}
}
