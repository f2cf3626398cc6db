package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/avelhart/go-savebank/internal"
	"github.com/avelhart/go-savebank/savebank"
)

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dir := flag.String("dir", cfg.SaveDir, "Directory holding the save files")
	target := flag.String("target", cfg.Target, "Target namespace to inspect")
	slot := flag.Int("slot", -1, "Print full metadata for a single slot")
	flag.Parse()

	bank, err := savebank.Open(*dir)
	if err != nil {
		log.Fatal(err)
	}

	if *slot >= 0 {
		printSlot(bank, *target, *slot)
		return
	}

	saves, err := bank.ListSaves(*target)
	if err != nil {
		log.Fatal(err)
	}

	if len(saves) == 0 {
		fmt.Printf("no saves found for target '%s'\n", *target)
		return
	}

	for _, save := range saves {
		fmt.Printf("%02d  %s\n", save.Slot, save.Name)
	}
}

func printSlot(bank *savebank.Bank, target string, slot int) {
	meta, ok := bank.QuerySaveMeta(target, slot)
	if !ok {
		fmt.Printf("no save in slot %02d\n", slot)
		return
	}

	fmt.Printf("slot:      %02d\n", meta.Slot)
	fmt.Printf("name:      %s\n", meta.Name)
	fmt.Printf("saved:     %04d-%02d-%02d %02d:%02d\n", meta.Year, meta.Month, meta.Day, meta.Hour, meta.Minute)
	fmt.Printf("play time: %ds\n", meta.PlayTime)

	if meta.Thumbnail != nil {
		fmt.Printf("thumbnail: %dx%d\n", meta.Thumbnail.Width, meta.Thumbnail.Height)
	} else {
		fmt.Println("thumbnail: none")
	}

	if digest, err := bank.SaveDigest(target, slot); err == nil {
		fmt.Printf("digest:    %016x\n", digest)
	}
}
