/*
	Basic script that fills a directory with sample save files for poking
	at the CLI: a handful of valid saves, one foreign file and one save
	with a stale version byte.
*/

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"

	"github.com/avelhart/go-savebank/core"
	"github.com/avelhart/go-savebank/header"
	"github.com/avelhart/go-savebank/storage"
	"github.com/avelhart/go-savebank/thumb"
)

const target = "mystery"

func main() {
	dir := flag.String("dir", "./saves", "directory to fill with sample saves")
	flag.Parse()

	store, err := storage.NewDirStore(*dir)
	if err != nil {
		log.Fatal(err)
	}
	bank := core.New(store)

	saves := []struct {
		slot int
		hdr  header.SaveHeader
	}{
		{3, header.SaveHeader{Name: "FRONT DOOR", Year: 2023, Month: 6, Day: 2, Hour: 21, Minute: 12, PlayTime: 740}},
		{5, header.SaveHeader{Name: "CELLAR", Year: 2023, Month: 6, Day: 3, Hour: 9, Minute: 45, PlayTime: 2210}},
		{12, header.SaveHeader{Name: "GOT THE JEWELS", Year: 2023, Month: 6, Day: 5, Hour: 23, Minute: 58, PlayTime: 8125}},
	}

	for i := range saves {
		saves[i].hdr.Thumbnail = sampleThumb(saves[i].slot)
		payload := bytes.NewReader([]byte("game state goes here"))
		if err := bank.WriteSave(target, saves[i].slot, &saves[i].hdr, payload); err != nil {
			log.Fatal(err)
		}
	}

	// A foreign file that happens to match the slot pattern.
	writeRaw(store, core.SaveFileName(target, 7), []byte("not a save file at all"))

	// A save written by a newer interpreter.
	stale := []byte(header.Magic)
	stale = append(stale, header.Version+1)
	stale = append(stale, make([]byte, header.NameLen+10)...)
	writeRaw(store, core.SaveFileName(target, 9), stale)

	fmt.Printf("wrote sample saves for target '%s' into %s\n", target, *dir)
}

func writeRaw(store storage.Store, name string, data []byte) {
	f, err := store.OpenForSaving(name)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := f.Write(data); err != nil {
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func sampleThumb(slot int) *thumb.Image {
	im := thumb.NewImage(80, 48)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			r := uint8(x * 255 / im.Width)
			g := uint8(y * 255 / im.Height)
			im.Set(x, y, thumb.RGB565(r, g, uint8(slot*16)))
		}
	}
	return im
}
