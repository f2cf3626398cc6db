package main

import (
	"bufio"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/avelhart/go-savebank/internal"
	"github.com/avelhart/go-savebank/internal/utils"
	"github.com/avelhart/go-savebank/savebank"
)

func main() {
	cfg, err := internal.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	dir := flag.String("dir", cfg.SaveDir, "Directory holding the save files")
	flag.Parse()

	bank, err := savebank.Open(*dir)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Inspecting saves in %v\n", *dir)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, args, err := utils.SplitCommandLine(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		runCommand(bank, cmd, args)
	}
}

func runCommand(bank *savebank.Bank, cmd string, args []string) {
	switch strings.ToLower(cmd) {
	case "list":
		commandList(bank, args)
	case "info":
		commandInfo(bank, args)
	case "remove":
		commandRemove(bank, args)
	case "digest":
		commandDigest(bank, args)
	case "export-thumb":
		commandExportThumb(bank, args)
	case "help":
		commandHelp()
	default:
		fmt.Println("unknown command; try 'help'")
	}
}

func commandList(bank *savebank.Bank, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: list <target>")
		return
	}

	saves, err := bank.ListSaves(args[0])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(saves) == 0 {
		fmt.Println("no saves found")
		return
	}

	for _, save := range saves {
		fmt.Printf("%02d  %s\n", save.Slot, save.Name)
	}
}

func commandInfo(bank *savebank.Bank, args []string) {
	target, slot, ok := targetAndSlot("info", args)
	if !ok {
		return
	}

	meta, ok := bank.QuerySaveMeta(target, slot)
	if !ok {
		fmt.Printf("no save in slot %02d\n", slot)
		return
	}

	fmt.Printf("name:      %s\n", meta.Name)
	fmt.Printf("saved:     %04d-%02d-%02d %02d:%02d\n", meta.Year, meta.Month, meta.Day, meta.Hour, meta.Minute)
	fmt.Printf("play time: %ds\n", meta.PlayTime)
	if meta.Thumbnail != nil {
		fmt.Printf("thumbnail: %dx%d\n", meta.Thumbnail.Width, meta.Thumbnail.Height)
	} else {
		fmt.Println("thumbnail: none")
	}
}

func commandRemove(bank *savebank.Bank, args []string) {
	target, slot, ok := targetAndSlot("remove", args)
	if !ok {
		return
	}

	if err := bank.RemoveSave(target, slot); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("ok")
}

func commandDigest(bank *savebank.Bank, args []string) {
	target, slot, ok := targetAndSlot("digest", args)
	if !ok {
		return
	}

	digest, err := bank.SaveDigest(target, slot)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%016x\n", digest)
}

func commandExportThumb(bank *savebank.Bank, args []string) {
	if len(args) != 3 {
		fmt.Println("usage: export-thumb <target> <slot> <out.png>")
		return
	}

	slot, err := parseSlot(args[1])
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	meta, ok := bank.QuerySaveMeta(args[0], slot)
	if !ok {
		fmt.Printf("no save in slot %02d\n", slot)
		return
	}
	if meta.Thumbnail == nil {
		fmt.Println("save has no thumbnail")
		return
	}

	f, err := os.Create(args[2])
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, meta.Thumbnail.ToRGBA()); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("wrote", args[2])
}

func targetAndSlot(cmd string, args []string) (string, int, bool) {
	if len(args) != 2 {
		fmt.Printf("usage: %s <target> <slot>\n", cmd)
		return "", 0, false
	}

	slot, err := parseSlot(args[1])
	if err != nil {
		fmt.Println("error:", err)
		return "", 0, false
	}

	return args[0], slot, true
}

func parseSlot(s string) (int, error) {
	slot, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad slot number %q", s)
	}
	if slot < 0 || slot > savebank.MaxSaveSlot {
		return 0, fmt.Errorf("slot must be between 0 and %d", savebank.MaxSaveSlot)
	}
	return slot, nil
}

func commandHelp() {
	helpString := `
Available Commands:

LIST <target>
  List every save slot of a target, sorted by slot number.

INFO <target> <slot>
  Show the full metadata of one slot.

REMOVE <target> <slot>
  Delete a slot's save file. Removing an empty slot is a no-op.

DIGEST <target> <slot>
  Print the xxhash64 digest of the save file contents.

EXPORT-THUMB <target> <slot> <out.png>
  Write the slot's thumbnail as a PNG file.

HELP
  Show this help message.

EXIT
  Quit.
`

	fmt.Println(strings.TrimSpace(helpString))
}
