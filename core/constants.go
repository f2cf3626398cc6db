package core

import "fmt"

const (
	// MaxSaveSlot is the highest slot number a caller may use. Slots map
	// onto the save-menu rows A through O.
	MaxSaveSlot = 'O' - 'A'

	// slotPattern matches the two-digit slot suffix of a savefile name.
	slotPattern = ".s##"
)

// SaveFileName builds the savefile name for a slot within a target
// namespace, e.g. "mystery.s05".
func SaveFileName(target string, slot int) string {
	return fmt.Sprintf("%s.s%02d", target, slot)
}
