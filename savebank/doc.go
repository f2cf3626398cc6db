// Package savebank catalogs the save slots of an adventure-game target:
// listing saves, querying per-slot metadata (name, date, play time,
// thumbnail) and removing slots.
//
// Example:
//
//	bank, err := savebank.Open("./saves")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	saves, err := bank.ListSaves("mystery")
//	for _, save := range saves {
//	    fmt.Println(save.Slot, save.Name)
//	}
package savebank
