package inventory

import "fmt"

// Sanitize rewrites a loaded collection so every invariant a mutation
// maintains holds again:
//   - tabs without an id, or repeating an earlier id, are dropped
//   - a tab or well whose name repeats an earlier sibling gets a " (n)" suffix
//   - products sharing a normalized key are folded into the first spelling
//     with their quantities summed
//   - products whose quantity is not positive are dropped
//
// Nil product and well slices become empty ones.
func Sanitize(tabs []Tab) []Tab {
	if tabs == nil {
		return nil
	}
	kept := make([]Tab, 0, len(tabs))
	ids := make(map[string]bool, len(tabs))
	tabNames := make(map[string]bool, len(tabs))
	for _, tab := range tabs {
		if tab.ID == "" || ids[tab.ID] {
			continue
		}
		ids[tab.ID] = true
		tab.Name = uniqueName(tab.Name, tabNames)

		wells := make([]Well, 0, len(tab.Wells))
		wellNames := make(map[string]bool, len(tab.Wells))
		for _, well := range tab.Wells {
			wells = append(wells, Well{
				Name:     uniqueName(well.Name, wellNames),
				Products: foldProducts(well.Products),
			})
		}
		tab.Wells = wells
		kept = append(kept, tab)
	}
	return kept
}

// uniqueName returns name, or name with the smallest free " (n)" suffix when
// taken already has it. The result is recorded in taken.
func uniqueName(name string, taken map[string]bool) string {
	candidate := name
	for n := 2; taken[candidate]; n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	taken[candidate] = true
	return candidate
}

func foldProducts(products []ProductEntry) []ProductEntry {
	folded := make([]ProductEntry, 0, len(products))
	index := make(map[string]int, len(products))
	for _, p := range products {
		key := NormalizeKey(p.Name)
		if i, ok := index[key]; ok {
			folded[i].Quantity += p.Quantity
			continue
		}
		index[key] = len(folded)
		folded = append(folded, p)
	}
	valid := folded[:0]
	for _, p := range folded {
		if p.Quantity > 0 {
			valid = append(valid, p)
		}
	}
	return valid
}
