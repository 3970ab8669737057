package inventory

import "strings"

// AddOrAdjustProduct merges delta into the product whose normalized key
// matches rawName. An existing entry keeps its first-seen spelling and is
// dropped once its quantity falls to zero or below. A missing product is
// appended only for a positive delta. Unknown tabs or wells, blank names and
// a zero delta are no-ops.
func (s *State) AddOrAdjustProduct(tabID, wellName, rawName string, delta int) bool {
	well := s.Tab(tabID).Well(wellName)
	if well == nil || delta == 0 {
		return false
	}
	key := NormalizeKey(rawName)
	if key == "" {
		return false
	}
	for i := range well.Products {
		if NormalizeKey(well.Products[i].Name) != key {
			continue
		}
		quantity := well.Products[i].Quantity + delta
		if quantity <= 0 {
			well.Products = removeAt(well.Products, i)
			return true
		}
		well.Products[i].Quantity = quantity
		return true
	}
	if delta < 0 {
		return false
	}
	well.Products = append(well.Products, ProductEntry{Name: strings.TrimSpace(rawName), Quantity: delta})
	return true
}

// RemoveProductAt removes the entry at index, keeping the order of the rest.
// Out-of-range indices are ignored.
func (s *State) RemoveProductAt(tabID, wellName string, index int) bool {
	well := s.Tab(tabID).Well(wellName)
	if well == nil || index < 0 || index >= len(well.Products) {
		return false
	}
	well.Products = removeAt(well.Products, index)
	return true
}

// ClearWell empties the well's product list.
func (s *State) ClearWell(tabID, wellName string) bool {
	well := s.Tab(tabID).Well(wellName)
	if well == nil {
		return false
	}
	well.Products = []ProductEntry{}
	return true
}

func removeAt(products []ProductEntry, index int) []ProductEntry {
	out := make([]ProductEntry, 0, len(products)-1)
	out = append(out, products[:index]...)
	return append(out, products[index+1:]...)
}
