package menu

import "strings"

// actionItems builds submenu entries for ids, labelled with the noun they
// act on ("new tab", "clear well").
func actionItems(noun string, ids ...string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id) + " " + noun})
	}
	return items
}

// prettyLabel turns an id such as "speed_rail-left" into "speed rail left".
func prettyLabel(id string) string {
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	return strings.ToLower(strings.Join(parts, " "))
}
