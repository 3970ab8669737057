// Package suggest builds the autocomplete list shown while a product name is
// typed.
package suggest

import (
	"strings"

	"github.com/atomicstack/barstock/internal/inventory"
)

// MaxSuggestions caps the list returned by Suggest.
const MaxSuggestions = 5

// Candidates unions catalog and activeNames, catalog first, dropping exact
// duplicates while keeping first occurrence order.
func Candidates(catalog, activeNames []string) []string {
	seen := make(map[string]struct{}, len(catalog)+len(activeNames))
	out := make([]string, 0, len(catalog)+len(activeNames))
	for _, list := range [][]string{catalog, activeNames} {
		for _, name := range list {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}
	return out
}

// Filter keeps the candidates whose normalized form contains the normalized
// query, in order, stopping after limit matches. A blank query matches
// nothing.
func Filter(query string, candidates []string, limit int) []string {
	needle := inventory.NormalizeKey(query)
	if needle == "" || limit <= 0 {
		return nil
	}
	var out []string
	for _, c := range candidates {
		if !strings.Contains(inventory.NormalizeKey(c), needle) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Suggest returns up to MaxSuggestions names for query drawn from the
// catalog and the product names already present in the active tab.
func Suggest(query string, catalog, activeNames []string) []string {
	return Filter(query, Candidates(catalog, activeNames), MaxSuggestions)
}

// ActiveNames lists the product names present anywhere in tab.
func ActiveNames(tab *inventory.Tab) []string {
	return tab.ProductNames()
}

// Cursor tracks the highlighted suggestion. -1 means none is highlighted;
// movement wraps in both directions.
type Cursor struct {
	Items []string
	Index int
}

// Reset replaces the list and clears the highlight.
func (c *Cursor) Reset(items []string) {
	c.Items = items
	c.Index = -1
}

func (c *Cursor) Down() {
	if len(c.Items) == 0 {
		return
	}
	if c.Index < len(c.Items)-1 {
		c.Index++
		return
	}
	c.Index = 0
}

func (c *Cursor) Up() {
	if len(c.Items) == 0 {
		return
	}
	if c.Index > 0 {
		c.Index--
		return
	}
	c.Index = len(c.Items) - 1
}

// Selected returns the highlighted suggestion.
func (c Cursor) Selected() (string, bool) {
	if c.Index < 0 || c.Index >= len(c.Items) {
		return "", false
	}
	return c.Items[c.Index], true
}
