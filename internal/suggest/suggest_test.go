package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomicstack/barstock/internal/inventory"
)

func TestCandidatesCatalogFirstExactDedupe(t *testing.T) {
	got := Candidates(
		[]string{"Vodka", "Gin", "Vodka"},
		[]string{"Gin", "vodka", "Rum"},
	)
	assert.Equal(t, []string{"Vodka", "Gin", "vodka", "Rum"}, got)
}

func TestSuggestNormalizedSubstring(t *testing.T) {
	catalog := []string{"Lime Juice", "Lemon Juice", "Orange Juice", "Limes", "Grey Goose"}

	assert.Equal(t, []string{"Lime Juice", "Limes"}, Suggest("LIME", catalog, nil))
	assert.Equal(t, []string{"Lime Juice", "Lemon Juice", "Orange Juice"}, Suggest(" JUI ce", catalog, nil))
	assert.Equal(t, []string{"Grey Goose"}, Suggest("greyg", catalog, nil))
	assert.Empty(t, Suggest("mezcal", catalog, nil))
}

func TestSuggestBlankQuery(t *testing.T) {
	catalog := []string{"Vodka"}
	assert.Empty(t, Suggest("", catalog, nil))
	assert.Empty(t, Suggest("   ", catalog, nil))
}

func TestSuggestCapsAtFiveInOrder(t *testing.T) {
	catalog := []string{"a1", "a2", "a3", "b", "a4", "a5", "a6"}
	assert.Equal(t, []string{"a1", "a2", "a3", "a4", "a5"}, Suggest("a", catalog, nil))
}

func TestSuggestIncludesActiveTabNames(t *testing.T) {
	tab := &inventory.Tab{Wells: []inventory.Well{
		{Name: "W1", Products: []inventory.ProductEntry{{Name: "House Vermouth", Quantity: 1}}},
		{Name: "W2", Products: []inventory.ProductEntry{{Name: "Vodka", Quantity: 2}}},
	}}

	got := Suggest("v", []string{"Vodka", "Dry Vermouth"}, ActiveNames(tab))
	assert.Equal(t, []string{"Vodka", "Dry Vermouth", "House Vermouth"}, got)

	assert.Equal(t, []string{"House Vermouth"}, Suggest("house", nil, ActiveNames(tab)))
	assert.Empty(t, ActiveNames(nil))
}

func TestCursorWraps(t *testing.T) {
	var c Cursor
	c.Reset([]string{"a", "b", "c"})
	_, ok := c.Selected()
	assert.False(t, ok)

	c.Down()
	s, _ := c.Selected()
	assert.Equal(t, "a", s)
	c.Down()
	c.Down()
	c.Down()
	s, _ = c.Selected()
	assert.Equal(t, "a", s)

	c.Up()
	s, _ = c.Selected()
	assert.Equal(t, "c", s)

	c.Reset(nil)
	c.Up()
	c.Down()
	assert.Equal(t, -1, c.Index)
}
