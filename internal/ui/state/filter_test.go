package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/barstock/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter() != "two" || level.Query.Cursor != 3 {
		t.Fatalf("unexpected query %+v", level.Query)
	}
	if len(level.Items) != 1 || level.Items[0].ID != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestEditFilterRefiltersOnlyOnTextChange(t *testing.T) {
	level := newTestLevel("tabs", "wells")
	if !level.EditFilter(func(q *Query) bool { return q.Insert("we") }) {
		t.Fatal("expected insert to report a change")
	}
	if len(level.Items) != 1 || level.Items[0].ID != "wells" {
		t.Fatalf("expected wells only, got %#v", level.Items)
	}
	if !level.EditFilter((*Query).Home) || level.Query.Cursor != 0 {
		t.Fatalf("expected cursor move, got %+v", level.Query)
	}
	if level.Filter() != "we" || len(level.Items) != 1 {
		t.Fatalf("cursor move should keep the filter, got %+v", level.Query)
	}
	if level.EditFilter((*Query).DeleteBackward) {
		t.Fatal("expected delete at start to be a no-op")
	}
	level.EditFilter((*Query).End)
	level.EditFilter((*Query).DeleteWordBackward)
	if len(level.Items) != 2 {
		t.Fatalf("expected all items once the filter is empty, got %#v", level.Items)
	}
}

func TestFilterItemsRanksAndFallsBack(t *testing.T) {
	items := []menu.Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected match for Beta, got %#v", filtered)
	}
	filtered[0].Label = "changed"
	if items[1].Label != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}
	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}

	ranked := FilterItems([]menu.Item{
		{ID: "a", Label: "wells rename"},
		{ID: "b", Label: "well"},
	}, "well")
	if ranked[0].ID != "b" {
		t.Fatalf("expected closest match first, got %#v", ranked)
	}
}

func TestCloneItems(t *testing.T) {
	items := []menu.Item{{ID: "1", Label: "Alpha"}}
	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}
	if CloneItems(nil) != nil {
		t.Fatal("expected nil clone of nil")
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Item{
		{ID: "one", Label: "First"},
		{ID: "two", Label: "Second"},
		{ID: "three", Label: "Third"},
	}
	if idx := BestMatchIndex(items, "second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "two"); idx != 1 {
		t.Fatalf("expected ID match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestUpdateItemsKeepsFilter(t *testing.T) {
	level := NewLevel("id", "title", []menu.Item{{ID: "1", Label: "Alpha"}, {ID: "2", Label: "Beta"}}, nil)
	level.SetFilter("alp", 3)
	level.UpdateItems([]menu.Item{{ID: "1", Label: "Alpha"}, {ID: "3", Label: "Alpine"}, {ID: "2", Label: "Beta"}})
	if !reflect.DeepEqual(level.Items, []menu.Item{{ID: "1", Label: "Alpha"}, {ID: "3", Label: "Alpine"}}) {
		t.Fatalf("expected filter to apply to new items, got %#v", level.Items)
	}
}
