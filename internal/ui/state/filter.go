package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/barstock/internal/menu"
)

// SetFilter replaces the filter text. The cursor position held before a
// filter started is restored once the filter is emptied again.
func (l *Level) SetFilter(text string, cursor int) {
	prev := strings.TrimSpace(l.Query.Text)
	next := strings.TrimSpace(text)
	l.Query = Query{Text: text, Cursor: cursor}
	l.Query.Cursor = l.Query.Pos()
	switch {
	case next != "" && prev == "":
		l.LastCursor = l.Cursor
	case next == "" && prev != "":
		defer l.restoreCursor()
	}
	l.applyFilter()
	if next != "" {
		l.Cursor = BestMatchIndex(l.Items, next)
		if l.Cursor < 0 {
			l.Cursor = 0
		}
	}
}

// EditFilter applies edit to the query and refilters when the text changed.
func (l *Level) EditFilter(edit func(*Query) bool) bool {
	q := l.Query
	if !edit(&q) {
		return false
	}
	if q.Text == l.Query.Text {
		l.Query.Cursor = q.Cursor
		return true
	}
	l.SetFilter(q.Text, q.Cursor)
	return true
}

func (l *Level) restoreCursor() {
	if l.LastCursor >= 0 && l.LastCursor < len(l.Items) {
		l.Cursor = l.LastCursor
	}
	l.LastCursor = -1
}

func (l *Level) applyFilter() {
	l.Items = FilterItems(l.Full, l.Query.Text)
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}

// FilterItems returns the items whose labels fuzzily match query, closest
// matches first. When nothing matches fuzzily a plain substring match is
// tried.
func FilterItems(items []menu.Item, query string) []menu.Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return CloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		sort.SliceStable(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		filtered := make([]menu.Item, 0, len(ranks))
		for _, rank := range ranks {
			filtered = append(filtered, items[rank.OriginalIndex])
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the entry a query most plausibly refers to: an exact
// label, then a label prefix, then the first entry. It returns -1 for an
// empty list.
func BestMatchIndex(items []menu.Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	return 0
}
