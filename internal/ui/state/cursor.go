package state

import "github.com/atomicstack/barstock/internal/menu"

// MoveCursor moves the cursor by delta. With wrap set the cursor cycles past
// either end; otherwise it stops there.
func (l *Level) MoveCursor(delta int, wrap bool) bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	next := l.Cursor + delta
	switch {
	case wrap:
		next = ((next % n) + n) % n
	case next < 0:
		next = 0
	case next >= n:
		next = n - 1
	}
	l.Cursor = next
	return l.Cursor != old
}

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.MoveCursor(-len(l.Items), false)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.MoveCursor(len(l.Items), false)
}

func (l *Level) MoveCursorPageUp(maxVisible int) bool {
	return l.MoveCursor(-l.pageSize(maxVisible), false)
}

func (l *Level) MoveCursorPageDown(maxVisible int) bool {
	return l.MoveCursor(l.pageSize(maxVisible), false)
}

func (l *Level) pageSize(maxVisible int) int {
	if maxVisible <= 0 || maxVisible > len(l.Items) {
		return len(l.Items)
	}
	return maxVisible
}

// EnsureCursorVisible scrolls the viewport the minimum amount needed to show
// the cursor within maxVisible rows.
func (l *Level) EnsureCursorVisible(maxVisible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	maxOffset := n - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	offset := clamp(l.ViewportOffset, 0, maxOffset)
	if l.Cursor < offset {
		offset = l.Cursor
	}
	if l.Cursor > offset+maxVisible-1 {
		offset = l.Cursor - maxVisible + 1
	}
	l.ViewportOffset = clamp(offset, 0, maxOffset)
}

// Visible returns the window of items starting at the viewport offset.
func (l *Level) Visible(maxVisible int) []menu.Item {
	if maxVisible <= 0 || len(l.Items) <= maxVisible {
		return l.Items
	}
	start := clamp(l.ViewportOffset, 0, len(l.Items)-maxVisible)
	return l.Items[start : start+maxVisible]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
