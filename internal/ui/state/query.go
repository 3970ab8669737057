package state

import "unicode"

// Query is an editable line of text with a rune cursor. Every edit reports
// whether it changed anything.
type Query struct {
	Text   string
	Cursor int
}

// Pos returns the cursor clamped to the text.
func (q Query) Pos() int {
	n := len([]rune(q.Text))
	switch {
	case q.Cursor < 0:
		return 0
	case q.Cursor > n:
		return n
	}
	return q.Cursor
}

// Insert places text at the cursor and moves the cursor past it.
func (q *Query) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(q.Text)
	pos := q.Pos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	q.Text = string(updated)
	q.Cursor = pos + len(insert)
	return true
}

// DeleteBackward removes the rune before the cursor.
func (q *Query) DeleteBackward() bool {
	runes := []rune(q.Text)
	pos := q.Pos()
	if pos == 0 {
		return false
	}
	q.Text = string(append(runes[:pos-1:pos-1], runes[pos:]...))
	q.Cursor = pos - 1
	return true
}

// DeleteWordBackward removes the word before the cursor together with the
// whitespace separating it from the cursor.
func (q *Query) DeleteWordBackward() bool {
	runes := []rune(q.Text)
	pos := q.Pos()
	start := wordStart(runes, pos)
	if start == pos {
		return false
	}
	q.Text = string(append(runes[:start:start], runes[pos:]...))
	q.Cursor = start
	return true
}

// Clear empties the text.
func (q *Query) Clear() bool {
	if q.Text == "" {
		return false
	}
	q.Text = ""
	q.Cursor = 0
	return true
}

func (q *Query) Home() bool {
	return q.moveTo(0)
}

func (q *Query) End() bool {
	return q.moveTo(len([]rune(q.Text)))
}

func (q *Query) Left() bool {
	return q.moveTo(q.Pos() - 1)
}

func (q *Query) Right() bool {
	return q.moveTo(q.Pos() + 1)
}

func (q *Query) WordLeft() bool {
	return q.moveTo(wordStart([]rune(q.Text), q.Pos()))
}

func (q *Query) WordRight() bool {
	runes := []rune(q.Text)
	i := q.Pos()
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return q.moveTo(i)
}

func (q *Query) moveTo(pos int) bool {
	n := len([]rune(q.Text))
	if pos < 0 || pos > n || pos == q.Pos() {
		return false
	}
	q.Cursor = pos
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
