// Package field connects the mask engine and the edit history to a
// text-input widget.
package field

import "github.com/bethropolis/maskedit/internal/text"

// Widget is the live text input a Controller drives. Offsets are runes.
type Widget interface {
	Value() string
	Selection() (start, end int)
	SetValue(value string)
	SetSelection(start, end int)
}

// Buffer is an in-memory Widget.
type Buffer struct {
	value      string
	start, end int
}

// NewBuffer returns a buffer holding value with the caret at its end.
func NewBuffer(value string) *Buffer {
	n := text.Len(value)
	return &Buffer{value: value, start: n, end: n}
}

func (b *Buffer) Value() string { return b.value }

func (b *Buffer) Selection() (int, int) { return b.start, b.end }

// SetValue replaces the value and clamps the selection into it.
func (b *Buffer) SetValue(value string) {
	b.value = value
	b.SetSelection(b.start, b.end)
}

// SetSelection sets the selection, ordering and clamping the offsets.
func (b *Buffer) SetSelection(start, end int) {
	if start > end {
		start, end = end, start
	}
	n := text.Len(b.value)
	b.start = max(0, min(start, n))
	b.end = max(b.start, min(end, n))
}
