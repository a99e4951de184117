// Package history provides undo/redo of field snapshots with coalescing of
// adjacent single-rune edits.
package history

import (
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/text"
)

// Item is a snapshot sufficient to restore a field.
type Item struct {
	Type           input.Type `json:"type"`
	Value          string     `json:"value"`
	SelectionStart int        `json:"selectionStart"`
	SelectionEnd   int        `json:"selectionEnd"`
}

// Selection returns the snapshot selection.
func (it Item) Selection() mask.Selection {
	return mask.Selection{Start: it.SelectionStart, End: it.SelectionEnd}
}

// UndoItem is the pre-edit snapshot recorded for r. For deletes without a
// selection its selection spans the removed run, so that restoring it
// re-selects what was deleted.
func UndoItem(r mask.Result) Item {
	it := Item{
		Type:           r.InputType,
		Value:          r.CurrentValue,
		SelectionStart: r.CurrentSelection.Start,
		SelectionEnd:   r.CurrentSelection.End,
	}
	if r.HasSelection() {
		return it
	}

	removed := text.Len(r.ValidInput)
	switch {
	case r.Category().IsForward():
		it.SelectionEnd = it.SelectionStart + removed
	case r.Category().IsBackward():
		it.SelectionStart = it.SelectionEnd - removed
	}
	return it
}

// CurrentItem is the post-edit snapshot of r.
func CurrentItem(r mask.Result) Item {
	return Item{
		Type:           r.InputType,
		Value:          r.Value,
		SelectionStart: r.Selection.Start,
		SelectionEnd:   r.Selection.End,
	}
}
