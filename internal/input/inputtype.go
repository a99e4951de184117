// Package input classifies raw input-type tags and maps keyboard events to
// field edits and history chords.
package input

import "strings"

// Type is a raw input-type tag as reported by the text-input widget.
type Type string

// Input types understood by the mask engine.
const (
	TypeInsertText            Type = "insertText"
	TypeInsertFromPaste       Type = "insertFromPaste"
	TypeInsertReplacementText Type = "insertReplacementText"
	TypeInsertCompositionText Type = "insertCompositionText"
	TypeInsertLineBreak       Type = "insertLineBreak"

	TypeDeleteContentBackward  Type = "deleteContentBackward"
	TypeDeleteWordBackward     Type = "deleteWordBackward"
	TypeDeleteSoftLineBackward Type = "deleteSoftLineBackward"
	TypeDeleteHardLineBackward Type = "deleteHardLineBackward"

	TypeDeleteContentForward  Type = "deleteContentForward"
	TypeDeleteWordForward     Type = "deleteWordForward"
	TypeDeleteSoftLineForward Type = "deleteSoftLineForward"
	TypeDeleteHardLineForward Type = "deleteHardLineForward"

	TypeDeleteByCut   Type = "deleteByCut"
	TypeDeleteByDrag  Type = "deleteByDrag"
	TypeDeleteContent Type = "deleteContent"

	TypeHistoryUndo Type = "historyUndo"
	TypeHistoryRedo Type = "historyRedo"

	// TypeReplaceContent marks a programmatic assignment of the whole value.
	TypeReplaceContent Type = "replaceContent"
)

// Category is the semantic class of an input type.
type Category int

const (
	CategoryInsert Category = iota
	CategoryDeleteBackward
	CategoryDeleteWordBackward
	CategoryDeleteLineBackward
	CategoryDeleteForward
	CategoryDeleteWordForward
	CategoryDeleteLineForward
	CategoryDeleteSelection // delete types that only remove the selection
	CategoryHistory
)

var categoryNames = [...]string{
	CategoryInsert:             "insert",
	CategoryDeleteBackward:     "delete-backward",
	CategoryDeleteWordBackward: "delete-word-backward",
	CategoryDeleteLineBackward: "delete-line-backward",
	CategoryDeleteForward:      "delete-forward",
	CategoryDeleteWordForward:  "delete-word-forward",
	CategoryDeleteLineForward:  "delete-line-forward",
	CategoryDeleteSelection:    "delete-selection",
	CategoryHistory:            "history",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Classify maps a raw tag to its category. Unknown tags containing
// "delete" only remove the selection; every other unknown tag inserts.
func Classify(t Type) Category {
	switch t {
	case TypeDeleteContentBackward:
		return CategoryDeleteBackward
	case TypeDeleteWordBackward:
		return CategoryDeleteWordBackward
	case TypeDeleteSoftLineBackward, TypeDeleteHardLineBackward:
		return CategoryDeleteLineBackward
	case TypeDeleteContentForward:
		return CategoryDeleteForward
	case TypeDeleteWordForward:
		return CategoryDeleteWordForward
	case TypeDeleteSoftLineForward, TypeDeleteHardLineForward:
		return CategoryDeleteLineForward
	case TypeHistoryUndo, TypeHistoryRedo:
		return CategoryHistory
	}
	if strings.Contains(string(t), "delete") {
		return CategoryDeleteSelection
	}
	return CategoryInsert
}

// Category is shorthand for Classify(t).
func (t Type) Category() Category {
	return Classify(t)
}

// IsInsertText reports whether t is plain typing, the only insert kind
// that coalesces in the undo history.
func (t Type) IsInsertText() bool {
	return t == TypeInsertText
}

// IsDelete reports whether c removes text.
func (c Category) IsDelete() bool {
	return c >= CategoryDeleteBackward && c <= CategoryDeleteSelection
}

// IsBackward reports whether c deletes towards the start of the value.
func (c Category) IsBackward() bool {
	return c == CategoryDeleteBackward || c == CategoryDeleteWordBackward || c == CategoryDeleteLineBackward
}

// IsForward reports whether c deletes towards the end of the value.
func (c Category) IsForward() bool {
	return c == CategoryDeleteForward || c == CategoryDeleteWordForward || c == CategoryDeleteLineForward
}
