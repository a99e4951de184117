package event

import (
	"github.com/google/uuid"

	"github.com/bethropolis/maskedit/internal/input"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Field events
	TypeValueChanged     // Fired when an edit changes the field value
	TypeSelectionChanged // Fired when an edit only moves the caret or selection
	TypeUnexpectedInput  // Fired when a single keystroke is rejected
	TypeHistoryRestored  // Fired after undo or redo restores a snapshot
	TypeValueReplaced    // Fired when the value is set programmatically

	// Terminal field lifecycle
	TypeSubmit
	TypeCancel
)

func (t Type) String() string {
	switch t {
	case TypeValueChanged:
		return "value-changed"
	case TypeSelectionChanged:
		return "selection-changed"
	case TypeUnexpectedInput:
		return "unexpected-input"
	case TypeHistoryRestored:
		return "history-restored"
	case TypeValueReplaced:
		return "value-replaced"
	case TypeSubmit:
		return "submit"
	case TypeCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data any
}

// ValueChangedData describes an applied edit.
type ValueChangedData struct {
	Field      uuid.UUID
	InputType  input.Type
	OldValue   string
	NewValue   string
	ValidInput string
	Start, End int
}

// SelectionChangedData carries the new selection.
type SelectionChangedData struct {
	Field      uuid.UUID
	Start, End int
}

// UnexpectedInputData carries the rejected keystroke.
type UnexpectedInputData struct {
	Field uuid.UUID
	Data  string
}

// HistoryRestoredData describes an undo or redo.
type HistoryRestoredData struct {
	Field      uuid.UUID
	Redo       bool
	Value      string
	Start, End int
}

// ValueReplacedData carries a programmatic assignment.
type ValueReplacedData struct {
	Field uuid.UUID
	Value string
}

// SubmitData carries the value when the field is confirmed.
type SubmitData struct {
	Field uuid.UUID
	Value string
}
