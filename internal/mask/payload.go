package mask

import (
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/text"
)

// DefaultMaskChar marks an editable slot in a format.
const DefaultMaskChar = "*"

// Selection is a pair of rune offsets. Start == End is a collapsed caret.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Collapsed reports whether the selection is a caret.
func (s Selection) Collapsed() bool {
	return s.Start == s.End
}

// Len returns the number of selected runes.
func (s Selection) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Payload is the input of one engine invocation.
type Payload struct {
	CurrentValue   string
	SelectionStart int
	SelectionEnd   int
	InputType      input.Type
	InputData      string

	ValidSymbols string // character class body; empty accepts everything
	Format       string // optional template
	MaskChar     string // slot marker in Format; empty means DefaultMaskChar
	MaxLength    int    // <= 0 means unbounded
}

// maskRune returns the first rune of MaskChar or the default.
func (p Payload) maskRune() rune {
	for _, r := range p.MaskChar {
		return r
	}
	return '*'
}

// Result is the output of one engine invocation.
type Result struct {
	Value      string
	Selection  Selection
	ValidInput string // accepted part of InputData, or the removed text for deletes

	InputType        input.Type
	InputData        string // cleared when the edit was short-circuited
	CurrentValue     string
	CurrentSelection Selection

	// MaxLengthBlocked is set when the field was already full.
	MaxLengthBlocked bool
}

// Category returns the semantic class of the input type.
func (r Result) Category() input.Category {
	return input.Classify(r.InputType)
}

// ValueChanged reports whether the edit changed the value.
func (r Result) ValueChanged() bool {
	return r.Value != r.CurrentValue
}

// SelectionChanged reports whether the selection moved.
func (r Result) SelectionChanged() bool {
	return r.Selection != r.CurrentSelection
}

// HasSelection reports whether the edit was applied to a non-empty selection.
func (r Result) HasSelection() bool {
	return !r.CurrentSelection.Collapsed()
}

// FullSelection reports whether the whole non-empty value was selected.
func (r Result) FullSelection() bool {
	n := text.Len(r.CurrentValue)
	return n > 0 && r.CurrentSelection.Start == 0 && r.CurrentSelection.End >= n
}

// UnexpectedInput reports a single keystroke that the class rejected.
func (r Result) UnexpectedInput() bool {
	return text.Len(r.InputData) == 1 && r.InputData != r.ValidInput
}
