package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/text"
)

// ResultOutput is the JSON form of an engine result.
type ResultOutput struct {
	Value            string         `json:"value"`
	Selection        mask.Selection `json:"selection"`
	ValidInput       string         `json:"validInput"`
	InputType        input.Type     `json:"inputType"`
	Category         string         `json:"category"`
	ValueChanged     bool           `json:"valueChanged"`
	SelectionChanged bool           `json:"selectionChanged"`
	MaxLengthBlocked bool           `json:"maxLengthBlocked"`
	UnexpectedInput  bool           `json:"unexpectedInput"`
	FullSelection    bool           `json:"fullSelection"`
	Diff             []Segment      `json:"diff,omitempty"`
}

// NewResultOutput converts r, attaching a diff against the previous value
// when withDiff is set.
func NewResultOutput(r mask.Result, withDiff bool) ResultOutput {
	out := ResultOutput{
		Value:            r.Value,
		Selection:        r.Selection,
		ValidInput:       r.ValidInput,
		InputType:        r.InputType,
		Category:         r.Category().String(),
		ValueChanged:     r.ValueChanged(),
		SelectionChanged: r.SelectionChanged(),
		MaxLengthBlocked: r.MaxLengthBlocked,
		UnexpectedInput:  r.UnexpectedInput(),
		FullSelection:    r.FullSelection(),
	}
	if withDiff {
		out.Diff = Diff(r.CurrentValue, r.Value)
	}
	return out
}

// PrintResult writes one engine result.
func (f *Formatter) PrintResult(r mask.Result, withDiff bool) error {
	out := NewResultOutput(r, withDiff)
	if f.IsJSON() {
		return f.JSON(out)
	}

	f.row("value", f.renderValue(out.Value, out.Selection))
	f.row("selection", selectionText(out.Selection))
	f.row("accepted", quote(out.ValidInput))
	if flags := resultFlags(out); len(flags) > 0 {
		f.row("flags", f.style(StyleFlag, strings.Join(flags, " ")))
	}
	if withDiff {
		f.row("diff", f.renderDiff(out.Diff))
	}
	return nil
}

func resultFlags(out ResultOutput) []string {
	var flags []string
	if out.ValueChanged {
		flags = append(flags, "changed")
	}
	if out.SelectionChanged {
		flags = append(flags, "moved")
	}
	if out.FullSelection {
		flags = append(flags, "full-selection")
	}
	if out.MaxLengthBlocked {
		flags = append(flags, "max-length")
	}
	if out.UnexpectedInput {
		flags = append(flags, "unexpected-input")
	}
	return flags
}

func (f *Formatter) row(label, value string) {
	f.Printf("%s%s\n", f.style(StyleLabel, padLabel(label)), value)
}

func padLabel(label string) string {
	if n := 11 - text.Len(label); n > 0 {
		return label + strings.Repeat(" ", n)
	}
	return label + " "
}

// renderValue shows the value with the selection highlighted, or a caret
// marker when plain.
func (f *Formatter) renderValue(value string, sel mask.Selection) string {
	head := text.Substring(value, 0, sel.Start)
	mid := text.Substring(value, sel.Start, sel.End)
	tail := text.Substring(value, sel.End, text.Len(value))

	if !f.IsColorEnabled() {
		if sel.Collapsed() {
			return quote(head + "|" + tail)
		}
		return quote(head + "[" + mid + "]" + tail)
	}
	return StyleValue.Render(head) + StyleSelection.Render(StyleValue.Render(mid)) + StyleValue.Render(tail)
}

func selectionText(sel mask.Selection) string {
	return fmt.Sprintf("[%d,%d]", sel.Start, sel.End)
}

func quote(s string) string {
	return strconv.Quote(s)
}
