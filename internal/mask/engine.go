package mask

import (
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/text"
)

// Apply computes the field state after one input event.
//
// Exactly one edit branch runs, chosen by the input category: a
// short-circuit for full fields and history replays, one of the delete
// branches, or an insert. When a format is set, deletes are re-rendered
// through it and inserts go through the format-aware insert instead of the
// plain one.
func Apply(p Payload) Result {
	e := newEdit(p)

	switch {
	case e.blocked() || e.category == input.CategoryHistory:
		e.res.MaxLengthBlocked = e.blocked()
		e.res.InputData = ""
		e.res.Value = e.current
		e.res.Selection = Selection{e.start, e.end}
		return e.res
	case e.category.IsDelete():
		e.delete()
		if e.format != "" {
			e.res.Value = e.toFormatted(e.toRaw(e.res.Value))
		}
	case e.format != "":
		e.insertFormatted()
	default:
		e.insert()
	}

	logger.Tagged("mask").Debug("applied edit",
		"type", p.InputType, "category", e.category,
		"value", e.res.Value, "start", e.res.Selection.Start, "end", e.res.Selection.End)
	return e.res
}

// edit is the working state of one Apply call. start and end are the
// payload selection clamped into the current value.
type edit struct {
	formatter
	current    string
	length     int
	start, end int
	category   input.Category
	data       string
	maxLength  int
	res        Result
}

func newEdit(p Payload) *edit {
	length := text.Len(p.CurrentValue)
	start := clamp(p.SelectionStart, 0, length)
	end := clamp(p.SelectionEnd, start, length)

	return &edit{
		formatter: formatter{format: p.Format, classes: classesFor(p.ValidSymbols, p.maskRune())},
		current:   p.CurrentValue,
		length:    length,
		start:     start,
		end:       end,
		category:  input.Classify(p.InputType),
		data:      p.InputData,
		maxLength: p.MaxLength,
		res: Result{
			InputType:        p.InputType,
			InputData:        p.InputData,
			CurrentValue:     p.CurrentValue,
			CurrentSelection: Selection{p.SelectionStart, p.SelectionEnd},
			Selection:        Selection{p.SelectionStart, p.SelectionEnd},
		},
	}
}

func clamp(i, lo, hi int) int {
	return max(lo, min(i, hi))
}

func (e *edit) hasSelection() bool {
	return e.start != e.end
}

// blocked reports an insert into a field that is already at its maximum
// length with nothing selected to replace.
func (e *edit) blocked() bool {
	return e.maxLength > 0 && !e.category.IsDelete() && !e.hasSelection() && e.length >= e.maxLength
}

func (e *edit) collapse(at int) {
	e.res.Selection = Selection{at, at}
}

// remove deletes [from, to) and collapses the selection to from.
func (e *edit) remove(from, to int) {
	e.res.ValidInput = text.Substring(e.current, from, to)
	e.res.Value = text.Splice(e.current, "", from, to)
	e.collapse(from)
}

func (e *edit) delete() {
	switch e.category {
	case input.CategoryDeleteBackward:
		from := e.start
		if !e.hasSelection() {
			from = max(e.start-1, 0)
		}
		e.remove(from, e.end)

	case input.CategoryDeleteForward:
		to := e.end
		if !e.hasSelection() {
			to = min(e.end+1, e.length)
		}
		e.remove(e.start, to)

	case input.CategoryDeleteWordBackward:
		part, value := e.deleteWord(true)
		e.res.ValidInput = part
		e.res.Value = value
		e.collapse(e.start - text.Len(part))

	case input.CategoryDeleteWordForward:
		part, value := e.deleteWord(false)
		e.res.ValidInput = part
		e.res.Value = value
		e.collapse(e.start)

	case input.CategoryDeleteLineBackward:
		e.remove(0, e.start)
		e.collapse(0)

	case input.CategoryDeleteLineForward:
		e.remove(e.start, e.length)

	default: // CategoryDeleteSelection
		e.remove(e.start, e.end)
	}
}

// deleteWord removes the run of runes next to the caret up to the first
// word boundary that is not the rune adjacent to the caret.
func (e *edit) deleteWord(backward bool) (part, value string) {
	head := text.Substring(e.current, 0, e.start)
	tail := text.Substring(e.current, e.start, e.length)

	source := []rune(tail)
	if backward {
		source = []rune(text.Reverse(head))
	}

	cut := len(source)
	for i, r := range source {
		if i != 0 && e.isBoundary(r) {
			cut = i
			break
		}
	}

	part, rest := string(source[:cut]), string(source[cut:])
	if backward {
		return text.Reverse(part), text.Reverse(rest) + tail
	}
	return part, head + rest
}

// insert splices the accepted input over the selection.
func (e *edit) insert() {
	data := e.filter(e.data)
	if e.maxLength > 0 {
		data = text.Head(data, e.maxLength-e.length+(e.end-e.start))
	}
	e.res.ValidInput = data

	if data == "" {
		e.res.Value = e.current
		return
	}
	e.res.Value = text.Splice(e.current, data, e.start, e.end)
	e.collapse(e.start + text.Len(data))
}

// insertFormatted inserts into a formatted value. The caret is moved onto
// the first slot when it sits on leading literals, a partial selection only
// takes as many runes as it holds accepted runes, and the caret lands on the
// next free slot after the inserted run.
func (e *edit) insertFormatted() {
	start, end := e.start, e.end
	full := e.res.FullSelection()

	if first := text.IndexRune(e.format, e.mask); start < first && !full {
		start = first
		end = max(end, start)
	}

	data := e.filter(e.data)
	if e.hasSelection() && !full {
		selected := text.Substring(e.current, start, end)
		data = text.Head(data, text.Len(e.filter(selected)))
	}
	e.res.ValidInput = data

	value := e.current
	if data != "" {
		value = text.Splice(e.current, data, start, end)
	}

	e.res.Value = e.toFormatted(e.toRaw(value))
	e.collapse(min(start+e.caretOffset(data, start), text.Len(e.res.Value)))
}
