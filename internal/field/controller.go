package field

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bethropolis/maskedit/internal/event"
	"github.com/bethropolis/maskedit/internal/history"
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/text"
)

// Controller feeds edits on a Widget through the mask engine, writes the
// results back and keeps the undo history. It is not safe for concurrent
// use; one edit must be fully applied before the next starts.
type Controller struct {
	id        uuid.UUID
	widget    Widget
	rules     mask.Rules
	bridge    input.Bridge
	history   *history.Manager
	events    *event.Manager
	clipboard Clipboard

	beforeApply  func(*mask.Payload)
	afterApply   func(mask.Result)
	onUnexpected func(data string)

	historyLimit int
	anchor       int // fixed end of a keyboard selection
}

// New creates a controller for w.
func New(w Widget, opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.New(),
		widget: w,
		rules:  mask.Rules{MaskChar: mask.DefaultMaskChar},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.clipboard == nil {
		c.clipboard = DefaultClipboard()
	}
	c.history = history.NewManager(c.historyLimit)
	c.anchor, _ = w.Selection()
	return c
}

func (c *Controller) log() *slog.Logger {
	return logger.Tagged("field").With("field", c.id.String())
}

// ID identifies the field in events and logs.
func (c *Controller) ID() uuid.UUID { return c.id }

// Rules returns the masking constraints.
func (c *Controller) Rules() mask.Rules { return c.rules }

// History returns the undo history of the field.
func (c *Controller) History() *history.Manager { return c.history }

// Value returns the widget value.
func (c *Controller) Value() string { return c.widget.Value() }

// Selection returns the widget selection.
func (c *Controller) Selection() mask.Selection {
	s, e := c.widget.Selection()
	return mask.Selection{Start: s, End: e}
}

// HandleInput runs one input event through the engine and applies the
// result. It reports whether the value changed. Line breaks are ignored.
func (c *Controller) HandleInput(typ input.Type, data string) bool {
	if typ == input.TypeInsertLineBreak {
		return false
	}

	start, end := c.widget.Selection()
	p := c.rules.Payload(c.widget.Value(), start, end, typ, data)
	r := c.apply(p)

	if r.UnexpectedInput() {
		c.log().Debug("unexpected input", "data", r.InputData)
		if c.onUnexpected != nil {
			c.onUnexpected(r.InputData)
		}
		c.dispatch(event.TypeUnexpectedInput, event.UnexpectedInputData{Field: c.id, Data: r.InputData})
	}

	switch {
	case r.ValueChanged():
		c.write(r.Value, r.Selection)
		c.history.Record(r)
		c.dispatch(event.TypeValueChanged, event.ValueChangedData{
			Field:      c.id,
			InputType:  r.InputType,
			OldValue:   r.CurrentValue,
			NewValue:   r.Value,
			ValidInput: r.ValidInput,
			Start:      r.Selection.Start,
			End:        r.Selection.End,
		})
		return true
	case r.SelectionChanged():
		c.write(r.Value, r.Selection)
		c.dispatch(event.TypeSelectionChanged, event.SelectionChangedData{Field: c.id, Start: r.Selection.Start, End: r.Selection.End})
	}
	return false
}

func (c *Controller) apply(p mask.Payload) mask.Result {
	if c.beforeApply != nil {
		c.beforeApply(&p)
	}
	r := mask.Apply(p)
	if c.afterApply != nil {
		c.afterApply(r)
	}
	return r
}

func (c *Controller) write(value string, sel mask.Selection) {
	c.widget.SetValue(value)
	c.widget.SetSelection(sel.Start, sel.End)
	c.anchor = sel.Start
}

func (c *Controller) dispatch(t event.Type, data any) {
	if c.events != nil {
		c.events.Dispatch(t, data)
	}
}

// HandleKey runs the undo or redo bound to chord. It reports whether chord
// is a history chord on this platform.
func (c *Controller) HandleKey(chord input.Chord) bool {
	switch c.bridge.Detect(chord) {
	case input.HistoryUndo:
		c.Undo()
	case input.HistoryRedo:
		c.Redo()
	default:
		return false
	}
	return true
}

// HandleIntent performs a decoded key press. It reports whether the intent
// was handled by the field.
func (c *Controller) HandleIntent(in input.Intent) bool {
	switch in.Kind {
	case input.IntentEdit:
		c.HandleInput(in.Type, in.Data)
	case input.IntentHistory:
		if in.History == input.HistoryRedo {
			c.Redo()
		} else {
			c.Undo()
		}
	case input.IntentMove:
		c.Move(in.Motion, in.Extend)
	case input.IntentSelectAll:
		c.SelectAll()
	case input.IntentPaste:
		if err := c.Paste(); err != nil {
			c.log().Warn("paste failed", "error", err)
		}
	case input.IntentCut:
		if err := c.Cut(); err != nil {
			c.log().Warn("cut failed", "error", err)
		}
	case input.IntentCopy:
		if err := c.Copy(); err != nil {
			c.log().Warn("copy failed", "error", err)
		}
	case input.IntentSubmit:
		c.dispatch(event.TypeSubmit, event.SubmitData{Field: c.id, Value: c.widget.Value()})
	case input.IntentCancel:
		c.dispatch(event.TypeCancel, nil)
	default:
		return false
	}
	return true
}

// Undo restores the snapshot before the last recorded edit.
func (c *Controller) Undo() bool {
	it, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.restore(it, false)
	return true
}

// Redo restores the snapshot undone last.
func (c *Controller) Redo() bool {
	it, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.restore(it, true)
	return true
}

func (c *Controller) restore(it history.Item, redo bool) {
	c.write(it.Value, it.Selection())
	c.dispatch(event.TypeHistoryRestored, event.HistoryRestoredData{
		Field: c.id,
		Redo:  redo,
		Value: it.Value,
		Start: it.SelectionStart,
		End:   it.SelectionEnd,
	})
}

// SetValue assigns the value from outside, as a user would by selecting
// everything and typing it. The result still goes through the field rules,
// except the length limit, and the history is cleared.
func (c *Controller) SetValue(value string) {
	current := c.widget.Value()
	switch {
	case value == current:
		return
	case value == "":
		c.write("", mask.Selection{})
	default:
		p := c.rules.Payload(current, 0, text.Len(current), input.TypeReplaceContent, value)
		p.MaxLength = 0
		r := c.apply(p)
		c.write(r.Value, r.Selection)
	}

	c.history.Clear()
	c.log().Debug("value replaced", "value", c.widget.Value())
	c.dispatch(event.TypeValueReplaced, event.ValueReplacedData{Field: c.id, Value: c.widget.Value()})
}

// Select sets the selection.
func (c *Controller) Select(start, end int) {
	c.widget.SetSelection(start, end)
	c.anchor = start
}

// SelectAll selects the whole value.
func (c *Controller) SelectAll() {
	c.Select(0, text.Len(c.widget.Value()))
}

// Move moves the caret. With extend the selection grows from the anchor
// instead of collapsing.
func (c *Controller) Move(m input.Motion, extend bool) {
	start, end := c.widget.Selection()
	n := text.Len(c.widget.Value())

	head := end
	if extend && start != end && start != c.anchor {
		head = start
	}

	switch m {
	case input.MoveLeft:
		switch {
		case !extend && start != end:
			head = start
		default:
			head = max(head-1, 0)
		}
	case input.MoveRight:
		switch {
		case !extend && start != end:
			head = end
		default:
			head = min(head+1, n)
		}
	case input.MoveHome:
		head = 0
	case input.MoveEnd:
		head = n
	}

	if !extend {
		c.Select(head, head)
		return
	}
	c.widget.SetSelection(min(c.anchor, head), max(c.anchor, head))
}

// Paste inserts the clipboard text at the selection.
func (c *Controller) Paste() error {
	s, err := c.clipboard.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	c.HandleInput(input.TypeInsertFromPaste, s)
	return nil
}

// Copy puts the selected text on the clipboard.
func (c *Controller) Copy() error {
	start, end := c.widget.Selection()
	if start == end {
		return nil
	}
	if err := c.clipboard.WriteAll(text.Substring(c.widget.Value(), start, end)); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Cut copies the selection and removes it from the value.
func (c *Controller) Cut() error {
	start, end := c.widget.Selection()
	if start == end {
		return nil
	}
	if err := c.Copy(); err != nil {
		return err
	}
	c.HandleInput(input.TypeDeleteByCut, "")
	return nil
}
