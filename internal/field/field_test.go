package field

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/maskedit/internal/event"
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/mask"
)

func phoneRules(t *testing.T) mask.Rules {
	t.Helper()
	r, err := mask.NewRules("0-9", "+7(***)***-**-**", "*", 0)
	require.NoError(t, err)
	return r
}

func newController(t *testing.T, value string, opts ...Option) (*Controller, *Buffer) {
	t.Helper()
	b := NewBuffer(value)
	opts = append([]Option{WithClipboard(&MemoryClipboard{})}, opts...)
	return New(b, opts...), b
}

func typeText(c *Controller, s string) {
	for _, r := range s {
		c.HandleInput(input.TypeInsertText, string(r))
	}
}

func TestBufferClampsSelection(t *testing.T) {
	b := NewBuffer("abc")
	assert.Equal(t, "abc", b.Value())
	s, e := b.Selection()
	assert.Equal(t, []int{3, 3}, []int{s, e})

	b.SetSelection(5, -1)
	s, e = b.Selection()
	assert.Equal(t, []int{0, 3}, []int{s, e})

	b.SetValue("a")
	s, e = b.Selection()
	assert.Equal(t, []int{0, 1}, []int{s, e})
}

func TestTypingPhone(t *testing.T) {
	c, b := newController(t, "", WithRules(phoneRules(t)))

	typeText(c, "79161234567")
	assert.Equal(t, "+7(916)123-45-67", b.Value())
	assert.Equal(t, mask.Selection{Start: 16, End: 16}, c.Selection())
}

func TestUndoRedoRun(t *testing.T) {
	c, b := newController(t, "")

	typeText(c, "abc")
	require.Equal(t, "abc", b.Value())

	c.HandleInput(input.TypeDeleteContentBackward, "")
	c.HandleInput(input.TypeDeleteContentBackward, "")
	require.Equal(t, "a", b.Value())

	require.True(t, c.Undo())
	assert.Equal(t, "abc", b.Value())
	assert.Equal(t, mask.Selection{Start: 1, End: 3}, c.Selection())

	require.True(t, c.Undo())
	assert.Equal(t, "", b.Value())
	assert.False(t, c.Undo())

	require.True(t, c.Redo())
	assert.Equal(t, "abc", b.Value())
	require.True(t, c.Redo())
	assert.Equal(t, "a", b.Value())
	assert.False(t, c.Redo())
}

func TestHandleKeyPlatforms(t *testing.T) {
	tests := []struct {
		name    string
		macLike bool
		undo    string
		redo    string
		ignored string
	}{
		{"other", false, "Ctrl+Z", "Ctrl+Y", "Cmd+Z"},
		{"mac", true, "Cmd+Z", "Cmd+Shift+Z", "Ctrl+Y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, b := newController(t, "", WithMacLike(tt.macLike))
			c.HandleInput(input.TypeInsertFromPaste, "hello")

			chord := func(s string) input.Chord {
				ch, err := input.ParseChord(s)
				require.NoError(t, err)
				return ch
			}

			assert.False(t, c.HandleKey(chord(tt.ignored)))
			assert.Equal(t, "hello", b.Value())

			assert.True(t, c.HandleKey(chord(tt.undo)))
			assert.Equal(t, "", b.Value())

			assert.True(t, c.HandleKey(chord(tt.redo)))
			assert.Equal(t, "hello", b.Value())
		})
	}
}

func TestUnexpectedInput(t *testing.T) {
	events := event.NewManager()
	var dispatched []string
	events.Subscribe(event.TypeUnexpectedInput, func(e event.Event) bool {
		dispatched = append(dispatched, e.Data.(event.UnexpectedInputData).Data)
		return false
	})

	var rejected []string
	rules, err := mask.NewRules("ab", "", "", 0)
	require.NoError(t, err)
	c, b := newController(t, "aa",
		WithRules(rules),
		WithEvents(events),
		WithUnexpectedInput(func(data string) { rejected = append(rejected, data) }),
	)
	c.Select(0, 0)

	assert.False(t, c.HandleInput(input.TypeInsertText, "7"))
	assert.Equal(t, "aa", b.Value())
	assert.Equal(t, []string{"7"}, rejected)
	assert.Equal(t, []string{"7"}, dispatched)
	assert.False(t, c.History().CanUndo())

	assert.True(t, c.HandleInput(input.TypeInsertText, "b"))
	assert.Equal(t, "baa", b.Value())
	assert.Len(t, rejected, 1)
}

func TestLineBreakIgnored(t *testing.T) {
	c, b := newController(t, "ab")
	assert.False(t, c.HandleInput(input.TypeInsertLineBreak, "\n"))
	assert.Equal(t, "ab", b.Value())
}

func TestSetValue(t *testing.T) {
	events := event.NewManager()
	var replaced []string
	events.Subscribe(event.TypeValueReplaced, func(e event.Event) bool {
		replaced = append(replaced, e.Data.(event.ValueReplacedData).Value)
		return false
	})

	c, b := newController(t, "", WithRules(phoneRules(t)), WithEvents(events))
	typeText(c, "1")
	require.True(t, c.History().CanUndo())

	c.SetValue("+7 916 123 45 67")
	assert.Equal(t, "+7(916)123-45-67", b.Value())
	assert.False(t, c.History().CanUndo())

	c.SetValue("+7(916)123-45-67")
	c.SetValue("")
	assert.Equal(t, "", b.Value())
	assert.Equal(t, []string{"+7(916)123-45-67", ""}, replaced)
}

func TestSetValueIgnoresMaxLength(t *testing.T) {
	rules, err := mask.NewRules("", "", "", 3)
	require.NoError(t, err)
	c, b := newController(t, "", WithRules(rules))

	c.SetValue("abcdef")
	assert.Equal(t, "abcdef", b.Value())

	c.HandleInput(input.TypeInsertText, "g")
	assert.Equal(t, "abcdef", b.Value())
}

func TestHooks(t *testing.T) {
	var seen []mask.Result
	c, b := newController(t, "",
		WithBeforeApply(func(p *mask.Payload) { p.ValidSymbols = "a-z" }),
		WithAfterApply(func(r mask.Result) { seen = append(seen, r) }),
	)

	c.HandleInput(input.TypeInsertFromPaste, "a1b2")
	assert.Equal(t, "ab", b.Value())
	require.Len(t, seen, 1)
	assert.Equal(t, "ab", seen[0].ValidInput)
}

func TestClipboard(t *testing.T) {
	cb := &MemoryClipboard{}
	c, b := newController(t, "hello world", WithClipboard(cb))

	c.Select(0, 5)
	require.NoError(t, c.Copy())
	assert.Equal(t, "hello world", b.Value())

	c.Select(5, 11)
	require.NoError(t, c.Cut())
	assert.Equal(t, "hello", b.Value())
	s, _ := cb.ReadAll()
	assert.Equal(t, " world", s)

	c.Move(input.MoveHome, false)
	require.NoError(t, c.Paste())
	assert.Equal(t, " worldhello", b.Value())

	require.True(t, c.Undo())
	assert.Equal(t, "hello", b.Value())
	require.True(t, c.Undo())
	assert.Equal(t, "hello world", b.Value())
}

func TestCutWithoutSelection(t *testing.T) {
	cb := &MemoryClipboard{text: "keep"}
	c, b := newController(t, "abc", WithClipboard(cb))
	require.NoError(t, c.Cut())
	assert.Equal(t, "abc", b.Value())
	s, _ := cb.ReadAll()
	assert.Equal(t, "keep", s)
}

func TestMove(t *testing.T) {
	c, _ := newController(t, "abcd")

	c.Move(input.MoveLeft, false)
	assert.Equal(t, mask.Selection{Start: 3, End: 3}, c.Selection())

	c.Move(input.MoveLeft, true)
	c.Move(input.MoveLeft, true)
	assert.Equal(t, mask.Selection{Start: 1, End: 3}, c.Selection())

	c.Move(input.MoveRight, true)
	assert.Equal(t, mask.Selection{Start: 2, End: 3}, c.Selection())

	c.Move(input.MoveLeft, false)
	assert.Equal(t, mask.Selection{Start: 2, End: 2}, c.Selection())

	c.Move(input.MoveEnd, true)
	assert.Equal(t, mask.Selection{Start: 2, End: 4}, c.Selection())

	c.Move(input.MoveRight, false)
	assert.Equal(t, mask.Selection{Start: 4, End: 4}, c.Selection())

	c.Move(input.MoveHome, false)
	c.Move(input.MoveLeft, false)
	assert.Equal(t, mask.Selection{Start: 0, End: 0}, c.Selection())

	c.SelectAll()
	assert.Equal(t, mask.Selection{Start: 0, End: 4}, c.Selection())
}

func TestHandleIntentFromKeys(t *testing.T) {
	events := event.NewManager()
	var submitted string
	events.Subscribe(event.TypeSubmit, func(e event.Event) bool {
		submitted = e.Data.(event.SubmitData).Value
		return true
	})

	c, b := newController(t, "", WithEvents(events))
	p := input.NewProcessor(input.Bridge{})

	keys := []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlW, 0, tcell.ModCtrl),
	}
	for _, k := range keys {
		c.HandleIntent(p.Process(k))
	}
	assert.Equal(t, "ab ", b.Value())

	assert.True(t, c.HandleIntent(p.Process(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))))
	assert.Equal(t, "ab c", b.Value())

	c.HandleIntent(p.Process(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	assert.Equal(t, "ab c", submitted)

	assert.False(t, c.HandleIntent(input.Intent{}))
}
