package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/mask"
)

// edit applies one engine step and records it.
func edit(m *Manager, value string, start, end int, typ input.Type, data string) mask.Result {
	r := mask.Apply(mask.Payload{CurrentValue: value, SelectionStart: start, SelectionEnd: end, InputType: typ, InputData: data})
	m.Record(r)
	return r
}

func TestBackwardDeletesCoalesce(t *testing.T) {
	m := NewManager(0)

	r := edit(m, "12345", 5, 5, input.TypeDeleteContentBackward, "")
	r = edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeDeleteContentBackward, "")
	r = edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeDeleteContentBackward, "")
	require.Equal(t, "12", r.Value)

	it, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "12345", it.Value)
	assert.Equal(t, mask.Selection{Start: 2, End: 5}, it.Selection())
	assert.False(t, m.CanUndo())
}

func TestForwardDeletesCoalesce(t *testing.T) {
	m := NewManager(0)

	r := edit(m, "12345", 1, 1, input.TypeDeleteContentForward, "")
	r = edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeDeleteContentForward, "")
	require.Equal(t, "145", r.Value)

	it, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "12345", it.Value)
	assert.Equal(t, mask.Selection{Start: 1, End: 3}, it.Selection())
	assert.False(t, m.CanUndo())
}

func TestTypingCoalesces(t *testing.T) {
	m := NewManager(0)

	r := edit(m, "", 0, 0, input.TypeInsertText, "a")
	r = edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeInsertText, "b")
	r = edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeInsertText, "c")
	require.Equal(t, "abc", r.Value)

	it, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "", it.Value)
	assert.False(t, m.CanUndo())
}

func TestNoCoalesce(t *testing.T) {
	tests := []struct {
		name  string
		steps func(m *Manager)
		want  int
	}{
		{
			name: "type changes",
			steps: func(m *Manager) {
				r := edit(m, "123", 3, 3, input.TypeDeleteContentBackward, "")
				edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeInsertText, "9")
			},
			want: 2,
		},
		{
			name: "caret jumps",
			steps: func(m *Manager) {
				r := edit(m, "12345", 5, 5, input.TypeDeleteContentBackward, "")
				edit(m, r.Value, 1, 1, input.TypeDeleteContentBackward, "")
			},
			want: 2,
		},
		{
			name: "selection edit",
			steps: func(m *Manager) {
				r := edit(m, "12345", 5, 5, input.TypeDeleteContentBackward, "")
				edit(m, r.Value, 2, 4, input.TypeDeleteContentBackward, "")
			},
			want: 2,
		},
		{
			name: "paste",
			steps: func(m *Manager) {
				r := edit(m, "", 0, 0, input.TypeInsertFromPaste, "a")
				edit(m, r.Value, r.Selection.Start, r.Selection.End, input.TypeInsertFromPaste, "b")
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(0)
			tt.steps(m)
			n := 0
			for m.CanUndo() {
				_, ok := m.Undo()
				require.True(t, ok)
				n++
			}
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestUndoRedo(t *testing.T) {
	m := NewManager(0)

	_, ok := m.Undo()
	assert.False(t, ok)
	_, ok = m.Redo()
	assert.False(t, ok)

	r := edit(m, "ab", 2, 2, input.TypeInsertFromPaste, "cd")
	require.Equal(t, "abcd", r.Value)

	it, ok := m.Undo()
	require.True(t, ok)
	assert.Equal(t, "ab", it.Value)
	assert.True(t, m.CanRedo())

	it, ok = m.Redo()
	require.True(t, ok)
	assert.Equal(t, Item{Type: input.TypeInsertFromPaste, Value: "abcd", SelectionStart: 4, SelectionEnd: 4}, it)
	assert.True(t, m.CanUndo())
	assert.False(t, m.CanRedo())

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, it, cur)
}

func TestNewEditClearsRedo(t *testing.T) {
	m := NewManager(0)

	r := edit(m, "", 0, 0, input.TypeInsertFromPaste, "x")
	_, ok := m.Undo()
	require.True(t, ok)
	require.True(t, m.CanRedo())

	edit(m, "", 0, 0, input.TypeInsertFromPaste, r.Value+"y")
	assert.False(t, m.CanRedo())
}

func TestHistoryReplayIsNotRecorded(t *testing.T) {
	m := NewManager(0)
	edit(m, "abc", 1, 1, input.TypeHistoryUndo, "")
	assert.False(t, m.CanUndo())
}

func TestBoundedStacks(t *testing.T) {
	m := NewManager(2)
	value := ""
	for _, s := range []string{"a", "b", "c"} {
		r := edit(m, value, 0, 0, input.TypeInsertFromPaste, s)
		value = r.Value
	}

	count := 0
	for m.CanUndo() {
		m.Undo()
		count++
	}
	assert.Equal(t, 2, count)
}

func TestClear(t *testing.T) {
	m := NewManager(0)
	edit(m, "", 0, 0, input.TypeInsertText, "a")
	m.Clear()
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestUndoItemSpansRemovedRun(t *testing.T) {
	r := mask.Apply(mask.Payload{CurrentValue: "123 456", SelectionStart: 7, SelectionEnd: 7, InputType: input.TypeDeleteWordBackward})
	assert.Equal(t, Item{Type: input.TypeDeleteWordBackward, Value: "123 456", SelectionStart: 4, SelectionEnd: 7}, UndoItem(r))

	r = mask.Apply(mask.Payload{CurrentValue: "123 456", SelectionStart: 0, SelectionEnd: 0, InputType: input.TypeDeleteWordForward})
	assert.Equal(t, Item{Type: input.TypeDeleteWordForward, Value: "123 456", SelectionStart: 0, SelectionEnd: 3}, UndoItem(r))
}
