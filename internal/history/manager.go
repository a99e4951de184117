package history

import (
	"sync"

	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/text"
)

const DefaultMaxHistory = 100

// Manager holds the undo and redo stacks of one field and the snapshot of
// what the field currently shows.
type Manager struct {
	undo    *Stack
	redo    *Stack
	current *Item
	mutex   sync.Mutex
}

// NewManager creates a history manager whose stacks hold at most
// maxHistory items each.
func NewManager(maxHistory int) *Manager {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager{
		undo: NewStack(maxHistory),
		redo: NewStack(maxHistory),
	}
}

// Record stores the edit described by r. An edit that continues the run of
// the last entry extends that entry instead of pushing a new one. Any redo
// history is dropped.
func (m *Manager) Record(r mask.Result) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if r.Category() == input.CategoryHistory {
		return
	}

	m.redo.Clear()
	cur := CurrentItem(r)
	m.current = &cur

	if last := m.undo.Peek(); last != nil && coalesce(last, r) {
		logger.Debugf("History: Merged %s into last entry [%d,%d]", r.InputType, last.SelectionStart, last.SelectionEnd)
		return
	}

	m.undo.Push(UndoItem(r))
	logger.Debugf("History: Recorded %s. Undo: %d", r.InputType, m.undo.Len())
}

// coalesce extends last by one rune when r is a single-rune continuation of
// the same kind of edit at the adjacent position.
func coalesce(last *Item, r mask.Result) bool {
	if r.HasSelection() || last.Type != r.InputType {
		return false
	}

	start, end := r.CurrentSelection.Start, r.CurrentSelection.End
	cat := r.Category()
	switch {
	case cat.IsForward() && last.SelectionStart == start:
		last.SelectionEnd++
	case cat.IsBackward() && last.SelectionStart == end:
		last.SelectionStart--
	case r.InputType.IsInsertText() && text.Len(r.ValidInput) == 1 && last.SelectionEnd == start-1:
		last.SelectionEnd++
	default:
		return false
	}
	return true
}

// Undo pops the last entry and returns it for the caller to apply. The
// state shown before the undo moves onto the redo stack.
func (m *Manager) Undo() (Item, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	it, ok := m.undo.Pop()
	if !ok {
		logger.Debugf("History: Nothing to undo.")
		return Item{}, false
	}
	if m.current != nil {
		m.redo.Push(*m.current)
	}
	m.current = &it

	logger.Debugf("History: Undid %s. Undo: %d, Redo: %d", it.Type, m.undo.Len(), m.redo.Len())
	return it, true
}

// Redo pops the last undone state and returns it for the caller to apply.
func (m *Manager) Redo() (Item, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	it, ok := m.redo.Pop()
	if !ok {
		logger.Debugf("History: Nothing to redo.")
		return Item{}, false
	}
	if m.current != nil {
		m.undo.Push(*m.current)
	}
	m.current = &it

	logger.Debugf("History: Redid %s. Undo: %d, Redo: %d", it.Type, m.undo.Len(), m.redo.Len())
	return it, true
}

// Current returns the snapshot of what the field shows, if known.
func (m *Manager) Current() (Item, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.current == nil {
		return Item{}, false
	}
	return *m.current, true
}

// Clear removes all history.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.undo.Clear()
	m.redo.Clear()
	m.current = nil
	logger.Debugf("History: Cleared.")
}

// CanUndo returns true if there are changes to undo.
func (m *Manager) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.undo.Len() > 0
}

// CanRedo returns true if there are changes to redo.
func (m *Manager) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.redo.Len() > 0
}
