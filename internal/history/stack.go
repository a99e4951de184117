package history

// Stack is a LIFO of items that drops its oldest entry once it holds max.
type Stack struct {
	items []Item
	max   int
}

// NewStack returns an empty stack bounded to max items; max <= 0 means
// DefaultMaxHistory.
func NewStack(max int) *Stack {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	return &Stack{items: make([]Item, 0, min(max, 16)), max: max}
}

// Push adds it on top, evicting the oldest entry when full.
func (s *Stack) Push(it Item) {
	s.items = append(s.items, it)
	if len(s.items) > s.max {
		s.items = s.items[len(s.items)-s.max:]
	}
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (Item, bool) {
	if len(s.items) == 0 {
		return Item{}, false
	}
	it := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return it, true
}

// Peek returns a pointer to the top item so it can be extended in place.
func (s *Stack) Peek() *Item {
	if len(s.items) == 0 {
		return nil
	}
	return &s.items[len(s.items)-1]
}

// Len returns the number of items.
func (s *Stack) Len() int { return len(s.items) }

// Clear drops every item.
func (s *Stack) Clear() { s.items = s.items[:0] }
