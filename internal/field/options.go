package field

import (
	"github.com/bethropolis/maskedit/internal/event"
	"github.com/bethropolis/maskedit/internal/mask"
)

// Option configures a Controller.
type Option func(*Controller)

// WithRules sets the masking constraints.
func WithRules(r mask.Rules) Option {
	return func(c *Controller) { c.rules = r }
}

// WithMacLike selects the Cmd-based undo and redo chords.
func WithMacLike(macLike bool) Option {
	return func(c *Controller) { c.bridge.MacLike = macLike }
}

// WithHistoryLimit bounds the undo and redo stacks.
func WithHistoryLimit(n int) Option {
	return func(c *Controller) { c.historyLimit = n }
}

// WithEvents publishes field events on m.
func WithEvents(m *event.Manager) Option {
	return func(c *Controller) { c.events = m }
}

// WithClipboard replaces the clipboard used by Paste, Cut and Copy.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithBeforeApply runs fn on every payload before the engine sees it.
func WithBeforeApply(fn func(*mask.Payload)) Option {
	return func(c *Controller) { c.beforeApply = fn }
}

// WithAfterApply runs fn on every engine result before it is written back.
func WithAfterApply(fn func(mask.Result)) Option {
	return func(c *Controller) { c.afterApply = fn }
}

// WithUnexpectedInput calls fn with every rejected single keystroke.
func WithUnexpectedInput(fn func(data string)) Option {
	return func(c *Controller) { c.onUnexpected = fn }
}
