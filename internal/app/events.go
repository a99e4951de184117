package app

import (
	"github.com/bethropolis/maskedit/internal/event"
)

// handleUnexpectedInput flashes the rejected keystroke in the status bar.
func (a *App) handleUnexpectedInput(e event.Event) bool {
	if data, ok := e.Data.(event.UnexpectedInputData); ok {
		a.statusBar.SetTemporaryMessage("%q is not accepted here", data.Data)
	}
	return false
}

func (a *App) handleHistoryRestored(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryRestoredData); ok {
		if data.Redo {
			a.statusBar.SetTemporaryMessage("Redo")
		} else {
			a.statusBar.SetTemporaryMessage("Undo")
		}
	}
	return false
}

func (a *App) handleSubmit(e event.Event) bool {
	a.submitted = true
	a.stop()
	return true
}

func (a *App) handleCancel(e event.Event) bool {
	a.stop()
	return true
}
