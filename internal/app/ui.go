package app

import (
	"github.com/bethropolis/maskedit/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	view := tui.FieldView{
		Label:     a.name,
		Value:     a.controller.Value(),
		Selection: a.controller.Selection(),
		Format:    a.controller.Rules().Format,
	}

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawField(a.tuiManager, view, a.styles)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, view)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes the current field state to the status bar.
func (a *App) updateStatusBarContent() {
	h := a.controller.History()
	a.statusBar.SetFieldInfo(a.name, h.CanUndo())
	a.statusBar.SetCaretInfo(a.controller.Selection())
	a.statusBar.SetHistoryInfo(h.CanUndo(), h.CanRedo())
}
