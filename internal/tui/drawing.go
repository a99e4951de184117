package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/text"
)

// Styles used to draw a field.
type Styles struct {
	Label     tcell.Style
	Value     tcell.Style
	Selection tcell.Style
	Hint      tcell.Style
}

// DefaultStyles provides sensible defaults.
func DefaultStyles() Styles {
	return Styles{
		Label:     tcell.StyleDefault.Bold(true),
		Value:     tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
		Hint:      tcell.StyleDefault.Foreground(tcell.ColorGray),
	}
}

// FieldView is what DrawField needs to know about a field.
type FieldView struct {
	Label     string
	Value     string
	Selection mask.Selection
	Format    string // remaining template is drawn as a hint after the value
}

// Layout of the field on screen.
const (
	labelRow = 0
	fieldRow = 1
	prompt   = "> "
)

// calculateVisualColumn returns the screen width of the first runeIndex
// runes of s.
func calculateVisualColumn(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		if currentRuneIndex >= runeIndex {
			break
		}
		visualWidth += gr.Width()
		currentRuneIndex += len(gr.Runes())
	}
	return visualWidth
}

// drawText draws s from x on row y, cluster by cluster, and returns the next
// free column. styleAt picks the style for the cluster starting at a rune index.
func drawText(screen tcell.Screen, x, y, width int, s string, styleAt func(runeIndex int) tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	runeIndex := 0
	for gr.Next() {
		runes := gr.Runes()
		w := gr.Width()
		if x+w > width {
			break
		}
		style := styleAt(runeIndex)
		screen.SetContent(x, y, runes[0], runes[1:], style)
		for cw := 1; cw < w; cw++ {
			screen.SetContent(x+cw, y, ' ', nil, style)
		}
		x += w
		runeIndex += len(runes)
	}
	return x
}

// DrawField draws the label, the value with its selection and the unfilled
// rest of the format.
func DrawField(t *TUI, v FieldView, styles Styles) {
	width, height := t.Size()
	if width <= 0 || height <= fieldRow {
		return
	}
	screen := t.screen

	drawText(screen, 0, labelRow, width, v.Label, func(int) tcell.Style { return styles.Label })

	x := drawText(screen, 0, fieldRow, width, prompt, func(int) tcell.Style { return styles.Value })
	x = drawText(screen, x, fieldRow, width, v.Value, func(i int) tcell.Style {
		if i >= v.Selection.Start && i < v.Selection.End {
			return styles.Selection
		}
		return styles.Value
	})

	if n := text.Len(v.Value); v.Format != "" && n < text.Len(v.Format) {
		hint := text.Substring(v.Format, n, text.Len(v.Format))
		drawText(screen, x, fieldRow, width, hint, func(int) tcell.Style { return styles.Hint })
	}
}

// DrawCursor places the terminal cursor at the caret, or hides it when the
// field has a selection or the caret is off screen.
func DrawCursor(t *TUI, v FieldView) {
	width, height := t.Size()
	if !v.Selection.Collapsed() || height <= fieldRow {
		t.screen.HideCursor()
		return
	}

	x := calculateVisualColumn(prompt, text.Len(prompt)) + calculateVisualColumn(v.Value, v.Selection.End)
	if x >= width {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(x, fieldRow)
}
