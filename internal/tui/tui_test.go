package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/maskedit/internal/mask"
)

func newSim(t *testing.T, w, h int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	tm, err := NewWithScreen(s)
	require.NoError(t, err)
	s.SetSize(w, h)
	t.Cleanup(tm.Close)
	return tm, s
}

// row returns the runes drawn on row y.
func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			out = append(out, ' ')
			continue
		}
		out = append(out, c.Runes[0])
	}
	return string(out)
}

func TestCalculateVisualColumn(t *testing.T) {
	assert.Equal(t, 0, calculateVisualColumn("abc", 0))
	assert.Equal(t, 2, calculateVisualColumn("abc", 2))
	assert.Equal(t, 4, calculateVisualColumn("日本語", 2))
	assert.Equal(t, 2, calculateVisualColumn("ab", 9))
}

func TestDrawField(t *testing.T) {
	tm, s := newSim(t, 20, 3)

	v := FieldView{Label: "date", Value: "12.3", Selection: mask.Selection{Start: 4, End: 4}, Format: "**.**.****"}
	DrawField(tm, v, DefaultStyles())
	DrawCursor(tm, v)
	tm.Show()

	assert.Equal(t, "date                ", row(s, 0))
	assert.Equal(t, "> 12.3*.****        ", row(s, 1))

	x, y, visible := s.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 6, x)
	assert.Equal(t, 1, y)
}

func TestDrawFieldSelection(t *testing.T) {
	tm, s := newSim(t, 10, 3)

	styles := DefaultStyles()
	v := FieldView{Value: "abcd", Selection: mask.Selection{Start: 1, End: 3}}
	DrawField(tm, v, styles)
	DrawCursor(tm, v)
	tm.Show()

	_, _, style, _ := s.GetContent(3, 1)
	assert.Equal(t, styles.Selection, style)
	_, _, style, _ = s.GetContent(5, 1)
	assert.Equal(t, styles.Value, style)

	_, _, visible := s.GetCursor()
	assert.False(t, visible)
}
