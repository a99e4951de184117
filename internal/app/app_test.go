package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/maskedit/internal/field"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/theme"
)

func newTestApp(t *testing.T, rules mask.Rules) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{Name: "date", Rules: rules, Screen: s, Clipboard: &field.MemoryClipboard{}})
	require.NoError(t, err)
	s.SetSize(30, 3)
	return a, s
}

func dateRules(t *testing.T) mask.Rules {
	t.Helper()
	r, err := mask.NewRules("0-9", "**.**.****", "*", 0)
	require.NoError(t, err)
	return r
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestHandleKey(t *testing.T) {
	a, _ := newTestApp(t, dateRules(t))
	defer a.tuiManager.Close()

	for _, r := range "12x3" {
		a.HandleKey(key(r))
	}
	assert.Equal(t, "12.3", a.Value())

	text, _ := a.statusBar.Text()
	assert.Equal(t, `"x" is not accepted here`, text)

	a.HandleKey(tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl))
	assert.Equal(t, "", a.Value())
	text, _ = a.statusBar.Text()
	assert.Equal(t, "Undo", text)
}

func TestRunSubmit(t *testing.T) {
	a, s := newTestApp(t, dateRules(t))

	done := make(chan struct{})
	var (
		value     string
		submitted bool
	)
	go func() {
		defer close(done)
		value, submitted, _ = a.Run()
	}()

	for _, r := range "01022024" {
		s.PostEventWait(key(r))
	}
	s.PostEventWait(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.True(t, submitted)
	assert.Equal(t, "01.02.2024", value)
}

func TestRunCancel(t *testing.T) {
	a, s := newTestApp(t, mask.Rules{})

	done := make(chan bool)
	go func() {
		_, submitted, _ := a.Run()
		done <- submitted
	}()
	s.PostEventWait(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))

	select {
	case submitted := <-done:
		assert.False(t, submitted)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
}

func TestDraw(t *testing.T) {
	a, s := newTestApp(t, dateRules(t))
	defer a.tuiManager.Close()

	a.HandleKey(key('3'))
	a.draw()

	cells, w, _ := s.GetContents()
	var line strings.Builder
	for x := 0; x < w; x++ {
		if rs := cells[w+x].Runes; len(rs) > 0 {
			line.WriteRune(rs[0])
		}
	}
	assert.True(t, strings.HasPrefix(line.String(), "> 3*.**.****"), line.String())
}

func TestThemeStyles(t *testing.T) {
	th := theme.Default()
	th.Styles[theme.StyleHint] = tcell.StyleDefault.Foreground(tcell.ColorRed)

	s := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{Name: "date", Rules: dateRules(t), Screen: s, Theme: th, Clipboard: &field.MemoryClipboard{}})
	require.NoError(t, err)
	defer a.tuiManager.Close()
	s.SetSize(30, 3)

	a.HandleKey(key('3'))
	a.draw()

	// "> 3" then the format hint.
	_, _, style, _ := s.GetContent(3, 1)
	assert.Equal(t, th.Styles[theme.StyleHint], style)

	// The key hint message is still showing.
	_, _, style, _ = s.GetContent(0, 2)
	assert.Equal(t, th.GetStyle(theme.StyleStatusBarMessage), style)
}
