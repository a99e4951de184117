// Package theme resolves named styles for the terminal field.
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/maskedit/internal/logger"
)

// Style names looked up by the terminal UI.
const (
	StyleDefault           = "Default"
	StyleLabel             = "Label"
	StyleValue             = "Value"
	StyleSelection         = "Selection"
	StyleHint              = "Hint"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBar.Modified"
	StyleStatusBarMessage  = "StatusBar.Message"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style called name. "StatusBar.Modified" falls back to
// "StatusBar", then to "Default", then to the terminal default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dot := strings.Index(name, "."); dot != -1 {
		if style, ok := t.Styles[name[:dot]]; ok {
			logger.Debugf("Theme '%s': Style '%s' not found, using base '%s'", t.Name, name, name[:dot])
			return style
		}
	}

	if def, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return def
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Default returns the built-in theme.
func Default() *Theme {
	bar := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	return &Theme{
		Name:   "DevComfort Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLabel:             base.Bold(true),
			StyleSelection:         base.Reverse(true),
			StyleHint:              base.Foreground(muted),
			StyleStatusBar:         tcell.StyleDefault.Background(bar).Foreground(fg),
			StyleStatusBarModified: tcell.StyleDefault.Background(bar).Foreground(yellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bar).Foreground(fg).Bold(true),
		},
	}
}
