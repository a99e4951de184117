package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Chord parse errors.
var (
	ErrEmptyChord   = errors.New("empty chord specification")
	ErrInvalidChord = errors.New("invalid chord specification")
)

// Chord is a key press with its modifier state. Code follows the DOM
// KeyboardEvent.code naming for letters ("KeyZ").
type Chord struct {
	Code  string
	Meta  bool // Cmd on macOS
	Ctrl  bool
	Shift bool
	Alt   bool
}

// String renders the chord as "Ctrl+Shift+Z".
func (c Chord) String() string {
	var parts []string
	if c.Meta {
		parts = append(parts, "Cmd")
	}
	if c.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if c.Alt {
		parts = append(parts, "Alt")
	}
	if c.Shift {
		parts = append(parts, "Shift")
	}
	parts = append(parts, strings.TrimPrefix(c.Code, "Key"))
	return strings.Join(parts, "+")
}

// ParseChord parses "Ctrl+Z", "Cmd+Shift+Z" or "Meta+z".
func ParseChord(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptyChord
	}

	parts := strings.Split(spec, "+")
	var c Chord
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "cmd", "meta", "super":
			c.Meta = true
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt", "option", "opt":
			c.Alt = true
		default:
			return Chord{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidChord, p)
		}
	}

	key := []rune(strings.TrimSpace(parts[len(parts)-1]))
	if len(key) != 1 || !unicode.IsLetter(key[0]) {
		return Chord{}, fmt.Errorf("%w: key must be a single letter in %q", ErrInvalidChord, spec)
	}
	c.Code = "Key" + string(unicode.ToUpper(key[0]))
	return c, nil
}

// FromKey converts a tcell key event into a chord. Events that carry no
// letter yield a chord with an empty Code.
func FromKey(ev *tcell.EventKey) Chord {
	mod := ev.Modifiers()
	c := Chord{
		Meta:  mod&tcell.ModMeta != 0,
		Ctrl:  mod&tcell.ModCtrl != 0,
		Shift: mod&tcell.ModShift != 0,
		Alt:   mod&tcell.ModAlt != 0,
	}

	key := ev.Key()
	switch {
	case key == tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			c.Code = "Key" + string(unicode.ToUpper(r))
			c.Shift = c.Shift || unicode.IsUpper(r)
		}
	case key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ && !isControlAlias(key):
		c.Code = "Key" + string(rune('A'+(key-tcell.KeyCtrlA)))
		c.Ctrl = true
	}
	return c
}

// isControlAlias reports keys that share a control code with a named key.
func isControlAlias(key tcell.Key) bool {
	return key == tcell.KeyBackspace || key == tcell.KeyTab || key == tcell.KeyEnter
}

// HistoryAction is what a chord asks of the edit history.
type HistoryAction int

const (
	HistoryNone HistoryAction = iota
	HistoryUndo
	HistoryRedo
)

func (a HistoryAction) String() string {
	switch a {
	case HistoryUndo:
		return "undo"
	case HistoryRedo:
		return "redo"
	}
	return "none"
}

// Bridge detects undo and redo chords. MacLike selects Cmd+Z / Cmd+Shift+Z,
// otherwise Ctrl+Z / Ctrl+Y apply.
type Bridge struct {
	MacLike bool
}

// Detect returns the history action bound to c.
func (b Bridge) Detect(c Chord) HistoryAction {
	if b.MacLike {
		if c.Code == "KeyZ" && c.Meta {
			if c.Shift {
				return HistoryRedo
			}
			return HistoryUndo
		}
		return HistoryNone
	}
	if c.Code == "KeyZ" && c.Ctrl {
		return HistoryUndo
	}
	if c.Code == "KeyY" && c.Ctrl {
		return HistoryRedo
	}
	return HistoryNone
}
