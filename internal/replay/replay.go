// Package replay drives a field controller from a JSON-lines script.
//
// Each non-empty line is one object naming a single action:
//
//	{"input": "insertText", "data": "7"}   run an input event
//	{"key": "Ctrl+Z"}                      press a chord (undo/redo bridge)
//	{"select": [0, 3]}                     set the selection
//	{"set": "+7(916)"}                     assign the value programmatically
//	{"paste": "123"}                       paste text through the clipboard
//	{"cut": true} / {"copy": true}         clipboard actions on the selection
//
// Lines starting with # or // are comments.
package replay

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bethropolis/maskedit/internal/field"
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/output"
)

// ErrInvalidStep is returned for a line that is not a known action.
var ErrInvalidStep = errors.New("invalid replay step")

// Runner replays scripts against one controller.
type Runner struct {
	Controller *field.Controller
	Clipboard  *field.MemoryClipboard // receives {"paste": ...} text
	Diff       bool
}

// Run executes every step read from r and passes the state after each one
// to emit. It stops at the first invalid line or emit error.
func (rn *Runner) Run(r io.Reader, emit func(output.StepOutput) error) error {
	scanner := bufio.NewScanner(r)
	lineNo, step := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		before := rn.Controller.Value()
		action, err := rn.exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		step++
		out := output.StepOutput{
			Step:      step,
			Action:    action,
			Value:     rn.Controller.Value(),
			Selection: rn.Controller.Selection(),
			CanUndo:   rn.Controller.History().CanUndo(),
			CanRedo:   rn.Controller.History().CanRedo(),
		}
		if rn.Diff {
			out.Diff = output.Diff(before, out.Value)
		}
		if err := emit(out); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// exec runs one script line and returns a short action name.
func (rn *Runner) exec(line string) (string, error) {
	if !gjson.Valid(line) {
		return "", fmt.Errorf("%w: not valid JSON: %s", ErrInvalidStep, line)
	}
	step := gjson.Parse(line)
	c := rn.Controller

	switch {
	case step.Get("input").Exists():
		typ := input.Type(step.Get("input").String())
		c.HandleInput(typ, step.Get("data").String())
		return string(typ), nil

	case step.Get("key").Exists():
		spec := step.Get("key").String()
		chord, err := input.ParseChord(spec)
		if err != nil {
			return "", err
		}
		if !c.HandleKey(chord) {
			return "", fmt.Errorf("%w: %s is not an undo or redo chord here", ErrInvalidStep, chord)
		}
		return chord.String(), nil

	case step.Get("select").IsArray():
		bounds := step.Get("select").Array()
		if len(bounds) != 2 {
			return "", fmt.Errorf("%w: select wants [start, end]", ErrInvalidStep)
		}
		c.Select(int(bounds[0].Int()), int(bounds[1].Int()))
		return "select", nil

	case step.Get("set").Exists():
		c.SetValue(step.Get("set").String())
		return "set", nil

	case step.Get("paste").Exists():
		if rn.Clipboard == nil {
			return "", fmt.Errorf("%w: paste needs a clipboard", ErrInvalidStep)
		}
		if err := rn.Clipboard.WriteAll(step.Get("paste").String()); err != nil {
			return "", err
		}
		return "paste", c.Paste()

	case step.Get("cut").Bool():
		return "cut", c.Cut()

	case step.Get("copy").Bool():
		return "copy", c.Copy()
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidStep, line)
}
