package output

import (
	"github.com/bethropolis/maskedit/internal/mask"
)

// StepOutput is the field state after one replayed action.
type StepOutput struct {
	Step      int            `json:"step"`
	Action    string         `json:"action"`
	Value     string         `json:"value"`
	Selection mask.Selection `json:"selection"`
	CanUndo   bool           `json:"canUndo"`
	CanRedo   bool           `json:"canRedo"`
	Diff      []Segment      `json:"diff,omitempty"`
}

// PrintStep writes one replay step, as a JSON line or a single styled row.
func (f *Formatter) PrintStep(s StepOutput) error {
	if f.IsJSON() {
		return f.JSONLine(s)
	}

	history := ""
	if s.CanUndo {
		history += " undo"
	}
	if s.CanRedo {
		history += " redo"
	}

	line := f.renderValue(s.Value, s.Selection)
	if s.Diff != nil {
		line = f.renderDiff(s.Diff)
	}
	f.Printf("%3d %s %s%s\n", s.Step, f.style(StyleLabel, padLabel(s.Action)), line, f.style(StyleFlag, history))
	return nil
}
