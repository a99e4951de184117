package output

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOp is the kind of a diff segment.
type DiffOp string

const (
	DiffEqual  DiffOp = "equal"
	DiffInsert DiffOp = "insert"
	DiffDelete DiffOp = "delete"
)

// Segment is one run of a character diff.
type Segment struct {
	Op   DiffOp `json:"op"`
	Text string `json:"text"`
}

// Diff returns the character-level diff turning oldText into newText.
func Diff(oldText, newText string) []Segment {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(oldText, newText, false))

	segments := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		var op DiffOp
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = DiffInsert
		case diffmatchpatch.DiffDelete:
			op = DiffDelete
		default:
			op = DiffEqual
		}
		segments = append(segments, Segment{Op: op, Text: d.Text})
	}
	return segments
}

// renderDiff writes the segments inline, marking inserts as {+x+} and
// deletes as [-x-] unless styled.
func (f *Formatter) renderDiff(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		switch {
		case s.Op == DiffEqual:
			b.WriteString(s.Text)
		case f.IsColorEnabled() && s.Op == DiffInsert:
			b.WriteString(StyleInsert.Render(s.Text))
		case f.IsColorEnabled():
			b.WriteString(StyleDelete.Render(s.Text))
		case s.Op == DiffInsert:
			b.WriteString("{+" + s.Text + "+}")
		default:
			b.WriteString("[-" + s.Text + "-]")
		}
	}
	return b.String()
}
