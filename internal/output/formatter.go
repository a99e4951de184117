// Package output renders engine results for the command line, as styled
// text on a terminal and as JSON otherwise.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Format represents the output format type.
type Format string

const (
	FormatAuto Format = "auto"
	FormatCLI  Format = "cli"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatCLI, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (want auto, cli or json)", s)
}

// Formatter handles output formatting.
type Formatter struct {
	Writer io.Writer
	Format Format
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(w io.Writer, format Format) *Formatter {
	return &Formatter{Writer: w, Format: format}
}

// isTerminal reports whether the writer is an interactive terminal.
func (f *Formatter) isTerminal() bool {
	if w, ok := f.Writer.(*os.File); ok {
		return isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd())
	}
	return false
}

// IsJSON reports whether output is JSON, resolving auto by the writer.
func (f *Formatter) IsJSON() bool {
	switch f.Format {
	case FormatJSON:
		return true
	case FormatCLI:
		return false
	}
	return !f.isTerminal()
}

// IsColorEnabled returns true when styled output goes to a terminal.
func (f *Formatter) IsColorEnabled() bool {
	return !f.IsJSON() && f.isTerminal()
}

// JSON outputs data as JSON.
func (f *Formatter) JSON(v any) error {
	encoder := json.NewEncoder(f.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// Printf outputs formatted text.
func (f *Formatter) Printf(format string, a ...any) {
	fmt.Fprintf(f.Writer, format, a...)
}

// JSONLine outputs data as one compact JSON line.
func (f *Formatter) JSONLine(v any) error {
	return json.NewEncoder(f.Writer).Encode(v)
}
