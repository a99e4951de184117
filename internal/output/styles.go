package output

import "github.com/charmbracelet/lipgloss"

// Color palette for CLI output.
var (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorInsert  = lipgloss.Color("#10B981")
	ColorDelete  = lipgloss.Color("#EF4444")
)

var (
	StyleLabel     = lipgloss.NewStyle().Foreground(ColorMuted).Width(11)
	StyleValue     = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	StyleSelection = lipgloss.NewStyle().Reverse(true)
	StyleFlag      = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInsert    = lipgloss.NewStyle().Foreground(ColorInsert).Underline(true)
	StyleDelete    = lipgloss.NewStyle().Foreground(ColorDelete).Strikethrough(true)
)

// style renders s with st when color is enabled.
func (f *Formatter) style(st lipgloss.Style, s string) string {
	if !f.IsColorEnabled() {
		return s
	}
	return st.Render(s)
}
