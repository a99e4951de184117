package mask

import (
	"strings"

	"github.com/bethropolis/maskedit/internal/text"
)

// formatter renders values through a format template.
type formatter struct {
	format string
	*classes
}

// toRaw aligns the accepted runes of value with the format positions that
// are slots or accepted literals, stopping at the first exhausted side.
func (f formatter) toRaw(value string) string {
	if value == "" {
		return ""
	}
	if f.format == "" {
		return value
	}

	template := []rune(f.nonFormat.ReplaceAllString(f.format, ""))
	clean := []rune(f.filter(value))

	var raw strings.Builder
	for i, fc := range template {
		if i >= len(clean) {
			break
		}
		if fc != f.mask {
			raw.WriteRune(fc)
			continue
		}
		raw.WriteRune(clean[i])
	}
	return raw.String()
}

// toFormatted fills the slots of the format with raw, emitting literals in
// between. It stops when raw runs out, except that a literal in the last
// position of the format is still emitted.
func (f formatter) toFormatted(raw string) string {
	if raw == "" {
		return ""
	}
	if f.format == "" {
		return raw
	}

	template := f.format
	if f.valid != nil {
		template = f.valid.ReplaceAllString(template, string(f.mask))
	}
	slots := []rune(template)
	values := []rune(raw)

	var out strings.Builder
	n := 0
	for i, fc := range slots {
		if n >= len(values) {
			if i == len(slots)-1 && fc != f.mask {
				out.WriteRune(fc)
			}
			break
		}
		if fc != f.mask {
			out.WriteRune(fc)
			continue
		}
		out.WriteRune(values[n])
		n++
	}
	return out.String()
}

// caretOffset walks the format from start, filling one slot per inserted
// rune, and returns the distance to the next unfilled slot, or to the end of
// the walked run when no slot is left.
func (f formatter) caretOffset(inserted string, start int) int {
	if f.format == "" || inserted == "" {
		return 0
	}

	rest := []rune(text.Substring(f.format, start, text.Len(f.format)))
	data := []rune(inserted)

	walked := make([]rune, 0, len(rest))
	n := 0
	for i, fc := range rest {
		if n >= len(data) {
			walked = append(walked, rest[i:]...)
			break
		}
		if fc == f.mask {
			walked = append(walked, data[n])
			n++
		} else {
			walked = append(walked, fc)
		}
	}

	for i, r := range walked {
		if r == f.mask {
			return i
		}
	}
	return len(walked)
}
