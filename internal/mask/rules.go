package mask

import "github.com/bethropolis/maskedit/internal/input"

// Rules are the per-field constraints applied to every edit.
type Rules struct {
	ValidSymbols string
	Format       string
	MaskChar     string
	MaxLength    int
}

// NewRules validates the constraints and returns them. A zero MaskChar is
// replaced by DefaultMaskChar.
func NewRules(validSymbols, format, maskChar string, maxLength int) (Rules, error) {
	if err := Validate(validSymbols, maskChar); err != nil {
		return Rules{}, err
	}
	if maskChar == "" {
		maskChar = DefaultMaskChar
	}
	return Rules{
		ValidSymbols: validSymbols,
		Format:       format,
		MaskChar:     maskChar,
		MaxLength:    maxLength,
	}, nil
}

// Payload builds an engine payload for one edit under r.
func (r Rules) Payload(value string, start, end int, typ input.Type, data string) Payload {
	return Payload{
		CurrentValue:   value,
		SelectionStart: start,
		SelectionEnd:   end,
		InputType:      typ,
		InputData:      data,
		ValidSymbols:   r.ValidSymbols,
		Format:         r.Format,
		MaskChar:       r.MaskChar,
		MaxLength:      r.MaxLength,
	}
}
