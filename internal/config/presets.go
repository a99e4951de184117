package config

import (
	"fmt"

	"github.com/bethropolis/maskedit/internal/mask"
)

// FieldConfig describes one named field preset.
type FieldConfig struct {
	Format       string `toml:"format" json:"format,omitempty"`
	ValidSymbols string `toml:"valid_symbols" json:"valid_symbols,omitempty"`
	MaskChar     string `toml:"mask_char" json:"mask_char,omitempty"`
	MaxLength    int    `toml:"maxlength" json:"maxlength,omitempty"`
}

// Rules validates the preset and returns its engine constraints.
func (f FieldConfig) Rules() (mask.Rules, error) {
	return mask.NewRules(f.ValidSymbols, f.Format, f.MaskChar, f.MaxLength)
}

// Presets returns the built-in field presets.
func Presets() map[string]FieldConfig {
	return map[string]FieldConfig{
		"phone":   {Format: "+7(***)***-**-**", ValidSymbols: "0-9", MaskChar: mask.DefaultMaskChar},
		"date":    {Format: "**.**.****", ValidSymbols: "0-9", MaskChar: mask.DefaultMaskChar},
		"time":    {Format: "**:**", ValidSymbols: "0-9", MaskChar: mask.DefaultMaskChar},
		"numeric": {ValidSymbols: "0-9"},
		"text":    {},
	}
}

// Field returns the preset called name.
func (c *Config) Field(name string) (FieldConfig, error) {
	f, ok := c.Fields[name]
	if !ok {
		return FieldConfig{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f, nil
}
