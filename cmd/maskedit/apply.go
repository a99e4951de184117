package main

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/maskedit/internal/config"
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/mask"
)

// ruleFlags select a preset and override parts of it.
type ruleFlags struct {
	preset    string
	format    string
	valid     string
	maskChar  string
	maxLength int
}

func (rf *ruleFlags) define(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&rf.preset, "preset", "p", "", "field preset from the configuration")
	fs.StringVar(&rf.format, "format", "", "format template, e.g. '**.**.****'")
	fs.StringVar(&rf.valid, "valid", "", "valid symbols as a character class body, e.g. '0-9'")
	fs.StringVar(&rf.maskChar, "mask-char", "", "slot marker in the format")
	fs.IntVar(&rf.maxLength, "maxlength", 0, "maximum value length, 0 for none")
}

// rules resolves the preset then applies explicitly set flags.
func (rf *ruleFlags) rules(c *cli, cmd *cobra.Command) (mask.Rules, error) {
	var fc config.FieldConfig
	if rf.preset != "" {
		preset, err := c.cfg.Field(rf.preset)
		if err != nil {
			return mask.Rules{}, err
		}
		fc = preset
	}

	fs := cmd.Flags()
	if fs.Changed("format") {
		fc.Format = rf.format
	}
	if fs.Changed("valid") {
		fc.ValidSymbols = rf.valid
	}
	if fs.Changed("mask-char") {
		fc.MaskChar = rf.maskChar
	}
	if fs.Changed("maxlength") {
		fc.MaxLength = rf.maxLength
	}
	return fc.Rules()
}

func newApplyCmd(c *cli) *cobra.Command {
	var (
		rf         ruleFlags
		value      string
		start, end int
		typ        string
		data       string
		withDiff   bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Run one edit through the mask engine",
		Long: `Run one edit through the mask engine and print the result.

The selection defaults to a caret at the end of --value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules, err := rf.rules(c, cmd)
			if err != nil {
				return err
			}

			n := len([]rune(value))
			if !cmd.Flags().Changed("start") {
				start = n
			}
			if !cmd.Flags().Changed("end") {
				end = start
			}

			result := mask.Apply(rules.Payload(value, start, end, input.Type(typ), data))

			f, err := c.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return f.PrintResult(result, withDiff)
		},
	}

	rf.define(cmd)
	fs := cmd.Flags()
	fs.StringVar(&value, "value", "", "current value of the field")
	fs.IntVar(&start, "start", 0, "selection start (rune offset)")
	fs.IntVar(&end, "end", 0, "selection end (rune offset)")
	fs.StringVarP(&typ, "type", "t", string(input.TypeInsertText), "input type, e.g. insertText or deleteContentBackward")
	fs.StringVarP(&data, "data", "d", "", "inserted text")
	fs.BoolVar(&withDiff, "diff", false, "include a character diff of the value")
	return cmd
}
