package main

import (
	"sort"

	"github.com/spf13/cobra"
)

func newPresetsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the configured field presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := c.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if f.IsJSON() {
				return f.JSON(c.cfg.Fields)
			}

			names := make([]string, 0, len(c.cfg.Fields))
			for name := range c.cfg.Fields {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fc := c.cfg.Fields[name]
				f.Printf("%-10s format=%q valid=%q mask=%q maxlength=%d\n",
					name, fc.Format, fc.ValidSymbols, fc.MaskChar, fc.MaxLength)
			}
			return nil
		},
	}
}
