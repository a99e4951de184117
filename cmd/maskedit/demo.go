package main

import (
	"github.com/spf13/cobra"

	"github.com/bethropolis/maskedit/internal/app"
	"github.com/bethropolis/maskedit/internal/field"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/theme"
)

func newDemoCmd(c *cli) *cobra.Command {
	var (
		rf      ruleFlags
		initial string
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Edit one masked field on the terminal",
		Long: `Edit one masked field on the terminal. Enter submits and prints the
value, Escape cancels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("preset") {
				rf.preset = "phone"
			}
			rules, err := rf.rules(c, cmd)
			if err != nil {
				return err
			}

			var th *theme.Theme
			if c.cfg.Theme.File != "" {
				if th, err = theme.LoadFromFile(c.cfg.Theme.File); err != nil {
					logger.Warnf("Using default theme: %v", err)
				}
			}

			a, err := app.NewApp(app.Options{
				Name:         rf.preset,
				Rules:        rules,
				Initial:      initial,
				MacLike:      c.cfg.MacLike(),
				HistoryLimit: c.cfg.History.MaxEntries,
				Clipboard:    field.DefaultClipboard(),
				Theme:        th,
			})
			if err != nil {
				return err
			}

			value, submitted, err := a.Run()
			if err != nil {
				logger.Errorf("Application exited with error: %v", err)
				return err
			}
			if !submitted {
				logger.Infof("Demo cancelled")
				return nil
			}

			f, err := c.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if f.IsJSON() {
				return f.JSON(map[string]string{"field": rf.preset, "value": value})
			}
			f.Printf("%s\n", value)
			return nil
		},
	}

	rf.define(cmd)
	cmd.Flags().StringVar(&initial, "initial", "", "initial value")
	return cmd
}
