package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/maskedit/internal/field"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/replay"
)

func newReplayCmd(c *cli) *cobra.Command {
	var (
		rf       ruleFlags
		initial  string
		withDiff bool
	)

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a JSON-lines edit script against one field",
		Long: `Replay a JSON-lines edit script against one field and print the state
after every step. FILE may be '-' for stdin.

Each line holds one action:
  {"input": "insertText", "data": "7"}
  {"key": "Ctrl+Z"}
  {"select": [0, 3]}
  {"set": "+7(916)"}
  {"paste": "123"}
  {"cut": true}`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rf.rules(c, cmd)
			if err != nil {
				return err
			}

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				r = file
			}

			f, err := c.formatter(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			clip := &field.MemoryClipboard{}
			ctrl := field.New(field.NewBuffer(""),
				field.WithRules(rules),
				field.WithMacLike(c.cfg.MacLike()),
				field.WithHistoryLimit(c.cfg.History.MaxEntries),
				field.WithClipboard(clip),
			)
			if initial != "" {
				ctrl.SetValue(initial)
			}

			logger.Debugf("Replaying %s", args[0])
			runner := &replay.Runner{Controller: ctrl, Clipboard: clip, Diff: withDiff}
			return runner.Run(r, f.PrintStep)
		},
	}

	rf.define(cmd)
	cmd.Flags().StringVar(&initial, "initial", "", "value assigned before the first step")
	cmd.Flags().BoolVar(&withDiff, "diff", false, "include a character diff per step")
	return cmd
}
