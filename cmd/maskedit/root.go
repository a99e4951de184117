package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bethropolis/maskedit/internal/config"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/output"
)

// cli carries state shared by every subcommand.
type cli struct {
	flags     config.Flags
	outFormat string

	cfg     *config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Masked text input engine",
		Long: `maskedit filters and formats text edits against a set of valid symbols,
an optional format template and a maximum length.

Examples:
  maskedit apply --preset phone --data 79161234567
  maskedit apply --value "12.3" --start 4 --end 4 --type deleteContentBackward --preset date
  maskedit replay steps.jsonl --preset time --diff
  maskedit demo --preset date`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) { c.teardown() },
	}

	c.flags.DefineFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVarP(&c.outFormat, "output", "o", string(output.FormatAuto), "output format: auto, cli or json")

	rootCmd.AddCommand(newApplyCmd(c), newReplayCmd(c), newDemoCmd(c), newPresetsCmd(c))
	return rootCmd
}

// setup loads the configuration and starts the logger.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, warnings, err := config.Load("", &c.flags)
	if err != nil {
		return err
	}
	c.cfg = cfg

	var out io.Writer = os.Stderr
	switch cfg.Logger.File {
	case "", "-":
		// The demo owns the terminal, stderr would corrupt it.
		if cmd.Name() == "demo" {
			out = io.Discard
		}
	default:
		f, err := os.OpenFile(cfg.Logger.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.Logger.File, err)
		}
		c.logFile = f
		out = f
	}
	logger.Init(cfg.Logger, out)

	for _, w := range warnings {
		logger.Warnf("Config: %s", w)
	}
	logger.Debugf("Starting %s %s", config.AppName, cmd.Name())
	return nil
}

func (c *cli) teardown() {
	if c.logFile != nil {
		_ = c.logFile.Close()
		c.logFile = nil
	}
}

func (c *cli) formatter(w io.Writer) (*output.Formatter, error) {
	format, err := output.ParseFormat(c.outFormat)
	if err != nil {
		return nil, err
	}
	return output.NewFormatter(w, format), nil
}
