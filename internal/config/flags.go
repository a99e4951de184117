package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	ConfigFilePath string
	LogLevel       string
	LogFilePath    string
	EnableTags     []string
	DisableTags    []string
	Platform       string
	HistorySize    int
	ThemeFilePath  string

	fs *pflag.FlagSet
}

// DefineFlags registers the flags on fs.
func (f *Flags) DefineFlags(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("path to TOML configuration file (default %s)", DefaultPath()))
	fs.StringVar(&f.LogLevel, "loglevel", "", "log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "log file path ('-' for stderr)")
	fs.StringSliceVar(&f.EnableTags, "log-tags", nil, "only log these tags")
	fs.StringSliceVar(&f.DisableTags, "log-disable-tags", nil, "never log these tags")
	fs.StringVar(&f.Platform, "platform", "", "undo/redo chords: auto, mac or other")
	fs.IntVar(&f.HistorySize, "history", 0, "maximum undo entries per field")
	fs.StringVar(&f.ThemeFilePath, "theme", "", "path to TOML theme file for the terminal field")
}

// ApplyOverrides copies every flag that was set on the command line into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "loglevel":
			cfg.Logger.Level = f.LogLevel
		case "logfile":
			cfg.Logger.File = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = f.EnableTags
		case "log-disable-tags":
			cfg.Logger.DisabledTags = f.DisableTags
		case "platform":
			cfg.Keyboard.Platform = f.Platform
		case "history":
			cfg.History.MaxEntries = f.HistorySize
		case "theme":
			cfg.Theme.File = f.ThemeFilePath
		}
	})
}
