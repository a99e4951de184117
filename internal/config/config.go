package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/bethropolis/maskedit/internal/logger"
)

// ErrUnknownField is returned for a preset name that is not configured.
var ErrUnknownField = errors.New("unknown field preset")

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config          `toml:"logger"`
	History  HistoryConfig          `toml:"history"`
	Keyboard KeyboardConfig         `toml:"keyboard"`
	Theme    ThemeConfig            `toml:"theme"`
	Fields   map[string]FieldConfig `toml:"fields"`
}

// HistoryConfig bounds the undo history of every field.
type HistoryConfig struct {
	MaxEntries int `toml:"max_entries"`
}

// KeyboardConfig selects the undo/redo chord family.
type KeyboardConfig struct {
	Platform string `toml:"platform"`
}

// ThemeConfig points at an optional TOML theme for the terminal field.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger:   logger.NewConfig(),
		History:  HistoryConfig{MaxEntries: DefaultMaxHistory},
		Keyboard: KeyboardConfig{Platform: PlatformAuto},
		Fields:   Presets(),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/maskedit/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFileName)
}

// MacLike reports whether the Cmd-based undo/redo chords apply.
func (c *Config) MacLike() bool {
	switch c.Keyboard.Platform {
	case PlatformMac:
		return true
	case PlatformOther:
		return false
	}
	return runtime.GOOS == "darwin" || runtime.GOOS == "ios"
}

// loadFromFile merges the file at filePath into cfg. A missing file is not
// an error. Unknown keys are returned as warnings.
func loadFromFile(cfg *Config, filePath string) ([]string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	var fileCfg Config
	md, err := toml.DecodeFile(filePath, &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}

	var warnings []string
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		warnings = append(warnings, fmt.Sprintf("config file '%s': unrecognized keys: %s", filePath, strings.Join(keys, ", ")))
	}

	if md.IsDefined("logger", "level") {
		cfg.Logger.Level = fileCfg.Logger.Level
	}
	if md.IsDefined("logger", "file") {
		cfg.Logger.File = fileCfg.Logger.File
	}
	if md.IsDefined("logger", "enabled_tags") {
		cfg.Logger.EnabledTags = fileCfg.Logger.EnabledTags
	}
	if md.IsDefined("logger", "disabled_tags") {
		cfg.Logger.DisabledTags = fileCfg.Logger.DisabledTags
	}
	if md.IsDefined("history", "max_entries") {
		cfg.History.MaxEntries = fileCfg.History.MaxEntries
	}
	if md.IsDefined("keyboard", "platform") {
		cfg.Keyboard.Platform = fileCfg.Keyboard.Platform
	}
	if md.IsDefined("theme", "file") {
		cfg.Theme.File = fileCfg.Theme.File
	}
	for name, f := range fileCfg.Fields {
		if f.MaskChar == "" {
			f.MaskChar = "*"
		}
		cfg.Fields[name] = f
	}
	return warnings, nil
}

// validate resets invalid values to defaults and drops presets whose rules
// do not compile. It returns a description of each correction.
func (c *Config) validate() []string {
	defaults := NewDefaultConfig()
	var warnings []string

	if _, ok := logger.ParseLevel(c.Logger.Level); !ok {
		warnings = append(warnings, fmt.Sprintf("invalid log level %q, using %q", c.Logger.Level, defaults.Logger.Level))
		c.Logger.Level = defaults.Logger.Level
	}
	if c.History.MaxEntries <= 0 {
		warnings = append(warnings, fmt.Sprintf("invalid history.max_entries %d, using %d", c.History.MaxEntries, DefaultMaxHistory))
		c.History.MaxEntries = defaults.History.MaxEntries
	}
	if !slices.Contains([]string{PlatformAuto, PlatformMac, PlatformOther}, c.Keyboard.Platform) {
		warnings = append(warnings, fmt.Sprintf("invalid keyboard.platform %q, using %q", c.Keyboard.Platform, PlatformAuto))
		c.Keyboard.Platform = defaults.Keyboard.Platform
	}

	names := make([]string, 0, len(c.Fields))
	for name := range c.Fields {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		f := c.Fields[name]
		if _, err := f.Rules(); err != nil {
			warnings = append(warnings, fmt.Sprintf("field %q: %v", name, err))
			delete(c.Fields, name)
			continue
		}
		if f.MaxLength < 0 {
			f.MaxLength = 0
			c.Fields[name] = f
		}
	}
	return warnings
}

// Load builds the configuration from defaults, the file at path (or
// DefaultPath when empty) and flag overrides. Problems that were corrected
// are returned as warnings so they can be logged once the logger is up.
func Load(path string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	if flags != nil && flags.ConfigFilePath != "" {
		path = flags.ConfigFilePath
	}
	if path == "" {
		path = DefaultPath()
	}

	warnings, err := loadFromFile(cfg, path)
	if err != nil {
		return nil, nil, err
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	warnings = append(warnings, cfg.validate()...)
	return cfg, warnings, nil
}
