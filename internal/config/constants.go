package config

import "time"

// Base application details
const AppName = "maskedit"
const DefaultConfigFileName = "config.toml"

// History
const DefaultMaxHistory = 100

// Keyboard platforms
const (
	PlatformAuto  = "auto"
	PlatformMac   = "mac"
	PlatformOther = "other"
)

// Status line
const MessageTimeout = 4 * time.Second
