package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultName        = "popup"
	DefaultPath        = "src/App.vue"
	DefaultStartMarker = "<!-- 标签管理弹窗 -->"
	DefaultEndTag      = "</Transition>"
	DefaultContext     = "tagManagement"
	DefaultWindow      = 20
)

// Environment variable names.
const (
	EnvPath   = "BLOCKRM_PATH"
	EnvWindow = "BLOCKRM_WINDOW"
)

// DefaultConfig returns the configuration for the tag management popup.
func DefaultConfig() *Config {
	return &Config{
		Name:        DefaultName,
		Path:        DefaultPath,
		StartMarker: DefaultStartMarker,
		EndTag:      DefaultEndTag,
		Context:     DefaultContext,
		Window:      DefaultWindow,
	}
}

// ApplyEnvironmentOverrides applies environment variable overrides to the config.
// Unparseable values are left for Validate to reject.
func (c *Config) ApplyEnvironmentOverrides() {
	if path := os.Getenv(EnvPath); path != "" {
		c.Path = path
	}

	if window := os.Getenv(EnvWindow); window != "" {
		n, err := strconv.Atoi(window)
		if err != nil {
			n = -1
		}
		c.Window = n
	}
}
