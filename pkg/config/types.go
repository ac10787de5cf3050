// Package config provides configuration loading and validation for blockrm.
package config

import "github.com/ccollicutt/blockrm/pkg/block"

// Config describes the block to remove and the file it lives in.
type Config struct {
	// Name labels the block in messages ("Cannot find <name> section").
	Name string `yaml:"name"`

	// Path is the target file, relative to the working directory.
	Path string `yaml:"path"`

	// StartMarker is contained in the first line of the block.
	StartMarker string `yaml:"start_marker"`

	// EndTag is contained in the last line of the block.
	EndTag string `yaml:"end_tag"`

	// Context must appear within Window lines before the end tag line.
	// Empty disables the guard.
	Context string `yaml:"context,omitempty"`

	// Window is the number of preceding lines searched for Context.
	Window int `yaml:"window"`
}

// Markers returns the block markers described by the config.
func (c *Config) Markers() block.Markers {
	return block.Markers{
		Start:   c.StartMarker,
		End:     c.EndTag,
		Context: c.Context,
		Window:  c.Window,
	}
}
