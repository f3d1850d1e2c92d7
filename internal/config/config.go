// Package config loads tool settings from an optional confl file.
//
// Example:
//
//	log_level = "debug"
//	color     = true
//	format    = "yaml"
//	trace     = false
//	stats     = true
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lytics/confl"
)

// Config holds settings shared by the command line tools. Flags given on
// the command line override values from the file.
type Config struct {
	LogLevel string `json:"log_level" confl:"log_level"` // [debug,info,warn,error]
	Color    bool   `json:"color" confl:"color"`         // colorize log output on terminals
	Format   string `json:"format" confl:"format"`       // output format [text,yaml,json], empty = same as input
	Trace    bool   `json:"trace" confl:"trace"`         // print per-symbol simulation traces
	Stats    bool   `json:"stats" confl:"stats"`         // print conversion statistics
	DOT      string `json:"dot" confl:"dot"`             // write a Graphviz rendering here
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{LogLevel: "warn", Color: true}
}

// LoadConfigFromFile reads a confl formatted file from disk. Environment
// variables in the file are expanded.
func LoadConfigFromFile(filename string) (*Config, error) {
	confBytes, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}
	c, err := LoadConfig(string(confBytes))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", filename, err)
	}
	return c, nil
}

// LoadConfig decodes confl text on top of Default.
func LoadConfig(conf string) (*Config, error) {
	c := Default()
	if _, err := confl.Decode(os.ExpandEnv(conf), c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "txt", "yaml", "yml", "json":
	default:
		return fmt.Errorf("invalid format %q", c.Format)
	}
	return nil
}

// Set assigns one setting by its file key. Command line tools use it to
// apply flags the user gave explicitly.
func (c *Config) Set(key, value string) error {
	switch key {
	case "log_level", "loglevel":
		c.LogLevel = value
	case "format":
		c.Format = value
	case "dot":
		c.DOT = value
	case "color", "trace", "stats":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
		switch key {
		case "color":
			c.Color = b
		case "trace":
			c.Trace = b
		default:
			c.Stats = b
		}
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return c.Validate()
}
