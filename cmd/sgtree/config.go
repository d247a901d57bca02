package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the sgtree tools. Zero values mean defaults.
type Config struct {
	Alpha      float64 `yaml:"alpha"`
	TraceLevel string  `yaml:"trace_level"`
	Color      *bool   `yaml:"color"`
}

var defaultConfig = Config{
	TraceLevel: "error",
}

func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".sgtree.yaml"), nil
}

// LoadConfig reads the YAML file at path. An empty path selects
// ~/.sgtree.yaml. A missing file yields the defaults; a malformed one is an
// error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig
	if path == "" {
		p, err := defaultConfigPath()
		if err != nil {
			return &config, nil
		}
		path = p
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &config, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if config.TraceLevel == "" {
		config.TraceLevel = defaultConfig.TraceLevel
	}
	if _, err := config.Level(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Level maps the trace_level setting to a tracing level.
func (c *Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.TraceLevel) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error", "":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", c.TraceLevel)
}
