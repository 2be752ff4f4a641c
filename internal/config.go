// Package config holds user preferences: defaults for new presets, the quick
// command mappings, storage selection and logging.
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Config represents user settings stored on disk.
type Config struct {
	// BasePath is the default base folder offered for new presets.
	BasePath string `yaml:"base_path"`
	// Editor is the default editor application identifier.
	Editor string `yaml:"editor"`
	// Language selects the message table, e.g. "en" or "zh-CN".
	Language string `yaml:"language"`
	// CommandMappings is newline separated "label => command" text.
	CommandMappings string `yaml:"command_mappings"`

	CommandTimeoutRaw string        `yaml:"command_timeout"`
	CommandTimeout    time.Duration `yaml:"-"`

	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // "file" or "sqlite"
	Path    string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// CommandMapping is one parsed "label => command" line.
type CommandMapping struct {
	Label   string
	Command string
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		BasePath: "~/Projects",
		Language: "en",
		Storage:  StorageConfig{Backend: "file"},
		Logging:  LoggingConfig{Level: "info"},
	}
}

// ParseCommandMappings splits raw into lines, trims them, splits each on the
// first "=>" and drops lines with an empty label or command.
func ParseCommandMappings(raw string) []CommandMapping {
	var out []CommandMapping
	for _, line := range strings.Split(raw, "\n") {
		label, command, ok := strings.Cut(strings.TrimSpace(line), "=>")
		if !ok {
			continue
		}
		label, command = strings.TrimSpace(label), strings.TrimSpace(command)
		if label == "" || command == "" {
			continue
		}
		out = append(out, CommandMapping{Label: label, Command: command})
	}
	return out
}

// Mappings returns the parsed command mappings.
func (c *Config) Mappings() []CommandMapping {
	return ParseCommandMappings(c.CommandMappings)
}

// Validate checks field values after loading or Set.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case "", "file", "sqlite":
	default:
		return fmt.Errorf("storage.backend must be \"file\" or \"sqlite\", got %q", c.Storage.Backend)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative")
	}
	return nil
}

// parseDurations converts the raw duration strings into time.Duration values.
func parseDurations(c *Config) error {
	c.CommandTimeout = 0
	if raw := strings.TrimSpace(c.CommandTimeoutRaw); raw != "" && raw != "0" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid command_timeout: %w", err)
		}
		c.CommandTimeout = d
	}
	return nil
}

// setting binds a dotted key to a field.
type setting struct {
	get func(*Config) string
	set func(*Config, string) error
}

func stringSetting(field func(*Config) *string) setting {
	return setting{
		get: func(c *Config) string { return *field(c) },
		set: func(c *Config, v string) error { *field(c) = v; return nil },
	}
}

var settings = map[string]setting{
	"base_path":        stringSetting(func(c *Config) *string { return &c.BasePath }),
	"editor":           stringSetting(func(c *Config) *string { return &c.Editor }),
	"language":         stringSetting(func(c *Config) *string { return &c.Language }),
	"command_mappings": stringSetting(func(c *Config) *string { return &c.CommandMappings }),
	"storage.backend":  stringSetting(func(c *Config) *string { return &c.Storage.Backend }),
	"storage.path":     stringSetting(func(c *Config) *string { return &c.Storage.Path }),
	"logging.level":    stringSetting(func(c *Config) *string { return &c.Logging.Level }),
	"command_timeout": {
		get: func(c *Config) string { return c.CommandTimeoutRaw },
		set: func(c *Config, v string) error {
			c.CommandTimeoutRaw = v
			return parseDurations(c)
		},
	},
}

// Keys lists the settable keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value stored under key.
func (c *Config) Get(key string) (string, error) {
	s, ok := settings[key]
	if !ok {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	return s.get(c), nil
}

// Set updates key and validates the result. On error c is left unchanged.
func (c *Config) Set(key, value string) error {
	s, ok := settings[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}
	next := *c
	if err := s.set(&next, value); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
