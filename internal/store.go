package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPath overrides the config file location.
const EnvPath = "NGI_CONFIG"

// Dir returns ~/.config/nextgen-init.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "nextgen-init"), nil
}

// Path returns the config file location, honouring $NGI_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadConfig reads the config from Path (or returns defaults if missing).
func LoadConfig() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return Load(p)
}

// SaveConfig writes cfg to Path.
func SaveConfig(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return Save(p, cfg)
}

// Load reads the YAML file at path, expanding ${VAR} references. Fields not
// present in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := expandEnvVars(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := parseDurations(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	// 0o600 ensures the config file is only readable by the owner.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// StorageLocation returns the backend kind and its path, filling in the
// default location under Dir when storage.path is empty.
func (c *Config) StorageLocation() (kind, path string, err error) {
	kind = strings.ToLower(c.Storage.Backend)
	if kind == "" {
		kind = "file"
	}
	if c.Storage.Path != "" {
		return kind, c.Storage.Path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", "", err
	}
	if kind == "sqlite" {
		return kind, filepath.Join(dir, "presets.db"), nil
	}
	return kind, dir, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} with environment variable values.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
