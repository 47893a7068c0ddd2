// Package config loads the settings used by the sexp command line tool.
// Settings live in a TOML or YAML file; the format is picked from the file
// extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Default locations probed by LoadDefault, relative to the home directory.
var defaultFiles = []string{
	".sexprc.toml",
	".sexprc.yaml",
	".sexprc.yml",
}

// Config holds the settings for the CLI and the REPL.
type Config struct {
	Prompt      string `toml:"prompt" yaml:"prompt"`
	ContPrompt  string `toml:"cont_prompt" yaml:"cont_prompt"`
	HistoryFile string `toml:"history_file" yaml:"history_file"`
	Color       bool   `toml:"color" yaml:"color"`
	DumpTokens  bool   `toml:"dump_tokens" yaml:"dump_tokens"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:      "> ",
		ContPrompt:  "... ",
		HistoryFile: ".sexp_history",
		Color:       true,
	}
}

// Load reads a settings file. Keys not present in the file keep their
// built-in defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q", ext)
	}

	return cfg, nil
}

// LoadDefault probes the home directory for a settings file and falls back
// to the built-in defaults when none is found or readable.
func LoadDefault() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return Default()
	}

	for _, name := range defaultFiles {
		path := filepath.Join(home, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return Default()
}
