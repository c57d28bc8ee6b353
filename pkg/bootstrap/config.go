package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional launcher configuration expected next to the
// executable.
const ConfigFileName = "launcher.yml"

// Config overrides the commands and paths the launcher uses. Every field is
// optional; zero values fall back to the defaults that match the packaged
// dot2dot layout.
type Config struct {
	Interpreter string `yaml:"interpreter"`
	Installer   string `yaml:"installer"`
	Manifest    string `yaml:"manifest"`
	Entry       string `yaml:"entry"`
	TempDir     string `yaml:"temp_dir"`
}

// DefaultConfig returns the stock configuration: python + pip against the
// src/ tree shipped beside the executable.
func DefaultConfig() Config {
	return Config{
		Interpreter: "python",
		Installer:   "pip",
		Manifest:    "src/requirements.txt",
		Entry:       "src/main.py",
		TempDir:     "temp",
	}
}

// LoadConfig reads launcher.yml from path. An absent file yields the default
// configuration; a present but malformed file is an error. Unknown keys are
// rejected so typos surface instead of silently using defaults.
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer file.Close()

	var cfg Config
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	c.Interpreter = fallback(c.Interpreter, defaults.Interpreter)
	c.Installer = fallback(c.Installer, defaults.Installer)
	c.Manifest = fallback(c.Manifest, defaults.Manifest)
	c.Entry = fallback(c.Entry, defaults.Entry)
	c.TempDir = fallback(c.TempDir, defaults.TempDir)
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
