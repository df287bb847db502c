// Package config loads the lanes configuration file. Every value has a
// working default, so a missing file is not an error; flags override
// whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// S3Config holds the settings for boards stored on S3-compatible
// services (MinIO included).
type S3Config struct {
	Endpoint        string `yaml:"endpoint"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKey       string `yaml:"access_key"`
	SecretKey       string `yaml:"secret_key"`
	UsePathStyle    bool   `yaml:"use_path_style"`
	DisableChecksum bool   `yaml:"disable_checksum"`
}

// Config is the lanes configuration.
type Config struct {
	// Board is the board location: a file path or an s3://bucket/key URL.
	Board string `yaml:"board"`
	// Columns is the column list used when creating a fresh board.
	Columns []string `yaml:"columns"`
	// Listen is the address the HTTP server binds to.
	Listen string   `yaml:"listen"`
	S3     S3Config `yaml:"s3"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Board:   "board.md",
		Columns: []string{"To Do", "Doing", "Done"},
		Listen:  ":8080",
	}
}

// DefaultPath returns the default config file location:
// $XDG_CONFIG_HOME/lanes/config.yml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "lanes", "config.yml"), nil
}

// Load reads the config file at path, layering it over the defaults.
// A missing file yields the defaults; a present but unreadable or
// malformed file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Board == "" {
		cfg.Board = Default().Board
	}
	if len(cfg.Columns) == 0 {
		cfg.Columns = Default().Columns
	}
	if cfg.Listen == "" {
		cfg.Listen = Default().Listen
	}
	return cfg, nil
}
