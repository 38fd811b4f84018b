// Package config loads the gitwrap TOML configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// EnvConfig overrides the config file location.
const EnvConfig = "GITWRAP_CONFIG"

// EnvLogLevel overrides log.level.
const EnvLogLevel = "GITWRAP_LOG_LEVEL"

type Config struct {
	Shell       ShellConfig       `toml:"shell"`
	Command     CommandConfig     `toml:"command"`
	Translate   TranslateConfig   `toml:"translate"`
	Passthrough PassthroughConfig `toml:"passthrough"`
	Log         LogConfig         `toml:"log"`
}

type ShellConfig struct {
	// Path to the WSL shell. Empty means the system default.
	Path string `toml:"path"`
}

type CommandConfig struct {
	Name string `toml:"name"`
}

type TranslateConfig struct {
	Args   bool `toml:"args"`
	Output bool `toml:"output"`
	Cache  bool `toml:"cache"`
}

type PassthroughConfig struct {
	// Subcommands whose output is written without path translation.
	Commands []string `toml:"commands"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Load reads the config from $GITWRAP_CONFIG or
// <user config dir>/gitwrap/config.toml.
// Returns defaults if the file doesn't exist.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the config at path, layered over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()

	var decodeErr error
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				cfg, decodeErr = Defaults(), err
			}
		}
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	if cfg.Command.Name == "" {
		cfg.Command.Name = "git"
	}
	return cfg, decodeErr
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Command: CommandConfig{
			Name: "git",
		},
		Translate: TranslateConfig{
			Args:   true,
			Output: true,
			Cache:  true,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Path returns the config file location, or "" if none can be determined.
func Path() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gitwrap", "config.toml")
}
