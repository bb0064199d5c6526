// Copyright (c) 2026 Genpass Team
// Genpass - secure password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads the validated configuration record the generator
// consumes. Values come from flags, GENPASS_* environment variables, and
// an optional genpass.yaml, with flags taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultLength is the password length used when neither the positional
// argument nor the config file specifies one.
const DefaultLength = 24

// Config is the validated record consumed by the generator pipeline.
// It is built once per run and not mutated afterward.
type Config struct {
	NoLatinLower bool     `mapstructure:"no-latin-lower" yaml:"no-latin-lower"`
	NoLatinUpper bool     `mapstructure:"no-latin-upper" yaml:"no-latin-upper"`
	NoLatin      bool     `mapstructure:"no-latin" yaml:"no-latin"`
	NoDigits     bool     `mapstructure:"no-digits" yaml:"no-digits"`
	NoSpecial    bool     `mapstructure:"no-special" yaml:"no-special"`
	Allowed      []string `mapstructure:"allow" yaml:"allow,omitempty"`
	Disallowed   []string `mapstructure:"deny" yaml:"deny,omitempty"`
	Verbose      bool     `mapstructure:"verbose" yaml:"verbose"`
	Copy         bool     `mapstructure:"copy" yaml:"copy"`
	Length       int      `mapstructure:"length" yaml:"length"`
}

// Validate checks the invariants the rest of the pipeline relies on.
func (c Config) Validate() error {
	if c.Length < 1 {
		return fmt.Errorf("length must be a positive integer, got %d", c.Length)
	}
	return nil
}

// getConfigPath returns the full path for the configuration file.
func getConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Genpass")
		default: // Linux, macOS, etc.
			configDir = "/etc/genpass"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "genpass")
	}

	return filepath.Join(configDir, "genpass.yaml"), nil
}

// LoadConfig assembles a configuration value of type T from defaults, the
// config file, GENPASS_* environment variables, and the command's flags,
// in increasing order of precedence. The second return value is the path
// of the config file that was read, or "" when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, configFilePath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("genpass")
	v.SetConfigType("yaml")

	// An explicit --config path has the highest precedence for file-based
	// configuration.
	if configFilePath != nil {
		v.SetConfigFile(*configFilePath)
	}

	if userConfigPath, err := getConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := getConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, anything else is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, "", err
		}
	}

	v.AutomaticEnv()
	v.AllowEmptyEnv(true)
	v.SetEnvPrefix("genpass")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return c, "", err
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", err
	}

	return c, v.ConfigFileUsed(), nil
}

// WriteConfigFile persists c as the user's default config file. Called on
// first run so subsequent runs have a file to inspect and edit.
func WriteConfigFile[T any](c *T, system bool) error {
	path, err := getConfigPath(system)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	// 0600: the file can carry allow/deny sets the user considers private.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	return nil
}
