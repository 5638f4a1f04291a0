package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config errors
var (
	// ErrConfigNotFound indicates an explicitly requested config file is missing
	ErrConfigNotFound = errors.New("config file not found")

	// ErrConfigInvalid indicates config file is malformed
	ErrConfigInvalid = errors.New("invalid config")
)

// Defaults
const (
	DefaultBaseURI     = "https://springsrv4.epfl.ch/hw01"
	DefaultTimeout     = 5 * time.Second
	DefaultEditor      = "pluma"
	DefaultEmailFile   = "mail.txt"
	DefaultExerciseDir = "fiveNine"
	DefaultSciperFile  = "~/.sciper"
)

// Config represents the complete configuration for ecorp
type Config struct {
	// BaseURI is the remote service root; /pop3 and /validate hang off it
	BaseURI string `mapstructure:"base_uri"`

	// Timeout bounds each remote request
	Timeout time.Duration `mapstructure:"timeout"`

	// Editor is the program used to open the retrieved email
	Editor string `mapstructure:"editor"`

	// EmailFile is where the retrieved email is written, relative to the working directory
	EmailFile string `mapstructure:"email_file"`

	// ExerciseDir is the directory fingerprinted by share
	ExerciseDir string `mapstructure:"exercise_dir"`

	// SciperFile holds the identifier between get-email and share
	SciperFile string `mapstructure:"sciper_file"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls diagnostic logging
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	MaxBackups int    `mapstructure:"max_backups"`
	Compress   bool   `mapstructure:"compress"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		BaseURI:     DefaultBaseURI,
		Timeout:     DefaultTimeout,
		Editor:      DefaultEditor,
		EmailFile:   DefaultEmailFile,
		ExerciseDir: DefaultExerciseDir,
		SciperFile:  ExpandPath(DefaultSciperFile),
		Log: LogConfig{
			Level:      "warn",
			Format:     "text",
			MaxSizeMB:  10,
			MaxAgeDays: 30,
			MaxBackups: 3,
		},
	}
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURI)
	if err != nil {
		return fmt.Errorf("%w: base_uri: %v", ErrConfigInvalid, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: base_uri must be http or https: %s", ErrConfigInvalid, c.BaseURI)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: base_uri has no host: %s", ErrConfigInvalid, c.BaseURI)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrConfigInvalid)
	}

	if c.EmailFile == "" {
		return fmt.Errorf("%w: email_file cannot be empty", ErrConfigInvalid)
	}
	if c.ExerciseDir == "" {
		return fmt.Errorf("%w: exercise_dir cannot be empty", ErrConfigInvalid)
	}
	if c.SciperFile == "" {
		return fmt.Errorf("%w: sciper_file cannot be empty", ErrConfigInvalid)
	}

	return nil
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	// Expand ~ to home directory
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			if len(path) > 1 && (path[1] == '/' || path[1] == filepath.Separator) {
				path = filepath.Join(home, path[2:])
			} else if len(path) == 1 {
				path = home
			}
		}
	}
	// Expand environment variables
	path = os.ExpandEnv(path)
	return filepath.Clean(path)
}
