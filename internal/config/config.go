// Package config handles the XDG configuration directory, the optional
// config.yaml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"tasklist/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "tasklist"

	// SettingsFile is the optional YAML settings filename.
	SettingsFile = "config.yaml"

	// TasksFile is the default CSV filename.
	TasksFile = "tasks.csv"

	// OAuthClientFile is the OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored OAuth token filename.
	TokenFile = "token.json"

	// DefaultPublishList is the Google Tasks list used by publish when none is configured.
	DefaultPublishList = "tasklist"
)

// Settings are read from config.yaml and then overridden by the environment.
type Settings struct {
	TasksFile       string `yaml:"tasks_file" env:"TASKLIST_FILE"`
	DefaultPriority string `yaml:"default_priority" env:"TASKLIST_DEFAULT_PRIORITY"`
	PublishList     string `yaml:"publish_list" env:"TASKLIST_PUBLISH_LIST"`
	LogLevel        string `yaml:"log_level" env:"TASKLIST_LOG_LEVEL"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// File overrides the tasks file (--file). Takes precedence over Settings.
	File string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	Settings Settings
}

// New creates a Config rooted at configDir, or the default directory if empty,
// and loads config.yaml plus environment overrides.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	if err := cfg.load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) load() error {
	data, err := os.ReadFile(c.SettingsPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read config %s: %w", c.SettingsPath(), err)
	default:
		if err := yaml.Unmarshal(data, &c.Settings); err != nil {
			return fmt.Errorf("parse config %s: %w", c.SettingsPath(), err)
		}
	}

	if err := cleanenv.ReadEnv(&c.Settings); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if c.Settings.TasksFile != "" && !filepath.IsAbs(c.Settings.TasksFile) {
		c.Settings.TasksFile = filepath.Join(c.Dir, c.Settings.TasksFile)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SettingsPath returns the path to config.yaml.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.Dir, SettingsFile)
}

// TasksPath returns the CSV file backing the store: --file, then settings,
// then <dir>/tasks.csv.
func (c *Config) TasksPath() string {
	if c.File != "" {
		return c.File
	}
	if c.Settings.TasksFile != "" {
		return c.Settings.TasksFile
	}
	return filepath.Join(c.Dir, TasksFile)
}

// DefaultPriority returns the priority given to new tasks. RED unless configured.
func (c *Config) DefaultPriority() (task.Priority, error) {
	if c.Settings.DefaultPriority == "" {
		return task.PriorityRed, nil
	}
	p, err := task.ParsePriority(c.Settings.DefaultPriority)
	if err != nil {
		return 0, fmt.Errorf("default_priority: %w", err)
	}
	return p, nil
}

// PublishList returns the Google Tasks list name used by publish.
func (c *Config) PublishList() string {
	if c.Settings.PublishList != "" {
		return c.Settings.PublishList
	}
	return DefaultPublishList
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// EnsureTasksDir creates the directory holding the tasks file.
func (c *Config) EnsureTasksDir() error {
	return os.MkdirAll(filepath.Dir(c.TasksPath()), 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
