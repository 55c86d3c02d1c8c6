// Package config resolves parrot's settings from defaults, an optional YAML
// config file and PARROT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/parrot-cli/parrot/internal/notice"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override (PARROT_EDITOR, ...).
	EnvPrefix = "PARROT"

	// PathEnvVar selects the config file when no path is given explicitly.
	PathEnvVar = "PARROT_CONFIG"

	backingFileName = "parrot.json"
	defaultEditor   = "vim"
	defaultSelector = "fzf"
)

// Config holds parrot's effective settings. Trace is decoded apart from the
// other keys so that any value notice.IsTraceEnabled accepts turns it on.
type Config struct {
	StoragePath string `yaml:"storage_path" mapstructure:"storage_path"`
	Editor      string `yaml:"editor" mapstructure:"editor"`
	Selector    string `yaml:"selector" mapstructure:"selector"`
	Color       string `yaml:"color" mapstructure:"color"`
	Trace       bool   `yaml:"trace" mapstructure:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StoragePath: DefaultStoragePath(),
		Editor:      defaultEditorCommand(),
		Selector:    defaultSelector,
		Color:       "auto",
	}
}

// DefaultStoragePath returns <user-config-dir>/parrot.json, or parrot.json in
// the current directory when the config dir cannot be determined.
func DefaultStoragePath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = "."
	}
	return filepath.Join(dir, backingFileName)
}

// DefaultPath returns the location of the optional config file.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return filepath.Join(".", "parrot", "config.yaml")
	}
	return filepath.Join(dir, "parrot", "config.yaml")
}

func defaultEditorCommand() string {
	if e := strings.TrimSpace(os.Getenv("EDITOR")); e != "" {
		return e
	}
	return defaultEditor
}

// ResolvePath returns path, or PARROT_CONFIG, or DefaultPath, whichever is
// set first.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(PathEnvVar); env != "" {
		return env
	}
	return DefaultPath()
}

// Load reads the config file at ResolvePath(path) and applies environment
// overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	path = ResolvePath(path)

	def := Default()
	v := viper.New()
	v.SetDefault("storage_path", def.StoragePath)
	v.SetDefault("editor", def.Editor)
	v.SetDefault("selector", def.Selector)
	v.SetDefault("color", def.Color)
	v.SetDefault("trace", def.Trace)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("trace", notice.TraceEnvVar)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Trace = notice.IsTraceEnabled(v.GetString("trace"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.StoragePath) == "" {
		return errors.New("config: storage_path must be non-empty")
	}
	if strings.TrimSpace(c.Editor) == "" {
		c.Editor = defaultEditor
	}
	if strings.TrimSpace(c.Selector) == "" {
		c.Selector = defaultSelector
	}
	switch strings.ToLower(c.Color) {
	case "", "auto", "always", "never", "1", "0", "true", "false", "yes", "no", "on", "off":
	default:
		return fmt.Errorf("config: color %q must be auto, always or never", c.Color)
	}
	return nil
}

// Encode writes c as YAML.
func (c *Config) Encode() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Save writes c to filePath, creating parent directories.
func (c *Config) Save(filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // config path is user-chosen
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close() //nolint:errcheck // close error superseded by encoder error

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return encoder.Close()
}
