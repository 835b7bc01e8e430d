package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the config file inside the app directory.
	FileName = "config.yaml"

	FormatJSON = "json"
	FormatYAML = "yaml"

	dirMode  = 0700
	fileMode = 0600
)

// Config represents app config object.
type Config struct {
	// InputDir is where <day>.input files are looked up when no file is given.
	InputDir    string `yaml:"input_dir"`
	DBPath      string `yaml:"db,omitempty"`
	Format      string `yaml:"format"`
	LogLevel    string `yaml:"log_level"`
	DefaultHalf string `yaml:"default_half"`
}

// Default returns the config written on first use.
func Default() *Config {
	return &Config{
		InputDir:    ".",
		Format:      FormatJSON,
		LogLevel:    "info",
		DefaultHalf: "1",
	}
}

// Validate checks the values that cannot be defaulted silently.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatJSON, FormatYAML:
	default:
		return errors.Errorf("invalid format: %q (want %s or %s)", c.Format, FormatJSON, FormatYAML)
	}
	if c.DefaultHalf != "1" && c.DefaultHalf != "2" {
		return errors.Errorf("invalid default_half: %q (want 1 or 2)", c.DefaultHalf)
	}
	return nil
}

// InputPath returns the default input file for day.
func (c *Config) InputPath(day int) string {
	dir := c.InputDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, strconv.Itoa(day)+".input")
}

func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config path required")
	}
	if c == nil {
		return errors.New("config required")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file: %s", path)
	}
	return nil
}

// ReadOrCreate reads app config from path or creates a default one there.
// Values missing from the file keep their defaults.
func ReadOrCreate(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path required")
	}

	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return nil, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating default config", "path", path)
		if err := Save(path, Default()); err != nil {
			return nil, errors.Wrap(err, "failed to create default config")
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading config file: %s", path)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling config file: %s", path)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file: %s", path)
	}
	return c, nil
}

// GetOrCreateHomeDir returns the app directory under the user home.
// The create flag is set to true if the directory was created.
func GetOrCreateHomeDir(name string) (path string, created bool, err error) {
	if name == "" {
		return "", false, errors.New("name cannot be empty")
	}

	if !strings.HasPrefix(name, ".") {
		name = "." + name
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", false, errors.Wrap(err, "failed to get user home dir")
	}

	dir := filepath.Join(home, name)
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dir)
		if err := os.Mkdir(dir, dirMode); err != nil {
			return "", false, errors.Wrapf(err, "failed to create dir: %s", dir)
		}
		created = true
	}
	return dir, created, nil
}
