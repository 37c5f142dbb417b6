package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRoot       = "~/vimwiki"
	DefaultExtension  = "wiki"
	DefaultOutputType = "wiki"
	DefaultLogLevel   = "info"

	// RootEnv overrides the configured wiki root
	RootEnv = "VIMWIKI_ROOT"
)

// Config represents the vimwiki configuration file
type Config struct {
	Root       string `yaml:"root"`
	Extension  string `yaml:"extension"`
	OutputType string `yaml:"output_type"`
	LogLevel   string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Root:       DefaultRoot,
		Extension:  DefaultExtension,
		OutputType: DefaultOutputType,
		LogLevel:   DefaultLogLevel,
	}
}

// ConfigPath returns the path to the config file.
// Can be overridden for testing.
var ConfigPath = func() string {
	return filepath.Join(xdg.ConfigHome, "vimwiki", "config.yaml")
}

// Load reads the config file at ConfigPath
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads configuration from path.
// A missing file yields the defaults; unset fields keep their defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if env := os.Getenv(RootEnv); env != "" {
		cfg.Root = env
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.Root == "" {
		c.Root = def.Root
	}
	if c.Extension == "" {
		c.Extension = def.Extension
	}
	if c.OutputType == "" {
		c.OutputType = def.OutputType
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
