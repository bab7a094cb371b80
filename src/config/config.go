package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/nativex-launcher/src/build"
)

const (
	defaultConfigFile = ".nativex.yml"
	defaultTOMLFile   = ".nativex.toml"

	// ToolPathEnv overrides tool_path from the config file.
	ToolPathEnv = "NATIVEX_TOOL_PATH"
)

// Config is the launcher configuration. It only supplies defaults; nothing
// here is ever written back.
type Config struct {
	Version int `yaml:"version" toml:"version"`

	// ToolPath is the nativex executable. Default: /usr/bin/nativex.
	ToolPath string `yaml:"tool_path" toml:"tool_path"`

	// Env holds extra environment variables for the tool.
	Env map[string]string `yaml:"env,omitempty" toml:"env,omitempty"`

	// WorkDir is the tool's working directory. Default: inherit.
	WorkDir string `yaml:"work_dir,omitempty" toml:"work_dir,omitempty"`

	// Form prefills the form fields.
	Form FormDefaults `yaml:"form" toml:"form"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// Load reads configuration from a YAML or TOML file, picked by extension.
// If path is empty, it tries .nativex.yml then .nativex.toml.
// Returns defaults if no file exists.
func Load(path string) (*Config, error) {
	candidates := []string{path}
	if path == "" {
		candidates = []string{defaultConfigFile, defaultTOMLFile}
	}

	cfg := defaults()
	for _, p := range candidates {
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if err := decode(p, data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", p, err)
		}
		cfg.Source = p
		break
	}

	if v := os.Getenv(ToolPathEnv); v != "" {
		cfg.ToolPath = v
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	if _, err := checkVersion(path, data); err != nil {
		return err
	}
	if filepath.Ext(path) == ".toml" {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func defaults() *Config {
	return &Config{
		Version:  latestVersion,
		ToolPath: build.DefaultToolPath,
		Form:     DefaultFormDefaults(),
	}
}

// EnvList returns Env as sorted KEY=VALUE pairs.
func (c *Config) EnvList() []string {
	keys := make([]string, 0, len(c.Env))
	for k := range c.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+c.Env[k])
	}
	return env
}

// NewLauncher creates a launcher with the configured environment and
// working directory.
func (c *Config) NewLauncher() *build.Launcher {
	l := build.NewLauncher()
	l.Env = c.EnvList()
	l.Dir = c.WorkDir
	return l
}
