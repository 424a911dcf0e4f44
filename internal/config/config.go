package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFileName is the project-local config file looked up in the CWD.
const configFileName = ".readmegen.yaml"

// Defaults used when neither flags, environment, nor config provide a value.
const (
	DefaultEmoji  = "📦"
	DefaultOutput = "README.md"
)

// Config holds the persistent settings for one documented tool. Every field
// is optional; flags and environment variables override file values.
type Config struct {
	Name        string `yaml:"name"`         // CLI_NAME; defaults to the binary basename
	Binary      string `yaml:"binary"`       // path or PATH name of the documented binary
	TemplateDir string `yaml:"template_dir"` // explicit fragment directory
	Output      string `yaml:"output"`       // output path, default README.md

	Emoji       string `yaml:"emoji"`
	Tagline     string `yaml:"tagline"`
	Quote       string `yaml:"quote"`
	QuoteAuthor string `yaml:"quote_author"`
	BrewLink    string `yaml:"brew_link"`

	// Fragments optionally pins the fragment set; every listed file must
	// exist in the resolved template directory.
	Fragments []string `yaml:"fragments"`
}

// Load reads the config file at path. An empty path triggers the default
// search: .readmegen.yaml in the working directory, then
// <configdir>/config.yaml. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigFile()
		if path == "" {
			return &Config{}, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// FindPath returns the config file the default search would load, or "".
func FindPath() string {
	return findConfigFile()
}

// findConfigFile returns the first existing default config path, or "".
func findConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}
	if dir := Dir(); dir != "" {
		global := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return ""
}
