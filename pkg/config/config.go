// Package config loads the repodeps configuration file.
//
// The file is YAML and every key is optional:
//
//	user: octocat
//	token: ${GITHUB_TOKEN}
//	api_url: https://github.example.com/api/v3
//	raw_url: https://github.example.com/raw
//	languages:
//	  - name: Python
//	    manifests: [requirements.txt, pyproject.toml]
//	exclude: [node_modules, .git]
//
// A present languages or exclude key replaces the built-in default entirely.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	apperrors "github.com/matzehuels/repodeps/pkg/errors"
	"github.com/matzehuels/repodeps/pkg/manifest"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "config.yaml"

// Config is the effective configuration of a run.
type Config struct {
	User       string
	Token      string
	APIURL     string
	RawURL     string
	Registry   manifest.Registry
	Exclusions manifest.ExclusionSet

	// Path is the file the configuration was read from, empty for defaults.
	Path string
}

type fileConfig struct {
	User      string              `yaml:"user"`
	Token     string              `yaml:"token"`
	APIURL    string              `yaml:"api_url"`
	RawURL    string              `yaml:"raw_url"`
	Languages []manifest.Language `yaml:"languages"`
	Exclude   *[]string           `yaml:"exclude"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Registry:   manifest.DefaultRegistry.Clone(),
		Exclusions: manifest.NewExclusionSet(manifest.DefaultExclusions.Names()...),
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/repodeps/config.yaml, falling back to
// ~/.config/repodeps/config.yaml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "repodeps", FileName)
}

// Load reads the configuration at path. An empty path selects DefaultPath,
// and a missing default file yields the defaults. An explicitly named file
// must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults. Environment variable
// references (${VAR}) in the token are expanded.
func Parse(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.User = fc.User
	cfg.Token = os.ExpandEnv(fc.Token)
	cfg.APIURL = fc.APIURL
	cfg.RawURL = fc.RawURL
	if fc.Languages != nil {
		cfg.Registry = manifest.Registry(fc.Languages)
	}
	if fc.Exclude != nil {
		cfg.Exclusions = manifest.NewExclusionSet(*fc.Exclude...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the registry, exclusions and endpoint overrides.
func (c *Config) Validate() error {
	if err := c.Registry.Validate(); err != nil {
		return err
	}
	if err := c.Exclusions.Validate(); err != nil {
		return err
	}
	for _, u := range []string{c.APIURL, c.RawURL} {
		if u == "" {
			continue
		}
		if err := apperrors.ValidateURL(u); err != nil {
			return err
		}
	}
	return nil
}
