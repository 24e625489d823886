// Package config loads treeline's project configuration from a
// .treeline.yaml file, discovered by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project configuration file.
const FileName = ".treeline.yaml"

// Config mirrors .treeline.yaml. Zero values fall back to Default's.
type Config struct {
	// ContentDir is the markdown root, relative to the config file's
	// directory unless absolute.
	ContentDir string `yaml:"content_dir"`

	// FolderPriority pins named folders to the top of the sidebar; lower
	// numbers sort first. Unlisted folders follow alphabetically.
	FolderPriority map[string]int `yaml:"folder_priority"`

	DropEmpty     bool `yaml:"drop_empty"`
	ExpandAll     bool `yaml:"expand_all"`
	IncludeDrafts bool `yaml:"include_drafts"`

	// Theme selects the sidebar palette: "auto", "dark" or "light".
	Theme string `yaml:"theme"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		ContentDir: "content",
		Theme:      "auto",
	}
}

// Load reads one config file. Fields the file omits keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.ContentDir == "" {
		cfg.ContentDir = Default().ContentDir
	}
	if cfg.Theme == "" {
		cfg.Theme = Default().Theme
	}
	return cfg, nil
}

// Discover walks up from startDir looking for a config file. It returns the
// loaded config and the directory it was found in. When no file exists
// anywhere up the tree, Default and startDir are returned with no error; a
// file that exists but fails to parse is an error.
func Discover(startDir string) (Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Default(), startDir, err
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return Default(), dir, err
			}
			return cfg, dir, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return Default(), dir, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), startDir, nil
		}
		dir = parent
	}
}

// ResolveContentDir turns the configured content dir into an absolute path
// anchored at the directory the config was found in.
func (c Config) ResolveContentDir(baseDir string) string {
	if filepath.IsAbs(c.ContentDir) {
		return c.ContentDir
	}
	return filepath.Join(baseDir, c.ContentDir)
}
