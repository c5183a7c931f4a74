package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// defaultPresetName is the built-in Chinese chapter-heading preset,
// always available even without a config file.
const defaultPresetName = "chapter-cn"

// defaultChapterPattern matches common Chinese chapter headings such as
// "第一章", "第12节" or "第１０８回".
const defaultChapterPattern = `^\s*第[零一二三四五六七八九十百千万0-9０-９]+[章节卷集部篇回]`

// Config holds optional CLI defaults loaded from a YAML file.
type Config struct {
	// Author is the default book author when --author is not given.
	Author string `yaml:"author"`

	// Presets maps preset names to boundary pattern strings for the
	// --preset flag.
	Presets map[string]string `yaml:"presets"`
}

// loadConfig reads the config file at path. When path is empty, the
// well-known location under the user config directory is tried; a
// missing file there is not an error. Built-in presets are merged in
// without overriding user entries.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{Presets: map[string]string{}}

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err == nil {
			path = filepath.Join(dir, "txt2epub", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit:
			return nil, err
		}
	}

	if cfg.Presets == nil {
		cfg.Presets = map[string]string{}
	}
	if _, ok := cfg.Presets[defaultPresetName]; !ok {
		cfg.Presets[defaultPresetName] = defaultChapterPattern
	}
	return cfg, nil
}
