// Package config loads the quests runner configuration: where puzzle
// inputs live and how verbose logging is.
//
// A YAML file may override individual input paths:
//
//	input_dir: inputs
//	log_level: debug
//	quests:
//	  13:
//	    3: /tmp/quest13_part3.txt
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = "quests.yaml"

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds runner settings.
type Config struct {
	// InputDir is the root of the quest_NN/part_K.txt tree.
	InputDir string `yaml:"input_dir"`
	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
	// Quests overrides input paths: quest number → part number → path.
	Quests map[int]map[int]string `yaml:"quests"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InputDir: "inputs",
		LogLevel: log.InfoLevel.String(),
	}
}

// Load reads path over the defaults. A missing file is tolerated only when
// path is DefaultPath, so an explicit --config must exist.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == DefaultPath:
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the log level and input directory.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("%w: input_dir is empty", ErrInvalid)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// InputPath returns the input file of a quest part: an override from
// Quests, or <InputDir>/quest_NN/part_K.txt.
func (c *Config) InputPath(quest, part int) string {
	if p, ok := c.Quests[quest][part]; ok && p != "" {
		return p
	}
	return filepath.Join(c.InputDir, fmt.Sprintf("quest_%02d", quest), fmt.Sprintf("part_%d.txt", part))
}
