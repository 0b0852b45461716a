package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config is the run configuration: paths plus the two static tables.
type Config struct {
	Dataset string `json:"dataset" toml:"dataset" yaml:"dataset"`
	Out     string `json:"out" toml:"out" yaml:"out"`
	Column  string `json:"column" toml:"column" yaml:"column"`
	Strict  bool   `json:"strict" toml:"strict" yaml:"strict"`

	// Terms maps source-language terms to localized replacements.
	Terms map[string]string `json:"terms" toml:"terms" yaml:"terms"`
	// Labels maps label values to their canonical form.
	Labels map[string]string `json:"labels" toml:"labels" yaml:"labels"`
}

// loadConfig parses the config file, picking the codec by extension
// (.toml, .yaml/.yml, anything else JSON).
func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}
