package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fishub/lookupload/pkg/lookupload"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type ProjectConfig struct {
	Credentials string   `yaml:"credentials"`
	ProjectID   string   `yaml:"project_id"`
	Collection  string   `yaml:"collection"`
	Categories  []string `yaml:"categories,omitempty"`
	Concurrency int      `yaml:"concurrency,omitempty"`
	Timeout     string   `yaml:"timeout"`
}

const ConfigFileName = "lookupload.yaml"

// Load reads lookupload.yaml from dir.
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a config file. Unknown keys are rejected. A relative
// credentials path is resolved against the file's directory.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w: %v", path, lookupload.ErrInvalidConfig, err)
	}

	if cfg.Credentials != "" && !filepath.IsAbs(cfg.Credentials) {
		cfg.Credentials = filepath.Join(filepath.Dir(path), cfg.Credentials)
	}
	return &cfg, nil
}

// TimeoutDuration parses Timeout. Zero means unset.
func (c *ProjectConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout in %s: %w: %v", ConfigFileName, lookupload.ErrInvalidConfig, err)
	}
	return d, nil
}
