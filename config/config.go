package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/artie-labs/transfer/lib/stringutil"
	"gopkg.in/yaml.v3"

	"github.com/artie-labs/datautils/constants"
)

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Metrics struct {
	Namespace string   `yaml:"namespace"`
	Tags      []string `yaml:"tags"`
}

type Settings struct {
	RootDir   string `yaml:"rootDir"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	GroupSize int    `yaml:"groupSize"`

	Reporting *Reporting `yaml:"reporting"`
	Metrics   *Metrics   `yaml:"metrics"`
}

func (s *Settings) GenerateDefault() {
	if s.RootDir == "" {
		s.RootDir = "."
	}

	if s.GroupSize == 0 {
		s.GroupSize = constants.DefaultGroupSize
	}
}

func (s *Settings) Validate() error {
	if s == nil {
		return fmt.Errorf("config is nil")
	}

	if stringutil.Empty(s.Input) {
		return fmt.Errorf("input file not passed in")
	}

	if s.GroupSize <= 0 {
		return fmt.Errorf("group size must be positive, got: %d", s.GroupSize)
	}

	if s.Metrics != nil && s.Metrics.Namespace == "" {
		return fmt.Errorf("metrics namespace not passed in")
	}

	return nil
}

func (s Settings) CacheDirectory() string {
	return filepath.Join(s.RootDir, constants.CacheDirectoryName)
}

// OutputPath returns where batches are written, falling back to a file inside [Settings.CacheDirectory].
func (s Settings) OutputPath() string {
	return stringutil.Override(filepath.Join(s.CacheDirectory(), constants.DefaultOutputFile), s.Output)
}

func ReadConfig(fp string) (*Settings, error) {
	bytes, err := os.ReadFile(fp)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var settings Settings
	if err = yaml.Unmarshal(bytes, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	settings.GenerateDefault()
	if err = settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate config file: %w", err)
	}

	return &settings, nil
}
