// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads conversion settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-jmdict/sink"
)

// ErrNoOutputs indicates a configuration without any output.
var ErrNoOutputs = errors.New("no outputs configured")

// Config holds conversion settings.
type Config struct {
	// OutputDir is the directory for outputs with relative paths.
	OutputDir string `yaml:"output_dir" env:"JMDICT_OUTPUT_DIR" env-default:"."`

	// Version is written to every output. Defaults to the version of the
	// binary.
	Version string `yaml:"version" env:"JMDICT_VERSION"`

	// Languages and CommonOnly configure a single output when Outputs is
	// empty.
	Languages  []string `yaml:"languages" env:"JMDICT_LANGUAGES" env-default:"all"`
	CommonOnly bool     `yaml:"common_only" env:"JMDICT_COMMON_ONLY"`

	// Outputs are explicit output specs.
	Outputs []sink.Spec `yaml:"outputs"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" env:"JMDICT_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"JMDICT_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). If path is empty
// only the environment is read.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Outputs) == 0 && len(c.Languages) == 0 {
		return ErrNoOutputs
	}
	for _, o := range c.Outputs {
		if len(o.Languages) == 0 {
			return fmt.Errorf("output %q: %w", o.Path, sink.ErrNoLanguages)
		}
	}
	return nil
}

// OutputSpecs returns the explicit outputs with relative paths resolved
// against OutputDir. Outputs without a path get one from name.
func (c *Config) OutputSpecs(name func(langs []string, commonOnly bool) string) []sink.Spec {
	specs := make([]sink.Spec, 0, len(c.Outputs))
	for _, o := range c.Outputs {
		spec := o
		if spec.Path == "" {
			spec.Path = name(spec.Languages, spec.CommonOnly)
		}
		if !filepath.IsAbs(spec.Path) {
			spec.Path = filepath.Join(c.OutputDir, spec.Path)
		}
		specs = append(specs, spec)
	}
	return specs
}
