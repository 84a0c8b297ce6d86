// Copyright 2025 the anonydoc authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// 🔧 DetectorConfig configures the entity detector boundary
type DetectorConfig struct {
	Endpoint       string `json:"endpoint,omitempty" yaml:"endpoint,omitempty" hcl:"endpoint,optional"`                      // NER sidecar base URL; empty disables the model detector
	Model          string `json:"model,omitempty" yaml:"model,omitempty" hcl:"model,optional"`                               // model name passed to the sidecar
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" hcl:"timeout_seconds,optional"` // per-call timeout
	Regex          bool   `json:"regex,omitempty" yaml:"regex,omitempty" hcl:"regex,optional"`                               // enable the local regex detector
}

// 📚 Config is the complete anonydoc configuration
type Config struct {
	Detector      DetectorConfig    `json:"detector" yaml:"detector" hcl:"detector,block"`
	Threshold     float64           `json:"threshold,omitempty" yaml:"threshold,omitempty" hcl:"threshold,optional"`                   // minimum detection confidence
	ContextWindow int               `json:"context_window,omitempty" yaml:"context_window,omitempty" hcl:"context_window,optional"`   // words of context per side
	Labels        []string          `json:"labels,omitempty" yaml:"labels,omitempty" hcl:"labels,optional"`                           // labels for pseudonymization
	Tags          map[string]string `json:"tags,omitempty" yaml:"tags,omitempty" hcl:"tags,optional"`                                 // label → tag for anonymization
	StorePath     string            `json:"store_path,omitempty" yaml:"store_path,omitempty" hcl:"store_path,optional"`               // bbolt pseudonym store (optional)
}

// Defaults applied by Validate.
const (
	DefaultModel          = "gliner-community/gliner_medium-v2.5"
	DefaultThreshold      = 0.5
	DefaultContextWindow  = 20
	DefaultTimeoutSeconds = 10
)

// 🔍 Validate checks the configuration and fills defaults
func (cfg *Config) Validate() error {
	if cfg.Threshold < 0 || cfg.Threshold > 1 {
		return errors.Errorf("threshold must be in [0,1], got %v", cfg.Threshold)
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.ContextWindow < 0 {
		return errors.Errorf("context_window must be non-negative, got %d", cfg.ContextWindow)
	}
	if cfg.ContextWindow == 0 {
		cfg.ContextWindow = DefaultContextWindow
	}
	if cfg.Detector.Model == "" {
		cfg.Detector.Model = DefaultModel
	}
	if cfg.Detector.TimeoutSeconds <= 0 {
		cfg.Detector.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if cfg.Detector.Endpoint == "" && !cfg.Detector.Regex {
		return errors.Errorf("no detector configured: set detector.endpoint or detector.regex")
	}
	return nil
}

// 🌍 ApplyEnv overlays ANONYDOC_* environment variables on the config.
// Variables win over file values; call after loading, before Validate.
func (cfg *Config) ApplyEnv() error {
	if v := os.Getenv("ANONYDOC_ENDPOINT"); v != "" {
		cfg.Detector.Endpoint = v
	}
	if v := os.Getenv("ANONYDOC_MODEL"); v != "" {
		cfg.Detector.Model = v
	}
	if v := os.Getenv("ANONYDOC_STORE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("ANONYDOC_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Errorf("parsing ANONYDOC_THRESHOLD: %w", err)
		}
		cfg.Threshold = f
	}
	return nil
}

// 📝 String returns a one-line summary of the config
func (cfg *Config) String() string {
	det := cfg.Detector.Endpoint
	if det == "" {
		det = "regex-only"
	}
	return fmt.Sprintf("detector=%s threshold=%v window=%d labels=%d tags=%d",
		det, cfg.Threshold, cfg.ContextWindow, len(cfg.Labels), len(cfg.Tags))
}
