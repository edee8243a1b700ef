// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
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

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var configFile string

// SetGlobalConfig sets the global config filename.
func SetGlobalConfig(filename string) {
	configFile = filename
}

// LoadGlobal loads the config file set by SetGlobalConfig.
func LoadGlobal() (*Config, error) {
	return Load(configFile)
}

// WorkQueueKind names one of the WorkCollection strategies a config file
// can select by name (reachability.FIFOQueue/LIFOStack/PriorityQueue).
type WorkQueueKind string

const (
	FIFOQueue    WorkQueueKind = "fifo"
	LIFOStack    WorkQueueKind = "lifo"
	PriorityHeap WorkQueueKind = "priority"
)

// Config is the top-level configuration loaded from a YAML file, the
// generalization of teacher analysis/config.Config to this engine's
// options -- the taint/dataflow-analysis-specific fields (TaintSpec,
// SlicingSpec, StaticCommandsSpec, PkgFilter, CoverageFilter,
// SummarizeOnDemand, ...) have no referent here and are dropped (see
// DESIGN.md).
type Config struct {
	Options `yaml:",inline"`

	sourceFile string
}

// Options holds the knobs that drive a demo or CLI run of the engine
// (SPEC_FULL.md §6): which work-collection strategy to saturate with, an
// optional defensive step budget, where to write DOT diagnostics, and the
// logging verbosity.
type Options struct {
	// WorkQueue selects the WorkCollection strategy ("fifo", "lifo", or
	// "priority"). Defaults to "fifo".
	WorkQueue WorkQueueKind `yaml:"work-queue"`

	// MaxSteps bounds the number of ClosureStep calls FullyCloseBounded
	// will run before giving up, as a defensive measure against a misbehaving
	// dynamic pop handler that keeps manufacturing new states. 0 means
	// unbounded.
	MaxSteps int `yaml:"max-steps"`

	// DotOutputDir is the DOT output file path the dot subcommand falls
	// back to when its -out flag is empty, the repurposed equivalent of
	// teacher's ReportsDir.
	DotOutputDir string `yaml:"dot-output"`

	// LogLevel controls logging verbosity, see LogGroup.
	LogLevel int `yaml:"log-level"`
}

// NewDefault returns a default Config: FIFO work queue, unbounded steps,
// no DOT output, Info-level logging.
func NewDefault() *Config {
	return &Config{
		Options: Options{
			WorkQueue: FIFOQueue,
			MaxSteps:  0,
			LogLevel:  int(InfoLevel),
		},
	}
}

// Load reads a YAML configuration from filename, filling in defaults for
// any field it leaves unset.
func Load(filename string) (*Config, error) {
	cfg := NewDefault()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config file: %w", err)
	}
	cfg.sourceFile = filename

	if cfg.LogLevel == 0 {
		cfg.LogLevel = int(InfoLevel)
	}
	if cfg.WorkQueue == "" {
		cfg.WorkQueue = FIFOQueue
	}
	return cfg, nil
}

// Verbose returns true if the configuration verbosity setting is at
// least Debug.
func (c Config) Verbose() bool {
	return c.LogLevel >= int(DebugLevel)
}
