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

// Package tools contains utility types and functions for pdsreach's
// subcommand frontends, generalized from cmd/argot/tools.
package tools

import (
	"flag"
	"fmt"
	"os"

	"github.com/JHU-PL-Lab/pds-reachability/config"
)

// CommonFlags represents a parsed CLI sub-command flag set with the
// -config and -verbose flags. The demo, dot and stats subcommands do not
// use it; each parses its own flag set.
type CommonFlags struct {
	FlagSet    *flag.FlagSet
	ConfigPath string
	Verbose    bool
}

// NewCommonFlags returns a parsed flag set with a given name. Returns an
// error if args are invalid. Prints cmdUsage along with flag docs as the
// --help message.
func NewCommonFlags(name string, args []string, cmdUsage string) (CommonFlags, error) {
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := cmd.String("config", "", "configuration file path")
	verbose := cmd.Bool("verbose", false, "verbose printing on standard output")
	SetUsage(cmd, cmdUsage)
	if err := cmd.Parse(args); err != nil {
		return CommonFlags{}, fmt.Errorf("failed to parse command %s with args %v: %v", name, args, err)
	}
	return CommonFlags{FlagSet: cmd, ConfigPath: *configPath, Verbose: *verbose}, nil
}

// SetUsage sets cmd's usage (for --help) to output cmdUsage followed by
// each flag's documentation.
func SetUsage(cmd *flag.FlagSet, cmdUsage string) {
	cmd.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", cmdUsage)
		fmt.Fprintf(os.Stderr, "Options:\n")
		cmd.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(os.Stderr, "  %s: %s (default: %q)\n", f.Name, f.Usage, f.DefValue)
		})
	}
}

// LoadConfig loads the config at configPath, or a default Config if
// configPath is empty.
func LoadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		return config.NewDefault(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}
	return cfg, nil
}
