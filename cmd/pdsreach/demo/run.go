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

package demo

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/tools"
)

const usage = `Run the spec.md scenarios and print each one's reachable-state set.

Usage:
  pdsreach demo [options]
`

// Flags is the parsed demo subcommand flags.
type Flags struct {
	flagSet    *flag.FlagSet
	configPath string
	only       string
}

// NewFlags parses args into demo's Flags.
func NewFlags(args []string) (Flags, error) {
	cmd := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := cmd.String("config", "", "configuration file path")
	only := cmd.String("only", "", "run only the named scenario (e.g. S4)")
	tools.SetUsage(cmd, usage)
	if err := cmd.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("failed to parse demo command with args %v: %v", args, err)
	}
	return Flags{flagSet: cmd, configPath: *configPath, only: *only}, nil
}

// Run builds, closes, and prints the result of every scenario (or just
// the one named by -only, if set).
func Run(flags Flags) error {
	cfg, err := tools.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}

	for _, s := range All() {
		if flags.only != "" && s.Name != flags.only {
			continue
		}
		if err := s.Build(cfg); err != nil {
			return err
		}
		if !s.Close(cfg.MaxSteps) {
			fmt.Fprintf(os.Stdout, "%s (%s): did not converge within %d steps\n", s.Name, s.Description, cfg.MaxSteps)
			continue
		}
		result, err := s.Result()
		if err != nil {
			fmt.Fprintf(os.Stdout, "%s (%s): error: %v\n", s.Name, s.Description, err)
			continue
		}
		sort.Strings(result)
		fmt.Fprintf(os.Stdout, "%s (%s): %v\n", s.Name, s.Description, result)
	}
	return nil
}
