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

// Package dot implements pdsreach's dot subcommand: close a demo PDS and
// write its closure graph as Graphviz DOT.
package dot

import (
	"flag"
	"fmt"
	"os"

	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/demo"
	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/tools"
	"github.com/JHU-PL-Lab/pds-reachability/reachability/render"
)

const usage = `Close a demo scenario's PDS and write its closure graph as Graphviz DOT.

Usage:
  pdsreach dot -scenario=S1 -out=closure.dot
`

// Flags is the parsed dot subcommand flags.
type Flags struct {
	flagSet    *flag.FlagSet
	configPath string
	scenario   string
	outPath    string
}

// NewFlags parses args into dot's Flags.
func NewFlags(args []string) (Flags, error) {
	cmd := flag.NewFlagSet("dot", flag.ExitOnError)
	configPath := cmd.String("config", "", "configuration file path")
	scenario := cmd.String("scenario", "S1", "demo scenario to render (S1-S7)")
	outPath := cmd.String("out", "closure.dot", "output DOT file path")
	tools.SetUsage(cmd, usage)
	if err := cmd.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("failed to parse dot command with args %v: %v", args, err)
	}
	return Flags{flagSet: cmd, configPath: *configPath, scenario: *scenario, outPath: *outPath}, nil
}

// Run builds and closes the named scenario, then writes its closure
// graph as DOT to flags.outPath.
func Run(flags Flags) error {
	cfg, err := tools.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}
	if flags.outPath == "" {
		flags.outPath = cfg.DotOutputDir
	}
	if flags.outPath == "" {
		return fmt.Errorf("dot: no output path given (-out or config dot-output)")
	}

	found := demo.Find(flags.scenario)
	if found.IsNone() {
		return fmt.Errorf("dot: unknown scenario %q", flags.scenario)
	}
	target := found.Value()

	if err := target.Build(cfg); err != nil {
		return err
	}
	if !target.Close(cfg.MaxSteps) {
		return fmt.Errorf("dot: closure did not converge within %d steps", cfg.MaxSteps)
	}

	if err := render.WriteDOTFile(target.Analysis(), flags.outPath); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", flags.outPath)
	return nil
}
