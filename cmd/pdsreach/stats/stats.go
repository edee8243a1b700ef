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

// Package stats implements pdsreach's stats subcommand: close a demo
// PDS and print its size/shape and cycle diagnostics.
package stats

import (
	"flag"
	"fmt"
	"os"

	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/demo"
	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/tools"
	"github.com/JHU-PL-Lab/pds-reachability/reachability/render"
)

const usage = `Close a demo scenario's PDS and print its size/shape.

Usage:
  pdsreach stats -scenario=S1
`

// Flags is the parsed stats subcommand flags.
type Flags struct {
	flagSet    *flag.FlagSet
	configPath string
	scenario   string
}

// NewFlags parses args into stats's Flags.
func NewFlags(args []string) (Flags, error) {
	cmd := flag.NewFlagSet("stats", flag.ExitOnError)
	configPath := cmd.String("config", "", "configuration file path")
	scenario := cmd.String("scenario", "S1", "demo scenario to close (S1-S7)")
	tools.SetUsage(cmd, usage)
	if err := cmd.Parse(args); err != nil {
		return Flags{}, fmt.Errorf("failed to parse stats command with args %v: %v", args, err)
	}
	return Flags{flagSet: cmd, configPath: *configPath, scenario: *scenario}, nil
}

// Run builds and closes the named scenario, then prints its Stats()
// summary, colorized the way cmd/argot-cli/statistics.go highlights its
// own counts.
func Run(flags Flags) error {
	cfg, err := tools.LoadConfig(flags.configPath)
	if err != nil {
		return err
	}

	found := demo.Find(flags.scenario)
	if found.IsNone() {
		return fmt.Errorf("stats: unknown scenario %q", flags.scenario)
	}
	target := found.Value()

	if err := target.Build(cfg); err != nil {
		return err
	}
	if !target.Close(cfg.MaxSteps) {
		return fmt.Errorf("stats: closure did not converge within %d steps", cfg.MaxSteps)
	}

	nodeCount, edgeCount := target.Analysis().GetSize()
	fmt.Fprintln(os.Stdout, render.SummaryLine(nodeCount, edgeCount))

	shape := target.Analysis().Stats()
	fmt.Fprintf(os.Stdout, "nop=%d push=%d pop=%d dyn=%d cyclic-components=%d cycles=%d\n",
		shape.NopEdges, shape.PushEdges, shape.PopEdges, shape.DynEdges, shape.NonTrivialComponents, shape.CycleCount)

	metrics := target.Analysis().Metrics()
	fmt.Fprintf(os.Stdout, "closure-steps=%d peak-queue=%d\n", metrics.ClosureSteps, metrics.PeakQueueLength)
	return nil
}
