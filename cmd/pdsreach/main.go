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

package main

import (
	"fmt"
	"os"

	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/demo"
	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/dot"
	"github.com/JHU-PL-Lab/pds-reachability/cmd/pdsreach/stats"
)

const usage = `pdsreach: pushdown-system reachability engine demo CLI
Usage:
  pdsreach [tool] [options]
Tools:
  - demo: runs the spec scenarios and prints reachable-state sets
  - dot: closes a demo PDS and writes its closure graph as Graphviz DOT
  - stats: closes a demo PDS and prints its size/shape
Examples:
  Run every scenario: pdsreach demo
  Render one scenario: pdsreach dot -scenario=S6 -out=s6.dot`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "error: expected subcommand\n%s\n", usage)
		os.Exit(2)
	}

	if snd := os.Args[1]; snd == "-help" || snd == "--help" {
		fmt.Println(usage)
		return
	}

	args := os.Args[2:]
	switch cmd := os.Args[1]; cmd {
	case "demo":
		flags, err := demo.NewFlags(args)
		if err != nil {
			errExit(err)
		}
		if err := demo.Run(flags); err != nil {
			errExit(err)
		}
	case "dot":
		flags, err := dot.NewFlags(args)
		if err != nil {
			errExit(err)
		}
		if err := dot.Run(flags); err != nil {
			errExit(err)
		}
	case "stats":
		flags, err := stats.NewFlags(args)
		if err != nil {
			errExit(err)
		}
		if err := stats.Run(flags); err != nil {
			errExit(err)
		}
	default:
		fmt.Fprintf(os.Stderr, "error: unexpected command: %v\n", cmd)
		fmt.Fprintf(os.Stderr, "usage:\n%s\n", usage)
		os.Exit(2)
	}
}

func errExit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(2)
}
