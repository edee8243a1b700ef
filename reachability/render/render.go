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

// Package render writes a closure graph as Graphviz DOT, the
// generalization of teacher analysis/reachability.DumpAsGraphviz and
// analysis/rendering.WriteGraphviz (edge-coloring-by-kind) from a
// callgraph/dependency graph to any reachability.Analysis's diagnostic
// view.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/JHU-PL-Lab/pds-reachability/internal/graphutil"
	"golang.org/x/term"
)

// Diagnosable is satisfied by reachability.Analysis[...], whose
// AsDiagnosticView returns a graphutil.View boxed as any -- generics
// don't let this package import Analysis[S,E,TA,UA] directly without
// itself being generic over the same four type parameters, so it takes
// the type-erased view instead, exactly as a caller would pass any
// graph.Graph implementation to a generic rendering routine.
type Diagnosable interface {
	AsDiagnosticView() any
}

// WriteDOT writes a as a Graphviz digraph to w. Returns an error if a's
// AsDiagnosticView does not produce a graphutil.View (a programming
// error, since every shipped Analysis does).
func WriteDOT(a Diagnosable, w io.Writer) error {
	view, ok := a.AsDiagnosticView().(graphutil.View)
	if !ok {
		return fmt.Errorf("render: AsDiagnosticView did not return a graphutil.View")
	}
	return writeDOT(view, w)
}

func writeDOT(view graphutil.View, w io.Writer) error {
	if _, err := fmt.Fprint(w, "digraph closure {\n"); err != nil {
		return fmt.Errorf("error while writing DOT: %w", err)
	}

	type row struct {
		u, v  int64
		style string
	}
	var rows []row
	for u, targets := range view.Edges {
		for v := range targets {
			style := ""
			if view.EdgeStyles != nil {
				style = view.EdgeStyles[u][v]
			}
			rows = append(rows, row{u, v, style})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].u != rows[j].u {
			return rows[i].u < rows[j].u
		}
		return rows[i].v < rows[j].v
	})

	for _, r := range rows {
		line := fmt.Sprintf("  %q -> %q %s;\n", view.Labels[r.u], view.Labels[r.v], r.style)
		if _, err := fmt.Fprint(w, line); err != nil {
			return fmt.Errorf("error while writing DOT: %w", err)
		}
	}

	if _, err := fmt.Fprint(w, "}\n"); err != nil {
		return fmt.Errorf("error while writing DOT: %w", err)
	}
	return nil
}

// WriteDOTFile writes a's closure graph as DOT to filename.
func WriteDOTFile(a Diagnosable, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	if err := WriteDOT(a, bw); err != nil {
		return fmt.Errorf("error while writing graph: %w", err)
	}
	return nil
}

// faint and green are the two terminal color helpers this package
// actually uses out of teacher internal/formatutil's full palette,
// folded in directly rather than carrying the rest of that package's
// unused colors/sanitizers along for one call site.
func faint(args ...interface{}) string  { return colorize("\033[2m%s\033[0m", args...) }
func green(args ...interface{}) string  { return colorize("\033[1;32m%s\033[0m", args...) }
func colorize(format string, args ...interface{}) string {
	if term.IsTerminal(1) {
		return fmt.Sprintf(format, fmt.Sprint(args...))
	}
	return fmt.Sprint(args...)
}

// SummaryLine formats a one-line, color-highlighted summary of stats for
// the stats CLI subcommand, the way cmd/argot-cli's statistics.go
// highlights its own counts.
func SummaryLine(nodeCount, edgeCount int) string {
	return fmt.Sprintf("%s=%s %s=%s",
		faint("nodes"), green(nodeCount),
		faint("edges"), green(edgeCount))
}
