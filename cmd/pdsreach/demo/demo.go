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

// Package demo builds the seven concrete reachability scenarios the
// engine's invariants are specified against (states and stack elements
// are plain strings) and runs them to closure, the library-API
// equivalent of the small Go programs cmd/argot's tool frontends analyze.
package demo

import (
	"fmt"

	"github.com/JHU-PL-Lab/pds-reachability/config"
	"github.com/JHU-PL-Lab/pds-reachability/internal/functional"
	"github.com/JHU-PL-Lab/pds-reachability/reachability"
)

// Label is the concrete alphabet type instantiating reachability.Elem for
// every demo scenario: states, stack elements, and dynamic-pop tokens are
// all plain names here, so one named string type serves all four type
// parameters.
type Label string

func (l Label) String() string { return string(l) }

// Scenario is one named, self-contained reachability query: a PDS built
// and closed, plus the (state, word) pair GetReachableStates is called
// with.
type Scenario struct {
	Name        string
	Description string
	QueryState  string
	QueryWord   []reachability.Action[Label, Label]

	analysis *reachability.Analysis[Label, Label, Label, Label]
}

// handler implements reachability.DynamicPopHandler for every scenario
// that needs one (S5's targeted dynamic pop, S6's untargeted one). The
// scenarios that don't need dynamic pops still share this handler; its
// methods are simply never called for them.
type handler struct{}

func (handler) PerformTargetedDynamicPop(top Label, action Label) reachability.Seq[[]reachability.Action[Label, Label]] {
	if action == "alpha" && top == "3" {
		return reachability.SeqOf([]reachability.Action[Label, Label]{})
	}
	return reachability.SeqOf[[]reachability.Action[Label, Label]]()
}

func (handler) PerformUntargetedDynamicPop(top Label, action Label) reachability.Seq[reachability.UntargetedPopResult[Label, Label, Label]] {
	if action == "beta" && top == "p" {
		return reachability.SeqOf(reachability.UntargetedPopResult[Label, Label, Label]{Actions: nil, State: "D"})
	}
	return reachability.SeqOf[reachability.UntargetedPopResult[Label, Label, Label]]()
}

func newAnalysis(cfg *config.Config) *reachability.Analysis[Label, Label, Label, Label] {
	var work reachability.WorkCollection[Label, Label, Label, Label]
	switch cfg.WorkQueue {
	case config.LIFOStack:
		work = reachability.NewLIFOStack[Label, Label, Label, Label]()
	case config.PriorityHeap:
		work = reachability.NewPriorityQueue[Label, Label, Label, Label](func(reachability.WorkItem[Label, Label, Label, Label]) int { return 0 })
	default:
		work = reachability.NewFIFOQueue[Label, Label, Label, Label]()
	}
	a := reachability.NewAnalysis[Label, Label, Label, Label](handler{}, work)
	a.SetLogger(config.NewLogGroup(cfg))
	return a
}

// All returns every scenario, uninitialized (Build must be called before
// Close/Result).
func All() []*Scenario {
	return []*Scenario{
		{Name: "S1", Description: "single push/pop", QueryState: "A"},
		{Name: "S2", Description: "unmatched push", QueryState: "A"},
		{Name: "S3", Description: "mismatched pop", QueryState: "A"},
		{Name: "S4", Description: "initial stack", QueryState: "A",
			QueryWord: []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("x")}},
		{Name: "S5", Description: "dynamic targeted pop", QueryState: "A"},
		{Name: "S6", Description: "untargeted dynamic pop", QueryState: "A"},
		{Name: "S7", Description: "query before registration", QueryState: "Q"},
	}
}

// Find looks up the scenario named name among All, the shared lookup
// both the dot and stats subcommands need.
func Find(name string) functional.Optional[*Scenario] {
	return functional.FindMap(All(), func(s *Scenario) *Scenario { return s },
		func(s *Scenario) bool { return s.Name == name })
}

// Build constructs s's PDS using cfg's work-collection strategy and
// logging level and registers its start state, but does not close it.
func (s *Scenario) Build(cfg *config.Config) error {
	s.analysis = newAnalysis(cfg)
	a := s.analysis

	switch s.Name {
	case "S1":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("x")}, "B")
		a.AddEdge("B", []reachability.Action[Label, Label]{reachability.PopAction[Label, Label]("x")}, "C")
		a.AddStartState("A", nil)
	case "S2":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("x")}, "B")
		a.AddStartState("A", nil)
	case "S3":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("x")}, "B")
		a.AddEdge("B", []reachability.Action[Label, Label]{reachability.PopAction[Label, Label]("y")}, "C")
		a.AddStartState("A", nil)
	case "S4":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PopAction[Label, Label]("x")}, "B")
		a.AddStartState("A", s.QueryWord)
	case "S5":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("3")}, "B")
		a.AddEdge("B", []reachability.Action[Label, Label]{reachability.DynTargetedPopAction[Label, Label]("alpha")}, "C")
		a.AddStartState("A", nil)
	case "S6":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("p")}, "B")
		a.AddUntargetedDynamicPopAction("B", "beta")
		a.AddStartState("A", nil)
	case "S7":
		a.AddEdge("A", []reachability.Action[Label, Label]{reachability.PushAction[Label, Label]("x")}, "B")
		a.AddStartState("A", nil)
		// Q is deliberately never registered as a start state.
	default:
		return fmt.Errorf("demo: unknown scenario %q", s.Name)
	}
	return nil
}

// Close runs the scenario's analysis to a fixpoint, or until maxSteps
// closure steps have run if maxSteps is positive (config.Options.
// MaxSteps's defensive budget). Reports whether the analysis actually
// reached closure.
func (s *Scenario) Close(maxSteps int) bool {
	return s.analysis.FullyCloseBounded(maxSteps)
}

// Result calls GetReachableStates for the scenario's query and returns
// the reached states in whatever order the graph's indices produced
// them.
func (s *Scenario) Result() ([]string, error) {
	seq, err := s.analysis.GetReachableStates(Label(s.QueryState), s.QueryWord)
	if err != nil {
		return nil, err
	}
	labels := reachability.Collect(seq)
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return out, nil
}

// Analysis exposes the scenario's underlying engine, for the dot and
// stats subcommands.
func (s *Scenario) Analysis() *reachability.Analysis[Label, Label, Label, Label] {
	return s.analysis
}
