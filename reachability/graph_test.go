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

package reachability

import "testing"

func stateNode(s label) Node[label, label, label] {
	return Node[label, label, label](StateNode[label, label, label]{State: s})
}

// TestGraph_AddEdgeIdempotent checks that adding the same edge twice
// reports "not new" the second time and does not duplicate index
// entries.
func TestGraph_AddEdgeIdempotent(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	edge := Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: PushAction[label, label]("x")}

	if !g.AddEdge(edge) {
		t.Fatalf("expected first AddEdge to report new")
	}
	if g.AddEdge(edge) {
		t.Errorf("expected second AddEdge of the same edge to report not-new")
	}

	pushSources := Collect(g.FindPushEdgesByTarget(stateNode("B")))
	if len(pushSources) != 1 {
		t.Errorf("expected exactly one indexed push source after duplicate AddEdge, got %d", len(pushSources))
	}
}

// TestGraph_NopIndexBothDirections checks that a Nop edge is retrievable
// both by FindNopEdgesBySource(source) and FindNopEdgesByTarget(target),
// the bidirectional index closeNop depends on for transitive Nop closure.
func TestGraph_NopIndexBothDirections(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	edge := Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: NopAction[label, label]()}
	g.AddEdge(edge)

	bySource := Collect(g.FindNopEdgesBySource(stateNode("A")))
	if len(bySource) != 1 || bySource[0] != stateNode("B") {
		t.Errorf("FindNopEdgesBySource(A) = %v, want [B]", bySource)
	}
	byTarget := Collect(g.FindNopEdgesByTarget(stateNode("B")))
	if len(byTarget) != 1 || byTarget[0] != stateNode("A") {
		t.Errorf("FindNopEdgesByTarget(B) = %v, want [A]", byTarget)
	}
}

// TestGraph_PopEdgesBySourceFiltersByElement checks that
// FindPopEdgesBySource surfaces the popped element alongside the target,
// the information closePush needs to only match same-element push/pop
// pairs.
func TestGraph_PopEdgesBySourceFiltersByElement(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	g.AddEdge(Edge[label, label, label]{Source: stateNode("B"), Target: stateNode("C"), Action: PopAction[label, label]("x")})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("B"), Target: stateNode("D"), Action: PopAction[label, label]("y")})

	pops := Collect(g.FindPopEdgesBySource(stateNode("B")))
	if len(pops) != 2 {
		t.Fatalf("expected 2 pop edges from B, got %d", len(pops))
	}
	seen := map[label]label{}
	for _, p := range pops {
		seen[p.Element] = p.Target.(StateNode[label, label, label]).State
	}
	if seen["x"] != "C" || seen["y"] != "D" {
		t.Errorf("unexpected pop-edge mapping: %v", seen)
	}
}

// TestGraph_UntargetedDynamicPopActionIdempotent checks
// AddUntargetedDynamicPopAction's new-vs-already-present reporting and
// HasUntargetedDynamicPopAction.
func TestGraph_UntargetedDynamicPopActionIdempotent(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	node := stateNode("B")

	if !g.AddUntargetedDynamicPopAction(node, "beta") {
		t.Fatalf("expected first registration to report new")
	}
	if g.AddUntargetedDynamicPopAction(node, "beta") {
		t.Errorf("expected duplicate registration to report not-new")
	}
	if !g.HasUntargetedDynamicPopAction(node, "beta") {
		t.Errorf("expected HasUntargetedDynamicPopAction to report true after registration")
	}
	if g.HasUntargetedDynamicPopAction(node, "gamma") {
		t.Errorf("expected HasUntargetedDynamicPopAction to report false for an unregistered action")
	}
}

// TestGraph_StatsCountsByKind checks that Stats breaks edges down by
// ActionKind correctly and counts nodes/edges overall.
func TestGraph_StatsCountsByKind(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	g.AddEdge(Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: PushAction[label, label]("x")})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("B"), Target: stateNode("C"), Action: PopAction[label, label]("x")})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("C"), Target: stateNode("D"), Action: NopAction[label, label]()})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("D"), Target: stateNode("E"), Action: DynTargetedPopAction[label, label]("alpha")})

	stats := g.Stats()
	if stats.EdgeCount != 4 {
		t.Errorf("EdgeCount = %d, want 4", stats.EdgeCount)
	}
	if stats.NodeCount != 5 {
		t.Errorf("NodeCount = %d, want 5", stats.NodeCount)
	}
	if stats.PushEdges != 1 || stats.PopEdges != 1 || stats.NopEdges != 1 || stats.DynEdges != 1 {
		t.Errorf("unexpected per-kind breakdown: %+v", stats)
	}
}

// TestGraph_StatsDetectsCycle checks that Stats.NonTrivialComponents is
// nonzero once the closure graph contains a cycle, the cheap
// non-termination smell the stats CLI surfaces, and that CycleCount then
// reports the exact elementary-cycle count for that same graph.
func TestGraph_StatsDetectsCycle(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	g.AddEdge(Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: NopAction[label, label]()})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("B"), Target: stateNode("A"), Action: NopAction[label, label]()})

	stats := g.Stats()
	if stats.NonTrivialComponents == 0 {
		t.Errorf("expected a nonzero NonTrivialComponents count for a 2-cycle, got %+v", stats)
	}
	if stats.CycleCount != 1 {
		t.Errorf("expected exactly 1 elementary cycle for a 2-node cycle, got %d", stats.CycleCount)
	}
}

// TestGraph_StatsSkipsCycleCountWhenAcyclic checks that CycleCount stays
// 0 without paying for elementary-cycle enumeration when there are no
// nontrivial strongly connected components.
func TestGraph_StatsSkipsCycleCountWhenAcyclic(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	g.AddEdge(Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: NopAction[label, label]()})

	stats := g.Stats()
	if stats.CycleCount != 0 {
		t.Errorf("expected CycleCount = 0 for an acyclic graph, got %d", stats.CycleCount)
	}
}

// TestGraph_AsDiagnosticViewStylesByActionKind checks that
// AsDiagnosticView's EdgeStyles map assigns the documented color per
// ActionKind.
func TestGraph_AsDiagnosticViewStylesByActionKind(t *testing.T) {
	g := NewGraph[label, label, label, label]()
	g.AddEdge(Edge[label, label, label]{Source: stateNode("A"), Target: stateNode("B"), Action: PushAction[label, label]("x")})
	g.AddEdge(Edge[label, label, label]{Source: stateNode("B"), Target: stateNode("C"), Action: PopAction[label, label]("x")})

	view := g.AsDiagnosticView()
	var sawBlue, sawRed bool
	for u, targets := range view.Edges {
		for v := range targets {
			style := view.EdgeStyles[u][v]
			switch view.Labels[u] + "->" + view.Labels[v] {
			case "A->B":
				if style != "[color=blue]" {
					t.Errorf("push edge A->B style = %q, want [color=blue]", style)
				}
				sawBlue = true
			case "B->C":
				if style != "[color=red]" {
					t.Errorf("pop edge B->C style = %q, want [color=red]", style)
				}
				sawRed = true
			}
		}
	}
	if !sawBlue || !sawRed {
		t.Fatalf("expected to observe both styled edges, sawBlue=%v sawRed=%v", sawBlue, sawRed)
	}
}
