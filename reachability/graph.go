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

import "github.com/JHU-PL-Lab/pds-reachability/internal/graphutil"

// pushSource records one incoming Push edge's (source, element), indexed
// by the edge's target.
type pushSource[S Elem, E Elem, TA Elem] struct {
	Source  Node[S, E, TA]
	Element E
}

// popTarget records one outgoing Pop edge's (target, element), indexed
// by the edge's source.
type popTarget[S Elem, E Elem, TA Elem] struct {
	Target  Node[S, E, TA]
	Element E
}

// dynTarget records one outgoing DynTargetedPop edge's (target, token),
// indexed by the edge's source.
type dynTarget[S Elem, E Elem, TA Elem] struct {
	Target Node[S, E, TA]
	Token  TA
}

// Graph is the indexed storage of nodes, edges, and untargeted dynamic
// pop associations (spec.md §4.C). It is the generalization of
// internal/graphutil.CGraph's adjacency-map representation
// (map[int64]map[int64]bool, keyed by interned callgraph-node id) from
// integer callgraph ids to this engine's interned Node identities:
// amortized O(1) insertion, O(k) enumeration per matching direction.
type Graph[S Elem, E Elem, TA Elem, UA Elem] struct {
	edges map[Edge[S, E, TA]]bool
	nodes map[Node[S, E, TA]]bool

	pushEdgesByTarget          map[Node[S, E, TA]][]pushSource[S, E, TA]
	nopEdgesBySource           map[Node[S, E, TA]][]Node[S, E, TA]
	nopEdgesByTarget           map[Node[S, E, TA]][]Node[S, E, TA]
	popEdgesBySource           map[Node[S, E, TA]][]popTarget[S, E, TA]
	dynTargetedPopEdgesBySource map[Node[S, E, TA]][]dynTarget[S, E, TA]

	untargetedDynPops map[Node[S, E, TA]]map[UA]bool
}

// NewGraph returns an empty graph.
func NewGraph[S Elem, E Elem, TA Elem, UA Elem]() *Graph[S, E, TA, UA] {
	return &Graph[S, E, TA, UA]{
		edges:                       make(map[Edge[S, E, TA]]bool),
		nodes:                       make(map[Node[S, E, TA]]bool),
		pushEdgesByTarget:           make(map[Node[S, E, TA]][]pushSource[S, E, TA]),
		nopEdgesBySource:            make(map[Node[S, E, TA]][]Node[S, E, TA]),
		nopEdgesByTarget:            make(map[Node[S, E, TA]][]Node[S, E, TA]),
		popEdgesBySource:            make(map[Node[S, E, TA]][]popTarget[S, E, TA]),
		dynTargetedPopEdgesBySource: make(map[Node[S, E, TA]][]dynTarget[S, E, TA]),
		untargetedDynPops:           make(map[Node[S, E, TA]]map[UA]bool),
	}
}

// HasEdge reports whether edge is already stored.
func (g *Graph[S, E, TA, UA]) HasEdge(edge Edge[S, E, TA]) bool {
	return g.edges[edge]
}

// AddEdge idempotently inserts edge and updates the relevant index. It
// reports whether the edge was new. The engine does not use this result
// to gate expansion: destination expansion is decided by the node's
// Seen/Expanded status when a consequence is enqueued.
func (g *Graph[S, E, TA, UA]) AddEdge(edge Edge[S, E, TA]) bool {
	if g.edges[edge] {
		return false
	}
	g.edges[edge] = true
	g.nodes[edge.Source] = true
	g.nodes[edge.Target] = true

	switch edge.Action.Kind {
	case Nop:
		g.nopEdgesBySource[edge.Source] = append(g.nopEdgesBySource[edge.Source], edge.Target)
		g.nopEdgesByTarget[edge.Target] = append(g.nopEdgesByTarget[edge.Target], edge.Source)
	case Push:
		g.pushEdgesByTarget[edge.Target] = append(g.pushEdgesByTarget[edge.Target],
			pushSource[S, E, TA]{Source: edge.Source, Element: edge.Action.Element})
	case Pop:
		g.popEdgesBySource[edge.Source] = append(g.popEdgesBySource[edge.Source],
			popTarget[S, E, TA]{Target: edge.Target, Element: edge.Action.Element})
	case DynTargetedPop:
		g.dynTargetedPopEdgesBySource[edge.Source] = append(g.dynTargetedPopEdgesBySource[edge.Source],
			dynTarget[S, E, TA]{Target: edge.Target, Token: edge.Action.Token})
	}
	return true
}

// HasUntargetedDynamicPopAction reports whether (node, action) is
// already stored.
func (g *Graph[S, E, TA, UA]) HasUntargetedDynamicPopAction(node Node[S, E, TA], action UA) bool {
	return g.untargetedDynPops[node][action]
}

// AddUntargetedDynamicPopAction idempotently associates action with
// node. Reports whether the association was new.
func (g *Graph[S, E, TA, UA]) AddUntargetedDynamicPopAction(node Node[S, E, TA], action UA) bool {
	set, ok := g.untargetedDynPops[node]
	if !ok {
		set = make(map[UA]bool)
		g.untargetedDynPops[node] = set
	}
	if set[action] {
		return false
	}
	set[action] = true
	g.nodes[node] = true
	return true
}

// FindNopEdgesByTarget returns all Nop-edge sources reaching n directly.
// Used, alongside FindNopEdgesBySource, to maintain transitive closure
// over chains of plain Nop edges (e.g. a start-state anchor's own
// trivial Nop composing with a later-derived Nop summary): the
// saturation table (spec.md §4.E.2) does not spell this case out
// separately since it falls out of the same Push/Pop composition
// mechanism applied once more, but an implementation needs an index in
// both directions to close it regardless of insertion order.
func (g *Graph[S, E, TA, UA]) FindNopEdgesByTarget(n Node[S, E, TA]) Seq[Node[S, E, TA]] {
	return SeqOf(g.nopEdgesByTarget[n]...)
}

// FindUntargetedDynamicPopActionsBySource returns every untargeted
// dynamic pop action currently associated with n.
func (g *Graph[S, E, TA, UA]) FindUntargetedDynamicPopActionsBySource(n Node[S, E, TA]) Seq[UA] {
	set := g.untargetedDynPops[n]
	actions := make([]UA, 0, len(set))
	for action := range set {
		actions = append(actions, action)
	}
	return SeqOf(actions...)
}

// FindPushEdgesByTarget returns all incoming Push edges (source,
// element) ending at n.
func (g *Graph[S, E, TA, UA]) FindPushEdgesByTarget(n Node[S, E, TA]) Seq[pushSource[S, E, TA]] {
	return SeqOf(g.pushEdgesByTarget[n]...)
}

// FindNopEdgesBySource returns all Nop-edge targets reachable directly
// from n.
func (g *Graph[S, E, TA, UA]) FindNopEdgesBySource(n Node[S, E, TA]) Seq[Node[S, E, TA]] {
	return SeqOf(g.nopEdgesBySource[n]...)
}

// FindPopEdgesBySource returns all outgoing Pop edges (target, element)
// from n.
func (g *Graph[S, E, TA, UA]) FindPopEdgesBySource(n Node[S, E, TA]) Seq[popTarget[S, E, TA]] {
	return SeqOf(g.popEdgesBySource[n]...)
}

// FindTargetedDynamicPopEdgesBySource returns all outgoing
// DynTargetedPop edges (target, action) from n.
func (g *Graph[S, E, TA, UA]) FindTargetedDynamicPopEdgesBySource(n Node[S, E, TA]) Seq[dynTarget[S, E, TA]] {
	return SeqOf(g.dynTargetedPopEdgesBySource[n]...)
}

// EnumerateNodes returns every node referenced by a stored edge or
// untargeted dynamic pop association.
func (g *Graph[S, E, TA, UA]) EnumerateNodes() Seq[Node[S, E, TA]] {
	nodes := make([]Node[S, E, TA], 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	return SeqOf(nodes...)
}

// EnumerateEdges returns every stored edge.
func (g *Graph[S, E, TA, UA]) EnumerateEdges() Seq[Edge[S, E, TA]] {
	edges := make([]Edge[S, E, TA], 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	return SeqOf(edges...)
}

// Stats summarizes the graph's size, broken down by edge-action kind.
type Stats struct {
	NodeCount int
	EdgeCount int
	NopEdges  int
	PushEdges int
	PopEdges  int
	DynEdges  int
	// NonTrivialComponents is the number of strongly connected
	// components (Tarjan's algorithm, internal/graphutil) with more
	// than one node: a nonzero count means the closure graph contains a
	// cycle, a cheap non-termination smell worth surfacing without
	// paying for full elementary-cycle enumeration.
	NonTrivialComponents int
	// CycleCount is the exact number of elementary cycles (Johnson's
	// algorithm, internal/graphutil), self-loops included, only computed
	// when NonTrivialComponents is nonzero or some edge is a self-loop,
	// since enumeration is expensive and an acyclic graph has none.
	CycleCount int
}

// Stats computes a Stats snapshot of the graph.
func (g *Graph[S, E, TA, UA]) Stats() Stats {
	s := Stats{NodeCount: len(g.nodes), EdgeCount: len(g.edges)}
	selfLoop := false
	for e := range g.edges {
		if e.Source == e.Target {
			selfLoop = true
		}
		switch e.Action.Kind {
		case Nop:
			s.NopEdges++
		case Push:
			s.PushEdges++
		case Pop:
			s.PopEdges++
		case DynTargetedPop:
			s.DynEdges++
		}
	}

	nodes := make([]Node[S, E, TA], 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	successors := func(n Node[S, E, TA]) []Node[S, E, TA] {
		var out []Node[S, E, TA]
		out = append(out, g.nopEdgesBySource[n]...)
		for _, p := range g.popEdgesBySource[n] {
			out = append(out, p.Target)
		}
		for _, d := range g.dynTargetedPopEdgesBySource[n] {
			out = append(out, d.Target)
		}
		for target, srcs := range g.pushEdgesByTarget {
			for _, src := range srcs {
				if src.Source == n {
					out = append(out, target)
				}
			}
		}
		return out
	}
	for _, scc := range graphutil.StronglyConnectedComponents(nodes, successors) {
		if len(scc) > 1 {
			s.NonTrivialComponents++
		}
	}
	if s.NonTrivialComponents > 0 || selfLoop {
		s.CycleCount = len(graphutil.FindAllElementaryCycles(g.AsDiagnosticView()))
	}
	return s
}

// AsDiagnosticView adapts the graph as a graphutil.View: a generic
// adjacency-map view exposing gonum.org/v1/gonum/graph.Graph and
// github.com/yourbasic/graph.Iterator, for DOT rendering
// (reachability/render) and elementary cycle enumeration (Stats above),
// the heavier diagnostics that need those interfaces rather than the
// plain node/successors-func shape the Tarjan SCC pass above takes.
func (g *Graph[S, E, TA, UA]) AsDiagnosticView() graphutil.View {
	ids := make(map[Node[S, E, TA]]int64, len(g.nodes))
	labels := make(map[int64]string, len(g.nodes))
	var nextID int64
	idOf := func(n Node[S, E, TA]) int64 {
		if id, ok := ids[n]; ok {
			return id
		}
		id := nextID
		nextID++
		ids[n] = id
		labels[id] = n.String()
		return id
	}
	for n := range g.nodes {
		idOf(n)
	}
	adjacency := make(map[int64]map[int64]bool, len(g.nodes))
	styles := make(map[int64]map[int64]string, len(g.nodes))
	addArc := func(from, to Node[S, E, TA], style string) {
		u, v := idOf(from), idOf(to)
		if adjacency[u] == nil {
			adjacency[u] = make(map[int64]bool)
			styles[u] = make(map[int64]string)
		}
		adjacency[u][v] = true
		styles[u][v] = style
	}
	for e := range g.edges {
		addArc(e.Source, e.Target, edgeStyle(e.Action.Kind))
	}
	return graphutil.NewStyledView(labels, adjacency, styles)
}

// edgeStyle assigns a Graphviz color fragment per edge-action kind, the
// generalization of render.go's edgeColor (which colors a *ssa.Go call
// site blue, everything else unstyled) to this engine's four action
// kinds.
func edgeStyle(kind ActionKind) string {
	switch kind {
	case Push:
		return "[color=blue]"
	case Pop:
		return "[color=red]"
	case DynTargetedPop:
		return "[color=purple]"
	default:
		return ""
	}
}
