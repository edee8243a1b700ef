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

// EdgeFunctionResult is one outcome of an edge-generating function: from
// the state it was called with, actions leads to To.
type EdgeFunctionResult[S Elem, E Elem, TA Elem] struct {
	Actions []Action[E, TA]
	To      S
}

// EdgeFunction is a pure, total function discovering edges lazily from a
// state, the "edge-generating function" of spec.md §4.E.1. The engine
// calls it at most once per state, at that state's expansion, and once
// more per already-known state during AddEdgeFunction's catch-up pass.
type EdgeFunction[S Elem, E Elem, TA Elem] func(S) Seq[EdgeFunctionResult[S, E, TA]]

// UntargetedDynPopFunction is a pure, total function discovering
// untargeted dynamic pop actions lazily from a state.
type UntargetedDynPopFunction[S Elem, UA Elem] func(S) Seq[UA]

// nodeStatus tracks where a node sits in the Seen/Expanded lifecycle
// (spec.md §3, invariants 2-3).
type nodeStatus int

const (
	statusUnknown nodeStatus = iota
	statusSeen
	statusExpanded
)

// Analysis is a PDS reachability engine over states S, stack elements E,
// targeted-dyn-pop tokens TA, and untargeted-dyn-pop tokens UA. It owns
// its graph, work collection, awareness map, and registered function
// lists exclusively (spec.md §3 "Ownership"); all mutation happens
// through the methods below under single-threaded use, mirroring the
// teacher's mutable worklist solvers (internal/pointer's constraint
// solver, analysis/dataflow's fixpoint loops) rather than the source
// material's persistent-update style.
type Analysis[S Elem, E Elem, TA Elem, UA Elem] struct {
	arena   *NodeArena[S, E, TA]
	graph   *Graph[S, E, TA, UA]
	work    WorkCollection[S, E, TA, UA]
	handler DynamicPopHandler[S, E, TA, UA]
	logger  Logger

	knownStates map[S]bool
	status      map[Node[S, E, TA]]nodeStatus
	startNodes  map[Node[S, E, TA]]bool

	edgeFuncs       []EdgeFunction[S, E, TA]
	untargetedFuncs []UntargetedDynPopFunction[S, UA]

	pendingCount int
	metrics      Metrics
}

// NewAnalysis returns an empty analysis backed by work as its work
// collection and handler as its dynamic pop vtable.
func NewAnalysis[S Elem, E Elem, TA Elem, UA Elem](handler DynamicPopHandler[S, E, TA, UA], work WorkCollection[S, E, TA, UA]) *Analysis[S, E, TA, UA] {
	return &Analysis[S, E, TA, UA]{
		arena:       NewNodeArena[S, E, TA](),
		graph:       NewGraph[S, E, TA, UA](),
		work:        work,
		handler:     handler,
		knownStates: make(map[S]bool),
		status:      make(map[Node[S, E, TA]]nodeStatus),
		startNodes:  make(map[Node[S, E, TA]]bool),
		metrics:     newMetrics(),
	}
}

// SetLogger attaches a Logger (e.g. a config.LogGroup) the engine will
// call with closure-step diagnostics. Passing nil disables logging.
func (a *Analysis[S, E, TA, UA]) SetLogger(logger Logger) {
	a.logger = logger
}

// Metrics returns a snapshot of the analysis's running counters.
func (a *Analysis[S, E, TA, UA]) Metrics() Metrics {
	return a.metrics
}

// GetSize returns (node_count, edge_count) for the current graph.
func (a *Analysis[S, E, TA, UA]) GetSize() (int, int) {
	stats := a.graph.Stats()
	return stats.NodeCount, stats.EdgeCount
}

// Stats returns a richer size/shape snapshot than GetSize, see Graph.Stats.
func (a *Analysis[S, E, TA, UA]) Stats() Stats {
	return a.graph.Stats()
}

// AsDiagnosticView exposes the closure graph for the diagnostics in
// reachability/render.
func (a *Analysis[S, E, TA, UA]) AsDiagnosticView() any {
	return a.graph.AsDiagnosticView()
}

func (a *Analysis[S, E, TA, UA]) debugf(format string, args ...any) {
	if a.logger != nil {
		a.logger.Debugf(format, args...)
	}
}

// decompose builds the first single-action edge of the chain
// representing "from executes actions, then continues from to" (spec.md
// §4.E.1's decomposition rule). It is used both by AddEdge/
// AddEdgeFunction (from a StateNode) and by ExpandNode's handling of an
// IntermediateNode (from the node being expanded) -- the rule is
// identical in both places.
func decompose[S Elem, E Elem, TA Elem](arena *NodeArena[S, E, TA], from Node[S, E, TA], actions []Action[E, TA], to Node[S, E, TA]) Edge[S, E, TA] {
	switch len(actions) {
	case 0:
		return Edge[S, E, TA]{Source: from, Target: to, Action: NopAction[E, TA]()}
	case 1:
		return Edge[S, E, TA]{Source: from, Target: to, Action: actions[0]}
	default:
		rest := arena.Intern(to, actions[1:])
		return Edge[S, E, TA]{Source: from, Target: rest, Action: actions[0]}
	}
}

func (a *Analysis[S, E, TA, UA]) offer(item WorkItem[S, E, TA, UA]) {
	a.work.Offer(item)
	a.pendingCount++
	if a.pendingCount > a.metrics.PeakQueueLength {
		a.metrics.PeakQueueLength = a.pendingCount
	}
}

// enqueueIntroduceEdge enqueues edge unless it is already stored in the
// graph (the idempotence check of spec.md §4.E.2). Reports whether it
// enqueued.
func (a *Analysis[S, E, TA, UA]) enqueueIntroduceEdge(edge Edge[S, E, TA]) bool {
	if a.graph.HasEdge(edge) {
		return false
	}
	a.offer(WorkItem[S, E, TA, UA]{Kind: IntroduceEdge, Edge: edge})
	return true
}

// enqueueIntroduceUntargetedDynPop enqueues (node, action) unless it is
// already stored in the graph.
func (a *Analysis[S, E, TA, UA]) enqueueIntroduceUntargetedDynPop(node Node[S, E, TA], action UA) bool {
	if a.graph.HasUntargetedDynamicPopAction(node, action) {
		return false
	}
	a.offer(WorkItem[S, E, TA, UA]{Kind: IntroduceUntargetedDynPop, Node: node, UAction: action})
	return true
}

// maybeExpand enqueues ExpandNode(n) unless n is already Seen or
// Expanded (spec.md §3, invariants 2-3).
func (a *Analysis[S, E, TA, UA]) maybeExpand(n Node[S, E, TA]) {
	if a.status[n] != statusUnknown {
		return
	}
	a.status[n] = statusSeen
	a.offer(WorkItem[S, E, TA, UA]{Kind: ExpandNode, Node: n})
}

// AddEdge registers the edge s1 --actions--> s2, decomposed into a chain
// of single-action edges (spec.md §4.E.1). Both s1 and s2 are also
// queued for expansion: every state an edge ever names becomes known the
// same way a consequence edge's destination does, so a later
// AddEdgeFunction's catch-up pass sees it.
func (a *Analysis[S, E, TA, UA]) AddEdge(s1 S, actions []Action[E, TA], s2 S) {
	from := Node[S, E, TA](StateNode[S, E, TA]{State: s1})
	to := Node[S, E, TA](StateNode[S, E, TA]{State: s2})
	a.enqueueIntroduceEdge(decompose(a.arena, from, actions, to))
	a.maybeExpand(from)
	a.maybeExpand(to)
}

// AddEdgeFunction appends f to the registered edge-generating functions
// and runs it against every already-known state (the catch-up pass of
// spec.md §4.E.1).
func (a *Analysis[S, E, TA, UA]) AddEdgeFunction(f EdgeFunction[S, E, TA]) {
	a.edgeFuncs = append(a.edgeFuncs, f)
	for s := range a.knownStates {
		a.runEdgeFunction(f, s)
	}
}

func (a *Analysis[S, E, TA, UA]) runEdgeFunction(f EdgeFunction[S, E, TA], s S) {
	from := Node[S, E, TA](StateNode[S, E, TA]{State: s})
	ForEach(f(s), func(r EdgeFunctionResult[S, E, TA]) bool {
		to := Node[S, E, TA](StateNode[S, E, TA]{State: r.To})
		a.enqueueIntroduceEdge(decompose(a.arena, from, r.Actions, to))
		a.maybeExpand(to)
		return true
	})
}

// AddUntargetedDynamicPopAction registers (s, action) as a candidate
// untargeted dynamic pop association. s is also queued for expansion,
// for the same reason AddEdge expands both of its endpoints.
func (a *Analysis[S, E, TA, UA]) AddUntargetedDynamicPopAction(s S, action UA) {
	node := Node[S, E, TA](StateNode[S, E, TA]{State: s})
	a.enqueueIntroduceUntargetedDynPop(node, action)
	a.maybeExpand(node)
}

// AddUntargetedDynamicPopActionFunction appends g to the registered
// untargeted-dyn-pop-generating functions and runs it against every
// already-known state (catch-up pass).
func (a *Analysis[S, E, TA, UA]) AddUntargetedDynamicPopActionFunction(g UntargetedDynPopFunction[S, UA]) {
	a.untargetedFuncs = append(a.untargetedFuncs, g)
	for s := range a.knownStates {
		a.runUntargetedDynPopFunction(g, s)
	}
}

func (a *Analysis[S, E, TA, UA]) runUntargetedDynPopFunction(g UntargetedDynPopFunction[S, UA], s S) {
	node := Node[S, E, TA](StateNode[S, E, TA]{State: s})
	ForEach(g(s), func(action UA) bool {
		a.enqueueIntroduceUntargetedDynPop(node, action)
		return true
	})
}

// AddStartState registers (s, actions) as a reachability query anchor
// and returns that anchor node, which a later GetReachableStates call
// for the same (s, actions) pair locates by structural identity. Both
// the anchor and the plain StateNode(s) are queued for expansion: the
// anchor so its decomposed action chain gets explored, StateNode(s) so
// s counts as known for edge-generating and untargeted-dyn-pop-generating
// functions even if no edge or consequence ever names it directly.
func (a *Analysis[S, E, TA, UA]) AddStartState(s S, actions []Action[E, TA]) Node[S, E, TA] {
	anchor := Node[S, E, TA](a.arena.Intern(StateNode[S, E, TA]{State: s}, actions))
	a.startNodes[anchor] = true
	a.maybeExpand(anchor)
	a.maybeExpand(Node[S, E, TA](StateNode[S, E, TA]{State: s}))
	return anchor
}
