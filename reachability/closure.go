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

// IsClosed reports whether the work collection is empty (spec.md §3,
// invariant 6).
func (a *Analysis[S, E, TA, UA]) IsClosed() bool {
	return a.work.IsEmpty()
}

// ClosureStep drains and dispatches exactly one work item. It is a no-op
// on a closed analysis. Reports whether a work item was actually
// processed.
func (a *Analysis[S, E, TA, UA]) ClosureStep() bool {
	item, ok := a.work.Take()
	if !ok {
		return false
	}
	a.pendingCount--
	a.metrics.ClosureSteps++
	a.metrics.WorkItemsProcessed[item.Kind]++

	a.debugf("closure step %d: %v (queue depth %d)", a.metrics.ClosureSteps, item.Kind, a.pendingCount)

	switch item.Kind {
	case ExpandNode:
		a.handleExpandNode(item.Node)
	case IntroduceEdge:
		a.handleIntroduceEdge(item.Edge)
	case IntroduceUntargetedDynPop:
		a.handleIntroduceUntargetedDynPop(item.Node, item.UAction)
	}
	return true
}

// FullyClose runs ClosureStep until the work collection drains.
func (a *Analysis[S, E, TA, UA]) FullyClose() {
	for a.ClosureStep() {
	}
}

// FullyCloseBounded runs ClosureStep until the work collection drains or
// maxSteps steps have run, whichever comes first. maxSteps <= 0 means
// unbounded, equivalent to FullyClose. Reports whether the analysis
// actually reached closure (false if the step budget ran out first), the
// defensive counterpart to config.Options.MaxSteps for a misbehaving
// dynamic pop handler that keeps manufacturing new states.
func (a *Analysis[S, E, TA, UA]) FullyCloseBounded(maxSteps int) bool {
	if maxSteps <= 0 {
		a.FullyClose()
		return true
	}
	for steps := 0; steps < maxSteps; steps++ {
		if !a.ClosureStep() {
			return true
		}
	}
	return a.IsClosed()
}

// handleExpandNode marks node Expanded and runs the registered
// edge-generating / untargeted-dyn-pop-generating functions against it
// if it is a StateNode, or advances one step of its action chain if it
// is an IntermediateNode (spec.md §4.E.2, "ExpandNode").
func (a *Analysis[S, E, TA, UA]) handleExpandNode(node Node[S, E, TA]) {
	a.status[node] = statusExpanded

	switch n := node.(type) {
	case StateNode[S, E, TA]:
		if a.knownStates == nil {
			a.knownStates = make(map[S]bool)
		}
		a.knownStates[n.State] = true
		for _, f := range a.edgeFuncs {
			a.runEdgeFunction(f, n.State)
		}
		for _, g := range a.untargetedFuncs {
			a.runUntargetedDynPopFunction(g, n.State)
		}
	case *IntermediateNode[S, E, TA]:
		edge := decompose(a.arena, node, n.Actions, n.Target)
		a.enqueueIntroduceEdge(edge)
		a.maybeExpand(edge.Target)
	}
}

// handleIntroduceEdge computes the CFL-reachability closure consequences
// of edge by its action kind (spec.md §4.E.2's table), enqueues the
// consequent work, then inserts edge into the graph. A duplicate edge
// (already stored) is a no-op: its consequences were already computed
// when it was first introduced.
func (a *Analysis[S, E, TA, UA]) handleIntroduceEdge(edge Edge[S, E, TA]) {
	if a.graph.HasEdge(edge) {
		return
	}

	switch edge.Action.Kind {
	case Nop:
		a.closeNop(edge)
	case Push:
		a.closePush(edge)
	case Pop:
		a.closePop(edge)
	case DynTargetedPop:
		a.closeDynTargetedPop(edge)
	}

	a.graph.AddEdge(edge)
}

// enqueueConsequence enqueues a consequent edge discovered during
// closure (unless it is already stored) and expands its destination if
// not yet Seen or Expanded, whether or not the edge itself was new
// (spec.md §4.E.2's "for every consequent edge whose
// destination node is not yet Expanded, also enqueue ExpandNode(dest) --
// only if at least one consequent edge was produced": the guard is
// per-edge here, since each call site only reaches this helper once it
// has already found a concrete match to compose against).
func (a *Analysis[S, E, TA, UA]) enqueueConsequence(edge Edge[S, E, TA]) {
	a.enqueueIntroduceEdge(edge)
	a.maybeExpand(edge.Target)
}

// closeNop: Push edges ending at from (source p, element k) ->
// IntroduceEdge(p --Push k--> to). Nop edges also compose transitively
// with other Nop edges on either side of this one (see
// Graph.FindNopEdgesByTarget), which the table's single listed row
// doesn't spell out but which a start-state anchor's own trivial Nop
// edge needs in order to chain through a later-derived Nop summary.
func (a *Analysis[S, E, TA, UA]) closeNop(edge Edge[S, E, TA]) {
	ForEach(a.graph.FindPushEdgesByTarget(edge.Source), func(ps pushSource[S, E, TA]) bool {
		a.enqueueConsequence(Edge[S, E, TA]{Source: ps.Source, Target: edge.Target, Action: PushAction[E, TA](ps.Element)})
		return true
	})
	ForEach(a.graph.FindNopEdgesBySource(edge.Target), func(t Node[S, E, TA]) bool {
		a.enqueueConsequence(Edge[S, E, TA]{Source: edge.Source, Target: t, Action: NopAction[E, TA]()})
		return true
	})
	ForEach(a.graph.FindNopEdgesByTarget(edge.Source), func(p Node[S, E, TA]) bool {
		a.enqueueConsequence(Edge[S, E, TA]{Source: p, Target: edge.Target, Action: NopAction[E, TA]()})
		return true
	})
}

// closePush handles the four Push-k consequences: Nop edges from to,
// matching Pop edges from to, targeted dyn-pop edges from to, and
// untargeted dyn-pop actions at to.
func (a *Analysis[S, E, TA, UA]) closePush(edge Edge[S, E, TA]) {
	k := edge.Action.Element

	ForEach(a.graph.FindNopEdgesBySource(edge.Target), func(t Node[S, E, TA]) bool {
		a.enqueueConsequence(Edge[S, E, TA]{Source: edge.Source, Target: t, Action: PushAction[E, TA](k)})
		return true
	})

	ForEach(a.graph.FindPopEdgesBySource(edge.Target), func(pt popTarget[S, E, TA]) bool {
		if pt.Element != k {
			return true
		}
		a.enqueueConsequence(Edge[S, E, TA]{Source: edge.Source, Target: pt.Target, Action: NopAction[E, TA]()})
		return true
	})

	ForEach(a.graph.FindTargetedDynamicPopEdgesBySource(edge.Target), func(dt dynTarget[S, E, TA]) bool {
		ForEach(checkHandlerSeq(a.handler.PerformTargetedDynamicPop(k, dt.Token), "PerformTargetedDynamicPop"), func(actionList []Action[E, TA]) bool {
			a.enqueueConsequence(decompose(a.arena, edge.Source, actionList, dt.Target))
			return true
		})
		return true
	})

	ForEach(a.graph.FindUntargetedDynamicPopActionsBySource(edge.Target), func(action UA) bool {
		ForEach(checkHandlerSeq(a.handler.PerformUntargetedDynamicPop(k, action), "PerformUntargetedDynamicPop"), func(r UntargetedPopResult[S, E, TA]) bool {
			dest := Node[S, E, TA](StateNode[S, E, TA]{State: r.State})
			a.enqueueConsequence(decompose(a.arena, edge.Source, r.Actions, dest))
			return true
		})
		return true
	})
}

// closePop: Push edges ending at from with element k (source p) ->
// IntroduceEdge(p --Nop--> to).
func (a *Analysis[S, E, TA, UA]) closePop(edge Edge[S, E, TA]) {
	k := edge.Action.Element
	ForEach(a.graph.FindPushEdgesByTarget(edge.Source), func(ps pushSource[S, E, TA]) bool {
		if ps.Element != k {
			return true
		}
		a.enqueueConsequence(Edge[S, E, TA]{Source: ps.Source, Target: edge.Target, Action: NopAction[E, TA]()})
		return true
	})
}

// closeDynTargetedPop: Push edges ending at from (source p, element k);
// handler returns each action_list -> IntroduceEdge(p --...--> to).
func (a *Analysis[S, E, TA, UA]) closeDynTargetedPop(edge Edge[S, E, TA]) {
	token := edge.Action.Token
	ForEach(a.graph.FindPushEdgesByTarget(edge.Source), func(ps pushSource[S, E, TA]) bool {
		ForEach(checkHandlerSeq(a.handler.PerformTargetedDynamicPop(ps.Element, token), "PerformTargetedDynamicPop"), func(actionList []Action[E, TA]) bool {
			a.enqueueConsequence(decompose(a.arena, ps.Source, actionList, edge.Target))
			return true
		})
		return true
	})
}

// handleIntroduceUntargetedDynPop: for every push edge ending at from
// (source p, element k), calls the handler; for each (action_list, s)
// enqueues the consequent edge and expands StateNode(s); then inserts
// the association into the graph.
func (a *Analysis[S, E, TA, UA]) handleIntroduceUntargetedDynPop(from Node[S, E, TA], action UA) {
	if a.graph.HasUntargetedDynamicPopAction(from, action) {
		return
	}

	ForEach(a.graph.FindPushEdgesByTarget(from), func(ps pushSource[S, E, TA]) bool {
		ForEach(checkHandlerSeq(a.handler.PerformUntargetedDynamicPop(ps.Element, action), "PerformUntargetedDynamicPop"), func(r UntargetedPopResult[S, E, TA]) bool {
			dest := Node[S, E, TA](StateNode[S, E, TA]{State: r.State})
			a.enqueueConsequence(decompose(a.arena, ps.Source, r.Actions, dest))
			return true
		})
		return true
	})

	a.graph.AddUntargetedDynamicPopAction(from, action)
}
