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

// GetReachableStates locates the anchor IntermediateNode(StateNode(s),
// actions) registered by a prior AddStartState(s, actions) call and
// returns the lazy sequence of states s' reachable from it by a direct
// Nop edge in the current (possibly only partly closed) graph.
//
// Because the engine pre-decomposes the start word into an
// intermediate-node chain, and saturation rewrites matched Push/Pop
// pairs and dynamic pops down to Nop edges, a Nop edge from the anchor
// to StateNode(s') is exactly the condition "from s' the stack can
// become empty" (spec.md §4.F).
//
// s itself is always included, independent of whatever Nop edges
// saturation derives: zero transitions trivially leaves the system at
// (s, w), the same relative stack depth it started at (S4's nonempty
// initial word is the scenario that pins this down -- with an empty
// initial word the anchor's own expansion happens to produce the same
// edge directly, making the two paths redundant there).
func (a *Analysis[S, E, TA, UA]) GetReachableStates(s S, actions []Action[E, TA]) (Seq[S], error) {
	anchor := Node[S, E, TA](a.arena.Intern(StateNode[S, E, TA]{State: s}, actions))
	if !a.startNodes[anchor] {
		return nil, &ReachabilityRequestForNonStartState[S]{State: s}
	}

	states := []S{s}
	seen := map[S]bool{s: true}
	ForEach(a.graph.FindNopEdgesBySource(anchor), func(t Node[S, E, TA]) bool {
		if sn, ok := t.(StateNode[S, E, TA]); ok && !seen[sn.State] {
			seen[sn.State] = true
			states = append(states, sn.State)
		}
		return true
	})
	return SeqOf(states...), nil
}
