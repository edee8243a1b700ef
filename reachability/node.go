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

import (
	"fmt"
	"strings"
)

// Node is the graph's vertex representation: either a StateNode or an
// IntermediateNode. Only these two variants are ever engine-visible (the
// source material's Initial_node/State_node duality is not carried over,
// see SPEC_FULL.md §9).
type Node[S Elem, E Elem, TA Elem] interface {
	isNode()
	String() string
}

// StateNode identifies a PDS state. Two StateNode values over the same S
// are automatically "the same node" via plain Go equality (S is
// comparable), so unlike IntermediateNode, StateNode needs no interning
// arena.
type StateNode[S Elem, E Elem, TA Elem] struct {
	State S
}

func (StateNode[S, E, TA]) isNode() {}

func (n StateNode[S, E, TA]) String() string {
	return n.State.String()
}

// IntermediateNode is an anonymous node standing for "execute the action
// sequence Actions, then continue from Target". Its equality/ordering
// must be structural over (Target, Actions); this engine achieves that by
// only ever constructing IntermediateNode values through a [NodeArena],
// which hash-conses them, so that two structurally equal requests always
// yield the same *IntermediateNode pointer and plain pointer equality is
// then sufficient and correct.
//
// The decomposition rule (spec.md §4.E.1) inlines a whole singleton
// action list as a single edge and only interns the nonempty tail of a
// longer list, so Actions is nonempty wherever decomposition produced it
// (a two-action list leaves a one-action tail). The one exception is the
// start-state anchor (add_start_state), which always interns
// IntermediateNode(StateNode(s), actions) even when actions is empty --
// its expansion then yields the anchor's own trivial Nop edge to
// StateNode(s), the base case of "s is reachable from itself with an
// empty stack".
type IntermediateNode[S Elem, E Elem, TA Elem] struct {
	Target  Node[S, E, TA]
	Actions []Action[E, TA]

	// key is the structural key this node was interned under. Computed
	// once at construction so nested lookups (an IntermediateNode whose
	// Target is itself an IntermediateNode) are O(1) instead of
	// recursive.
	key string
}

func (*IntermediateNode[S, E, TA]) isNode() {}

func (n *IntermediateNode[S, E, TA]) String() string {
	parts := make([]string, len(n.Actions))
	for i, a := range n.Actions {
		parts[i] = a.String()
	}
	return fmt.Sprintf("<%s ; then %s>", strings.Join(parts, ", "), n.Target.String())
}

// NodeArena hash-conses IntermediateNode values so that structural
// equality of (target, actions) coincides with pointer equality,
// matching the interning strategy internal/graphutil.CGraph uses for
// callgraph nodes (a stable key to canonical-value map), generalized
// from integer callgraph ids to a string structural key.
type NodeArena[S Elem, E Elem, TA Elem] struct {
	interned map[string]*IntermediateNode[S, E, TA]
}

// NewNodeArena returns an empty arena.
func NewNodeArena[S Elem, E Elem, TA Elem]() *NodeArena[S, E, TA] {
	return &NodeArena[S, E, TA]{interned: make(map[string]*IntermediateNode[S, E, TA])}
}

func nodeKey[S Elem, E Elem, TA Elem](n Node[S, E, TA]) string {
	switch t := n.(type) {
	case StateNode[S, E, TA]:
		return "S:" + t.State.String()
	case *IntermediateNode[S, E, TA]:
		return "I:" + t.key
	default:
		panic(fmt.Sprintf("reachability: unknown node variant %T", n))
	}
}

func actionsKey[E Elem, TA Elem](actions []Action[E, TA]) string {
	var b strings.Builder
	for _, a := range actions {
		b.WriteString(a.Kind.String())
		b.WriteByte(':')
		b.WriteString(a.String())
		b.WriteByte(';')
	}
	return b.String()
}

// Intern returns the canonical *IntermediateNode for (target, actions),
// creating it on first request.
func (arena *NodeArena[S, E, TA]) Intern(target Node[S, E, TA], actions []Action[E, TA]) *IntermediateNode[S, E, TA] {
	key := nodeKey[S, E, TA](target) + "|" + actionsKey(actions)
	if existing, ok := arena.interned[key]; ok {
		return existing
	}
	node := &IntermediateNode[S, E, TA]{Target: target, Actions: actions, key: key}
	arena.interned[key] = node
	return node
}
