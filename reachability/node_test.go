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

// TestNodeArena_InternsStructurallyEqualRequests checks that two
// Intern calls with structurally equal (target, actions) return the
// identical pointer, the property closure.go's enqueue-gating logic
// depends on (a node is only ever expanded once).
func TestNodeArena_InternsStructurallyEqualRequests(t *testing.T) {
	arena := NewNodeArena[label, label, label]()
	target := Node[label, label, label](StateNode[label, label, label]{State: "B"})
	actions := []Action[label, label]{PushAction[label, label]("x"), PopAction[label, label]("y")}

	n1 := arena.Intern(target, actions)
	n2 := arena.Intern(target, append([]Action[label, label]{}, actions...))

	if n1 != n2 {
		t.Errorf("expected structurally equal Intern requests to return the same pointer, got %p and %p", n1, n2)
	}
}

// TestNodeArena_DistinctActionsAreNotInterned checks that differing
// action lists produce distinct IntermediateNode pointers even with the
// same target.
func TestNodeArena_DistinctActionsAreNotInterned(t *testing.T) {
	arena := NewNodeArena[label, label, label]()
	target := Node[label, label, label](StateNode[label, label, label]{State: "B"})

	n1 := arena.Intern(target, []Action[label, label]{PushAction[label, label]("x")})
	n2 := arena.Intern(target, []Action[label, label]{PushAction[label, label]("y")})

	if n1 == n2 {
		t.Errorf("expected differing action lists to intern to distinct nodes, both were %p", n1)
	}
}

// TestNodeArena_DistinctTargetsAreNotInterned checks that the same
// action list against two different targets is not conflated.
func TestNodeArena_DistinctTargetsAreNotInterned(t *testing.T) {
	arena := NewNodeArena[label, label, label]()
	actions := []Action[label, label]{PushAction[label, label]("x")}

	n1 := arena.Intern(Node[label, label, label](StateNode[label, label, label]{State: "B"}), actions)
	n2 := arena.Intern(Node[label, label, label](StateNode[label, label, label]{State: "C"}), actions)

	if n1 == n2 {
		t.Errorf("expected differing targets to intern to distinct nodes, both were %p", n1)
	}
}

// TestNodeArena_EmptyActionsAnchor checks the documented exception: an
// IntermediateNode may be interned with an empty action list (the
// start-state anchor case), and repeated requests for the same
// (target, []) still return the same pointer.
func TestNodeArena_EmptyActionsAnchor(t *testing.T) {
	arena := NewNodeArena[label, label, label]()
	target := Node[label, label, label](StateNode[label, label, label]{State: "A"})

	n1 := arena.Intern(target, nil)
	n2 := arena.Intern(target, []Action[label, label]{})

	if n1 != n2 {
		t.Errorf("expected nil and empty-slice actions to intern identically, got %p and %p", n1, n2)
	}
	if len(n1.Actions) != 0 {
		t.Errorf("expected an empty-actions anchor, got %v", n1.Actions)
	}
}

// TestStateNode_PlainEquality checks that two StateNode values over the
// same state compare equal without ever touching an arena (unlike
// IntermediateNode, spec.md's "state nodes compare by plain value
// equality").
func TestStateNode_PlainEquality(t *testing.T) {
	a := StateNode[label, label, label]{State: "A"}
	b := StateNode[label, label, label]{State: "A"}
	if a != b {
		t.Errorf("expected StateNode values over equal states to be ==, got %v != %v", a, b)
	}

	c := StateNode[label, label, label]{State: "B"}
	if a == c {
		t.Errorf("expected StateNode values over differing states to be !=, got %v == %v", a, c)
	}
}

// TestIntermediateNode_String checks the rendering format used by
// diagnostics and error messages.
func TestIntermediateNode_String(t *testing.T) {
	arena := NewNodeArena[label, label, label]()
	target := Node[label, label, label](StateNode[label, label, label]{State: "B"})
	n := arena.Intern(target, []Action[label, label]{PushAction[label, label]("x"), PopAction[label, label]("y")})

	got := n.String()
	want := "<push x, pop y ; then B>"
	if got != want {
		t.Errorf("IntermediateNode.String() = %q, want %q", got, want)
	}
}
