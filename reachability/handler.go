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

// UntargetedPopResult pairs an alternative continuation with the
// destination state it leads to, the result shape
// PerformUntargetedDynamicPop produces (spec.md §4.A: "each alternative
// also names a destination state").
type UntargetedPopResult[S Elem, E Elem, TA Elem] struct {
	Actions []Action[E, TA]
	State   S
}

// DynamicPopHandler is the user-supplied, pure vtable of dynamic pop
// behavior (spec.md §4.A, §6). It plays the role the teacher's "vtable
// passed at construction time" design note (SPEC_FULL.md §4.A) describes
// for any functorial parameter: here a small interface instead of a
// single function, because a PDS plugs in both a targeted and an
// untargeted dynamic pop behavior together.
//
// Both methods must be deterministic and total over the alphabet: the
// engine may call them repeatedly (once per matching push edge, so the
// same (element, action) arguments can recur) and assumes the results
// depend only on the arguments. Violating this is undefined behavior
// per spec.md §7 -- the engine will not crash for it, but results may be
// stale or duplicated.
type DynamicPopHandler[S Elem, E Elem, TA Elem, UA Elem] interface {
	// PerformTargetedDynamicPop returns the zero-or-more ways a
	// DynTargetedPop(action) edge's pop succeeds against top, each as a
	// (possibly empty) list of actions to continue with.
	PerformTargetedDynamicPop(top E, action TA) Seq[[]Action[E, TA]]

	// PerformUntargetedDynamicPop returns the zero-or-more ways an
	// untargeted dynamic pop action succeeds against top, each paired
	// with the destination state it leads to.
	PerformUntargetedDynamicPop(top E, action UA) Seq[UntargetedPopResult[S, E, TA]]
}

// checkHandlerSeq panics if seq is nil, the one handler-misuse case the
// engine can actually detect: a DynamicPopHandler method returning a nil
// Seq instead of an empty one. This is the internal-invariant panic
// spec.md §7 carves out from the "undefined behavior, engine will not
// crash" rule for handler misuse in general -- a nil Seq would otherwise
// surface as a silent empty result (see Collect/ForEach in seq.go),
// masking a handler bug as "no alternatives found".
func checkHandlerSeq[T any](seq Seq[T], method string) Seq[T] {
	if seq == nil {
		panic("reachability: DynamicPopHandler." + method + " returned a nil Seq; handlers must return an empty Seq, never nil")
	}
	return seq
}
