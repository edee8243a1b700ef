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

import "fmt"

// Edge records a single-action transition {Source, Target, Action} of the
// closure graph. Unlike the user-facing action lists passed to
// AddEdge, an Edge's Action is always a single variant (spec.md §3,
// invariant 1): multi-action edges are compiled down to a chain of
// single-action edges through IntermediateNode, see engine.go.
type Edge[S Elem, E Elem, TA Elem] struct {
	Source Node[S, E, TA]
	Target Node[S, E, TA]
	Action Action[E, TA]
}

func (e Edge[S, E, TA]) String() string {
	return fmt.Sprintf("%s --%s--> %s", e.Source, e.Action, e.Target)
}
