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

// ReachabilityRequestForNonStartState is returned by GetReachableStates
// when (s, actions) was never registered via AddStartState (spec.md §7).
type ReachabilityRequestForNonStartState[S Elem] struct {
	State S
}

func (e *ReachabilityRequestForNonStartState[S]) Error() string {
	return fmt.Sprintf("reachability: no start state registered for %s", e.State)
}
