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

// Package reachability implements a pushdown-system (PDS) reachability
// engine: given a user-defined PDS over a state type S and a stack
// element type E, it answers "starting at state s with stack word w,
// which states are reachable when the stack becomes empty".
//
// The engine is embedded, not standalone: a caller builds an [Analysis],
// registers edges (possibly produced lazily by edge-generating
// functions), registers start words with [Analysis.AddStartState], then
// drives the fixpoint with [Analysis.FullyClose] or step by step with
// [Analysis.ClosureStep], and reads off results with
// [Analysis.GetReachableStates].
//
// Pop transitions may be dynamic: their effect can depend, at closure
// time, on the stack element actually popped. See [DynamicPopHandler].
package reachability
