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

// Logger is the minimal logging surface the engine consults while
// closing an analysis. config.LogGroup satisfies this interface; tests
// and simple callers can leave it unset (a nil Logger is always safe to
// call through Analysis, which checks before using it).
type Logger interface {
	Debugf(format string, args ...any)
}

// Metrics accumulates counters over an analysis's lifetime, mirroring
// the kind of plain run-summary counters the teacher logs at analysis
// end (e.g. summaries.go's per-function summary counts) rather than a
// full metrics/observability library -- this engine has no such
// dependency among the pack's third-party stacks.
type Metrics struct {
	// WorkItemsProcessed counts drained work items by kind.
	WorkItemsProcessed map[WorkKind]int
	// ClosureSteps counts calls to ClosureStep that drained a work item
	// (calls on an already-closed analysis do not count).
	ClosureSteps int
	// PeakQueueLength is the largest observed pending-work count,
	// sampled immediately after each Offer.
	PeakQueueLength int
}

func newMetrics() Metrics {
	return Metrics{WorkItemsProcessed: make(map[WorkKind]int)}
}
