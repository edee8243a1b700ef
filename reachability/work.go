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

import "container/heap"

// WorkKind discriminates the three work-item variants of spec.md §4.D.
type WorkKind int

const (
	// ExpandNode means the node has been seen but not yet run through
	// the registered edge-generating / untargeted-dyn-pop-generating
	// functions.
	ExpandNode WorkKind = iota
	// IntroduceEdge means edge is a candidate to add to the graph and
	// close against existing edges.
	IntroduceEdge
	// IntroduceUntargetedDynPop means (Node, UAction) is a candidate
	// untargeted-dyn-pop association.
	IntroduceUntargetedDynPop
)

func (k WorkKind) String() string {
	switch k {
	case ExpandNode:
		return "ExpandNode"
	case IntroduceEdge:
		return "IntroduceEdge"
	case IntroduceUntargetedDynPop:
		return "IntroduceUntargetedDynPop"
	default:
		return "WorkKind(?)"
	}
}

// WorkItem is one pending unit of saturation work.
type WorkItem[S Elem, E Elem, TA Elem, UA Elem] struct {
	Kind    WorkKind
	Node    Node[S, E, TA]    // ExpandNode, IntroduceUntargetedDynPop
	Edge    Edge[S, E, TA]    // IntroduceEdge
	UAction UA                // IntroduceUntargetedDynPop
}

// WorkCollection is the pluggable ordered container of pending work
// items (spec.md §4.D). Saturation correctness must not depend on which
// implementation is plugged in -- only termination order and peak-memory
// performance may -- so the engine only ever calls IsEmpty/Offer/Take.
//
// Implementations mutate in place rather than returning a persistent
// updated copy: both models satisfy the single-threaded ownership
// contract of spec.md §5, and mutation is the teacher's prevailing style
// (e.g. analysis/dataflow's worklists, internal/pointer's constraint
// solver queue).
type WorkCollection[S Elem, E Elem, TA Elem, UA Elem] interface {
	IsEmpty() bool
	Offer(item WorkItem[S, E, TA, UA])
	// Take removes and returns the next item, reporting false if the
	// collection was empty.
	Take() (WorkItem[S, E, TA, UA], bool)
}

// FIFOQueue is the natural-default ordering: a slice-backed ring buffer
// processing work items in the order they were offered.
type FIFOQueue[S Elem, E Elem, TA Elem, UA Elem] struct {
	items []WorkItem[S, E, TA, UA]
	head  int
}

// NewFIFOQueue returns an empty FIFOQueue.
func NewFIFOQueue[S Elem, E Elem, TA Elem, UA Elem]() *FIFOQueue[S, E, TA, UA] {
	return &FIFOQueue[S, E, TA, UA]{}
}

func (q *FIFOQueue[S, E, TA, UA]) IsEmpty() bool { return q.head >= len(q.items) }

func (q *FIFOQueue[S, E, TA, UA]) Offer(item WorkItem[S, E, TA, UA]) {
	if q.head > 0 && q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	q.items = append(q.items, item)
}

func (q *FIFOQueue[S, E, TA, UA]) Take() (WorkItem[S, E, TA, UA], bool) {
	if q.IsEmpty() {
		var zero WorkItem[S, E, TA, UA]
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = WorkItem[S, E, TA, UA]{}
	q.head++
	return item, true
}

// LIFOStack processes the most recently offered item first, useful for
// depth-first saturation that surfaces a witness path faster.
type LIFOStack[S Elem, E Elem, TA Elem, UA Elem] struct {
	items []WorkItem[S, E, TA, UA]
}

// NewLIFOStack returns an empty LIFOStack.
func NewLIFOStack[S Elem, E Elem, TA Elem, UA Elem]() *LIFOStack[S, E, TA, UA] {
	return &LIFOStack[S, E, TA, UA]{}
}

func (s *LIFOStack[S, E, TA, UA]) IsEmpty() bool { return len(s.items) == 0 }

func (s *LIFOStack[S, E, TA, UA]) Offer(item WorkItem[S, E, TA, UA]) {
	s.items = append(s.items, item)
}

func (s *LIFOStack[S, E, TA, UA]) Take() (WorkItem[S, E, TA, UA], bool) {
	if s.IsEmpty() {
		var zero WorkItem[S, E, TA, UA]
		return zero, false
	}
	last := len(s.items) - 1
	item := s.items[last]
	s.items = s.items[:last]
	return item, true
}

// PriorityQueue orders work items by a user-supplied priority function
// (lower value taken first), backed by container/heap the way a
// from-scratch worklist scheduler would be -- the teacher itself has no
// heap-backed queue, so this is grounded on SPEC_FULL.md §4.D's
// "interchangeable strategy behind one interface" generalization of the
// teacher's Options.SummarizeOnDemand boolean-strategy-switch idea.
type PriorityQueue[S Elem, E Elem, TA Elem, UA Elem] struct {
	h priorityHeap[S, E, TA, UA]
}

// NewPriorityQueue returns an empty PriorityQueue ordering items by
// priority (ascending: the lowest-priority item is taken first).
func NewPriorityQueue[S Elem, E Elem, TA Elem, UA Elem](priority func(WorkItem[S, E, TA, UA]) int) *PriorityQueue[S, E, TA, UA] {
	return &PriorityQueue[S, E, TA, UA]{h: priorityHeap[S, E, TA, UA]{priority: priority}}
}

func (q *PriorityQueue[S, E, TA, UA]) IsEmpty() bool { return len(q.h.items) == 0 }

func (q *PriorityQueue[S, E, TA, UA]) Offer(item WorkItem[S, E, TA, UA]) {
	heap.Push(&q.h, item)
}

func (q *PriorityQueue[S, E, TA, UA]) Take() (WorkItem[S, E, TA, UA], bool) {
	if q.IsEmpty() {
		var zero WorkItem[S, E, TA, UA]
		return zero, false
	}
	return heap.Pop(&q.h).(WorkItem[S, E, TA, UA]), true
}

type priorityHeap[S Elem, E Elem, TA Elem, UA Elem] struct {
	items    []WorkItem[S, E, TA, UA]
	priority func(WorkItem[S, E, TA, UA]) int
}

func (h priorityHeap[S, E, TA, UA]) Len() int { return len(h.items) }
func (h priorityHeap[S, E, TA, UA]) Less(i, j int) bool {
	return h.priority(h.items[i]) < h.priority(h.items[j])
}
func (h priorityHeap[S, E, TA, UA]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *priorityHeap[S, E, TA, UA]) Push(x any) {
	h.items = append(h.items, x.(WorkItem[S, E, TA, UA]))
}

func (h *priorityHeap[S, E, TA, UA]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}
