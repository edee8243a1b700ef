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

func workItem(n int) WorkItem[label, label, label, label] {
	return WorkItem[label, label, label, label]{Kind: ExpandNode, Node: stateNode(label(string(rune('A' + n))))}
}

// TestFIFOQueue_OrderPreserved checks that FIFOQueue.Take returns items in
// the order they were Offer'd.
func TestFIFOQueue_OrderPreserved(t *testing.T) {
	q := NewFIFOQueue[label, label, label, label]()
	if !q.IsEmpty() {
		t.Fatalf("expected a new FIFOQueue to be empty")
	}
	for i := 0; i < 3; i++ {
		q.Offer(workItem(i))
	}
	for i := 0; i < 3; i++ {
		item, ok := q.Take()
		if !ok {
			t.Fatalf("expected Take to succeed at i=%d", i)
		}
		want := workItem(i).Node
		if item.Node != want {
			t.Errorf("Take() at i=%d = %v, want %v", i, item.Node, want)
		}
	}
	if !q.IsEmpty() {
		t.Errorf("expected FIFOQueue to be empty after draining")
	}
	if _, ok := q.Take(); ok {
		t.Errorf("expected Take on an empty FIFOQueue to report false")
	}
}

// TestFIFOQueue_InterleavedOfferTake checks that the ring-buffer reset
// logic (head catches up to len(items)) doesn't corrupt ordering across
// multiple fill/drain cycles.
func TestFIFOQueue_InterleavedOfferTake(t *testing.T) {
	q := NewFIFOQueue[label, label, label, label]()
	q.Offer(workItem(0))
	q.Offer(workItem(1))
	if item, _ := q.Take(); item.Node != workItem(0).Node {
		t.Fatalf("expected first Take to return item 0")
	}
	if item, _ := q.Take(); item.Node != workItem(1).Node {
		t.Fatalf("expected second Take to return item 1")
	}
	// Queue is now empty with head==len(items); Offer must reset cleanly.
	q.Offer(workItem(2))
	item, ok := q.Take()
	if !ok || item.Node != workItem(2).Node {
		t.Errorf("expected Take after reset to return item 2, got %v ok=%v", item.Node, ok)
	}
}

// TestLIFOStack_OrderReversed checks that LIFOStack.Take returns items in
// reverse of the order they were Offer'd.
func TestLIFOStack_OrderReversed(t *testing.T) {
	s := NewLIFOStack[label, label, label, label]()
	if !s.IsEmpty() {
		t.Fatalf("expected a new LIFOStack to be empty")
	}
	for i := 0; i < 3; i++ {
		s.Offer(workItem(i))
	}
	for i := 2; i >= 0; i-- {
		item, ok := s.Take()
		if !ok {
			t.Fatalf("expected Take to succeed at i=%d", i)
		}
		want := workItem(i).Node
		if item.Node != want {
			t.Errorf("Take() = %v, want %v", item.Node, want)
		}
	}
	if _, ok := s.Take(); ok {
		t.Errorf("expected Take on an empty LIFOStack to report false")
	}
}

// TestPriorityQueue_OrdersByPriority checks that PriorityQueue.Take
// returns the lowest-priority item first, regardless of offer order.
func TestPriorityQueue_OrdersByPriority(t *testing.T) {
	priority := func(item WorkItem[label, label, label, label]) int {
		sn := item.Node.(StateNode[label, label, label])
		return int(sn.State[0])
	}
	q := NewPriorityQueue[label, label, label, label](priority)
	q.Offer(workItem(2)) // C
	q.Offer(workItem(0)) // A
	q.Offer(workItem(1)) // B

	var order []label
	for !q.IsEmpty() {
		item, ok := q.Take()
		if !ok {
			t.Fatalf("expected Take to succeed while queue reports nonempty")
		}
		order = append(order, item.Node.(StateNode[label, label, label]).State)
	}
	want := []label{"A", "B", "C"}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("PriorityQueue order = %v, want %v", order, want)
			break
		}
	}
}

// TestPriorityQueue_EmptyTake checks Take's reported-false behavior on an
// empty PriorityQueue, matching FIFOQueue/LIFOStack.
func TestPriorityQueue_EmptyTake(t *testing.T) {
	q := NewPriorityQueue[label, label, label, label](func(WorkItem[label, label, label, label]) int { return 0 })
	if !q.IsEmpty() {
		t.Fatalf("expected a new PriorityQueue to be empty")
	}
	if _, ok := q.Take(); ok {
		t.Errorf("expected Take on an empty PriorityQueue to report false")
	}
}
