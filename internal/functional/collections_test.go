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

package functional

import "testing"

func TestMerge(t *testing.T) {
	a := map[string]int{"x": 1, "y": 2}
	b := map[string]int{"y": 10, "z": 3}
	Merge(a, b, func(x, y int) int { return x + y })

	want := map[string]int{"x": 1, "y": 12, "z": 3}
	if len(a) != len(want) {
		t.Fatalf("Merge result = %v, want %v", a, want)
	}
	for k, v := range want {
		if a[k] != v {
			t.Errorf("Merge result[%q] = %d, want %d", k, a[k], v)
		}
	}
}

func TestUnion(t *testing.T) {
	a := map[int]bool{1: true}
	b := map[int]bool{2: true, 3: true}
	got := Union(a, b)
	for _, k := range []int{1, 2, 3} {
		if !got[k] {
			t.Errorf("Union result missing key %d", k)
		}
	}
}

func TestMap(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(x int) int { return x * x })
	want := []int{1, 4, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Map() = %v, want %v", got, want)
			break
		}
	}
}

func TestExists(t *testing.T) {
	if !Exists([]int{1, 2, 3}, func(x int) bool { return x == 2 }) {
		t.Errorf("expected Exists to find 2")
	}
	if Exists([]int{1, 2, 3}, func(x int) bool { return x == 5 }) {
		t.Errorf("expected Exists not to find 5")
	}
}

func TestFindMap(t *testing.T) {
	type pair struct {
		name string
		n    int
	}
	items := []pair{{"a", 1}, {"b", 2}, {"c", 3}}

	found := FindMap(items, func(p pair) pair { return p }, func(p pair) bool { return p.name == "b" })
	if found.IsNone() {
		t.Fatalf("expected to find %q", "b")
	}
	if found.Value().n != 2 {
		t.Errorf("FindMap found %v, want n=2", found.Value())
	}

	if FindMap(items, func(p pair) pair { return p }, func(p pair) bool { return p.name == "z" }).IsSome() {
		t.Errorf("expected no match for %q", "z")
	}
}

func TestContains(t *testing.T) {
	if !Contains([]string{"a", "b", "c"}, "b") {
		t.Errorf("expected Contains to find %q", "b")
	}
	if Contains([]string{"a", "b", "c"}, "z") {
		t.Errorf("expected Contains not to find %q", "z")
	}
}

func TestSetToOrderedSlice(t *testing.T) {
	set := map[int]bool{3: true, 1: true, 2: true, 4: false}
	got := SetToOrderedSlice(set)
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("SetToOrderedSlice() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SetToOrderedSlice() = %v, want %v", got, want)
			break
		}
	}
}

func TestReverse(t *testing.T) {
	s := []int{1, 2, 3, 4}
	Reverse(s)
	want := []int{4, 3, 2, 1}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("Reverse() = %v, want %v", s, want)
			break
		}
	}
}
