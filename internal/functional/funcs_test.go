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

func TestFirstSecond(t *testing.T) {
	if First(1, 2) != 1 {
		t.Errorf("First(1, 2) != 1")
	}
	if Second(1, 2) != 2 {
		t.Errorf("Second(1, 2) != 2")
	}
}

func TestCompose(t *testing.T) {
	double := func(x int) int { return x * 2 }
	toString := func(x int) string {
		if x == 6 {
			return "six"
		}
		return "other"
	}
	h := Compose(double, toString)
	if got := h(3); got != "six" {
		t.Errorf("Compose(double, toString)(3) = %q, want %q", got, "six")
	}
}

func TestCurry2(t *testing.T) {
	add := func(x, y int) int { return x + y }
	addFive := Curry2(add, 5)
	if got := addFive(3); got != 8 {
		t.Errorf("Curry2(add, 5)(3) = %d, want 8", got)
	}
}

func TestSeq(t *testing.T) {
	got := Collect(SeqOf(1, 2, 3))
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Collect(SeqOf(1,2,3)) = %v, want %v", got, want)
			break
		}
	}
	if Collect[int](nil) != nil {
		t.Errorf("Collect(nil) should be nil")
	}
}
