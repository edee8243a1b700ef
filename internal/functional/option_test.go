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

func TestSome(t *testing.T) {
	o := Some(5)
	if !o.IsSome() || o.IsNone() {
		t.Fatalf("expected Some(5) to be some")
	}
	if o.Value() != 5 {
		t.Errorf("Value() = %d, want 5", o.Value())
	}
	if o.ValueOr(9) != 5 {
		t.Errorf("ValueOr(9) = %d, want 5", o.ValueOr(9))
	}
}

func TestNone(t *testing.T) {
	o := None[int]()
	if o.IsSome() || !o.IsNone() {
		t.Fatalf("expected None to be none")
	}
	if o.ValueOr(9) != 9 {
		t.Errorf("ValueOr(9) = %d, want 9", o.ValueOr(9))
	}
}

func TestNone_ValuePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected None[int]().Value() to panic")
		}
	}()
	None[int]().Value()
}

func TestMapOption(t *testing.T) {
	got := MapOption(Some(3), func(x int) int { return x * 2 })
	if got.IsNone() || got.Value() != 6 {
		t.Errorf("MapOption(Some(3), double) = %v, want Some(6)", got)
	}
	if MapOption(None[int](), func(x int) int { return x * 2 }).IsSome() {
		t.Errorf("MapOption(None, double) should stay none")
	}
}

func TestMaybeOr(t *testing.T) {
	if got := MaybeOr(Some(1), Some(2)); got.Value() != 1 {
		t.Errorf("MaybeOr(Some(1), Some(2)) = %v, want Some(1)", got)
	}
	if got := MaybeOr(None[int](), Some(2)); got.Value() != 2 {
		t.Errorf("MaybeOr(None, Some(2)) = %v, want Some(2)", got)
	}
	if MaybeOr(None[int](), None[int]()).IsSome() {
		t.Errorf("MaybeOr(None, None) should stay none")
	}
}

func TestBindOption(t *testing.T) {
	half := func(x int) Optional[int] {
		if x%2 != 0 {
			return None[int]()
		}
		return Some(x / 2)
	}
	if got := BindOption(Some(4), half); got.IsNone() || got.Value() != 2 {
		t.Errorf("BindOption(Some(4), half) = %v, want Some(2)", got)
	}
	if BindOption(Some(3), half).IsSome() {
		t.Errorf("BindOption(Some(3), half) should be none")
	}
	if BindOption(None[int](), half).IsSome() {
		t.Errorf("BindOption(None, half) should stay none")
	}
}
