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

// Seq is a lazy sequence of T: a push-style generator that calls yield
// once per element, stopping early if yield returns false. Every
// operation spec.md §4.C/§4.A describes as returning "a lazy sequence"
// (the graph's index lookups, the dynamic pop handler's alternatives) is
// realized as a Seq rather than a materialized []T, so that a handler
// backed by an expensive or unbounded generator is never forced to
// enumerate more than the engine actually consumes.
//
// This plays the role the teacher's analysis/functional.Optional[T]
// plays for single values, generalized to zero-or-more: a function value
// rather than an interface, since go.mod targets go1.21 and range-over-func
// iterators are a go1.23 language feature.
type Seq[T any] func(yield func(T) bool)

// SeqOf returns a Seq that yields exactly the elements of items, in
// order. Convenience for handlers and tests that already have a slice.
func SeqOf[T any](items ...T) Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range items {
			if !yield(x) {
				return
			}
		}
	}
}

// Collect materializes a Seq into a slice. Used where the engine (or a
// caller) genuinely needs every element, e.g. to sort query results.
func Collect[T any](s Seq[T]) []T {
	if s == nil {
		return nil
	}
	var out []T
	s(func(x T) bool {
		out = append(out, x)
		return true
	})
	return out
}

// ForEach calls f on every element of s, stopping early if f returns
// false.
func ForEach[T any](s Seq[T], f func(T) bool) {
	if s == nil {
		return
	}
	s(f)
}
