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

// Seq is a lazy sequence of T, the same push-style generator shape as
// reachability.Seq: a standalone copy rather than a shared import, so
// this package does not depend on the engine package.
type Seq[T any] func(yield func(T) bool)

// SeqOf returns a Seq that yields exactly the elements of items, in order.
func SeqOf[T any](items ...T) Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range items {
			if !yield(x) {
				return
			}
		}
	}
}

// Collect materializes a Seq into a slice.
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
