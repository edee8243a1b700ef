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

package graphutil

import (
	"sort"

	"github.com/yourbasic/graph"
)

// FindAllElementaryCycles finds all elementary cycles in v, using Donald
// B. Johnson's algorithm presented in "Finding All The Elementary
// Circuits of a Directed Graph", 1975. Each returned cycle is a sequence
// of node ids, closing back on its first element.
//
// This is the int64-id, adjacency-map shape of the algorithm; it is
// unchanged by the move from wrapping a *callgraph.Graph to wrapping a
// reachability.Graph's closure edges, since it only ever consults
// v.Keys/v.Edges and github.com/yourbasic/graph.StrongComponents.
func FindAllElementaryCycles(v View) [][]int64 {
	s := &circuitState{
		blocked: map[int64]bool{},
		blist:   map[int64]map[int64]bool{},
		stack:   []int64{},
		cycles:  [][]int64{},
	}
	nodeid := 0
	for nodeid < len(v.Keys) {
		fg := Subgraph(v, v.Keys[nodeid:])
		components := graph.StrongComponents(fg)
		least, found := int64(0), false
		for _, component := range components {
			if len(component) >= 2 || fg.Edges[int64(component[0])][int64(component[0])] {
				sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
				if !found || int64(component[0]) < least {
					least, found = int64(component[0]), true
				}
			}
		}
		if !found {
			return s.cycles
		}
		s.stack = []int64{}
		s.blocked = map[int64]bool{}
		s.blist = map[int64]map[int64]bool{}
		s.circuit(least, least, fg)
		nodeid = sort.Search(len(v.Keys), func(i int) bool { return v.Keys[i] > least })
	}
	return s.cycles
}

type circuitState struct {
	blocked map[int64]bool
	blist   map[int64]map[int64]bool
	stack   []int64
	cycles  [][]int64
}

func (s *circuitState) unblock(u int64) {
	s.blocked[u] = false
	for w := range s.blist[u] {
		if s.blocked[w] {
			s.unblock(w)
		}
	}
}

func (s *circuitState) circuit(v int64, i int64, g View) bool {
	f := false
	s.stack = append(s.stack, v)
	s.blocked[v] = true
	for w := range g.Edges[v] {
		if w == i {
			stackCopy := make([]int64, len(s.stack))
			copy(stackCopy, s.stack)
			stackCopy = append(stackCopy, w)
			s.cycles = append(s.cycles, stackCopy)
			f = true
		} else if !s.blocked[w] {
			if s.circuit(w, i, g) {
				f = true
			}
		}
	}

	if f {
		s.unblock(v)
	} else {
		for w := range g.Edges[v] {
			m := s.blist[w]
			if m != nil {
				s.blist[w][v] = true
			} else {
				s.blist[w] = map[int64]bool{v: true}
			}
		}
	}
	s.stack = s.stack[:len(s.stack)-1]
	return f
}
