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

	"gonum.org/v1/gonum/graph"
)

// View is an abstraction over an integer-id adjacency map, generalized
// from the teacher's CGraph (which wrapped a *callgraph.Graph keyed by
// callgraph node id) to wrap any labeled graph a caller has already
// reduced to int64 ids -- here, a reachability.Graph's closure edges. It
// implements github.com/yourbasic/graph's Iterator interface (Order/
// Visit) and gonum.org/v1/gonum/graph's Graph interface (Node/Nodes/
// From/HasEdgeBetween/Edge).
type View struct {
	order int

	// Labels maps a node id to its pretty-printed label, carried through
	// for diagnostic output (e.g. printing an elementary cycle).
	Labels map[int64]string

	// Keys are all the node ids, kept sorted for deterministic
	// iteration (FindAllElementaryCycles relies on this order).
	Keys []int64

	// Edges is an adjacency matrix: Edges[u][v] means there is a
	// directed arc from u to v.
	Edges map[int64]map[int64]bool

	// EdgeStyles optionally carries a Graphviz style fragment per arc
	// (e.g. "[color=blue]"), keyed the same way as Edges. Nil or a
	// missing entry means no style. Carried through so a caller that
	// color-codes by the source edge's kind (reachability/render) doesn't
	// need its own generic walk over the typed graph.
	EdgeStyles map[int64]map[int64]string
}

// NewView builds a View from a label map and an adjacency map.
func NewView(labels map[int64]string, edges map[int64]map[int64]bool) View {
	return NewStyledView(labels, edges, nil)
}

// NewStyledView builds a View from a label map, an adjacency map, and an
// optional per-arc style map.
func NewStyledView(labels map[int64]string, edges map[int64]map[int64]bool, styles map[int64]map[int64]string) View {
	keys := make([]int64, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return View{order: len(keys), Labels: labels, Keys: keys, Edges: edges, EdgeStyles: styles}
}

// Subgraph returns a new View restricted to the nodes in include. Only
// edges with both endpoints in include are kept. Order, in yourbasic/
// graph's sense, is the original's order, not len(include): the vertex
// numbering Johnson's algorithm walks is always over the full Keys set,
// consistent with the original CGraph.Subgraph.
func Subgraph(original View, include []int64) View {
	labels := make(map[int64]string, len(include))
	edges := make(map[int64]map[int64]bool, len(include))
	keys := make([]int64, len(include))
	inIncluded := make(map[int64]bool, len(include))
	for i, id := range include {
		keys[i] = id
		labels[id] = original.Labels[id]
		inIncluded[id] = true
	}
	for _, id := range include {
		edges[id] = make(map[int64]bool)
		for w := range original.Edges[id] {
			if inIncluded[w] {
				edges[id][w] = true
			}
		}
	}
	return View{order: original.order, Labels: labels, Keys: keys, Edges: edges}
}

// Order implements github.com/yourbasic/graph's Iterator interface.
func (v View) Order() int {
	return v.order
}

// Visit implements github.com/yourbasic/graph's Iterator interface.
func (v View) Visit(u int, do func(w int, c int64) (skip bool)) (aborted bool) {
	if _, ok := v.Labels[int64(u)]; !ok {
		return false
	}
	for w := range v.Edges[int64(u)] {
		if do(int(w), 1) {
			return true
		}
	}
	return false
}

// Node implements gonum.org/v1/gonum/graph's Graph interface.
func (v View) Node(id int64) graph.Node {
	if _, ok := v.Labels[id]; !ok {
		return nil
	}
	return vertex{id: id, label: v.Labels[id]}
}

// Nodes implements gonum.org/v1/gonum/graph's Graph interface.
func (v View) Nodes() graph.Nodes {
	return &vertexIterator{view: v, ids: append([]int64(nil), v.Keys...), cur: -1}
}

// From implements gonum.org/v1/gonum/graph's Graph interface.
func (v View) From(id int64) graph.Nodes {
	var ids []int64
	for w := range v.Edges[id] {
		ids = append(ids, w)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return &vertexIterator{view: v, ids: ids, cur: -1}
}

// HasEdgeBetween implements gonum.org/v1/gonum/graph's Graph interface.
func (v View) HasEdgeBetween(xid, yid int64) bool {
	return v.Edges[xid][yid] || v.Edges[yid][xid]
}

// Edge implements gonum.org/v1/gonum/graph's Graph interface.
func (v View) Edge(uid, vid int64) graph.Edge {
	if v.Edges[uid][vid] {
		return arc{from: v.Node(uid), to: v.Node(vid)}
	}
	return nil
}

// vertex implements gonum.org/v1/gonum/graph.Node.
type vertex struct {
	id    int64
	label string
}

func (n vertex) ID() int64     { return n.id }
func (n vertex) String() string { return n.label }

// vertexIterator implements gonum.org/v1/gonum/graph.Nodes.
type vertexIterator struct {
	view View
	ids  []int64
	cur  int
}

func (it *vertexIterator) Next() bool {
	if it.cur < len(it.ids)-1 {
		it.cur++
		return true
	}
	return false
}

func (it *vertexIterator) Len() int { return len(it.ids) }

func (it *vertexIterator) Reset() { it.cur = -1 }

func (it *vertexIterator) Node() graph.Node {
	return it.view.Node(it.ids[it.cur])
}

// arc implements gonum.org/v1/gonum/graph.Edge.
type arc struct {
	from, to graph.Node
}

func (e arc) From() graph.Node         { return e.from }
func (e arc) To() graph.Node           { return e.to }
func (e arc) ReversedEdge() graph.Edge { return arc{from: e.to, to: e.from} }
