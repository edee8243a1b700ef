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

// Package graphutil provides generic graph algorithms used to diagnose
// a reachability.Graph's closure: a toposorted strongly-connected
// components computation that works directly over any comparable node
// type, and a View adapter that exposes an integer-id adjacency map as
// both a gonum.org/v1/gonum/graph.Graph and a github.com/yourbasic/graph
// iterator for the heavier Johnson's-algorithm elementary cycle
// enumeration.
package graphutil
