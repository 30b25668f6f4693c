// Longest simple path in a small multigraph
//
// Copyright (c) 2021, 2022  Philip Kaludercic
//
// This file is part of go-trains.
//
// go-trains is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-trains is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-trains. If not, see
// <http://www.gnu.org/licenses/>

// Package graph computes the maximum-weight simple path over a small
// undirected multigraph, used by the referee to score the "longest
// continuous path" bonus. Connections are edges; parallel edges
// between the same two cities are permitted. Exhaustive DFS enumeration
// is acceptable given the practical sizes this engine operates on: a
// Map has at most a few dozen connections.
package graph

// Edge is one weighted, undirected connection between two named
// vertices. Multiple edges between the same pair are allowed.
type Edge struct {
	A, B   string
	Weight uint
}

// LongestPath returns the maximum, over every simple path (no repeated
// vertex) through edges, of the sum of edge weights. An empty edge set
// has longest path 0.
func LongestPath(edges []Edge) uint {
	adj := make(map[string][]Edge)
	vertices := make(map[string]struct{})
	for _, e := range edges {
		adj[e.A] = append(adj[e.A], e)
		adj[e.B] = append(adj[e.B], Edge{A: e.B, B: e.A, Weight: e.Weight})
		vertices[e.A] = struct{}{}
		vertices[e.B] = struct{}{}
	}

	var best uint
	visited := make(map[string]bool, len(vertices))

	var dfs func(at string, weight uint)
	dfs = func(at string, weight uint) {
		if weight > best {
			best = weight
		}
		for _, e := range adj[at] {
			if visited[e.B] {
				continue
			}
			visited[e.B] = true
			dfs(e.B, weight+e.Weight)
			visited[e.B] = false
		}
	}

	for v := range vertices {
		visited[v] = true
		dfs(v, 0)
		visited[v] = false
	}

	return best
}
