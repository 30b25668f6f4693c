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

package graph

import "testing"

func TestLongestPath(t *testing.T) {
	tests := []struct {
		name  string
		edges []Edge
		want  uint
	}{
		{
			name:  "empty",
			edges: nil,
			want:  0,
		},
		{
			name:  "single edge",
			edges: []Edge{{A: "a", B: "b", Weight: 3}},
			want:  3,
		},
		{
			name: "straight line sums every edge",
			edges: []Edge{
				{A: "a", B: "b", Weight: 2},
				{A: "b", B: "c", Weight: 5},
				{A: "c", B: "d", Weight: 1},
			},
			want: 8,
		},
		{
			name: "triangle picks the two heaviest sides, not a cycle",
			edges: []Edge{
				{A: "a", B: "b", Weight: 1},
				{A: "b", B: "c", Weight: 2},
				{A: "a", B: "c", Weight: 10},
			},
			want: 12,
		},
		{
			name: "branching picks the longer branch",
			edges: []Edge{
				{A: "hub", B: "short", Weight: 1},
				{A: "hub", B: "long1", Weight: 4},
				{A: "long1", B: "long2", Weight: 4},
			},
			want: 9,
		},
		{
			name: "disconnected components keep the larger",
			edges: []Edge{
				{A: "a", B: "b", Weight: 2},
				{A: "x", B: "y", Weight: 9},
			},
			want: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestPath(tt.edges); got != tt.want {
				t.Errorf("LongestPath() = %d, want %d", got, tt.want)
			}
		})
	}
}
