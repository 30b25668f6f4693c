// Scoring and ranking
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

package referee

import (
	"sort"

	"go-trains"
	"go-trains/graph"
)

const (
	destinationBonusPoints  = 10
	destinationPenaltyPoint = 10
	longestPathBonusPoints  = 20
)

func segmentPoints(p *ParticipantState) int {
	total := 0
	for c := range p.Owned {
		total += int(c.Length)
	}
	return total
}

// connected reports whether a and b are joined by a path through owned
// (a small union-find scoped to one participant's owned connections).
func connected(owned map[trains.Connection]struct{}, a, b string) bool {
	if a == b {
		return true
	}

	parent := make(map[string]string)
	var find func(string) string
	find = func(x string) string {
		if _, ok := parent[x]; !ok {
			parent[x] = x
		}
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y string) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}

	for c := range owned {
		union(c.A.Name, c.B.Name)
	}

	if _, ok := parent[a]; !ok {
		return false
	}
	if _, ok := parent[b]; !ok {
		return false
	}
	return find(a) == find(b)
}

func destinationBonus(p *ParticipantState) int {
	bonus := 0
	for _, d := range p.Destinations {
		if connected(p.Owned, d.A.Name, d.B.Name) {
			bonus += destinationBonusPoints
		} else {
			bonus -= destinationPenaltyPoint
		}
	}
	return bonus
}

func longestPath(p *ParticipantState) uint {
	edges := make([]graph.Edge, 0, len(p.Owned))
	for c := range p.Owned {
		edges = append(edges, graph.Edge{A: c.A.Name, B: c.B.Name, Weight: c.Length})
	}
	return graph.LongestPath(edges)
}

// RankedParticipant is one non-banned participant's final standing.
type RankedParticipant struct {
	Index int
	Name  string
	Score int
}

// Rank computes segment points, destination bonus and the longest-path
// bonus for every non-banned participant, then groups participants by
// total score, orders groups by score descending, and orders within a
// group by name ascending. Banned participants are excluded
// entirely, matching "not notified" and "excluded from scoring."
func Rank(s *State, participants []trains.Participant) [][]RankedParticipant {
	type scored struct {
		index int
		base  int
		path  uint
	}

	var entries []scored
	var maxPath uint
	for i, p := range s.Participants {
		if p.Banned {
			continue
		}
		lp := longestPath(p)
		if lp > maxPath {
			maxPath = lp
		}
		entries = append(entries, scored{
			index: i,
			base:  segmentPoints(p) + destinationBonus(p),
			path:  lp,
		})
	}

	ranked := make([]RankedParticipant, 0, len(entries))
	for _, e := range entries {
		total := e.base
		if e.path == maxPath {
			total += longestPathBonusPoints
		}
		ranked = append(ranked, RankedParticipant{
			Index: e.index,
			Name:  participants[e.index].Name(),
			Score: total,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})

	var groups [][]RankedParticipant
	for _, r := range ranked {
		if len(groups) == 0 || groups[len(groups)-1][0].Score != r.Score {
			groups = append(groups, []RankedParticipant{r})
		} else {
			groups[len(groups)-1] = append(groups[len(groups)-1], r)
		}
	}
	return groups
}
