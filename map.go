// Map, City, Connection and Destination model
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

package trains

import (
	"fmt"
)

// City is a named point on the board, within a Map's bounding box.
type City struct {
	Name string
	X, Y int
}

func (c City) String() string { return c.Name }

// orderCities returns a, b sorted so that the lexicographically
// smaller name comes first, matching the canonical order used
// throughout the rules.
func orderCities(a, b City) (City, City) {
	if a.Name > b.Name {
		return b, a
	}
	return a, b
}

// Connection is an unordered pair of distinct cities, a color and a
// length. Connections are value-equal on (city-pair, color, length);
// the two cities are stored in canonical order so Go's == operator
// implements that equality directly.
type Connection struct {
	A, B   City
	Color  Color
	Length uint
}

// NewConnection builds a Connection with its cities in canonical order.
func NewConnection(a, b City, color Color, length uint) Connection {
	a, b = orderCities(a, b)
	return Connection{A: a, B: b, Color: color, Length: length}
}

func (c Connection) String() string {
	return fmt.Sprintf("%s-%s(%s,%d)", c.A.Name, c.B.Name, c.Color, c.Length)
}

// Less implements the canonical total order: smaller city name, then
// the other city name, then length, then color name.
func (c Connection) Less(o Connection) bool {
	if c.A.Name != o.A.Name {
		return c.A.Name < o.A.Name
	}
	if c.B.Name != o.B.Name {
		return c.B.Name < o.B.Name
	}
	if c.Length != o.Length {
		return c.Length < o.Length
	}
	return c.Color.String() < o.Color.String()
}

// Destination is an unordered pair of distinct cities, ordered by
// smaller-city-name then other-city-name.
type Destination struct {
	A, B City
}

// NewDestination builds a Destination with its cities in canonical order.
func NewDestination(a, b City) Destination {
	a, b = orderCities(a, b)
	return Destination{A: a, B: b}
}

func (d Destination) String() string {
	return fmt.Sprintf("%s-%s", d.A.Name, d.B.Name)
}

func (d Destination) Less(o Destination) bool {
	if d.A.Name != o.A.Name {
		return d.A.Name < o.A.Name
	}
	return d.B.Name < o.B.Name
}

// Map is the immutable game geography: a set of cities, the
// connections between them, and a display bounding box.
type Map struct {
	Cities      map[string]City
	Connections []Connection
	Width       int
	Height      int
}

// NewMap validates and builds a Map. It fails if the bounding box is
// out of [10,800]x[10,800], if any connection has a length other than
// 3, 4 or 5, or if any connection references a city that is not in the
// city set.
func NewMap(cities []City, connections []Connection, width, height int) (*Map, error) {
	if width < 10 || width > 800 || height < 10 || height > 800 {
		return nil, fmt.Errorf("trains: map dimensions %dx%d out of [10,800]", width, height)
	}

	byName := make(map[string]City, len(cities))
	for _, c := range cities {
		byName[c.Name] = c
	}

	for _, conn := range connections {
		if conn.Length < 3 || conn.Length > 5 {
			return nil, fmt.Errorf("trains: connection %v has length %d, want 3, 4 or 5", conn, conn.Length)
		}
		if _, ok := byName[conn.A.Name]; !ok {
			return nil, fmt.Errorf("trains: connection references unknown city %q", conn.A.Name)
		}
		if _, ok := byName[conn.B.Name]; !ok {
			return nil, fmt.Errorf("trains: connection references unknown city %q", conn.B.Name)
		}
	}

	return &Map{
		Cities:      byName,
		Connections: append([]Connection(nil), connections...),
		Width:       width,
		Height:      height,
	}, nil
}

// adjacency builds an undirected adjacency list over city names from
// a slice of connections, irrespective of ownership.
func adjacency(connections []Connection) map[string][]string {
	adj := make(map[string][]string)
	for _, conn := range connections {
		adj[conn.A.Name] = append(adj[conn.A.Name], conn.B.Name)
		adj[conn.B.Name] = append(adj[conn.B.Name], conn.A.Name)
	}
	return adj
}

// FeasibleDestinations returns every unordered pair of distinct cities
// joined by some path along the Map's connections.
func (m *Map) FeasibleDestinations() []Destination {
	adj := adjacency(m.Connections)

	// Union-find over city names is sufficient, since we only need
	// connectivity, not the path itself.
	parent := make(map[string]string, len(m.Cities))
	for name := range m.Cities {
		parent[name] = name
	}
	var find func(string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for city, neighbors := range adj {
		for _, n := range neighbors {
			union(city, n)
		}
	}

	groups := make(map[string][]City)
	for name, city := range m.Cities {
		root := find(name)
		groups[root] = append(groups[root], city)
	}

	var out []Destination
	for _, group := range groups {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				out = append(out, NewDestination(group[i], group[j]))
			}
		}
	}
	return out
}
