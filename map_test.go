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

import "testing"

func TestNewConnectionCanonicalOrder(t *testing.T) {
	a := City{Name: "Boston"}
	b := City{Name: "Albany"}

	c1 := NewConnection(a, b, Red, 3)
	c2 := NewConnection(b, a, Red, 3)

	if c1 != c2 {
		t.Fatalf("NewConnection(a,b) != NewConnection(b,a): %v vs %v", c1, c2)
	}
	if c1.A.Name != "Albany" || c1.B.Name != "Boston" {
		t.Errorf("cities not canonically ordered: got A=%s B=%s", c1.A.Name, c1.B.Name)
	}
}

func TestNewMapRejectsBadDimensions(t *testing.T) {
	cities := []City{{Name: "A"}, {Name: "B"}}
	conns := []Connection{NewConnection(cities[0], cities[1], Red, 3)}

	if _, err := NewMap(cities, conns, 5, 100); err == nil {
		t.Error("NewMap accepted a width below the minimum")
	}
	if _, err := NewMap(cities, conns, 100, 900); err == nil {
		t.Error("NewMap accepted a height above the maximum")
	}
	if _, err := NewMap(cities, conns, 100, 100); err != nil {
		t.Errorf("NewMap rejected valid dimensions: %v", err)
	}
}

func TestNewMapRejectsBadLength(t *testing.T) {
	cities := []City{{Name: "A"}, {Name: "B"}}
	for _, length := range []uint{0, 1, 2, 6} {
		conns := []Connection{NewConnection(cities[0], cities[1], Red, length)}
		if _, err := NewMap(cities, conns, 100, 100); err == nil {
			t.Errorf("NewMap accepted a connection of length %d", length)
		}
	}
}

func TestNewMapRejectsUnknownCity(t *testing.T) {
	a := City{Name: "A"}
	b := City{Name: "B"}
	stray := City{Name: "Nowhere"}

	conns := []Connection{NewConnection(a, stray, Red, 3)}
	if _, err := NewMap([]City{a, b}, conns, 100, 100); err == nil {
		t.Error("NewMap accepted a connection referencing an unlisted city")
	}
}

func TestFeasibleDestinationsRespectsComponents(t *testing.T) {
	a := City{Name: "A"}
	b := City{Name: "B"}
	c := City{Name: "C"}
	isolated := City{Name: "Isolated"}

	conns := []Connection{
		NewConnection(a, b, Red, 3),
		NewConnection(b, c, Blue, 4),
	}
	m, err := NewMap([]City{a, b, c, isolated}, conns, 100, 100)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	dests := m.FeasibleDestinations()
	want := map[Destination]bool{
		NewDestination(a, b): true,
		NewDestination(b, c): true,
		NewDestination(a, c): true,
	}
	if len(dests) != len(want) {
		t.Fatalf("FeasibleDestinations() returned %d destinations, want %d", len(dests), len(want))
	}
	for _, d := range dests {
		if !want[d] {
			t.Errorf("unexpected destination %v", d)
		}
		if d.A.Name == "Isolated" || d.B.Name == "Isolated" {
			t.Errorf("isolated city appeared in a feasible destination: %v", d)
		}
	}
}
