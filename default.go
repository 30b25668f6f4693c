// Built-in fallback map
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

import "sync"

var (
	defaultMapOnce sync.Once
	defaultMap     *Map
)

// DefaultMap returns the process-wide fallback map, built lazily on
// first use and shared for the lifetime of the process. It offers
// enough feasible destinations for a full game of eight and must be
// treated as immutable by every caller.
func DefaultMap() *Map {
	defaultMapOnce.Do(func() {
		cities := []City{
			{Name: "Boston", X: 780, Y: 100},
			{Name: "New York", X: 700, Y: 180},
			{Name: "Washington", X: 650, Y: 260},
			{Name: "Chicago", X: 400, Y: 150},
			{Name: "Atlanta", X: 550, Y: 400},
			{Name: "Miami", X: 650, Y: 600},
			{Name: "Dallas", X: 300, Y: 450},
			{Name: "Denver", X: 150, Y: 250},
			{Name: "Seattle", X: 60, Y: 30},
			{Name: "Los Angeles", X: 60, Y: 450},
		}
		connections := []Connection{
			NewConnection(cities[0], cities[1], Red, 3),
			NewConnection(cities[1], cities[2], Blue, 3),
			NewConnection(cities[2], cities[4], Green, 4),
			NewConnection(cities[4], cities[5], White, 3),
			NewConnection(cities[2], cities[3], Red, 4),
			NewConnection(cities[3], cities[7], Blue, 4),
			NewConnection(cities[7], cities[8], Green, 5),
			NewConnection(cities[7], cities[9], White, 4),
			NewConnection(cities[3], cities[6], Green, 3),
			NewConnection(cities[6], cities[9], Red, 5),
			NewConnection(cities[4], cities[6], White, 3),
			NewConnection(cities[8], cities[9], Blue, 5),
		}

		m, err := NewMap(cities, connections, 800, 600)
		if err != nil {
			// The literal above is fixed; failing to build it is a
			// programming error, not a runtime condition.
			panic(err)
		}
		defaultMap = m
	})
	return defaultMap
}
