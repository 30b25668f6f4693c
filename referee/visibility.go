// Visibility projection
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

import "go-trains"

// Project builds the View handed to the participant at index who,
// exposing their own state and the other participants' owned
// connections rotated so the next participant to play appears first.
// Banned participants still occupy a slot in the rotation (as
// inert placeholders), since opponent order must preserve relative
// turn order.
func (s *State) Project(who int) *trains.View {
	p := s.Participants[who]

	hand := make(map[trains.Color]int, len(p.Cards))
	for c, n := range p.Cards {
		hand[c] = n
	}

	var dests [2]trains.Destination
	copy(dests[:], p.Destinations)

	n := len(s.Participants)
	opponents := make([][]trains.Connection, 0, n-1)
	for i := 1; i < n; i++ {
		idx := (who + i) % n
		opponents = append(opponents, s.Participants[idx].OwnedConnections())
	}

	return &trains.View{
		Owned:        p.OwnedConnections(),
		Hand:         hand,
		Rails:        p.Rails,
		Destinations: dests,
		Opponents:    opponents,
	}
}
