// Participant interface and visibility projection
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

// Participant is the capability set untrusted game- and tournament-level
// code is polymorphic over. Every method may panic or return an error;
// the referee and manager funnel every call through a single guarded-call
// boundary (referee.guard / manager.guard) that treats a panic exactly
// like a returned error.
type Participant interface {
	// Name is infallible, used for rankings and logging.
	Name() string

	// Setup announces the map, the initial rail count and the dealt
	// hand. No return value is expected.
	Setup(m *Map, rails int, hand []Color) error
	// Pick receives the offered destination options and returns the
	// subset the participant did NOT choose.
	Pick(offered []Destination) ([]Destination, error)
	// Play is asked once per turn for a Move.
	Play(view *View) (Move, error)
	// More delivers newly drawn cards, invoked from inside a DrawCards
	// application.
	More(cards []Color) error
	// Win is called once per game with the win/lose flag.
	Win(won bool) error

	// Start is called once per tournament and returns a map suggestion.
	Start() (*Map, error)
	// End is called once per tournament with the win/lose flag.
	End(won bool) error
}

// View is the sanitized per-participant projection the referee hands to
// Participant.Play: the receiver's own state, plus an ordered list of
// opponents' owned connections rotated so the next-to-play opponent is
// first.
type View struct {
	Owned        []Connection
	Hand         map[Color]int
	Rails        int
	Destinations [2]Destination

	// Opponents lists the other participants' owned-connection sets,
	// in turn order starting with the next participant to play after
	// the receiver.
	Opponents [][]Connection
}
