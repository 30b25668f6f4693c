// Referee Game State
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

// Package referee owns the canonical truth of one game: the per-
// participant state, the deck, the turn index, and the rules that
// decide which moves are legal, how they are applied, and when the
// game is over. It is the trusted kernel that interrogates untrusted
// Participant implementations and isolates their misbehavior.
package referee

import (
	"sort"

	"go-trains"
	"go-trains/deck"
)

// Rule constants fixed by the game's rules.
const (
	InitialRails               = 45
	InitialHandSize            = 4
	CardsOnDraw                = 2
	DestinationOptions         = 5
	DestinationsPerParticipant = 2
	MinRailsNotLastTurn        = 3
)

// ParticipantState is the canonical per-participant record. It is
// created once at Referee construction and mutated only by the
// Referee; the rest of the engine only ever sees projections of it
// (see View in the root package).
type ParticipantState struct {
	Owned        map[trains.Connection]struct{}
	Cards        map[trains.Color]int
	Rails        int
	Destinations []trains.Destination
	Banned       bool
}

func newParticipantState() *ParticipantState {
	return &ParticipantState{
		Owned: make(map[trains.Connection]struct{}),
		Cards: make(map[trains.Color]int),
		Rails: InitialRails,
	}
}

// OwnedConnections returns the participant's owned connections as a
// sorted slice, for deterministic serialization and display.
func (p *ParticipantState) OwnedConnections() []trains.Connection {
	out := make([]trains.Connection, 0, len(p.Owned))
	for c := range p.Owned {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// State is the canonical truth for one game: the Map, the Deck, the
// participant vector in turn order, and the current turn index. Free
// connections are derived, not stored.
type State struct {
	Map          *trains.Map
	Deck         *deck.Deck
	Participants []*ParticipantState
	Turn         int
}

// Free returns every Map connection not owned by any participant.
func (s *State) Free() []trains.Connection {
	owned := make(map[trains.Connection]struct{})
	for _, p := range s.Participants {
		for c := range p.Owned {
			owned[c] = struct{}{}
		}
	}

	var free []trains.Connection
	for _, c := range s.Map.Connections {
		if _, taken := owned[c]; !taken {
			free = append(free, c)
		}
	}
	return free
}

func isFree(s *State, c trains.Connection) bool {
	for _, f := range s.Free() {
		if f == c {
			return true
		}
	}
	return false
}

// CurrentTurn returns the index of the participant whose turn it is.
func (s *State) CurrentTurn() int {
	return s.Turn
}

// AdvanceTurn moves to the next participant in turn order, wrapping
// around. Free connections are always derived, so there is nothing
// further to recompute.
func (s *State) AdvanceTurn() {
	s.Turn = (s.Turn + 1) % len(s.Participants)
}

// Active returns the participant state whose turn it currently is.
func (s *State) Active() *ParticipantState {
	return s.Participants[s.Turn]
}

// Legal reports whether m is a legal move for p against the current
// state. DrawCards is always legal; AcquireConnection requires the
// connection to be free and p to have enough rails and cards.
func Legal(s *State, m trains.Move, p *ParticipantState) bool {
	switch mv := m.(type) {
	case trains.DrawCards:
		return true
	case trains.AcquireConnection:
		if !isFree(s, mv.Connection) {
			return false
		}
		length := int(mv.Connection.Length)
		return p.Rails >= length && p.Cards[mv.Connection.Color] >= length
	default:
		return false
	}
}

// VerifyLegalForActive delegates Legal to the active participant.
func (s *State) VerifyLegalForActive(c trains.Connection) bool {
	return Legal(s, trains.AcquireConnection{Connection: c}, s.Active())
}

// AcquirableBy returns every free connection that is legal for p to
// acquire right now.
func (s *State) AcquirableBy(p *ParticipantState) []trains.Connection {
	var out []trains.Connection
	for _, c := range s.Free() {
		if Legal(s, trains.AcquireConnection{Connection: c}, p) {
			out = append(out, c)
		}
	}
	return out
}

// IsLastTurn is true iff any participant's rails have dropped below
// MinRailsNotLastTurn. A booted participant's rails are reset to
// exactly MinRailsNotLastTurn, so it can never trigger this.
func (s *State) IsLastTurn() bool {
	for _, p := range s.Participants {
		if p.Rails < MinRailsNotLastTurn {
			return true
		}
	}
	return false
}

// GiveCards draws n cards from the deck.
func (s *State) GiveCards(n int) []trains.Color {
	return s.Deck.Draw(n)
}
