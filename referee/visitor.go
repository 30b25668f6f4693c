// Move-Visitor: application
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
	"errors"

	"go-trains"
)

// ErrCheating is returned by Apply when a move that was handed to it
// turns out to be illegal. The caller must boot the participant.
var ErrCheating = errors.New("referee: illegal move")

// Apply mutates s on behalf of p according to m, and returns whether
// state actually changed. DrawCards moves up to CardsOnDraw cards from
// the deck to p's hand and notifies participant via More (going
// through the guarded-call boundary, so a panicking More boots the
// participant exactly like any other misbehavior); it "changed" iff at
// least one card moved. AcquireConnection requires m to already be
// Legal for p: if it is not, Apply signals ErrCheating instead of
// applying anything.
func Apply(s *State, m trains.Move, p *ParticipantState, participant trains.Participant) (changed bool, err error) {
	switch mv := m.(type) {
	case trains.DrawCards:
		drawn := s.GiveCards(CardsOnDraw)
		for _, c := range drawn {
			p.Cards[c]++
		}
		if len(drawn) == 0 {
			return false, nil
		}
		if err := guardVoid(func() error { return participant.More(drawn) }); err != nil {
			return true, err
		}
		return true, nil
	case trains.AcquireConnection:
		if !Legal(s, m, p) {
			return false, ErrCheating
		}
		p.Owned[mv.Connection] = struct{}{}
		p.Rails -= int(mv.Connection.Length)
		p.Cards[mv.Connection.Color] -= int(mv.Connection.Length)
		return true, nil
	default:
		return false, ErrCheating
	}
}
