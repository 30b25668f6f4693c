// Referee setup and turn loop
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
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go-trains"
	"go-trains/deck"
)

const (
	minParticipants = 2
	maxParticipants = 8

	// syntheticDeckSize is how many cards are generated when no deck
	// is supplied at construction.
	syntheticDeckSize = 250
)

// Referee runs a single game: it owns the canonical State and
// interrogates participants on their turns through the guarded-call
// boundary, applying only legal moves.
type Referee struct {
	state        *State
	participants []trains.Participant

	rng                       *rand.Rand
	suppliedDeck              *deck.Deck
	deterministicDestinations bool
}

// New builds a Referee for m and participants (2-8, in turn order).
// It fails, before any participant is contacted, if the map does not
// offer enough feasible destinations for the group.
func New(m *trains.Map, participants []trains.Participant, opts ...Option) (*Referee, error) {
	if len(participants) < minParticipants || len(participants) > maxParticipants {
		return nil, fmt.Errorf("referee: number of participants must be in [%d,%d], got %d",
			minParticipants, maxParticipants, len(participants))
	}

	r := &Referee{
		participants: participants,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(r)
	}

	n := len(participants)
	feasible := m.FeasibleDestinations()
	need := DestinationOptions + DestinationsPerParticipant*(n-1)
	if len(feasible) < need {
		return nil, fmt.Errorf("referee: not enough destinations: map offers %d, need %d",
			len(feasible), need)
	}

	var d *deck.Deck
	if r.suppliedDeck != nil {
		d = r.suppliedDeck.Clone()
	} else {
		d = deck.Random(syntheticDeckSize, r.rng)
	}

	states := make([]*ParticipantState, n)
	for i := range states {
		states[i] = newParticipantState()
	}
	r.state = &State{Map: m, Deck: d, Participants: states}

	r.setup(feasible)

	return r, nil
}

// setup runs the per-participant setup algorithm: deal a hand,
// announce it, then offer destination options and record the chosen
// pair, banning any participant that misbehaves along the way.
func (r *Referee) setup(feasible []trains.Destination) {
	s := r.state
	offered := append([]trains.Destination(nil), feasible...)

	for i, participant := range r.participants {
		ps := s.Participants[i]

		hand := s.GiveCards(InitialHandSize)
		for _, c := range hand {
			ps.Cards[c]++
		}

		if err := guardVoid(func() error {
			return participant.Setup(s.Map, InitialRails, hand)
		}); err != nil {
			r.banAtSetup(ps)
			continue
		}

		options := r.sampleDestinations(offered, DestinationOptions)
		notChosen, err := guard(func() ([]trains.Destination, error) {
			return participant.Pick(options)
		})
		if err != nil {
			r.banAtSetup(ps)
			continue
		}

		chosen, ok := chosenFrom(options, notChosen)
		if !ok || len(chosen) != DestinationsPerParticipant {
			r.banAtSetup(ps)
			continue
		}

		ps.Destinations = chosen
		offered = withoutDestinations(offered, chosen)
	}
}

// sampleDestinations picks k destinations from offered, either
// uniformly at random (the default) or, with
// WithDeterministicDestinations, the lexicographically smallest k.
func (r *Referee) sampleDestinations(offered []trains.Destination, k int) []trains.Destination {
	if len(offered) <= k {
		return append([]trains.Destination(nil), offered...)
	}

	if r.deterministicDestinations {
		sorted := append([]trains.Destination(nil), offered...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
		return sorted[:k]
	}

	perm := r.rng.Perm(len(offered))
	picked := make([]trains.Destination, k)
	for i := 0; i < k; i++ {
		picked[i] = offered[perm[i]]
	}
	return picked
}

func chosenFrom(options, notChosen []trains.Destination) (chosen []trains.Destination, ok bool) {
	inOptions := make(map[trains.Destination]bool, len(options))
	for _, o := range options {
		inOptions[o] = true
	}

	excluded := make(map[trains.Destination]bool, len(notChosen))
	for _, d := range notChosen {
		if !inOptions[d] {
			return nil, false
		}
		excluded[d] = true
	}

	for _, o := range options {
		if !excluded[o] {
			chosen = append(chosen, o)
		}
	}
	return chosen, true
}

func withoutDestinations(offered, chosen []trains.Destination) []trains.Destination {
	remove := make(map[trains.Destination]bool, len(chosen))
	for _, c := range chosen {
		remove[c] = true
	}

	var out []trains.Destination
	for _, d := range offered {
		if !remove[d] {
			out = append(out, d)
		}
	}
	return out
}

// banAtSetup marks a participant banned before play begins: it never
// gets a turn and is excluded from scoring and notification.
func (r *Referee) banAtSetup(ps *ParticipantState) {
	ps.Banned = true
	ps.Destinations = nil
}

// boot marks a participant banned during play and resets its state:
// no owned connections (which, since Free is derived, immediately
// makes them free again), an empty hand, and rails pinned at the
// sentinel value that cannot trigger last-turn.
func (r *Referee) boot(ps *ParticipantState) {
	ps.Owned = make(map[trains.Connection]struct{})
	ps.Cards = make(map[trains.Color]int)
	ps.Rails = MinRailsNotLastTurn
	ps.Destinations = nil
	ps.Banned = true
}

// Result is what Play returns once the game has terminated.
type Result struct {
	Rankings [][]RankedParticipant
	Banned   []string
}

// Play runs the turn loop until termination, then scores and ranks
// the game and notifies every non-banned participant of the outcome.
func (r *Referee) Play() Result {
	s := r.state
	n := len(s.Participants)

	tookLastTurn := make(map[int]bool, n)
	noChange := 0

	for !r.terminated(tookLastTurn, noChange) {
		active := s.Turn
		ps := s.Active()

		if ps.Banned {
			s.AdvanceTurn()
			continue
		}

		view := s.Project(active)
		move, err := guard(func() (trains.Move, error) {
			return r.participants[active].Play(view)
		})
		if err != nil {
			r.boot(ps)
			s.AdvanceTurn()
			continue
		}

		changed, err := Apply(s, move, ps, r.participants[active])
		if err != nil {
			// Either ErrCheating (an illegal move was returned) or a
			// panic/error raised from within More's guarded call:
			// both are misbehavior, and both boot.
			r.boot(ps)
			s.AdvanceTurn()
			continue
		}

		if changed {
			noChange = 0
		} else {
			noChange++
		}

		// Checked after the move is applied, so the participant whose
		// own acquisition drops their rails below the threshold is
		// marked on that very turn, and everyone else gets exactly one
		// more.
		if s.IsLastTurn() {
			tookLastTurn[active] = true
		}

		s.AdvanceTurn()
	}

	return r.finish()
}

// terminated implements the three termination conditions, recomputed
// fresh against the current state each turn.
func (r *Referee) terminated(tookLastTurn map[int]bool, noChange int) bool {
	s := r.state

	nonBanned := 0
	everyoneTookLast := true
	for i, p := range s.Participants {
		if p.Banned {
			continue
		}
		nonBanned++
		if !tookLastTurn[i] {
			everyoneTookLast = false
		}
	}

	if nonBanned == 0 {
		return true
	}
	if everyoneTookLast {
		return true
	}
	if noChange == nonBanned {
		return true
	}
	return false
}

func (r *Referee) finish() Result {
	s := r.state
	groups := Rank(s, r.participants)

	if len(groups) > 0 {
		winners := make(map[int]bool, len(groups[0]))
		for _, rp := range groups[0] {
			winners[rp.Index] = true
		}
		for i, p := range s.Participants {
			if p.Banned {
				continue
			}
			i, won := i, winners[i]
			if err := guardVoid(func() error { return r.participants[i].Win(won) }); err != nil {
				// Too late to affect this game's rankings, but the
				// misbehavior is still recorded for the tournament.
				r.boot(p)
			}
		}
	}

	var banned []string
	for i, p := range s.Participants {
		if p.Banned {
			banned = append(banned, r.participants[i].Name())
		}
	}

	return Result{Rankings: groups, Banned: banned}
}

// State exposes the Referee's canonical state, mainly for tests and
// for a tournament Manager that wants to inspect a finished game.
func (r *Referee) State() *State {
	return r.state
}
