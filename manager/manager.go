// Package manager runs a knock-out tournament of games over a shared
// pool of participants: an opening ceremony that picks the tournament
// map, successive rounds that group active participants into games
// and eliminate everyone but each game's winners, and a closing
// ceremony that notifies who is still in.
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

package manager

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go-trains"
	"go-trains/deck"
	"go-trains/referee"
)

const minTournamentParticipants = MinPlayersInAGame

// Manager runs a knock-out tournament over a fixed pool of
// participants, in the order they were registered.
type Manager struct {
	order  []trains.Participant
	active map[trains.Participant]bool

	eliminated []trains.Participant
	banned     []trains.Participant

	tournamentMap *trains.Map
	defaultMap    *trains.Map

	rng         *rand.Rand
	sharedDeck  *deck.Deck
	refereeOpts []referee.Option
	concurrency int
}

// New builds a Manager for participants (at least 2, in registration
// order), falling back to defaultMap if no suggestion passes the
// destination-sufficiency check. A nil defaultMap selects the
// process-wide trains.DefaultMap.
func New(participants []trains.Participant, defaultMap *trains.Map, opts ...Option) (*Manager, error) {
	if len(participants) < minTournamentParticipants {
		return nil, fmt.Errorf("manager: need at least %d participants, got %d",
			minTournamentParticipants, len(participants))
	}
	if defaultMap == nil {
		defaultMap = trains.DefaultMap()
	}

	m := &Manager{
		order:      append([]trains.Participant(nil), participants...),
		active:     make(map[trains.Participant]bool, len(participants)),
		defaultMap: defaultMap,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, p := range participants {
		m.active[p] = true
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// activeOrdered returns the currently active participants, in their
// original tournament-wide order.
func (m *Manager) activeOrdered() []trains.Participant {
	var out []trains.Participant
	for _, p := range m.order {
		if m.active[p] {
			out = append(out, p)
		}
	}
	return out
}

// openingCeremony collects map suggestions, banning any participant
// whose Start call panics or errors, then chooses the tournament map:
// the first suggestion that offers enough feasible destinations for
// the active group (capped at MaxPlayersInAGame), or defaultMap.
func (m *Manager) openingCeremony() {
	var suggestions []*trains.Map
	for _, p := range m.order {
		suggestion, err := guard(p.Start)
		if err != nil {
			delete(m.active, p)
			m.banned = append(m.banned, p)
			continue
		}
		if suggestion != nil {
			suggestions = append(suggestions, suggestion)
		}
	}

	need := sufficiencyCount(len(m.activeOrdered()))

	chosen := m.defaultMap
	for _, s := range suggestions {
		if len(s.FeasibleDestinations()) >= need {
			chosen = s
			break
		}
	}
	m.tournamentMap = chosen
}

// playRound runs every group's game, eliminating everyone who isn't in
// the winning rank of their own game and banning anyone the referee
// itself banned. Groups run concurrently; each game gets its own
// random source derived sequentially from the tournament's, so a
// seeded tournament stays reproducible regardless of scheduling.
func (m *Manager) playRound(ctx context.Context, groups [][]trains.Participant) error {
	g, _ := errgroup.WithContext(ctx)
	if m.concurrency > 0 {
		g.SetLimit(m.concurrency)
	}

	var mu sync.Mutex

	for _, group := range groups {
		group := group

		opts := append([]referee.Option(nil), m.refereeOpts...)
		opts = append(opts, referee.WithRand(rand.New(rand.NewSource(m.rng.Int63()))))
		if m.sharedDeck != nil {
			opts = append(opts, referee.WithDeck(m.sharedDeck.Clone()))
		}

		g.Go(func() error {
			ref, err := referee.New(m.tournamentMap, group, opts...)
			if err != nil {
				// The tournament map passed the sufficiency check and
				// every group is within bounds, so this is an engine
				// invariant violation, not participant misbehavior.
				return fmt.Errorf("manager: building referee: %w", err)
			}

			result := ref.Play()

			winners := make(map[int]bool)
			if len(result.Rankings) > 0 {
				for _, rp := range result.Rankings[0] {
					winners[rp.Index] = true
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for i, p := range group {
				state := ref.State().Participants[i]
				switch {
				case state.Banned:
					delete(m.active, p)
					m.banned = append(m.banned, p)
				case winners[i]:
					// stays active
				default:
					delete(m.active, p)
					m.eliminated = append(m.eliminated, p)
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// closingCeremony notifies every still-active participant of their win
// and every eliminated one of their loss. Banned participants are not
// notified. A panicking or erroring End call bans the participant,
// though by this point that has no further effect on the tournament's
// outcome beyond being recorded.
func (m *Manager) closingCeremony() {
	for _, p := range m.activeOrdered() {
		p := p
		if err := guardVoid(func() error { return p.End(true) }); err != nil {
			m.banned = append(m.banned, p)
		}
	}
	for _, p := range m.eliminated {
		p := p
		if err := guardVoid(func() error { return p.End(false) }); err != nil {
			m.banned = append(m.banned, p)
		}
	}
}

// Run executes the full tournament: opening ceremony, successive
// rounds until termination, and closing ceremony. It returns the
// participants still active when the tournament ended (the winners)
// and the full list of banned participants.
func (m *Manager) Run(ctx context.Context) (winners []trains.Participant, banned []trains.Participant, err error) {
	m.openingCeremony()

	// prev holds the active count the previous round ended with; the
	// sentinel keeps the very first round from reading as a stall, so
	// "no one is losing any more" always means two rounds in a row.
	prev := -1
	for len(m.activeOrdered()) >= MinPlayersInAGame {
		groups := partitionGroups(m.activeOrdered())

		if err := m.playRound(ctx, groups); err != nil {
			return nil, nil, err
		}

		count := len(m.activeOrdered())
		if count == prev || len(groups) <= 1 {
			break
		}
		prev = count
	}

	m.closingCeremony()

	return m.activeOrdered(), m.banned, nil
}
