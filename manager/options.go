// Manager construction options
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
	"math/rand"

	"go-trains/deck"
	"go-trains/referee"
)

// Option configures a Manager at construction time.
type Option func(*Manager)

// WithDeck supplies the deck every game of the tournament is dealt
// from (cloned per game by the referee), for reproducible tournaments.
func WithDeck(d *deck.Deck) Option {
	return func(m *Manager) { m.sharedDeck = d }
}

// WithRand supplies the tournament's random source. Every game's
// referee is given its own source derived from this one, so a seeded
// tournament replays identically.
func WithRand(rng *rand.Rand) Option {
	return func(m *Manager) { m.rng = rng }
}

// WithRefereeOptions adds extra options applied to every game's
// referee, e.g. referee.WithDeterministicDestinations for tests.
func WithRefereeOptions(opts ...referee.Option) Option {
	return func(m *Manager) { m.refereeOpts = append(m.refereeOpts, opts...) }
}

// WithConcurrency caps how many games run at once within a round.
// Zero (the default) means unlimited, one game per active group.
func WithConcurrency(n int) Option {
	return func(m *Manager) { m.concurrency = n }
}
