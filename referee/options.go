// Referee construction options
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
	"math/rand"

	"go-trains/deck"
)

// Option configures a Referee at construction time.
type Option func(*Referee)

// WithDeck supplies a pre-built deck, for deterministic play. The
// referee clones it on intake, so the caller's copy is unaffected.
func WithDeck(d *deck.Deck) Option {
	return func(r *Referee) { r.suppliedDeck = d }
}

// WithRand supplies the random source used both for deck synthesis
// (when no deck is given) and destination sampling, for reproducible
// runs.
func WithRand(rng *rand.Rand) Option {
	return func(r *Referee) { r.rng = rng }
}

// WithDeterministicDestinations makes destination-option sampling
// deterministic: the referee offers the lexicographically smallest K
// feasible destinations instead of sampling uniformly at random, the
// basis for reproducible tournament runs.
func WithDeterministicDestinations() Option {
	return func(r *Referee) { r.deterministicDestinations = true }
}
