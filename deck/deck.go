// Deck of colored cards
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

// Package deck implements the ordered sequence of colored cards dealt
// to participants, drawn from one end. The deck is opaque to
// participants: they only ever see the cards the referee hands them,
// never its remaining contents or order.
package deck

import (
	"math/rand"

	"go-trains"
)

// Deck is an ordered sequence of colors; Draw removes from the top.
type Deck struct {
	cards []trains.Color
}

// New wraps an existing, ordered sequence of colors, cloning it so the
// caller's slice is unaffected by subsequent draws.
func New(cards []trains.Color) *Deck {
	return &Deck{cards: append([]trains.Color(nil), cards...)}
}

// Random builds a deck of n cards chosen uniformly at random from the
// four colors, drawn from rng, so the same seed yields the same deck.
func Random(n int, rng *rand.Rand) *Deck {
	cards := make([]trains.Color, n)
	for i := range cards {
		cards[i] = trains.Colors[rng.Intn(len(trains.Colors))]
	}
	return &Deck{cards: cards}
}

// Len reports the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Draw removes and returns up to n colors from the top of the deck. It
// never fails: if fewer than n cards remain, it returns however many
// are left (possibly zero).
func (d *Deck) Draw(n int) []trains.Color {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	drawn := append([]trains.Color(nil), d.cards[:n]...)
	d.cards = d.cards[n:]
	return drawn
}

// Clone returns an independent copy of the deck, used by the referee
// to take ownership of a caller-supplied deck without aliasing it.
func (d *Deck) Clone() *Deck {
	return New(d.cards)
}
