// Reference participant strategies
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

// Package strategies provides a handful of in-process trains.Participant
// implementations, useful as opponents in tests and as a baseline to
// measure real participants against.
package strategies

import (
	"sort"

	"go-trains"
)

// Base handles the tournament- and setup-level calls the same way for
// every strategy here: remember the map, keep the first two
// offered destinations, never object to a win or loss.
type Base struct {
	name string
	m    *trains.Map
}

func (b *Base) Name() string { return b.name }

func (b *Base) Setup(m *trains.Map, rails int, hand []trains.Color) error {
	b.m = m
	return nil
}

// Pick keeps the first two offered destinations, returning the rest
// as not chosen.
func (b *Base) Pick(offered []trains.Destination) ([]trains.Destination, error) {
	if len(offered) <= 2 {
		return nil, nil
	}
	return append([]trains.Destination(nil), offered[2:]...), nil
}

func (b *Base) More(cards []trains.Color) error { return nil }
func (b *Base) Win(won bool) error              { return nil }
func (b *Base) Start() (*trains.Map, error)     { return nil, nil }
func (b *Base) End(won bool) error              { return nil }

// AlwaysDraw never attempts to acquire anything.
type AlwaysDraw struct{ Base }

func NewAlwaysDraw(name string) *AlwaysDraw {
	return &AlwaysDraw{Base{name: name}}
}

func (a *AlwaysDraw) Play(view *trains.View) (trains.Move, error) {
	return trains.DrawCards{}, nil
}

// BuyNow always attempts to acquire a connection, preferring the
// lexicographically smallest one it can afford, and only draws cards
// when none is affordable.
type BuyNow struct{ Base }

func NewBuyNow(name string) *BuyNow {
	return &BuyNow{Base{name: name}}
}

func (b *BuyNow) Play(view *trains.View) (trains.Move, error) {
	if c, ok := b.selectConnection(view); ok {
		return trains.AcquireConnection{Connection: c}, nil
	}
	return trains.DrawCards{}, nil
}

func (b *BuyNow) selectConnection(view *trains.View) (trains.Connection, bool) {
	owned := make(map[trains.Connection]bool)
	for _, c := range view.Owned {
		owned[c] = true
	}
	for _, opp := range view.Opponents {
		for _, c := range opp {
			owned[c] = true
		}
	}

	var free []trains.Connection
	for _, c := range b.m.Connections {
		if !owned[c] {
			free = append(free, c)
		}
	}
	sort.Slice(free, func(i, j int) bool { return free[i].Less(free[j]) })

	for _, c := range free {
		length := int(c.Length)
		if view.Rails >= length && view.Hand[c.Color] >= length {
			return c, true
		}
	}
	return trains.Connection{}, false
}

// Hold10 draws cards until it holds more than ten, then falls back to
// BuyNow's selection.
type Hold10 struct{ BuyNow }

func NewHold10(name string) *Hold10 {
	return &Hold10{BuyNow{Base{name: name}}}
}

func (h *Hold10) Play(view *trains.View) (trains.Move, error) {
	total := 0
	for _, n := range view.Hand {
		total += n
	}
	if total <= 10 {
		return trains.DrawCards{}, nil
	}
	return h.BuyNow.Play(view)
}

// Cheat behaves like BuyNow, except that on its very first turn it
// tries to acquire a connection between two cities that exist on no
// map, which the referee must reject as illegal.
type Cheat struct {
	BuyNow
	firstTurn bool
}

func NewCheat(name string) *Cheat {
	return &Cheat{BuyNow: BuyNow{Base{name: name}}, firstTurn: true}
}

func (c *Cheat) Play(view *trains.View) (trains.Move, error) {
	if c.firstTurn {
		c.firstTurn = false
		bogus := trains.NewConnection(
			trains.City{Name: "Asgard", X: -5, Y: -5},
			trains.City{Name: "Hades", X: -1, Y: -1},
			trains.Blue, 5)
		return trains.AcquireConnection{Connection: bogus}, nil
	}
	return c.BuyNow.Play(view)
}
