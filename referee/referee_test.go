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
	"testing"

	"go-trains"
	"go-trains/deck"
	"go-trains/strategies"
)

func smallMap(t *testing.T) *trains.Map {
	t.Helper()

	var cities []trains.City
	for _, n := range []string{"A", "B", "C", "D", "E", "F"} {
		cities = append(cities, trains.City{Name: n})
	}
	conns := []trains.Connection{
		trains.NewConnection(cities[0], cities[1], trains.Red, 3),
		trains.NewConnection(cities[1], cities[2], trains.Blue, 3),
		trains.NewConnection(cities[2], cities[3], trains.Green, 3),
		trains.NewConnection(cities[3], cities[4], trains.White, 4),
		trains.NewConnection(cities[4], cities[5], trains.Red, 3),
		trains.NewConnection(cities[0], cities[5], trains.Blue, 5),
		trains.NewConnection(cities[0], cities[3], trains.Green, 4),
	}
	m, err := trains.NewMap(cities, conns, 100, 100)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}
	return m
}

// badSetup always fails Setup, which must get it banned before it is
// ever dealt into the turn order.
type badSetup struct{ strategies.AlwaysDraw }

func (b *badSetup) Setup(m *trains.Map, rails int, hand []trains.Color) error {
	return fmt.Errorf("refusing to play")
}

func TestBanAtSetupExcludesFromPlay(t *testing.T) {
	m := smallMap(t)
	participants := []trains.Participant{
		&badSetup{*strategies.NewAlwaysDraw("bad")},
		strategies.NewAlwaysDraw("good"),
	}

	ref, err := New(m, participants, WithDeterministicDestinations(), WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if !ref.state.Participants[0].Banned {
		t.Fatal("participant with a failing Setup was not banned")
	}
	if ref.state.Participants[1].Banned {
		t.Fatal("well-behaved participant was banned")
	}

	result := ref.Play()
	if len(result.Banned) != 1 || result.Banned[0] != "bad" {
		t.Errorf("Result.Banned = %v, want [bad]", result.Banned)
	}
}

func TestNewRejectsInsufficientDestinations(t *testing.T) {
	a := trains.City{Name: "A"}
	b := trains.City{Name: "B"}
	m, err := trains.NewMap([]trains.City{a, b}, []trains.Connection{
		trains.NewConnection(a, b, trains.Red, 3),
	}, 100, 100)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	participants := []trains.Participant{
		strategies.NewAlwaysDraw("one"),
		strategies.NewAlwaysDraw("two"),
	}
	if _, err := New(m, participants); err == nil {
		t.Error("New accepted a map with only one feasible destination")
	}
}

func TestCheaterBootedOnFirstMove(t *testing.T) {
	m := smallMap(t)
	participants := []trains.Participant{
		strategies.NewCheat("cheater"),
		strategies.NewBuyNow("honest"),
	}

	ref, err := New(m, participants, WithDeterministicDestinations(), WithRand(rand.New(rand.NewSource(2))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := ref.Play()

	found := false
	for _, name := range result.Banned {
		if name == "cheater" {
			found = true
		}
	}
	if !found {
		t.Errorf("Result.Banned = %v, want it to include cheater", result.Banned)
	}
}

func TestBuyNowOutscoresAlwaysDraw(t *testing.T) {
	m := smallMap(t)
	participants := []trains.Participant{
		strategies.NewBuyNow("buyer"),
		strategies.NewAlwaysDraw("drawer"),
	}

	ref, err := New(m, participants,
		WithDeterministicDestinations(),
		WithRand(rand.New(rand.NewSource(3))),
		WithDeck(allColorDeck()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := ref.Play()
	if len(result.Rankings) == 0 {
		t.Fatal("Play produced no rankings")
	}
	if result.Rankings[0][0].Name != "buyer" {
		t.Errorf("expected buyer to win outright, got rankings %v", result.Rankings)
	}
}

func TestPlayIsDeterministicGivenTheSameInputs(t *testing.T) {
	m := smallMap(t)
	run := func() Result {
		participants := []trains.Participant{
			strategies.NewBuyNow("buyer"),
			strategies.NewHold10("holder"),
			strategies.NewAlwaysDraw("drawer"),
		}
		ref, err := New(m, participants,
			WithDeterministicDestinations(),
			WithRand(rand.New(rand.NewSource(7))),
			WithDeck(allColorDeck()))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		return ref.Play()
	}

	a := run()
	b := run()

	if len(a.Rankings) != len(b.Rankings) {
		t.Fatalf("ranking group counts differ: %d vs %d", len(a.Rankings), len(b.Rankings))
	}
	for i := range a.Rankings {
		if len(a.Rankings[i]) != len(b.Rankings[i]) {
			t.Fatalf("group %d sizes differ", i)
		}
		for j := range a.Rankings[i] {
			if a.Rankings[i][j] != b.Rankings[i][j] {
				t.Errorf("group %d entry %d differs: %v vs %v", i, j, a.Rankings[i][j], b.Rankings[i][j])
			}
		}
	}
}

func TestTwoDrawersTieWithNoAcquisitions(t *testing.T) {
	var cities []trains.City
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		cities = append(cities, trains.City{Name: n})
	}
	conns := []trains.Connection{
		trains.NewConnection(cities[0], cities[1], trains.Red, 3),
		trains.NewConnection(cities[1], cities[2], trains.Red, 3),
		trains.NewConnection(cities[2], cities[3], trains.Red, 3),
		trains.NewConnection(cities[3], cities[4], trains.Red, 3),
		trains.NewConnection(cities[0], cities[4], trains.Red, 3),
	}
	m, err := trains.NewMap(cities, conns, 100, 100)
	if err != nil {
		t.Fatalf("NewMap: %v", err)
	}

	reds := make([]trains.Color, 12)
	for i := range reds {
		reds[i] = trains.Red
	}

	participants := []trains.Participant{
		strategies.NewAlwaysDraw("bob"),
		strategies.NewAlwaysDraw("alice"),
	}
	ref, err := New(m, participants,
		WithDeterministicDestinations(),
		WithRand(rand.New(rand.NewSource(4))),
		WithDeck(deck.New(reds)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result := ref.Play()
	if len(result.Banned) != 0 {
		t.Errorf("Result.Banned = %v, want none", result.Banned)
	}
	if len(result.Rankings) != 1 || len(result.Rankings[0]) != 2 {
		t.Fatalf("Rankings = %v, want one group of two", result.Rankings)
	}
	if result.Rankings[0][0].Name != "alice" || result.Rankings[0][1].Name != "bob" {
		t.Errorf("tied group not ordered by name: %v", result.Rankings[0])
	}
}

func TestFreeAndOwnedPartitionTheMap(t *testing.T) {
	m := smallMap(t)
	participants := []trains.Participant{
		strategies.NewBuyNow("buyer"),
		strategies.NewHold10("holder"),
	}

	ref, err := New(m, participants,
		WithDeterministicDestinations(),
		WithRand(rand.New(rand.NewSource(5))),
		WithDeck(allColorDeck()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ref.Play()

	s := ref.State()
	seen := make(map[trains.Connection]int)
	for _, c := range s.Free() {
		seen[c]++
	}
	for i, p := range s.Participants {
		for c := range p.Owned {
			if seen[c] > 0 {
				t.Errorf("connection %v owned by participant %d is also free", c, i)
			}
			seen[c]++
		}
	}

	for _, c := range m.Connections {
		if seen[c] != 1 {
			t.Errorf("connection %v appears %d times across free and owned sets, want 1", c, seen[c])
		}
	}
}

// allColorDeck is a deep, evenly mixed deck so a buy-now-style
// participant is never starved of a color it needs.
func allColorDeck() *deck.Deck {
	var cards []trains.Color
	for i := 0; i < 50; i++ {
		cards = append(cards, trains.Colors[:]...)
	}
	return deck.New(cards)
}
