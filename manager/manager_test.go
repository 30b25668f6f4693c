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
	"testing"

	"go-trains"
	"go-trains/deck"
	"go-trains/referee"
	"go-trains/strategies"
)

type dummy struct{ strategies.AlwaysDraw }

func newDummy(name string) trains.Participant {
	return &dummy{*strategies.NewAlwaysDraw(name)}
}

func TestPartitionGroupsBacktracksWhenLastGroupTooSmall(t *testing.T) {
	var nine []trains.Participant
	for i := 0; i < 9; i++ {
		nine = append(nine, newDummy(fmt.Sprintf("p%d", i)))
	}

	groups := partitionGroups(nine)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if len(groups[0]) != 7 || len(groups[1]) != 2 {
		t.Errorf("group sizes = [%d %d], want [7 2]", len(groups[0]), len(groups[1]))
	}
}

func TestPartitionGroupsEvenSplitNeedsNoBacktrack(t *testing.T) {
	var sixteen []trains.Participant
	for i := 0; i < 16; i++ {
		sixteen = append(sixteen, newDummy(fmt.Sprintf("p%d", i)))
	}

	groups := partitionGroups(sixteen)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	for _, g := range groups {
		if len(g) != MaxPlayersInAGame {
			t.Errorf("group size = %d, want %d", len(g), MaxPlayersInAGame)
		}
	}
}

func TestSufficiencyCountCapsAtMaxPlayers(t *testing.T) {
	capped := sufficiencyCount(MaxPlayersInAGame + 5)
	atMax := sufficiencyCount(MaxPlayersInAGame)
	if capped != atMax {
		t.Errorf("sufficiencyCount(%d) = %d, want it capped to sufficiencyCount(%d) = %d",
			MaxPlayersInAGame+5, capped, MaxPlayersInAGame, atMax)
	}
}

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

func fullDeck() *deck.Deck {
	var cards []trains.Color
	for i := 0; i < 80; i++ {
		cards = append(cards, trains.Colors[:]...)
	}
	return deck.New(cards)
}

func TestRunEliminatesLosersAndKeepsTheWinner(t *testing.T) {
	m := smallMap(t)
	participants := []trains.Participant{
		strategies.NewBuyNow("buyer"),
		newDummy("drawer-1"),
		newDummy("drawer-2"),
		newDummy("drawer-3"),
	}

	mgr, err := New(participants, m,
		WithRand(rand.New(rand.NewSource(11))),
		WithDeck(fullDeck()),
		WithRefereeOptions(referee.WithDeterministicDestinations()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	winners, banned, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(banned) != 0 {
		t.Errorf("unexpected bans: %v", banned)
	}
	if len(winners) != 1 || winners[0].Name() != "buyer" {
		var names []string
		for _, w := range winners {
			names = append(names, w.Name())
		}
		t.Errorf("winners = %v, want [buyer]", names)
	}
}

func TestRunStopsAfterTwoRoundsWithoutEliminations(t *testing.T) {
	var drawers []trains.Participant
	for i := 0; i < 10; i++ {
		drawers = append(drawers, newDummy(fmt.Sprintf("drawer-%d", i)))
	}

	// Every game of perpetual drawers ends in a full tie, so no round
	// ever eliminates anyone and the stall rule has to end the
	// tournament with everyone still standing. The built-in default
	// map offers enough destinations for a full eight-player game.
	mgr, err := New(drawers, nil,
		WithRand(rand.New(rand.NewSource(23))),
		WithDeck(fullDeck()),
		WithRefereeOptions(referee.WithDeterministicDestinations()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	winners, banned, err := mgr.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(banned) != 0 {
		t.Errorf("unexpected bans: %v", banned)
	}
	if len(winners) != len(drawers) {
		t.Errorf("got %d winners, want all %d participants", len(winners), len(drawers))
	}
}

func TestNewRejectsTooFewParticipants(t *testing.T) {
	if _, err := New([]trains.Participant{newDummy("solo")}, nil); err == nil {
		t.Error("New accepted a single participant")
	}
}
