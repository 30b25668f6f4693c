// Entry point: run a knock-out tournament
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

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"go-trains"
	"go-trains/conf"
	"go-trains/deck"
	"go-trains/manager"
	"go-trains/referee"
	"go-trains/strategies"
	"go-trains/transport"
)

func main() {
	bots := flag.String("bots", "buy-now,buy-now,hold-10,hold-10,cheat,always-draw",
		"Comma-separated list of built-in strategies to seed the tournament with")
	remote := flag.Int("remote", 0,
		"Number of remote participants to wait for before seeding with bots")

	flag.Parse()
	config := conf.Load()

	// A nil default map makes the manager fall back to the built-in
	// process-wide one.
	var defaultMap *trains.Map
	if config.DefaultMap != "" {
		f, err := os.Open(config.DefaultMap)
		if err != nil {
			log.Fatal(err)
		}
		defaultMap, err = transport.LoadMap(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	participants, err := gatherParticipants(config, *remote, *bots)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(seed(config.Seed)))

	var refOpts []referee.Option
	if config.Deterministic {
		refOpts = append(refOpts, referee.WithDeterministicDestinations())
	}

	opts := []manager.Option{
		manager.WithRand(rng),
		manager.WithRefereeOptions(refOpts...),
		manager.WithConcurrency(config.Concurrency),
	}
	if config.DeckSize > 0 {
		opts = append(opts, manager.WithDeck(deck.Random(int(config.DeckSize), rng)))
	}

	m, err := manager.New(participants, defaultMap, opts...)
	if err != nil {
		log.Fatal(err)
	}

	winners, banned, err := m.Run(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range winners {
		config.Log.Printf("winner: %s", w.Name())
	}
	for _, b := range banned {
		config.Log.Printf("banned: %s", b.Name())
	}
}

func seed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

func gatherParticipants(config *conf.Conf, n int, botsList string) ([]trains.Participant, error) {
	var participants []trains.Participant

	if n > 0 {
		incoming, err := transport.Listen(config.Address, config.Timeout)
		if err != nil {
			return nil, err
		}
		config.Log.Printf("waiting for %d remote participant(s) on %s", n, config.Address)
		for i := 0; i < n; i++ {
			participants = append(participants, <-incoming)
		}
	}

	for _, kind := range strings.Split(botsList, ",") {
		kind = strings.TrimSpace(kind)
		if kind == "" {
			continue
		}
		name := fmt.Sprintf("%s-%d", kind, len(participants)+1)
		switch kind {
		case "buy-now":
			participants = append(participants, strategies.NewBuyNow(name))
		case "hold-10":
			participants = append(participants, strategies.NewHold10(name))
		case "cheat":
			participants = append(participants, strategies.NewCheat(name))
		case "always-draw":
			participants = append(participants, strategies.NewAlwaysDraw(name))
		default:
			return nil, fmt.Errorf("unknown bot strategy %q", kind)
		}
	}

	if len(participants) < 2 {
		return nil, fmt.Errorf("need at least 2 participants, got %d", len(participants))
	}
	return participants, nil
}
