// Entry point: run a single game
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
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"go-trains"
	"go-trains/conf"
	"go-trains/referee"
	"go-trains/strategies"
	"go-trains/transport"
)

func main() {
	bots := flag.String("bots", "buy-now,hold-10,cheat,always-draw",
		"Comma-separated list of built-in strategies to seat after any remote participants")
	remote := flag.Int("remote", 0,
		"Number of remote participants to wait for over the configured listen address before seating the bots")
	mapFile := flag.String("map", "", "Path to a JSON map file (built-in default map if empty)")

	flag.Parse()
	config := conf.Load()

	m, err := loadMap(*mapFile)
	if err != nil {
		log.Fatal(err)
	}

	participants, err := gatherParticipants(config, *remote, *bots)
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(seed(config.Seed)))
	var opts []referee.Option
	opts = append(opts, referee.WithRand(rng))
	if config.Deterministic {
		opts = append(opts, referee.WithDeterministicDestinations())
	}

	ref, err := referee.New(m, participants, opts...)
	if err != nil {
		log.Fatal(err)
	}

	result := ref.Play()

	for place, group := range result.Rankings {
		for _, rp := range group {
			config.Log.Printf("#%d %s (%d points)", place+1, rp.Name, rp.Score)
		}
	}
	for _, name := range result.Banned {
		config.Log.Printf("banned: %s", name)
	}
}

func seed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}

func loadMap(path string) (*trains.Map, error) {
	if path == "" {
		return trains.DefaultMap(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map file: %w", err)
	}
	defer f.Close()
	return transport.LoadMap(f)
}

// gatherParticipants waits for n remote participants (if n > 0) on the
// configured listen address, then seats every built-in strategy named
// in botsList after them. It fails if fewer than two are seated.
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
