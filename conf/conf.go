// Configuration specification
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

// Package conf loads and holds the configuration shared by the
// referee and tournament command-line entry points: a TOML file,
// overridable with flags.
package conf

import (
	"flag"
	"log"
	"time"

	"go-trains"
)

// Internal representation, close to the TOML file's own shape.
type conf struct {
	Debug bool `toml:"debug"`
	Game  struct {
		Seed          int64 `toml:"seed"`
		DeckSize      uint  `toml:"deck_size"`
		Deterministic bool  `toml:"deterministic"`
	} `toml:"game"`
	Tournament struct {
		Concurrency uint   `toml:"concurrency"`
		DefaultMap  string `toml:"default_map"`
	} `toml:"tournament"`
	Transport struct {
		Address string `toml:"address"`
		Timeout uint   `toml:"timeout"`
	} `toml:"transport"`
}

// Conf is the public configuration object passed down into the
// referee, manager and transport packages.
type Conf struct {
	Log   *log.Logger
	Debug *log.Logger

	Seed          int64 // 0 means "seed from the current time"
	DeckSize      uint
	Deterministic bool // deterministic destination sampling, for tests

	Concurrency int    // 0 means unlimited, one game per active group
	DefaultMap  string // path to the fallback tournament map

	Address string        // transport listen address, "host:port"
	Timeout time.Duration // per-call timeout for remote participants
}

// Configuration object used by default. The debug logger is the root
// package's, so enabling -debug turns on debug output everywhere.
var defaultConfig = Conf{
	Log:   log.Default(),
	Debug: trains.Debug,

	DeckSize:      250,
	Deterministic: false,

	Concurrency: 0,
	DefaultMap:  "",

	Address: ":9294",
	Timeout: 30 * time.Second,
}

func init() {
	flag.Int64Var(&defaultConfig.Seed, "seed", defaultConfig.Seed,
		"Seed for the random source (0 picks one from the current time)")
	flag.UintVar(&defaultConfig.DeckSize, "deck-size", defaultConfig.DeckSize,
		"Number of cards in a synthesized deck")
	flag.BoolVar(&defaultConfig.Deterministic, "deterministic-destinations", defaultConfig.Deterministic,
		"Offer the lexicographically smallest destinations instead of sampling at random")
	flag.IntVar(&defaultConfig.Concurrency, "concurrency", defaultConfig.Concurrency,
		"Maximum number of games to run concurrently within a round (0 for unlimited)")
	flag.StringVar(&defaultConfig.DefaultMap, "default-map", defaultConfig.DefaultMap,
		"Path to the map used when no participant's suggestion is sufficient")
	flag.StringVar(&defaultConfig.Address, "address", defaultConfig.Address,
		"Listen address for remote participant connections")
	flag.BoolVar(&debug, "debug", debug, "Enable debug output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}
