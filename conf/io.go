// Configuration loading and dumping
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

package conf

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const defconf = "go-trains.toml"

var (
	debug bool   = false
	dump  bool   = false
	cfile string = defconf
)

// load parses a configuration from r into a fresh Conf, layered on
// top of defaultConfig.
func load(r io.Reader) (*Conf, error) {
	var data conf
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}

	c := defaultConfig

	// Flags given on the command line take precedence over the file.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if data.Debug {
		debug = true
	}
	if data.Game.Seed != 0 && !set["seed"] {
		c.Seed = data.Game.Seed
	}
	if data.Game.DeckSize != 0 && !set["deck-size"] {
		c.DeckSize = data.Game.DeckSize
	}
	if !set["deterministic-destinations"] {
		c.Deterministic = data.Game.Deterministic
	}
	if data.Tournament.Concurrency != 0 && !set["concurrency"] {
		c.Concurrency = int(data.Tournament.Concurrency)
	}
	if data.Tournament.DefaultMap != "" && !set["default-map"] {
		c.DefaultMap = data.Tournament.DefaultMap
	}
	if data.Transport.Address != "" && !set["address"] {
		c.Address = data.Transport.Address
	}
	if data.Transport.Timeout != 0 {
		c.Timeout = time.Duration(data.Transport.Timeout) * time.Millisecond
	}

	return &c, nil
}

// Load opens the configuration file named by -conf (if present) and
// applies command-line flag overrides, falling back to defaultConfig
// when no file exists.
func Load() (c *Conf) {
	file, err := os.Open(cfile)
	switch {
	case err == nil:
		defer file.Close()
		c, err = load(file)
		if err != nil {
			log.Print(err)
			c = &defaultConfig
		}
	case os.IsNotExist(err) && cfile == defconf:
		c = &defaultConfig
	default:
		log.Fatal(err)
	}

	if debug {
		c.Log.SetOutput(os.Stderr)
		c.Debug.SetOutput(os.Stderr)
	}

	if dump {
		if err := c.Dump(os.Stdout); err != nil {
			log.Fatalln("Failed to dump default configuration:", err)
		}
		os.Exit(0)
	}

	return c
}

// Dump serializes c back into TOML.
func (c *Conf) Dump(wr io.Writer) error {
	var data conf

	data.Debug = debug
	data.Game.Seed = c.Seed
	data.Game.DeckSize = c.DeckSize
	data.Game.Deterministic = c.Deterministic
	data.Tournament.Concurrency = uint(c.Concurrency)
	data.Tournament.DefaultMap = c.DefaultMap
	data.Transport.Address = c.Address
	data.Transport.Timeout = uint(c.Timeout / time.Millisecond)

	return toml.NewEncoder(wr).Encode(data)
}
