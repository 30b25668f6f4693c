// Domain model shared by the referee and the manager
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

// Package trains holds the value types and the untrusted-code interface
// shared by the referee and manager: cities, connections, destinations,
// maps, moves and the per-participant projection. It carries no control
// flow of its own.
package trains

import (
	"io"
	"log"
)

// Debug is silent unless a caller redirects its output (see conf.Conf.Debug).
var Debug = log.New(io.Discard, "[debug] ", log.Ltime|log.Lshortfile|log.Lmicroseconds)

// Color is one of the four rail-car colors.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	White
)

// Colors lists every playable color, in wire-format order.
var Colors = [...]Color{Red, Blue, Green, White}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case White:
		return "white"
	default:
		panic("unknown color")
	}
}

