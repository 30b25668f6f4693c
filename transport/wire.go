// Wire encoding of the game's data types
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

// Package transport lets a Participant live in a separate process,
// proxying calls to it over a websocket connection. It is a thin shim
// over the Participant interface: everything that decides what is
// legal or who wins stays in the referee and manager packages.
//
// The JSON forms are the game's canonical external representations: a
// city is ["name", [x, y]], a connection ["city1", "city2", "color",
// length] with city names ascending, a destination ["city1", "city2"]
// ascending, and the draw move is the bare string "more cards".
package transport

import (
	"encoding/json"
	"fmt"
	"io"

	"go-trains"
)

// drawWire is the canonical serialization of the draw-cards move.
const drawWire = "more cards"

type wireCity struct {
	Name string
	X, Y int
}

func toWireCity(c trains.City) wireCity {
	return wireCity{Name: c.Name, X: c.X, Y: c.Y}
}

func (c wireCity) trains() trains.City {
	return trains.City{Name: c.Name, X: c.X, Y: c.Y}
}

// MarshalJSON encodes the city as ["name", [x, y]].
func (c wireCity) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{c.Name, [2]int{c.X, c.Y}})
}

func (c *wireCity) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("transport: city has %d elements, want 2", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Name); err != nil {
		return err
	}
	var pos [2]int
	if err := json.Unmarshal(raw[1], &pos); err != nil {
		return err
	}
	c.X, c.Y = pos[0], pos[1]
	return nil
}

type wireConnection struct {
	A      string
	B      string
	Color  string
	Length uint
}

func toWireConnection(c trains.Connection) wireConnection {
	return wireConnection{A: c.A.Name, B: c.B.Name, Color: c.Color.String(), Length: c.Length}
}

// trains rebuilds a Connection from its wire form. The reconstructed
// cities carry only their name, not display coordinates, since that's
// all a participant needs to reason about ownership and connectivity.
func (w wireConnection) trains() (trains.Connection, error) {
	color, err := colorFromWire(w.Color)
	if err != nil {
		return trains.Connection{}, err
	}
	return trains.NewConnection(trains.City{Name: w.A}, trains.City{Name: w.B}, color, w.Length), nil
}

// MarshalJSON encodes the connection as ["city1", "city2", "color",
// length], the two city names in ascending order.
func (w wireConnection) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{w.A, w.B, w.Color, w.Length})
}

func (w *wireConnection) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 4 {
		return fmt.Errorf("transport: connection has %d elements, want 4", len(raw))
	}
	if err := json.Unmarshal(raw[0], &w.A); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &w.B); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[2], &w.Color); err != nil {
		return err
	}
	return json.Unmarshal(raw[3], &w.Length)
}

func colorFromWire(s string) (trains.Color, error) {
	for _, c := range trains.Colors {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("transport: unknown color %q", s)
}

type wireDestination struct {
	A string
	B string
}

func toWireDestination(d trains.Destination) wireDestination {
	return wireDestination{A: d.A.Name, B: d.B.Name}
}

// MarshalJSON encodes the destination as ["city1", "city2"], names
// ascending.
func (w wireDestination) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{w.A, w.B})
}

func (w *wireDestination) UnmarshalJSON(data []byte) error {
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("transport: destination has %d elements, want 2", len(raw))
	}
	w.A, w.B = raw[0], raw[1]
	return nil
}

type wireMap struct {
	Cities      []wireCity       `json:"cities"`
	Connections []wireConnection `json:"connections"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
}

func toWireMap(m *trains.Map) wireMap {
	w := wireMap{Width: m.Width, Height: m.Height}
	for _, c := range m.Cities {
		w.Cities = append(w.Cities, toWireCity(c))
	}
	for _, c := range m.Connections {
		w.Connections = append(w.Connections, toWireConnection(c))
	}
	return w
}

func (w wireMap) trains() (*trains.Map, error) {
	cities := make(map[string]trains.City, len(w.Cities))
	var cityList []trains.City
	for _, c := range w.Cities {
		tc := c.trains()
		cities[tc.Name] = tc
		cityList = append(cityList, tc)
	}

	var conns []trains.Connection
	for _, c := range w.Connections {
		a, ok := cities[c.A]
		if !ok {
			return nil, fmt.Errorf("transport: connection refers to unknown city %q", c.A)
		}
		b, ok := cities[c.B]
		if !ok {
			return nil, fmt.Errorf("transport: connection refers to unknown city %q", c.B)
		}
		color, err := colorFromWire(c.Color)
		if err != nil {
			return nil, err
		}
		conns = append(conns, trains.NewConnection(a, b, color, c.Length))
	}

	return trains.NewMap(cityList, conns, w.Width, w.Height)
}

// wireMove is a tagged in-memory form of trains.Move: Kind is either
// "draw" or "acquire", with Connection set only for the latter. On the
// wire a draw is the bare string "more cards" and an acquire is the
// connection tuple.
type wireMove struct {
	Kind       string
	Connection *wireConnection
}

func toWireMove(m trains.Move) (wireMove, error) {
	switch mv := m.(type) {
	case trains.DrawCards:
		return wireMove{Kind: "draw"}, nil
	case trains.AcquireConnection:
		c := toWireConnection(mv.Connection)
		return wireMove{Kind: "acquire", Connection: &c}, nil
	default:
		return wireMove{}, fmt.Errorf("transport: unsupported move type %T", m)
	}
}

func (w wireMove) MarshalJSON() ([]byte, error) {
	switch w.Kind {
	case "draw":
		return json.Marshal(drawWire)
	case "acquire":
		if w.Connection == nil {
			return nil, fmt.Errorf("transport: acquire move missing connection")
		}
		return json.Marshal(w.Connection)
	default:
		return nil, fmt.Errorf("transport: unknown move kind %q", w.Kind)
	}
}

func (w *wireMove) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != drawWire {
			return fmt.Errorf("transport: unknown move %q", s)
		}
		w.Kind, w.Connection = "draw", nil
		return nil
	}

	var c wireConnection
	if err := json.Unmarshal(data, &c); err != nil {
		return err
	}
	w.Kind, w.Connection = "acquire", &c
	return nil
}

func (w wireMove) trains(cities map[string]trains.City) (trains.Move, error) {
	switch w.Kind {
	case "draw":
		return trains.DrawCards{}, nil
	case "acquire":
		if w.Connection == nil {
			return nil, fmt.Errorf("transport: acquire move missing connection")
		}
		a, ok := cities[w.Connection.A]
		if !ok {
			return nil, fmt.Errorf("transport: unknown city %q", w.Connection.A)
		}
		b, ok := cities[w.Connection.B]
		if !ok {
			return nil, fmt.Errorf("transport: unknown city %q", w.Connection.B)
		}
		color, err := colorFromWire(w.Connection.Color)
		if err != nil {
			return nil, err
		}
		return trains.AcquireConnection{Connection: trains.NewConnection(a, b, color, w.Connection.Length)}, nil
	default:
		return nil, fmt.Errorf("transport: unknown move kind %q", w.Kind)
	}
}

// wireSelf is the receiver's own half of a serialized view.
type wireSelf struct {
	Destination1 wireDestination  `json:"destination1"`
	Destination2 wireDestination  `json:"destination2"`
	Rails        int              `json:"rails"`
	Cards        map[string]int   `json:"cards"`
	Acquired     []wireConnection `json:"acquired"`
}

// wireView serializes a projection under the keys "this" (the
// receiver's own state) and "acquired" (the opponents' owned
// connections, in projection order).
type wireView struct {
	This     wireSelf           `json:"this"`
	Acquired [][]wireConnection `json:"acquired"`
}

func toWireView(v *trains.View) wireView {
	d1, d2 := v.Destinations[0], v.Destinations[1]
	if d2.Less(d1) {
		d1, d2 = d2, d1
	}

	w := wireView{
		This: wireSelf{
			Destination1: toWireDestination(d1),
			Destination2: toWireDestination(d2),
			Rails:        v.Rails,
			Cards:        make(map[string]int, len(v.Hand)),
			Acquired:     []wireConnection{},
		},
		Acquired: [][]wireConnection{},
	}
	for color, n := range v.Hand {
		w.This.Cards[color.String()] = n
	}
	for _, c := range v.Owned {
		w.This.Acquired = append(w.This.Acquired, toWireConnection(c))
	}
	for _, opp := range v.Opponents {
		wopp := []wireConnection{}
		for _, c := range opp {
			wopp = append(wopp, toWireConnection(c))
		}
		w.Acquired = append(w.Acquired, wopp)
	}
	return w
}

// trains rebuilds a View from its wire form.
func (w wireView) trains() (*trains.View, error) {
	v := &trains.View{Rails: w.This.Rails, Hand: make(map[trains.Color]int, len(w.This.Cards))}

	v.Destinations[0] = trains.NewDestination(
		trains.City{Name: w.This.Destination1.A}, trains.City{Name: w.This.Destination1.B})
	v.Destinations[1] = trains.NewDestination(
		trains.City{Name: w.This.Destination2.A}, trains.City{Name: w.This.Destination2.B})

	for name, n := range w.This.Cards {
		c, err := colorFromWire(name)
		if err != nil {
			return nil, err
		}
		v.Hand[c] = n
	}

	for _, c := range w.This.Acquired {
		tc, err := c.trains()
		if err != nil {
			return nil, err
		}
		v.Owned = append(v.Owned, tc)
	}

	for _, opp := range w.Acquired {
		var conns []trains.Connection
		for _, c := range opp {
			tc, err := c.trains()
			if err != nil {
				return nil, err
			}
			conns = append(conns, tc)
		}
		v.Opponents = append(v.Opponents, conns)
	}

	return v, nil
}

// LoadMap decodes a map from its JSON wire form, e.g. a tournament's
// configured default map file.
func LoadMap(r io.Reader) (*trains.Map, error) {
	var w wireMap
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("transport: decoding map: %w", err)
	}
	return w.trains()
}

// envelope is the single message shape exchanged over the socket: a
// request names a method and carries its parameters, a response
// carries either a result or an error, both tagged with the request's
// ID so replies can be matched up out of order.
type envelope struct {
	ID     uint64          `json:"id"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}
