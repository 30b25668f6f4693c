// Bot-side request dispatch
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

package transport

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"go-trains"
)

// Dial connects to a referee listening at url (e.g. "ws://host:port/")
// and serves p's methods over the connection until it closes or a
// message cannot be decoded.
func Dial(url string, p trains.Participant) error {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", url, err)
	}
	defer conn.Close()

	return Handle(conn, p)
}

// Handle reads request envelopes off conn, dispatches each one into
// the matching Participant method, and writes back a response
// envelope. It returns when the connection is closed or a read fails.
func Handle(conn *websocket.Conn, p trains.Participant) error {
	for {
		var req envelope
		if err := conn.ReadJSON(&req); err != nil {
			return err
		}

		result, err := dispatch(req, p)
		resp := envelope{ID: req.ID}
		if err != nil {
			resp.Error = err.Error()
		} else if result != nil {
			raw, merr := json.Marshal(result)
			if merr != nil {
				resp.Error = merr.Error()
			} else {
				resp.Result = raw
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			return err
		}
	}
}

func dispatch(req envelope, p trains.Participant) (interface{}, error) {
	switch req.Method {
	case "name":
		return p.Name(), nil

	case "setup":
		var params struct {
			Map   wireMap  `json:"map"`
			Rails int      `json:"rails"`
			Hand  []string `json:"hand"`
		}
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return nil, err
		}
		m, err := params.Map.trains()
		if err != nil {
			return nil, err
		}
		hand := make([]trains.Color, len(params.Hand))
		for i, s := range params.Hand {
			c, err := colorFromWire(s)
			if err != nil {
				return nil, err
			}
			hand[i] = c
		}
		return nil, p.Setup(m, params.Rails, hand)

	case "pick":
		var offered []wireDestination
		if err := json.Unmarshal(req.Params, &offered); err != nil {
			return nil, err
		}
		cities := make(map[string]trains.City)
		var ds []trains.Destination
		for _, w := range offered {
			// Destination cities carry no coordinates over the wire
			// beyond their name, which is all Pick needs to compare
			// against what was offered.
			a := trains.City{Name: w.A}
			b := trains.City{Name: w.B}
			cities[w.A], cities[w.B] = a, b
			ds = append(ds, trains.NewDestination(a, b))
		}
		notChosen, err := p.Pick(ds)
		if err != nil {
			return nil, err
		}
		var out []wireDestination
		for _, d := range notChosen {
			out = append(out, toWireDestination(d))
		}
		return out, nil

	case "play":
		var w wireView
		if err := json.Unmarshal(req.Params, &w); err != nil {
			return nil, err
		}
		view, err := w.trains()
		if err != nil {
			return nil, err
		}
		move, err := p.Play(view)
		if err != nil {
			return nil, err
		}
		wm, err := toWireMove(move)
		if err != nil {
			return nil, err
		}
		return wm, nil

	case "more":
		var wc []string
		if err := json.Unmarshal(req.Params, &wc); err != nil {
			return nil, err
		}
		cards := make([]trains.Color, len(wc))
		for i, s := range wc {
			c, err := colorFromWire(s)
			if err != nil {
				return nil, err
			}
			cards[i] = c
		}
		return nil, p.More(cards)

	case "win":
		var won bool
		if err := json.Unmarshal(req.Params, &won); err != nil {
			return nil, err
		}
		return nil, p.Win(won)

	case "start":
		m, err := p.Start()
		if err != nil {
			return nil, err
		}
		if m == nil {
			return nil, nil
		}
		return toWireMap(m), nil

	case "end":
		var won bool
		if err := json.Unmarshal(req.Params, &won); err != nil {
			return nil, err
		}
		return nil, p.End(won)

	default:
		return nil, fmt.Errorf("transport: unknown method %q", req.Method)
	}
}
