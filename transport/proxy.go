// Remote participant proxying over websockets
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
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"go-trains"
)

// RemoteParticipant satisfies trains.Participant by forwarding every
// call across a websocket connection as a request/response envelope,
// tagged with an ID the way Client.Respond tags replies in the text
// protocol this was adapted from. Every call is bounded by a deadline:
// a stalled remote process degrades into an ordinary call error, which
// the referee and manager treat like any other misbehavior.
type RemoteParticipant struct {
	conn    *websocket.Conn
	name    string
	timeout time.Duration

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]chan envelope
}

func newRemoteParticipant(conn *websocket.Conn, timeout time.Duration) *RemoteParticipant {
	rp := &RemoteParticipant{
		conn:    conn,
		timeout: timeout,
		pending: make(map[uint64]chan envelope),
	}
	go rp.readLoop()
	return rp
}

func (rp *RemoteParticipant) readLoop() {
	for {
		var env envelope
		if err := rp.conn.ReadJSON(&env); err != nil {
			rp.failPending(err)
			return
		}

		rp.mu.Lock()
		ch, ok := rp.pending[env.ID]
		if ok {
			delete(rp.pending, env.ID)
		}
		rp.mu.Unlock()

		if ok {
			ch <- env
		}
	}
}

func (rp *RemoteParticipant) failPending(err error) {
	rp.mu.Lock()
	defer rp.mu.Unlock()
	for id, ch := range rp.pending {
		ch <- envelope{ID: id, Error: err.Error()}
		delete(rp.pending, id)
	}
}

// call sends method(params) and blocks for the matching response,
// decoding its result into out (if non-nil).
func (rp *RemoteParticipant) call(method string, params, out interface{}) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("transport: encoding %s params: %w", method, err)
	}

	id := atomic.AddUint64(&rp.nextID, 1)
	ch := make(chan envelope, 1)
	rp.mu.Lock()
	rp.pending[id] = ch
	rp.mu.Unlock()

	if err := rp.conn.WriteJSON(envelope{ID: id, Method: method, Params: raw}); err != nil {
		rp.mu.Lock()
		delete(rp.pending, id)
		rp.mu.Unlock()
		return fmt.Errorf("transport: sending %s: %w", method, err)
	}

	var expired <-chan time.Time
	if rp.timeout > 0 {
		timer := time.NewTimer(rp.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	var env envelope
	select {
	case env = <-ch:
	case <-expired:
		rp.mu.Lock()
		delete(rp.pending, id)
		rp.mu.Unlock()
		return fmt.Errorf("transport: %s timed out after %s", method, rp.timeout)
	}

	if env.Error != "" {
		return errors.New(env.Error)
	}
	if out != nil && len(env.Result) > 0 {
		return json.Unmarshal(env.Result, out)
	}
	return nil
}

func (rp *RemoteParticipant) Name() string { return rp.name }

func (rp *RemoteParticipant) Setup(m *trains.Map, rails int, hand []trains.Color) error {
	var params struct {
		Map   wireMap  `json:"map"`
		Rails int      `json:"rails"`
		Hand  []string `json:"hand"`
	}
	params.Map = toWireMap(m)
	params.Rails = rails
	for _, c := range hand {
		params.Hand = append(params.Hand, c.String())
	}
	return rp.call("setup", params, nil)
}

func (rp *RemoteParticipant) Pick(offered []trains.Destination) ([]trains.Destination, error) {
	cities := citiesOf(offered)

	var wOffered []wireDestination
	for _, d := range offered {
		wOffered = append(wOffered, toWireDestination(d))
	}

	var result []wireDestination
	if err := rp.call("pick", wOffered, &result); err != nil {
		return nil, err
	}

	var notChosen []trains.Destination
	for _, w := range result {
		a, ok := cities[w.A]
		if !ok {
			return nil, fmt.Errorf("transport: pick response names unknown city %q", w.A)
		}
		b, ok := cities[w.B]
		if !ok {
			return nil, fmt.Errorf("transport: pick response names unknown city %q", w.B)
		}
		notChosen = append(notChosen, trains.NewDestination(a, b))
	}
	return notChosen, nil
}

func (rp *RemoteParticipant) Play(view *trains.View) (trains.Move, error) {
	var result wireMove
	if err := rp.call("play", toWireView(view), &result); err != nil {
		return nil, err
	}
	return result.trains(citiesOfView(view))
}

func (rp *RemoteParticipant) More(cards []trains.Color) error {
	wc := make([]string, len(cards))
	for i, c := range cards {
		wc[i] = c.String()
	}
	return rp.call("more", wc, nil)
}

func (rp *RemoteParticipant) Win(won bool) error {
	return rp.call("win", won, nil)
}

func (rp *RemoteParticipant) Start() (*trains.Map, error) {
	var result *wireMap
	if err := rp.call("start", nil, &result); err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.trains()
}

func (rp *RemoteParticipant) End(won bool) error {
	return rp.call("end", won, nil)
}

func citiesOf(ds []trains.Destination) map[string]trains.City {
	out := make(map[string]trains.City, len(ds)*2)
	for _, d := range ds {
		out[d.A.Name] = d.A
		out[d.B.Name] = d.B
	}
	return out
}

func citiesOfView(v *trains.View) map[string]trains.City {
	out := make(map[string]trains.City)
	add := func(c trains.Connection) {
		out[c.A.Name] = c.A
		out[c.B.Name] = c.B
	}
	for _, c := range v.Owned {
		add(c)
	}
	for _, opp := range v.Opponents {
		for _, c := range opp {
			add(c)
		}
	}
	for _, d := range v.Destinations {
		out[d.A.Name] = d.A
		out[d.B.Name] = d.B
	}
	return out
}

// Listen accepts incoming websocket connections on addr and yields a
// RemoteParticipant for each one, once its name has been fetched.
// Connections whose name handshake fails are dropped silently, the
// same way a broken TCP client is simply forgotten. Each participant's
// calls are bounded by timeout; zero disables the deadline.
func Listen(addr string, timeout time.Duration) (<-chan *RemoteParticipant, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: listen on %s: %w", addr, err)
	}

	out := make(chan *RemoteParticipant)
	upgrader := websocket.Upgrader{}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		rp := newRemoteParticipant(conn, timeout)
		var name string
		if err := rp.call("name", nil, &name); err != nil {
			conn.Close()
			return
		}
		rp.name = name

		out <- rp
	})

	go http.Serve(ln, mux)
	return out, nil
}
