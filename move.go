// Move variants
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

package trains

// Move is the closed set of actions a participant may return from
// Play: DrawCards or AcquireConnection. The variant set is closed, but
// the operations performed on a Move (legality, application,
// serialization) are open: each operation is a function elsewhere in
// the module that type-switches on Move, rather than a method on Move
// itself. See referee.Legal, referee.Apply and the transport package's
// wire encoding.
type Move interface {
	isMove()
}

// DrawCards is the move that requests up to two cards from the deck.
type DrawCards struct{}

func (DrawCards) isMove() {}

// AcquireConnection is the move that claims a specific connection.
type AcquireConnection struct {
	Connection Connection
}

func (AcquireConnection) isMove() {}
