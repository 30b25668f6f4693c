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

package deck

import (
	"math/rand"
	"testing"

	"go-trains"
)

func TestNewClonesInput(t *testing.T) {
	cards := []trains.Color{trains.Red, trains.Blue}
	d := New(cards)

	cards[0] = trains.White
	if got := d.Draw(1); got[0] != trains.Red {
		t.Errorf("New did not clone its input: got %v, want %v", got[0], trains.Red)
	}
}

func TestDrawExhaustion(t *testing.T) {
	d := New([]trains.Color{trains.Red, trains.Blue, trains.Green})

	if got := d.Draw(2); len(got) != 2 {
		t.Fatalf("Draw(2) returned %d cards, want 2", len(got))
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}

	got := d.Draw(5)
	if len(got) != 1 {
		t.Fatalf("Draw(5) on a 1-card deck returned %d cards, want 1", len(got))
	}
	if d.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", d.Len())
	}

	if got := d.Draw(1); len(got) != 0 {
		t.Fatalf("Draw(1) on an empty deck returned %d cards, want 0", len(got))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	d := New([]trains.Color{trains.Red, trains.Blue})
	c := d.Clone()

	d.Draw(1)
	if c.Len() != 2 {
		t.Errorf("Clone() shared state with the original: Len() = %d, want 2", c.Len())
	}
}

func TestRandomSizeAndDeterminism(t *testing.T) {
	d := Random(100, rand.New(rand.NewSource(1)))
	if d.Len() != 100 {
		t.Fatalf("Random(100, ...).Len() = %d, want 100", d.Len())
	}

	a := Random(50, rand.New(rand.NewSource(42)))
	b := Random(50, rand.New(rand.NewSource(42)))
	if a.Draw(50)[10] != b.Draw(50)[10] {
		t.Errorf("Random with the same seed produced different decks")
	}
}
